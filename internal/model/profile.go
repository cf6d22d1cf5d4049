package model

import (
	"time"
)

// Profile 用户资料（一个用户最多一条）
type Profile struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Bio    string `json:"bio" gorm:"type:text"`
	UserID uint   `json:"userId" gorm:"uniqueIndex;not null"`
	User   *User  `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	// user_id 唯一索引只是兜底，1:1 约束由 service 层先行检查
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }

package model

import (
	"time"
)

// Tag 文章标签，名字不做唯一约束（重复名允许，findOrCreate 场景除外）
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index"`
	Posts     []Post    `json:"-" gorm:"many2many:post_tags;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

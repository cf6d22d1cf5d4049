package model

import (
	"time"
)

// PostTag 文章-标签关联行
// 复合主键 = (post_id, tag_id)，同一对只会存在一行，attach 因此天然幂等
type PostTag struct {
	PostID    uint      `json:"postId" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint      `json:"tagId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostTag) TableName() string { return "post_tags" }

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post 博客文章
type Post struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	UserID      uint       `json:"userId" gorm:"not null;index"`
	User        *User      `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Slug        string     `json:"slug" gorm:"type:varchar(300);uniqueIndex"`
	PublishedAt *time.Time `json:"publishedAt"`
	Tags        []Tag      `json:"tags,omitempty" gorm:"many2many:post_tags;"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Post) TableName() string { return "posts" }

// 文章状态（闭合枚举）
const (
	PostStatusActive   = "active"
	PostStatusDraft    = "draft"
	PostStatusArchived = "archived"
)

// ValidPostStatus 判断状态是否在枚举内
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusActive, PostStatusDraft, PostStatusArchived:
		return true
	}
	return false
}

// NewSlug 由标题生成 slug，后缀 8 位随机串保证唯一，创建后不再变更
func NewSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	base := strings.Trim(b.String(), "-")
	if len(base) > 80 {
		base = base[:80]
	}
	suffix := uuid.New().String()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	ArticleID uint           `json:"article_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	UserName  string         `json:"user_name"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Hidden    bool           `json:"hidden" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

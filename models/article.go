package models

import "time"

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Article rows are hard-deleted so a removed article frees its slug for
// reuse immediately.
type Article struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Title       string        `json:"title" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"uniqueIndex;not null"`
	Content     string        `json:"content" gorm:"type:text"`
	Excerpt     string        `json:"excerpt"`
	CoverImage  string        `json:"cover_image"`
	UserID      uint          `json:"user_id" gorm:"not null"`
	AuthorName  string        `json:"author_name"`
	Status      ArticleStatus `json:"status" gorm:"default:'draft';index"`
	ReadingTime int           `json:"reading_time"`
	CategoryID  *uint         `json:"category_id"`
	Category    *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags        []Tag         `json:"tags" gorm:"many2many:article_tags;"`
	PublishedAt *time.Time    `json:"published_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

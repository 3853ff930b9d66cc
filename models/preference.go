package models

import "time"

// CategoryPreference records that a user wants articles from a category
// surfaced first on their home feed.
type CategoryPreference struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	CategoryID uint      `json:"category_id" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

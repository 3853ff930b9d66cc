package models

import "time"

type StoryStatus string

const (
	StoryPending  StoryStatus = "pending"
	StoryApproved StoryStatus = "approved"
	StoryRejected StoryStatus = "rejected"
)

// Story is a reader-submitted story awaiting moderation. The submitter's
// name and email are snapshotted at submission time so later profile edits
// do not rewrite history.
type Story struct {
	ID              string      `json:"id" gorm:"primarykey"`
	Title           string      `json:"title" gorm:"not null"`
	Content         string      `json:"content" gorm:"type:text;not null"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	UserName        string      `json:"user_name"`
	UserEmail       string      `json:"user_email"`
	Status          StoryStatus `json:"status" gorm:"default:'pending';index"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	ApprovedAt      *time.Time  `json:"approved_at"`
	RejectedAt      *time.Time  `json:"rejected_at"`
	RejectionReason *string     `json:"rejection_reason"`
}

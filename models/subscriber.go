package models

import "time"

type Subscriber struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Token          string     `json:"-" gorm:"uniqueIndex;not null"`
	Active         bool       `json:"active" gorm:"default:true"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

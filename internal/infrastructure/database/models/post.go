package models

import (
	"time"
)

type Post struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	PostedBy       string    `json:"postedBy" gorm:"type:text;index"`
	TrackingCookie string    `json:"trackingCookie" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt" gorm:"type:timestamp with time zone;not null"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"type:timestamp with time zone;not null"`
}

package model

import "time"

// Notice represents one published announcement. Append-only.
type Notice struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`
}

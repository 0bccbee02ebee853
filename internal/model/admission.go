package model

import "time"

// Admission represents one submitted admission application.
// Rows are append-only: nothing updates or deletes them after insert.
type Admission struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	StudentName  string    `gorm:"size:200;not null" json:"student_name"`
	StudentClass string    `gorm:"size:50" json:"student_class"`
	Age          int       `json:"age"`
	ParentEmail  string    `gorm:"size:150" json:"parent_email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Message      string    `gorm:"type:text" json:"message"`
	SubmittedAt  time.Time `gorm:"not null;index" json:"submitted_at"`
}

package model

// Admin represents the site administrator account.
type Admin struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:150;not null" json:"email"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
	Name         string `gorm:"size:150" json:"name"`
}

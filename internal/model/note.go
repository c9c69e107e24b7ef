package model

import "time"

// Note is a free-form text note with an optional file attachment.
// Attachment holds the stored blob name; the note exclusively owns the blob
// and deleting the note releases it.
type Note struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"index"`
	Title      string
	Content    string
	Attachment *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

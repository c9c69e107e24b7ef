package model

import "time"

// User is an account holder. Passwords are stored as salted SHA-256 digests.
// TelegramChatID, when set, opts the user into periodic reminder digests.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex"`
	Salt           string
	PasswordHash   string
	TelegramChatID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

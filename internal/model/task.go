package model

import "time"

// Task represents a single item on a user's to-do list. A task may carry a
// due timestamp and a reminder lead time in hours; the reminder fire time
// (DueAt minus the lead) is derived, never stored.
type Task struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"index"`
	Description       string
	DueAt             *time.Time
	RemindBeforeHours int  `gorm:"default:0"`
	Done              bool `gorm:"default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

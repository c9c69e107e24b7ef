package model

import "time"

// Flashcard is a question/answer pair for self-testing.
type Flashcard struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Question  string
	Answer    string
	CreatedAt time.Time
}

// Quiz stores a titled block of questions as raw text (JSON or free-form).
type Quiz struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Title     string
	Questions string
	CreatedAt time.Time
}

// Goal tracks progress toward a numeric target.
type Goal struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index"`
	Goal        string
	TargetValue int
	Progress    int `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

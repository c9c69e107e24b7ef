package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"student-assist/internal/model"
)

// TimetableRepository manages the weekly timetable grid.
type TimetableRepository struct {
	db *gorm.DB
}

func NewTimetableRepository(db *gorm.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// UpsertSlot writes one grid cell, overwriting the subject when the
// (user, day, slot) cell already exists.
func (r *TimetableRepository) UpsertSlot(ctx context.Context, entry *model.TimetableEntry) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"subject"}),
	}).Create(entry).Error; err != nil {
		return fmt.Errorf("upsert timetable slot: %w", err)
	}
	return nil
}

func (r *TimetableRepository) ListByUser(ctx context.Context, userID uint) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

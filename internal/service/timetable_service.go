package service

import (
	"context"
	"fmt"

	"student-assist/internal/model"
	"student-assist/internal/repository"
)

// The fixed weekly grid. Cells outside it are rejected.
var (
	TimetableDays  = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	TimetableSlots = []string{"9:00-10:00", "10:00-11:00", "11:00-12:00", "2:00-3:00"}
)

// TimetableService manages the weekly timetable grid.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
}

func NewTimetableService(timetableRepo *repository.TimetableRepository) *TimetableService {
	return &TimetableService{timetableRepo: timetableRepo}
}

// Grid returns the full day-by-slot table with empty strings for unset
// cells.
func (s *TimetableService) Grid(ctx context.Context, user *model.User) (map[string]map[string]string, error) {
	grid := make(map[string]map[string]string, len(TimetableDays))
	for _, day := range TimetableDays {
		grid[day] = make(map[string]string, len(TimetableSlots))
		for _, slot := range TimetableSlots {
			grid[day][slot] = ""
		}
	}

	entries, err := s.timetableRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if row, ok := grid[entry.Day]; ok {
			if _, ok := row[entry.Slot]; ok {
				row[entry.Slot] = entry.Subject
			}
		}
	}
	return grid, nil
}

// SaveSlot upserts one cell of the grid.
func (s *TimetableService) SaveSlot(ctx context.Context, user *model.User, day, slot, subject string) error {
	if !contains(TimetableDays, day) {
		return fmt.Errorf("unknown day %q", day)
	}
	if !contains(TimetableSlots, slot) {
		return fmt.Errorf("unknown slot %q", slot)
	}
	entry := model.TimetableEntry{UserID: user.ID, Day: day, Slot: slot, Subject: subject}
	return s.timetableRepo.UpsertSlot(ctx, &entry)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

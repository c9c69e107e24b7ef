package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"student-assist/internal/model"
	"student-assist/internal/repository"
	"student-assist/internal/schedule"
)

// ReminderService derives the upcoming-reminders view and renders it as a
// digest for notification channels.
type ReminderService struct {
	taskRepo *repository.TaskRepository
	horizon  time.Duration
}

func NewReminderService(taskRepo *repository.TaskRepository, horizon time.Duration) *ReminderService {
	if horizon <= 0 {
		horizon = schedule.DefaultHorizon
	}
	return &ReminderService{taskRepo: taskRepo, horizon: horizon}
}

// Upcoming takes a fresh task snapshot for the user and plans reminders
// against now.
func (s *ReminderService) Upcoming(ctx context.Context, user *model.User, now time.Time) ([]schedule.Reminder, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return schedule.PlanReminders(tasks, now, s.horizon), nil
}

// Digest renders the upcoming reminders as plain text for delivery. An
// empty plan yields an empty string, which callers treat as "nothing to
// send".
func (s *ReminderService) Digest(ctx context.Context, user *model.User, now time.Time) (string, error) {
	upcoming, err := s.Upcoming(ctx, user, now)
	if err != nil {
		return "", err
	}
	return FormatDigest(upcoming), nil
}

// FormatDigest renders planner output as the notification text.
func FormatDigest(upcoming []schedule.Reminder) string {
	if len(upcoming) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Upcoming reminders\n")
	for _, r := range upcoming {
		builder.WriteString(fmt.Sprintf(
			"- %s: remind at %s, due %s\n",
			r.Description,
			r.RemindAt.Format("2006-01-02 15:04"),
			r.DueAt.Format("2006-01-02 15:04"),
		))
	}
	return strings.TrimSpace(builder.String())
}

package schedule

import (
	"time"

	"student-assist/internal/model"
)

// Reminder is one entry of the upcoming-reminders view.
type Reminder struct {
	Description string
	DueAt       time.Time
	RemindAt    time.Time
}

// PlanReminders filters a task snapshot down to the reminders that fire
// within the horizon after now. Tasks without a due time, or with a lead
// the policy rejects, are skipped silently; one malformed record must never
// abort the batch. Output preserves the input order.
func PlanReminders(tasks []model.Task, now time.Time, horizon time.Duration) []Reminder {
	var upcoming []Reminder
	for _, task := range tasks {
		if task.DueAt == nil {
			continue
		}
		remindAt, err := ReminderTime(task.DueAt, task.RemindBeforeHours)
		if err != nil {
			continue
		}
		if !IsUpcoming(remindAt, now, horizon) {
			continue
		}
		upcoming = append(upcoming, Reminder{
			Description: task.Description,
			DueAt:       *task.DueAt,
			RemindAt:    remindAt,
		})
	}
	return upcoming
}

// Package schedule holds the pure due-time and reminder-time arithmetic and
// the planner that derives the "upcoming reminders" view from a task
// snapshot. Nothing here touches storage or the clock; callers pass both.
package schedule

import (
	"errors"
	"time"
)

// DefaultHorizon is the forward-looking window within which a reminder is
// surfaced as upcoming.
const DefaultHorizon = 7 * 24 * time.Hour

// ErrInvalidInput is returned when a reminder time cannot be derived from
// the given due time and lead.
var ErrInvalidInput = errors.New("schedule: invalid input")

// ReminderTime returns the instant a reminder becomes relevant: the due
// time minus leadHours hours. It fails if dueAt is absent or the lead is
// negative.
func ReminderTime(dueAt *time.Time, leadHours int) (time.Time, error) {
	if dueAt == nil || leadHours < 0 {
		return time.Time{}, ErrInvalidInput
	}
	return dueAt.Add(-time.Duration(leadHours) * time.Hour), nil
}

// IsUpcoming reports whether remindAt falls strictly between now and
// now+horizon. Reminder times at or before now are considered missed and
// are never reported as upcoming.
func IsUpcoming(remindAt, now time.Time, horizon time.Duration) bool {
	return remindAt.After(now) && remindAt.Sub(now) < horizon
}

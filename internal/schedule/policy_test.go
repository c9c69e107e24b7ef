package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestReminderTime(t *testing.T) {
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	got, err := ReminderTime(&due, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	t.Run("zero lead", func(t *testing.T) {
		got, err := ReminderTime(&due, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(due) {
			t.Errorf("expected %v, got %v", due, got)
		}
	})

	t.Run("missing due time", func(t *testing.T) {
		if _, err := ReminderTime(nil, 2); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative lead", func(t *testing.T) {
		if _, err := ReminderTime(&due, -1); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
	horizon := 7 * 24 * time.Hour

	cases := []struct {
		name     string
		remindAt time.Time
		want     bool
	}{
		{"strictly inside window", now.Add(48 * time.Hour), true},
		{"just after now", now.Add(time.Second), true},
		{"equal to now", now, false},
		{"already passed", now.Add(-time.Hour), false},
		{"exactly at horizon", now.Add(horizon), false},
		{"beyond horizon", now.Add(horizon + time.Hour), false},
		{"just inside horizon", now.Add(horizon - time.Second), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUpcoming(tc.remindAt, now, horizon); got != tc.want {
				t.Errorf("IsUpcoming(%v) = %v, want %v", tc.remindAt, got, tc.want)
			}
		})
	}
}

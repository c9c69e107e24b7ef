package schedule

import (
	"testing"
	"time"

	"student-assist/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestPlanReminders(t *testing.T) {
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	task := model.Task{ID: 1, Description: "submit report", DueAt: &due, RemindBeforeHours: 2}

	t.Run("within horizon", func(t *testing.T) {
		now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
		got := PlanReminders([]model.Task{task}, now, DefaultHorizon)
		if len(got) != 1 {
			t.Fatalf("expected 1 reminder, got %d", len(got))
		}
		wantRemind := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
		if !got[0].RemindAt.Equal(wantRemind) {
			t.Errorf("expected remind at %v, got %v", wantRemind, got[0].RemindAt)
		}
		if !got[0].DueAt.Equal(due) {
			t.Errorf("expected due at %v, got %v", due, got[0].DueAt)
		}
		if got[0].Description != "submit report" {
			t.Errorf("unexpected description %q", got[0].Description)
		}
	})

	t.Run("reminder time already passed", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		if got := PlanReminders([]model.Task{task}, now, DefaultHorizon); len(got) != 0 {
			t.Errorf("expected no reminders, got %d", len(got))
		}
	})

	t.Run("no due date is skipped", func(t *testing.T) {
		now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
		undated := model.Task{ID: 2, Description: "someday"}
		if got := PlanReminders([]model.Task{undated}, now, DefaultHorizon); len(got) != 0 {
			t.Errorf("expected no reminders, got %d", len(got))
		}
	})

	t.Run("negative lead is skipped not fatal", func(t *testing.T) {
		now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
		bad := model.Task{ID: 3, Description: "corrupt", DueAt: &due, RemindBeforeHours: -5}
		got := PlanReminders([]model.Task{bad, task}, now, DefaultHorizon)
		if len(got) != 1 || got[0].Description != "submit report" {
			t.Fatalf("expected corrupt record skipped, got %+v", got)
		}
	})
}

func TestPlanRemindersPreservesOrder(t *testing.T) {
	now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
	var tasks []model.Task
	// Later tasks are due earlier; planner output must still follow the
	// snapshot order, not a time sort.
	for i := 0; i < 5; i++ {
		due := now.Add(time.Duration(72-12*i) * time.Hour)
		tasks = append(tasks, model.Task{
			ID:          uint(i + 1),
			Description: string(rune('a' + i)),
			DueAt:       timePtr(due),
		})
	}

	got := PlanReminders(tasks, now, DefaultHorizon)
	if len(got) != 5 {
		t.Fatalf("expected 5 reminders, got %d", len(got))
	}
	for i, r := range got {
		if want := string(rune('a' + i)); r.Description != want {
			t.Errorf("position %d: expected %q, got %q", i, want, r.Description)
		}
	}
}

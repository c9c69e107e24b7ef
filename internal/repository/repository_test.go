package repository

import (
	"context"
	"testing"
	"time"

	"student-assist/internal/model"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with all migrations applied
// and closes it when the test completes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Salt: "s", PasswordHash: "h"}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestTaskListOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	early := base.Add(24 * time.Hour)
	late := base.Add(72 * time.Hour)

	insert := func(desc string, due *time.Time, done bool, updated time.Time) {
		t.Helper()
		task := &model.Task{UserID: user.ID, Description: desc, DueAt: due, Done: done}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("create %q: %v", desc, err)
		}
		// Pin updated_at explicitly; gorm would otherwise stamp all rows
		// with the same wall clock.
		if err := db.Model(task).Update("updated_at", updated).Error; err != nil {
			t.Fatalf("pin updated_at for %q: %v", desc, err)
		}
	}

	insert("done late due", &late, true, base)
	insert("open no due, older", nil, false, base.Add(time.Minute))
	insert("open no due, newer", nil, false, base.Add(2*time.Minute))
	insert("open late due", &late, false, base)
	insert("open early due", &early, false, base)

	tasks, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{
		"open early due",
		"open late due",
		"open no due, newer",
		"open no due, older",
		"done late due",
	}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, task := range tasks {
		if task.Description != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], task.Description)
		}
	}
}

func TestTaskSetDoneRefreshesUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "bob")
	repo := NewTaskRepository(db)

	task := &model.Task{UserID: user.ID, Description: "write essay"}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetDone(ctx, task, true); err != nil {
		t.Fatalf("set done: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Done {
		t.Error("expected task marked done")
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("expected updated_at refreshed past created_at")
	}
}

func TestTaskScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	repo := NewTaskRepository(db)

	task := &model.Task{UserID: alice.ID, Description: "private"}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.FindByID(ctx, mallory.ID, task.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected record not found for foreign user, got %v", err)
	}
}

func TestNoteDeleteReturnsAttachment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "carol")
	repo := NewNoteRepository(db)

	blob := "abc_slides.pdf"
	note := &model.Note{UserID: user.ID, Title: "Physics", Content: "waves", Attachment: &blob}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Delete(ctx, user.ID, note.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got == nil || *got != blob {
		t.Errorf("expected attachment %q returned, got %v", blob, got)
	}

	if _, err := repo.FindByID(ctx, user.ID, note.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected note gone, got %v", err)
	}
}

func TestTimetableUpsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "dave")
	repo := NewTimetableRepository(db)

	first := &model.TimetableEntry{UserID: user.ID, Day: "Mon", Slot: "9:00-10:00", Subject: "Math"}
	if err := repo.UpsertSlot(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := &model.TimetableEntry{UserID: user.ID, Day: "Mon", Slot: "9:00-10:00", Subject: "Chemistry"}
	if err := repo.UpsertSlot(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	entries, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after upsert, got %d", len(entries))
	}
	if entries[0].Subject != "Chemistry" {
		t.Errorf("expected overwritten subject, got %q", entries[0].Subject)
	}
}

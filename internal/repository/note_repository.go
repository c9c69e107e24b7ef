package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"student-assist/internal/model"
)

// NoteRepository handles CRUD for notes.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update rewrites title and content; when attachment is non-nil it replaces
// the stored blob name as well. UpdatedAt is refreshed by the save.
func (r *NoteRepository) Update(ctx context.Context, note *model.Note, title, content string, attachment *string) error {
	note.Title = title
	note.Content = content
	if attachment != nil {
		note.Attachment = attachment
	}
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, noteID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Delete removes a note and returns the attachment name it held, if any, so
// the caller can release the blob.
func (r *NoteRepository) Delete(ctx context.Context, userID, noteID uint) (*string, error) {
	note, err := r.FindByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(note).Error; err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}
	return note.Attachment, nil
}

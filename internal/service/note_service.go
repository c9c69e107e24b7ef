package service

import (
	"context"
	"fmt"

	"student-assist/internal/blob"
	"student-assist/internal/model"
	"student-assist/internal/repository"
)

// NoteInput represents data required to create or update a note. Attachment
// is the raw uploaded file, if any.
type NoteInput struct {
	Title          string
	Content        string
	AttachmentName string
	AttachmentData []byte
}

// NoteService wraps note business logic and owns the attachment blob
// lifecycle: a note exclusively owns its blob, and deleting the note
// releases it.
type NoteService struct {
	noteRepo *repository.NoteRepository
	blobs    *blob.Store
}

func NewNoteService(noteRepo *repository.NoteRepository, blobs *blob.Store) *NoteService {
	return &NoteService{noteRepo: noteRepo, blobs: blobs}
}

func (s *NoteService) CreateNote(ctx context.Context, user *model.User, input NoteInput) (*model.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("title and content are required")
	}

	var attachment *string
	if len(input.AttachmentData) > 0 {
		name, err := s.blobs.Save(input.AttachmentName, input.AttachmentData)
		if err != nil {
			return nil, err
		}
		attachment = &name
	}

	note := model.Note{
		UserID:     user.ID,
		Title:      input.Title,
		Content:    input.Content,
		Attachment: attachment,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, user *model.User, noteID uint, input NoteInput) (*model.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("title and content are required")
	}

	note, err := s.noteRepo.FindByID(ctx, user.ID, noteID)
	if err != nil {
		return nil, err
	}

	var attachment *string
	if len(input.AttachmentData) > 0 {
		name, err := s.blobs.Save(input.AttachmentName, input.AttachmentData)
		if err != nil {
			return nil, err
		}
		attachment = &name
		if note.Attachment != nil {
			// The replaced blob is released; a missing file is soft.
			if _, err := s.blobs.Remove(*note.Attachment); err != nil {
				return nil, err
			}
		}
	}

	if err := s.noteRepo.Update(ctx, note, input.Title, input.Content, attachment); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(ctx context.Context, user *model.User, noteID uint) (*model.Note, error) {
	return s.noteRepo.FindByID(ctx, user.ID, noteID)
}

func (s *NoteService) List(ctx context.Context, user *model.User) ([]model.Note, error) {
	return s.noteRepo.ListByUser(ctx, user.ID)
}

// OpenAttachment loads the blob referenced by a note. Absence of the blob
// is reported to the caller through the error chain (os.ErrNotExist) so it
// can degrade to a placeholder.
func (s *NoteService) OpenAttachment(ctx context.Context, user *model.User, noteID uint) (string, []byte, error) {
	note, err := s.noteRepo.FindByID(ctx, user.ID, noteID)
	if err != nil {
		return "", nil, err
	}
	if note.Attachment == nil {
		return "", nil, fmt.Errorf("note %d has no attachment", noteID)
	}
	data, err := s.blobs.Open(*note.Attachment)
	if err != nil {
		return *note.Attachment, nil, err
	}
	return *note.Attachment, data, nil
}

// DeleteNote removes the note and its blob. blobMissing reports a blob that
// was already gone, which the caller may log; it is never a failure.
func (s *NoteService) DeleteNote(ctx context.Context, user *model.User, noteID uint) (blobMissing bool, err error) {
	attachment, err := s.noteRepo.Delete(ctx, user.ID, noteID)
	if err != nil {
		return false, err
	}
	if attachment == nil {
		return false, nil
	}
	existed, err := s.blobs.Remove(*attachment)
	if err != nil {
		return false, err
	}
	return !existed, nil
}

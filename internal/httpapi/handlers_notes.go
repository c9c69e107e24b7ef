package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"student-assist/internal/export"
	"student-assist/internal/model"
	"student-assist/internal/service"
)

type noteResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Attachment *string   `json:"attachment,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toNoteResponse(n *model.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Attachment: n.Attachment,
		UpdatedAt:  n.UpdatedAt,
	}
}

// noteInputFromForm reads the multipart form: title, content and an
// optional file part named "attachment".
func noteInputFromForm(c *gin.Context) (service.NoteInput, error) {
	input := service.NoteInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}

	file, err := c.FormFile("attachment")
	if err == http.ErrMissingFile || errors.Is(err, http.ErrNotMultipart) {
		return input, nil
	}
	if err != nil {
		return input, fmt.Errorf("read attachment: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return input, fmt.Errorf("open attachment: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return input, fmt.Errorf("read attachment: %w", err)
	}
	input.AttachmentName = file.Filename
	input.AttachmentData = data
	return input, nil
}

func (s *Server) handleListNotes(c *gin.Context) {
	notes, err := s.notes.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("list notes failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]noteResponse, len(notes))
	for i := range notes {
		out[i] = toNoteResponse(&notes[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateNote(c *gin.Context) {
	input, err := noteInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := s.notes.CreateNote(c.Request.Context(), currentUser(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.WithField("note_id", note.ID).Info("note created")
	c.JSON(http.StatusCreated, toNoteResponse(note))
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}
	input, err := noteInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := s.notes.UpdateNote(c.Request.Context(), currentUser(c), noteID, input)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	blobMissing, err := s.notes.DeleteNote(c.Request.Context(), currentUser(c), noteID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("delete note failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if blobMissing {
		s.log.WithField("note_id", noteID).Warn("attachment blob was already missing")
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDownloadAttachment(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	name, data, err := s.notes.OpenAttachment(c.Request.Context(), currentUser(c), noteID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	if errors.Is(err, os.ErrNotExist) {
		// Missing blob degrades to a placeholder, not a server failure.
		s.log.WithField("note_id", noteID).Warn("attachment blob missing")
		c.JSON(http.StatusNotFound, gin.H{"error": "attachment missing", "attachment": name})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// handleExportNote exports one note as note_<id>.pdf.
func (s *Server) handleExportNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	note, err := s.notes.GetNote(c.Request.Context(), currentUser(c), noteID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("note export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.servePDF(c, []model.Note{*note}, fmt.Sprintf("note_%d.pdf", note.ID))
}

// handleExportNotes exports the full snapshot as notes_export.pdf.
func (s *Server) handleExportNotes(c *gin.Context) {
	notes, err := s.notes.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("notes export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	s.servePDF(c, notes, "notes_export.pdf")
}

func (s *Server) servePDF(c *gin.Context, notes []model.Note, filename string) {
	data, err := export.ExportNotes(notes)
	if err != nil {
		s.log.WithError(err).Error("pdf render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

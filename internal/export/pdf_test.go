package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"student-assist/internal/model"
)

func TestExportNotesEmpty(t *testing.T) {
	data, err := ExportNotes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
}

func TestExportNotes(t *testing.T) {
	attachment := "9f2c_lecture.pdf"
	updated := time.Date(2025, 4, 2, 15, 4, 5, 0, time.UTC)
	notes := []model.Note{
		{ID: 1, Title: "Biology", Content: "Mitochondria.", UpdatedAt: updated},
		{ID: 2, Title: "History", Content: strings.Repeat("Long paragraph. ", 400), Attachment: &attachment, UpdatedAt: updated},
	}

	data, err := ExportNotes(notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF document")
	}
	// The second note forces an overflow; at least two page objects must be
	// present.
	if n := bytes.Count(data, []byte("/Type /Page\n")); n < 2 {
		t.Errorf("expected pagination across pages, found %d page markers", n)
	}
}

func TestExportNotesUnsupportedCharacters(t *testing.T) {
	notes := []model.Note{{
		Title:     "Unicode ✓ 日本語",
		Content:   "Symbols outside cp1252 degrade per character: ∑ 🙂",
		UpdatedAt: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	}}

	if _, err := ExportNotes(notes); err != nil {
		t.Fatalf("unsupported characters must not fail the export: %v", err)
	}
}

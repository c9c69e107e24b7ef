package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"student-assist/internal/model"
)

// ExportNotes renders the note snapshot into a single paginated PDF. Page
// breaks happen automatically on overflow; content is never truncated.
// Characters outside the document charset are substituted per character
// rather than failing the export. The snapshot must already be loaded: this
// performs no database or filesystem access.
func ExportNotes(notes []model.Note) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; the translator substitutes anything outside it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 8, "Notes Export", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	for _, note := range notes {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 12)
		heading := fmt.Sprintf("%s (updated %s)", note.Title, note.UpdatedAt.Format("2006-01-02"))
		pdf.MultiCell(0, 7, tr(heading), "", "", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(note.Content), "", "", false)
		if note.Attachment != nil {
			pdf.MultiCell(0, 6, tr("Attachment: "+*note.Attachment), "", "", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

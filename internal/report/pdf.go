package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/mindguard/internal/domain"
)

const reportTitle = "MindGuard - Reflection Report"

// WritePDF composes the exportable report: a centered title, one labeled
// block per journal entry (1-based ordinals, insertion order), then the
// trend image scaled to the printable width.
func WritePDF(w io.Writer, entries []*domain.ReflectionEntry, trendPNG []byte) error {
	if len(entries) == 0 {
		return ErrEmptyJournal
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	for i, e := range entries {
		block := fmt.Sprintf("%d. %s\nRisk Level: %d/10\n", i+1, e.Text, e.RiskScore)
		pdf.MultiCell(0, 8, block, "", "L", false)
		pdf.Ln(2)
	}

	if len(trendPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("trend", opts, bytes.NewReader(trendPNG))

		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		pdf.ImageOptions("trend", left, 0, pageW-left-right, 0, true, opts, 0, "")
	}

	if pdf.Err() {
		return fmt.Errorf("composing report: %w", pdf.Error())
	}
	return pdf.Output(w)
}

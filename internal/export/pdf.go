package export

import (
	"fmt"
	"io"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
	"github.com/go-pdf/fpdf"
)

var pdfColumnWidths = []float64{75, 40, 32, 16, 32, 28, 30}

// WritePDF renders the participant table as a landscape A4 document.
func WritePDF(w io.Writer, participants []models.Participant) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate the pt-BR strings.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr("Encontro Pastoral - Participantes"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Gerado em %s - %d participante(s)",
		time.Now().Format(roster.DateLayout), len(participants))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range Headers {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range ToRows(participants) {
		for i, cell := range row {
			pdf.CellFormat(pdfColumnWidths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

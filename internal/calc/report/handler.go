package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	beam "MatSelect/internal/calc/beam"
	recommend "MatSelect/internal/calc/recommend"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Beam    beam.Input `json:"beam"`
}

type Handler struct{}

// Generate renders the beam comparison as a one-page PDF: input echo,
// the ten-metric table for both materials and the recommendation.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Material Selection Report"
	}

	cmp, err := recommend.Compare(input.Beam)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.Cell(0, 6, fmt.Sprintf("Beam: L=%g m, w=%g kN/m, b=%g m, h=%g m",
		input.Beam.SpanM, input.Beam.UDLKNM, input.Beam.WidthM, input.Beam.HeightM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 7, "Metric", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Steel", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Aluminium", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range cmp.Table {
		pdf.CellFormat(60, 7, row.Metric, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, row.Steel, "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, row.Aluminium, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	rec := cmp.Recommendation
	pdf.Cell(0, 8, fmt.Sprintf("Recommendation: %s - %s", rec.Winner, rec.Reason))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

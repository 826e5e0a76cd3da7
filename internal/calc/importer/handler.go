package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	beam "MatSelect/internal/calc/beam"
	recommend "MatSelect/internal/calc/recommend"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type CompareImportResult struct {
	Count   int                    `json:"count"`
	Results []recommend.Comparison `json:"results"`
}

// Compare accepts an xlsx upload with one beam case per row and runs
// the steel/aluminium comparison for each. Bad rows are skipped.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []recommend.Comparison
	for i := 1; i < len(rows); i++ {
		input, err := parseBeamRow(rows[i])
		if err != nil {
			continue
		}
		res, err := recommend.Compare(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompareImportResult{Count: len(results), Results: results})
}

func parseBeamRow(row []string) (beam.Input, error) {
	// expected: span_m, udl_kn_m, width_m, height_m
	if len(row) < 4 {
		return beam.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[0])
	if err != nil {
		return beam.Input{}, err
	}
	udl, err := toFloat(row[1])
	if err != nil {
		return beam.Input{}, err
	}
	width, err := toFloat(row[2])
	if err != nil {
		return beam.Input{}, err
	}
	height, err := toFloat(row[3])
	if err != nil {
		return beam.Input{}, err
	}
	return beam.Input{
		SpanM:   span,
		UDLKNM:  udl,
		WidthM:  width,
		HeightM: height,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

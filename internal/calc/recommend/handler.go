package recommend

import (
	"encoding/json"
	"errors"
	"net/http"

	beam "MatSelect/internal/calc/beam"
)

type Handler struct{}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var input beam.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Compare(input)
	if err != nil {
		if errors.Is(err, beam.ErrInvalidGeometry) {
			http.Error(w, "Invalid geometry", http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

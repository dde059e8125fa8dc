// Package model exposes the build pipeline over HTTP for the demo frontend.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"proforma/pkg/core/assumption"
	"proforma/pkg/core/calc"
	"proforma/pkg/core/pipeline"

	"github.com/google/uuid"
)

// BuildRequest carries the forecast horizon. Zero means "use the default".
type BuildRequest struct {
	Years int `json:"years"`
}

// BuildResponse wraps the finished model with a per-request run ID so
// concurrent callers can correlate logs with responses.
type BuildResponse struct {
	RunID string                   `json:"run_id"`
	Model *pipeline.FinancialModel `json:"model"`
}

// HandleBuildModel builds the pro-forma model for the requested horizon.
// POST {"years": N} or GET with default horizon.
func HandleBuildModel(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	req := BuildRequest{Years: assumption.DefaultYears}
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Years == 0 {
			req.Years = assumption.DefaultYears
		}
	}

	runID := uuid.New().String()
	fmt.Printf("[MODEL] Build request run=%s years=%d\n", runID, req.Years)

	m, err := pipeline.Build(req.Years)
	if err != nil {
		switch {
		case errors.Is(err, assumption.ErrInvalidYears):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, calc.ErrDivisionByZero):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		fmt.Printf("[MODEL] Build failed run=%s: %v\n", runID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BuildResponse{RunID: runID, Model: m}); err != nil {
		fmt.Printf("[MODEL] Encode failed run=%s: %v\n", runID, err)
	}
}

package analysis

import (
	"encoding/json"
	"net/http"

	"dovela/internal/errors"
	"dovela/internal/logging"
	"dovela/internal/metrics"
	"dovela/internal/params"
	"dovela/internal/validation"

	"go.uber.org/zap"
)

type Handler struct {
	Analyzer  *Analyzer
	Validator *validation.Validator
}

func NewHandler() *Handler {
	return &Handler{
		Analyzer:  NewAnalyzer(DefaultConfig()),
		Validator: validation.NewValidator(validation.Limits{}),
	}
}

// AnalyzeResponse pairs the stress result with the validation findings
// that accompanied it.
type AnalyzeResponse struct {
	Result     Result            `json:"result"`
	Validation validation.Report `json:"validation"`
}

// FieldRequest adds a grid resolution to the standard analysis request.
type FieldRequest struct {
	params.Request
	GridX int `json:"grid_x"`
	GridY int `json:"grid_y"`
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req params.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	in, err := req.Build()
	if err != nil {
		writeError(w, err)
		return
	}

	report := h.Validator.Validate(in)
	if report.HasErrors() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	res, err := h.Analyzer.Analyze(in.Geometry, in.Material, in.Load, in.Environment, in.Target)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		writeError(w, err)
		return
	}
	if res.MeetsTarget {
		metrics.AnalysesTotal.WithLabelValues("pass").Inc()
	} else {
		metrics.AnalysesTotal.WithLabelValues("fail").Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{Result: res, Validation: report})
}

func (h *Handler) Field(w http.ResponseWriter, r *http.Request) {
	var req FieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.GridX == 0 {
		req.GridX = 50
	}
	if req.GridY == 0 {
		req.GridY = 50
	}

	in, err := req.Build()
	if err != nil {
		writeError(w, err)
		return
	}

	base := in.Load.Magnitude / in.Geometry.EffectiveArea
	field, err := h.Analyzer.SampleField(in.Geometry, base, req.GridX, req.GridY)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(field)
}

// writeError maps typed domain errors onto HTTP statuses and keeps the
// taxonomy visible to the client.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	e, ok := err.(*errors.Error)
	if !ok {
		logging.Error("analysis failed", zap.Error(err))
		http.Error(w, "Calculation error", status)
		return
	}
	if e.Type == errors.TypeInternal || e.Type == errors.TypeStorage {
		logging.Error("analysis failed", zap.Error(err))
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(e)
}

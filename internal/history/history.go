// Package history stores and retrieves past analysis runs per user.
package history

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"dovela/internal/analysis"
	"dovela/internal/logging"
	"dovela/internal/params"
	"dovela/internal/repo"
	"dovela/internal/validation"
)

type Handler struct {
	Repo      repo.Repository
	Analyzer  *analysis.Analyzer
	Validator *validation.Validator
}

func NewHandler(r repo.Repository) *Handler {
	return &Handler{
		Repo:      r,
		Analyzer:  analysis.NewAnalyzer(analysis.DefaultConfig()),
		Validator: validation.NewValidator(validation.Limits{}),
	}
}

// SaveRequest labels an analysis and stores it with its result.
type SaveRequest struct {
	Label    string         `json:"label"`
	Analysis params.Request `json:"analysis"`
}

type SaveResponse struct {
	ID     int             `json:"id"`
	Result analysis.Result `json:"result"`
}

func userID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("userID").(int)
	return id, ok && id != 0
}

// Save runs the analysis and persists the request and result together.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	in, err := req.Analysis.Build()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report := h.Validator.Validate(in)
	res, err := h.Analyzer.AnalyzeChecked(in, report)
	if err != nil {
		if report.HasErrors() {
			http.Error(w, "Validation failed", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	reqJSON, err := json.Marshal(req.Analysis)
	if err != nil {
		logging.Error("encode run request", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		logging.Error("encode run result", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveRun(r.Context(), uid, req.Label, reqJSON, resJSON)
	if err != nil {
		logging.Error("save run", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.Repo.ListRuns(r.Context(), uid, limit)
	if err != nil {
		logging.Error("list runs", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	runID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid run id", http.StatusBadRequest)
		return
	}

	run, err := h.Repo.GetRun(r.Context(), uid, runID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		logging.Error("get run", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	runID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid run id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteRun(r.Context(), uid, runID); err != nil {
		logging.Error("delete run", zap.Error(err), zap.Int("user_id", uid))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

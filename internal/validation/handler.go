package validation

import (
	"encoding/json"
	"net/http"

	"dovela/internal/errors"
	"dovela/internal/params"
)

type Handler struct {
	Validator *Validator
}

func NewHandler() *Handler {
	return &Handler{Validator: NewValidator(Limits{})}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req params.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	in, err := req.Build()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if e, ok := err.(*errors.Error); ok {
			json.NewEncoder(w).Encode(e)
			return
		}
		json.NewEncoder(w).Encode(errors.Input(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Validator.Validate(in))
}

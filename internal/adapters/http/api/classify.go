// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/apnea/internal/domain/grading"
)

// ClassifyHandler handles classification requests.
type ClassifyHandler struct {
	deps Dependencies
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(deps Dependencies) *ClassifyHandler {
	return &ClassifyHandler{deps: deps}
}

// HandlePostClassify handles POST /classify requests.
func (h *ClassifyHandler) HandlePostClassify(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_classify"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	assessment, err := h.deps.Classify(r.Context(), *req.Seconds)
	if err != nil {
		// The engine rejects negative and non-finite readings; the caller
		// re-prompts the user.
		if errors.Is(err, grading.ErrInvalidMeasurement) {
			writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrInvalidInput, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/apnea/internal/domain/types"
)

// bandView is the wire shape of one band. HighSeconds is nil for the
// open-ended top band since JSON cannot carry +Inf.
type bandView struct {
	Label           string       `json:"label"`
	LowSeconds      float64      `json:"low_seconds"`
	HighSeconds     *float64     `json:"high_seconds,omitempty"`
	Message         string       `json:"message"`
	Recommendations []string     `json:"recommendations"`
	Links           []types.Link `json:"links"`
	Color           string       `json:"color"`
}

// BandsHandler handles band table requests.
type BandsHandler struct {
	deps Dependencies
}

// NewBandsHandler creates a new bands handler.
func NewBandsHandler(deps Dependencies) *BandsHandler {
	return &BandsHandler{deps: deps}
}

// HandleGetBands handles GET /bands requests.
func (h *BandsHandler) HandleGetBands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	bands := h.deps.Bands(r.Context())
	views := make([]bandView, 0, len(bands))
	for _, b := range bands {
		v := bandView{
			Label:           b.Label,
			LowSeconds:      b.Low,
			Message:         b.Message,
			Recommendations: b.Recommendations,
			Links:           b.Links,
			Color:           b.Color,
		}
		if !b.Open() {
			high := b.High
			v.HighSeconds = &high
		}
		views = append(views, v)
	}
	writeJSON(w, http.StatusOK, views)
}

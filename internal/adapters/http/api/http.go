// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/okian/apnea/internal/domain/grading"
	"github.com/okian/apnea/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Classify grades a single reading.
	Classify(ctx context.Context, seconds float64) (Assessment, error)

	// Bands exposes the configured classification table.
	Bands(ctx context.Context) []grading.Band
}

// Assessment mirrors the read shape returned by classification.
type Assessment = types.Assessment

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	classifyHandler *ClassifyHandler
	bandsHandler    *BandsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		classifyHandler: NewClassifyHandler(deps),
		bandsHandler:    NewBandsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/classify", MetricsMiddleware(s.classifyHandler.HandlePostClassify, "classify"))
	mux.HandleFunc("/bands", MetricsMiddleware(s.bandsHandler.HandleGetBands, "bands"))
}

// classifyRequest mirrors the request schema for POST /classify. Seconds is a
// pointer so a missing field is distinguishable from an explicit zero.
type classifyRequest struct {
	Seconds *float64 `json:"seconds"`
}

func (c classifyRequest) validate() error {
	if c.Seconds == nil {
		return errors.New("missing seconds")
	}
	if math.IsNaN(*c.Seconds) || math.IsInf(*c.Seconds, 0) {
		return errors.New("seconds must be finite")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

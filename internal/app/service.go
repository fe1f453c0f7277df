// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/apnea/internal/domain/gauge"
	"github.com/okian/apnea/internal/domain/grading"
	"github.com/okian/apnea/internal/domain/types"
	"github.com/okian/apnea/pkg/logger"
	"github.com/okian/apnea/pkg/metrics"
)

// Service implements the API dependencies for the signposting system.
type Service struct {
	mu sync.RWMutex

	// Core components
	grader grading.Grader
	bands  []grading.Band

	// Configuration
	ceiling       float64
	celebrateFrom int
	gaugeAxisMax  float64

	// State
	started bool

	// Stats counters (guarded by mu)
	assessments  int
	invalidCount int
	outOfRange   int
	celebrations int
	byCategory   map[string]int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBands sets the classification band table.
func WithBands(bands []grading.Band) Option {
	return func(s *Service) {
		s.bands = bands
	}
}

// WithCeiling sets the sanity ceiling in seconds.
func WithCeiling(seconds float64) Option {
	return func(s *Service) {
		if seconds > 0 {
			s.ceiling = seconds
		}
	}
}

// WithCelebrateFrom sets the lowest band index that triggers celebration.
func WithCelebrateFrom(index int) Option {
	return func(s *Service) {
		if index >= 0 {
			s.celebrateFrom = index
		}
	}
}

// WithGaugeAxisMax sets the gauge axis upper bound in seconds.
func WithGaugeAxisMax(axisMax float64) Option {
	return func(s *Service) {
		if axisMax > 0 {
			s.gaugeAxisMax = axisMax
		}
	}
}

// New constructs a new Service with default configuration. A band table must
// be supplied with WithBands before Start.
func New(opts ...Option) *Service {
	s := &Service{
		celebrateFrom: -1,
		gaugeAxisMax:  gauge.DefaultAxisMax,
		byCategory:    make(map[string]int),
		logger:        nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting signposting service...")

	gopts := []grading.Option{grading.WithBands(s.bands)}
	if s.ceiling > 0 {
		gopts = append(gopts, grading.WithCeiling(s.ceiling))
	}
	if s.celebrateFrom >= 0 {
		gopts = append(gopts, grading.WithCelebrateFrom(s.celebrateFrom))
	}
	grader, err := grading.NewTableGrader(gopts...)
	if err != nil {
		return fmt.Errorf("build grader: %w", err)
	}
	s.grader = grader

	s.started = true
	s.logger.Info(ctx, "signposting service started",
		logger.Int("bands", len(s.bands)),
		logger.Float64("gaugeAxisMax", s.gaugeAxisMax),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "signposting service stopped")
	s.started = false
}

// Classify grades a single reading and assembles everything the front-end
// needs: the band result, gauge data and a fresh assessment id.
func (s *Service) Classify(ctx context.Context, seconds float64) (types.Assessment, error) {
	s.mu.RLock()
	grader := s.grader
	bands := s.bands
	axisMax := s.gaugeAxisMax
	s.mu.RUnlock()

	if grader == nil {
		return types.Assessment{}, ErrNotStarted
	}

	start := time.Now()
	result, err := grader.Classify(ctx, seconds)
	if err != nil {
		if errors.Is(err, grading.ErrInvalidMeasurement) {
			metrics.RecordInvalidInput()
			s.mu.Lock()
			s.invalidCount++
			s.mu.Unlock()
		}
		return types.Assessment{}, err
	}
	metrics.RecordClassifyLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordClassification(result.Category)
	if result.OutOfRange {
		metrics.RecordOutOfRange()
	}
	if result.Celebrate {
		metrics.RecordCelebration()
	}

	assessment := types.Assessment{
		ID:      uuid.New().String(),
		Seconds: seconds,
		Result:  result,
		Gauge:   gauge.Build(seconds, bands, axisMax),
	}

	s.mu.Lock()
	s.assessments++
	s.byCategory[result.Category]++
	if result.OutOfRange {
		s.outOfRange++
	}
	if result.Celebrate {
		s.celebrations++
	}
	s.mu.Unlock()

	s.logger.Debug(ctx, "classified reading",
		logger.String("assessmentID", assessment.ID),
		logger.Float64("seconds", seconds),
		logger.String("category", result.Category),
		logger.Bool("achievedTop", result.AchievedTop),
		logger.Bool("outOfRange", result.OutOfRange),
	)

	return assessment, nil
}

// Bands returns the configured band table in order.
func (s *Service) Bands(_ context.Context) []grading.Band {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]grading.Band, len(s.bands))
	copy(out, s.bands)
	return out
}

// GetStats returns a snapshot of service counters.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]int, len(s.byCategory))
	for k, v := range s.byCategory {
		byCategory[k] = v
	}

	return map[string]interface{}{
		"assessments":  s.assessments,
		"invalidInput": s.invalidCount,
		"outOfRange":   s.outOfRange,
		"celebrations": s.celebrations,
		"byCategory":   byCategory,
		"bandCount":    len(s.bands),
		"started":      s.started,
	}
}

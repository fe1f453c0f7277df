// Package grading implements the breath-hold classification engine: a pure
// mapping from a measured duration to a category band and its signposting
// content.
package grading

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/apnea/internal/domain/types"
)

// defaultCeiling is the sanity ceiling in seconds. Readings above it are
// still classified (the top band is open-ended) but flagged as out of range.
const defaultCeiling = 600

// Band describes one classification interval [Low, High). The last band in a
// table is open-ended and carries High = +Inf.
type Band struct {
	Label           string
	Low             float64
	High            float64
	Message         string
	Recommendations []string
	Links           []types.Link
	Color           string
}

// Contains reports whether seconds falls inside the band's half-open
// interval. Boundaries belong to the band starting at them.
func (b Band) Contains(seconds float64) bool {
	return seconds >= b.Low && seconds < b.High
}

// Open reports whether the band has no upper bound.
func (b Band) Open() bool {
	return math.IsInf(b.High, 1)
}

// Grader classifies a measurement into a band result.
type Grader interface {
	// Classify maps a duration in seconds to a Result. It fails only for
	// invalid input (negative, NaN or infinite).
	Classify(ctx context.Context, seconds float64) (types.Result, error)
}

// Option applies a configuration option to the TableGrader.
type Option func(*TableGrader)

// WithBands sets the band table. The table is validated by NewTableGrader.
func WithBands(bands []Band) Option {
	return func(g *TableGrader) {
		g.bands = bands
	}
}

// WithCeiling sets the sanity ceiling in seconds.
func WithCeiling(seconds float64) Option {
	return func(g *TableGrader) {
		if seconds > 0 {
			g.ceiling = seconds
		}
	}
}

// WithCelebrateFrom sets the lowest band index that triggers the celebratory
// effect. Defaults to the second-to-last band.
func WithCelebrateFrom(index int) Option {
	return func(g *TableGrader) {
		if index >= 0 {
			g.celebrateFrom = index
		}
	}
}

// TableGrader implements Grader with an ordered, contiguous band table.
type TableGrader struct {
	bands         []Band
	ceiling       float64
	celebrateFrom int
}

// NewTableGrader creates a grader from options. It fails with
// ErrInvalidBands when the band table does not cover [0, +Inf) contiguously.
func NewTableGrader(opts ...Option) (*TableGrader, error) {
	g := &TableGrader{
		ceiling:       defaultCeiling,
		celebrateFrom: -1,
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := ValidateBands(g.bands); err != nil {
		return nil, err
	}
	if g.celebrateFrom < 0 || g.celebrateFrom >= len(g.bands) {
		g.celebrateFrom = len(g.bands) - 1
		if len(g.bands) > 1 {
			g.celebrateFrom = len(g.bands) - 2
		}
	}

	return g, nil
}

// Classify maps seconds to the first band containing it. The table covers
// [0, +Inf) with no gaps, so lookup always succeeds for valid input.
func (g *TableGrader) Classify(_ context.Context, seconds float64) (types.Result, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return types.Result{}, fmt.Errorf("%w: %v", ErrInvalidMeasurement, seconds)
	}

	for i, b := range g.bands {
		if !b.Contains(seconds) {
			continue
		}
		return types.Result{
			Category:        b.Label,
			Message:         b.Message,
			Recommendations: b.Recommendations,
			Links:           b.Links,
			Color:           b.Color,
			BandIndex:       i,
			AchievedTop:     i == len(g.bands)-1,
			Celebrate:       i >= g.celebrateFrom,
			OutOfRange:      seconds > g.ceiling,
		}, nil
	}

	// Unreachable while ValidateBands holds; kept to keep the function total.
	return types.Result{}, fmt.Errorf("%w: no band for %v", ErrInvalidBands, seconds)
}

// Bands returns a copy of the band table in order.
func (g *TableGrader) Bands() []Band {
	out := make([]Band, len(g.bands))
	copy(out, g.bands)
	return out
}

// Ceiling returns the configured sanity ceiling in seconds.
func (g *TableGrader) Ceiling() float64 {
	return g.ceiling
}

// ValidateBands checks the core table invariant: bands are ordered,
// contiguous from 0, and the last band is open-ended.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidBands)
	}
	if bands[0].Low != 0 {
		return fmt.Errorf("%w: first band must start at 0, got %v", ErrInvalidBands, bands[0].Low)
	}
	for i, b := range bands {
		if b.Label == "" {
			return fmt.Errorf("%w: band %d has no label", ErrInvalidBands, i)
		}
		if b.High <= b.Low {
			return fmt.Errorf("%w: band %q has empty interval [%v, %v)", ErrInvalidBands, b.Label, b.Low, b.High)
		}
		if i < len(bands)-1 && b.High != bands[i+1].Low {
			return fmt.Errorf("%w: gap or overlap between %q and %q", ErrInvalidBands, b.Label, bands[i+1].Label)
		}
	}
	if !bands[len(bands)-1].Open() {
		return fmt.Errorf("%w: last band %q must be open-ended", ErrInvalidBands, bands[len(bands)-1].Label)
	}
	return nil
}

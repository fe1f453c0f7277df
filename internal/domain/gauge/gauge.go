// Package gauge turns a measurement and a band table into render-ready
// gauge data for the front-end chart widget.
package gauge

import (
	"math"

	"github.com/okian/apnea/internal/domain/grading"
	"github.com/okian/apnea/internal/domain/types"
)

// DefaultAxisMax is the gauge axis upper bound in seconds.
const DefaultAxisMax = 180

// Build computes the gauge chart for a reading. Each band becomes one
// colored step; the open-ended top band and the needle value are clamped to
// the axis maximum so the chart stays bounded.
func Build(seconds float64, bands []grading.Band, axisMax float64) types.GaugeChart {
	if axisMax <= 0 {
		axisMax = DefaultAxisMax
	}

	steps := make([]types.GaugeStep, 0, len(bands))
	for _, b := range bands {
		if b.Low >= axisMax {
			break
		}
		high := b.High
		if math.IsInf(high, 1) || high > axisMax {
			high = axisMax
		}
		steps = append(steps, types.GaugeStep{
			Low:   b.Low,
			High:  high,
			Color: b.Color,
			Label: b.Label,
		})
	}

	return types.GaugeChart{
		Value:   math.Min(seconds, axisMax),
		AxisMax: axisMax,
		Steps:   steps,
	}
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - The band table is configuration data: categories, boundaries, messages
//   and resource links can all change without touching the engine.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Link is a labeled resource URL attached to a band.
type Link struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
}

// Band configures one classification interval. HighSeconds <= 0 marks the
// open-ended top band.
type Band struct {
	Label           string   `koanf:"label"`
	LowSeconds      float64  `koanf:"low_seconds"`
	HighSeconds     float64  `koanf:"high_seconds"`
	Message         string   `koanf:"message"`
	Recommendations []string `koanf:"recommendations"`
	Links           []Link   `koanf:"links"`
	Color           string   `koanf:"color"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CeilingSeconds is the sanity ceiling; readings above it are flagged
	// out of range but still classified.
	CeilingSeconds float64 `koanf:"ceiling_seconds"`

	// CelebrateFrom is the lowest band index that triggers the celebratory
	// effect in the front-end.
	CelebrateFrom int `koanf:"celebrate_from"`

	// GaugeAxisMax is the gauge axis upper bound in seconds.
	GaugeAxisMax float64 `koanf:"gauge_axis_max"`

	// Bands is the ordered classification table. It must start at 0, be
	// contiguous, and end with an open band (high_seconds <= 0).
	Bands []Band `koanf:"bands"`
}

// New creates a Config with the default signposting content. Context is
// accepted first to satisfy the project-wide convention; it is reserved for
// future use and currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		CeilingSeconds: 600,
		CelebrateFrom:  2,
		GaugeAxisMax:   180,
		Bands:          defaultBands(),
	}
}

// defaultBands returns the built-in NHS signposting table.
func defaultBands() []Band {
	return []Band{
		{
			Label:       "Category 1: Initial Assessment Required",
			LowSeconds:  0,
			HighSeconds: 30,
			Message:     "Your breath-holding capacity suggests that further assessment might be beneficial.",
			Recommendations: []string{
				"Schedule a GP appointment for respiratory assessment",
				"Start with very gentle breathing exercises",
				"Monitor your daily breathing patterns",
			},
			Links: []Link{
				{Label: "NHS - Breathing Exercises for Stress", URL: "https://www.nhs.uk/mental-health/self-help/guides-tools-and-activities/breathing-exercises-for-stress/"},
				{Label: "NHS - When to see a GP", URL: "https://www.nhs.uk/conditions/shortness-of-breath/"},
				{Label: "NHS - Breathing Difficulty", URL: "https://www.nhs.uk/conditions/breathing-difficulty/"},
			},
			Color: "#FF9999",
		},
		{
			Label:       "Category 2: Developing Capacity",
			LowSeconds:  30,
			HighSeconds: 60,
			Message:     "You have a developing breath-holding capacity. Regular practice can help improve this.",
			Recommendations: []string{
				"Practice regular breathing exercises",
				"Consider lifestyle factors that might affect breathing",
				"Monitor progress weekly",
			},
			Links: []Link{
				{Label: "NHS - Physical Activity Guidelines", URL: "https://www.nhs.uk/live-well/exercise/"},
				{Label: "NHS - Fitness Studio Exercise Videos", URL: "https://www.nhs.uk/conditions/nhs-fitness-studio/"},
				{Label: "NHS - Better Health", URL: "https://www.nhs.uk/better-health/"},
			},
			Color: "#99FF99",
		},
		{
			Label:       "Category 3: Good Capacity",
			LowSeconds:  60,
			HighSeconds: 150,
			Message:     "Your breath-holding capacity is good, showing effective breathing control.",
			Recommendations: []string{
				"Maintain current breathing practices",
				"Consider incorporating advanced techniques",
				"Focus on consistency in practice",
			},
			Links: []Link{
				{Label: "NHS - Fitness Tips", URL: "https://www.nhs.uk/live-well/exercise/fitness-tips/"},
				{Label: "NHS - Running Tips", URL: "https://www.nhs.uk/live-well/exercise/running-tips-for-beginners/"},
				{Label: "NHS - Health Benefits of Swimming", URL: "https://www.nhs.uk/live-well/exercise/swimming-for-fitness/"},
			},
			Color: "#99CCFF",
		},
		{
			Label:       "Category 4: Advanced Capacity",
			LowSeconds:  150,
			HighSeconds: 0,
			Message:     "You demonstrate advanced breath-holding capacity. Your level indicates excellent respiratory control.",
			Recommendations: []string{
				"Maintain this excellent level",
				"Consider advanced breathing techniques",
				"Share your expertise with others",
			},
			Links: []Link{
				{Label: "NHS - Exercise Health Benefits", URL: "https://www.nhs.uk/live-well/exercise/exercise-health-benefits/"},
				{Label: "NHS - Get Active Your Way", URL: "https://www.nhs.uk/live-well/exercise/get-active-your-way/"},
				{Label: "NHS - Fitness Studio", URL: "https://www.nhs.uk/conditions/nhs-fitness-studio/"},
			},
			Color: "#FFCC99",
		},
	}
}

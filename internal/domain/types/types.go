// Package types contains common types used across the application
package types

// Link is a labeled resource URL shown alongside a classification result.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Result is the outcome of classifying a single measurement.
type Result struct {
	Category        string   `json:"category"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
	Links           []Link   `json:"links"`
	Color           string   `json:"color"`
	BandIndex       int      `json:"band_index"`
	AchievedTop     bool     `json:"achieved_top"`
	Celebrate       bool     `json:"celebrate"`
	OutOfRange      bool     `json:"out_of_range"`
}

// GaugeStep is one colored segment of the gauge axis.
type GaugeStep struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// GaugeChart is render-ready gauge data for a measurement.
type GaugeChart struct {
	Value   float64     `json:"value"`
	AxisMax float64     `json:"axis_max"`
	Steps   []GaugeStep `json:"steps"`
}

// Assessment bundles everything the front-end needs to render one reading.
type Assessment struct {
	ID      string     `json:"assessment_id"`
	Seconds float64    `json:"seconds"`
	Result  Result     `json:"result"`
	Gauge   GaugeChart `json:"gauge"`
}

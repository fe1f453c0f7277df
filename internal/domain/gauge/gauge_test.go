package gauge_test

import (
	"math"
	"testing"

	gauge "github.com/okian/apnea/internal/domain/gauge"
	grading "github.com/okian/apnea/internal/domain/grading"
	. "github.com/smartystreets/goconvey/convey"
)

func chartBands() []grading.Band {
	return []grading.Band{
		{Label: "Category 1", Low: 0, High: 30, Color: "#FF9999"},
		{Label: "Category 2", Low: 30, High: 60, Color: "#99FF99"},
		{Label: "Category 3", Low: 60, High: 150, Color: "#99CCFF"},
		{Label: "Category 4", Low: 150, High: math.Inf(1), Color: "#FFCC99"},
	}
}

func TestBuild(t *testing.T) {
	Convey("Given the signposting band table", t, func() {
		bands := chartBands()

		Convey("When building a chart for a typical reading", func() {
			chart := gauge.Build(45, bands, 180)

			Convey("Then the needle shows the reading", func() {
				So(chart.Value, ShouldEqual, 45)
				So(chart.AxisMax, ShouldEqual, 180)
			})

			Convey("And each band becomes one colored step", func() {
				So(chart.Steps, ShouldHaveLength, 4)
				So(chart.Steps[0].Low, ShouldEqual, 0)
				So(chart.Steps[0].High, ShouldEqual, 30)
				So(chart.Steps[0].Color, ShouldEqual, "#FF9999")
				So(chart.Steps[2].Label, ShouldEqual, "Category 3")
			})

			Convey("And the open-ended top band is clamped to the axis", func() {
				top := chart.Steps[len(chart.Steps)-1]
				So(top.Low, ShouldEqual, 150)
				So(top.High, ShouldEqual, 180)
			})
		})

		Convey("When the reading exceeds the axis maximum", func() {
			chart := gauge.Build(400, bands, 180)

			Convey("Then the needle is clamped to the axis", func() {
				So(chart.Value, ShouldEqual, 180)
			})
		})

		Convey("When the axis maximum is not configured", func() {
			chart := gauge.Build(10, bands, 0)

			Convey("Then the default axis is used", func() {
				So(chart.AxisMax, ShouldEqual, gauge.DefaultAxisMax)
			})
		})

		Convey("When a band starts beyond the axis maximum", func() {
			chart := gauge.Build(10, bands, 100)

			Convey("Then it is dropped and the previous step is clamped", func() {
				So(chart.Steps, ShouldHaveLength, 3)
				So(chart.Steps[2].High, ShouldEqual, 100)
			})
		})
	})
}

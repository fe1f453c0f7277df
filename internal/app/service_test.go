package service_test

import (
	"context"
	"math"
	"testing"

	app "github.com/okian/apnea/internal/app"
	grading "github.com/okian/apnea/internal/domain/grading"
	"github.com/okian/apnea/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func serviceBands() []grading.Band {
	return []grading.Band{
		{Label: "Category 1: Initial Assessment Required", Low: 0, High: 30, Color: "#FF9999"},
		{Label: "Category 2: Developing Capacity", Low: 30, High: 60, Color: "#99FF99"},
		{Label: "Category 3: Good Capacity", Low: 60, High: 150, Color: "#99CCFF"},
		{Label: "Category 4: Advanced Capacity", Low: 150, High: math.Inf(1), Color: "#FFCC99"},
	}
}

func newStartedService() *app.Service {
	_ = logger.Init()
	svc := app.New(
		app.WithLogger(logger.Get()),
		app.WithBands(serviceBands()),
		app.WithCeiling(600),
		app.WithGaugeAxisMax(180),
	)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service without a band table", t, func() {
		_ = logger.Init()
		svc := app.New(app.WithLogger(logger.Get()))

		Convey("When starting", func() {
			err := svc.Start(context.Background())

			Convey("Then startup fails on the invalid table", func() {
				So(err, ShouldWrap, grading.ErrInvalidBands)
			})
		})
	})

	Convey("Given a configured service", t, func() {
		svc := newStartedService()

		Convey("When starting again", func() {
			err := svc.Start(context.Background())

			Convey("Then the second start is a no-op", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When stopping", func() {
			svc.Stop()

			Convey("Then stats report the service as stopped", func() {
				So(svc.GetStats()["started"], ShouldBeFalse)
			})
		})
	})
}

func TestService_Classify(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newStartedService()
		defer svc.Stop()

		Convey("When classifying a valid reading", func() {
			assessment, err := svc.Classify(context.Background(), 75)

			Convey("Then a complete assessment is returned", func() {
				So(err, ShouldBeNil)
				So(assessment.ID, ShouldNotBeEmpty)
				So(assessment.Seconds, ShouldEqual, 75)
				So(assessment.Result.Category, ShouldEqual, "Category 3: Good Capacity")
				So(assessment.Result.AchievedTop, ShouldBeFalse)
				So(assessment.Result.Celebrate, ShouldBeTrue)
			})

			Convey("And the gauge reflects the reading and the table", func() {
				So(assessment.Gauge.Value, ShouldEqual, 75)
				So(assessment.Gauge.AxisMax, ShouldEqual, 180)
				So(assessment.Gauge.Steps, ShouldHaveLength, 4)
			})

			Convey("And every assessment gets a distinct id", func() {
				second, err := svc.Classify(context.Background(), 75)
				So(err, ShouldBeNil)
				So(second.ID, ShouldNotEqual, assessment.ID)
			})
		})

		Convey("When classifying an invalid reading", func() {
			_, err := svc.Classify(context.Background(), -5)

			Convey("Then the engine error propagates unchanged", func() {
				So(err, ShouldWrap, grading.ErrInvalidMeasurement)
			})
		})

		Convey("When readings accumulate", func() {
			_, _ = svc.Classify(context.Background(), 10)
			_, _ = svc.Classify(context.Background(), 200)
			_, _ = svc.Classify(context.Background(), 700)
			_, _ = svc.Classify(context.Background(), math.NaN())

			Convey("Then stats reflect the traffic", func() {
				stats := svc.GetStats()
				So(stats["assessments"], ShouldEqual, 3)
				So(stats["invalidInput"], ShouldEqual, 1)
				So(stats["outOfRange"], ShouldEqual, 1)
				byCategory, ok := stats["byCategory"].(map[string]int)
				So(ok, ShouldBeTrue)
				So(byCategory["Category 4: Advanced Capacity"], ShouldEqual, 2)
			})
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := app.New(app.WithBands(serviceBands()))

		Convey("When classifying", func() {
			_, err := svc.Classify(context.Background(), 42)

			Convey("Then the call is rejected", func() {
				So(err, ShouldWrap, app.ErrNotStarted)
			})
		})
	})
}

func TestService_Bands(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newStartedService()
		defer svc.Stop()

		Convey("When reading the band table", func() {
			bands := svc.Bands(context.Background())

			Convey("Then it matches the configured table in order", func() {
				So(bands, ShouldHaveLength, 4)
				So(bands[0].Label, ShouldContainSubstring, "Category 1")
				So(bands[3].Open(), ShouldBeTrue)
			})

			Convey("And mutating the copy does not affect the service", func() {
				bands[0].Label = "mutated"
				So(svc.Bands(context.Background())[0].Label, ShouldContainSubstring, "Category 1")
			})
		})
	})
}

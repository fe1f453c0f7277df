package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/apnea/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given no overrides", t, func() {
		os.Unsetenv("APNEA_CONFIG")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.Bands, ShouldHaveLength, 4)
			})
		})
	})

	Convey("Given environment overrides", t, func() {
		So(os.Setenv("APNEA_ADDR", ":9999"), ShouldBeNil)
		So(os.Setenv("APNEA_LOG_LEVEL", "debug"), ShouldBeNil)
		So(os.Setenv("APNEA_CEILING_SECONDS", "300"), ShouldBeNil)
		defer func() {
			os.Unsetenv("APNEA_ADDR")
			os.Unsetenv("APNEA_LOG_LEVEL")
			os.Unsetenv("APNEA_CEILING_SECONDS")
		}()

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9999")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.CeilingSeconds, ShouldEqual, 300)
			})
		})
	})

	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "apnea.yaml")
		yaml := `
addr: ":7070"
gauge_axis_max: 240
celebrate_from: 1
bands:
  - label: "Needs Work"
    low_seconds: 0
    high_seconds: 45
    message: "Keep practicing."
    color: "#FF9999"
  - label: "Strong"
    low_seconds: 45
    high_seconds: 0
    message: "Well done."
    color: "#99CCFF"
`
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		So(os.Setenv("APNEA_CONFIG", path), ShouldBeNil)
		defer os.Unsetenv("APNEA_CONFIG")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then the file replaces the default table", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.GaugeAxisMax, ShouldEqual, 240)
				So(cfg.Bands, ShouldHaveLength, 2)
				So(cfg.Bands[1].Label, ShouldEqual, "Strong")
			})
		})
	})

	Convey("Given an invalid band table in the file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "apnea.yaml")
		yaml := `
bands:
  - label: "Gapped"
    low_seconds: 0
    high_seconds: 30
    color: "#FF9999"
  - label: "Top"
    low_seconds: 40
    high_seconds: 0
    color: "#99CCFF"
`
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		So(os.Setenv("APNEA_CONFIG", path), ShouldBeNil)
		defer os.Unsetenv("APNEA_CONFIG")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then loading fails with an invalid config error", func() {
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})

	Convey("Given a missing config file path", t, func() {
		So(os.Setenv("APNEA_CONFIG", "/nonexistent/apnea.yaml"), ShouldBeNil)
		defer os.Unsetenv("APNEA_CONFIG")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then loading fails with a load error", func() {
				So(err, ShouldWrap, config.ErrLoadConfig)
			})
		})
	})
}

package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/xiaozhao/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.LogLevel, ShouldEqual, "info")
		So(cfg.DomesticTiers, ShouldHaveLength, 8)
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XIAOZHAO_LOG_LEVEL", "debug")
	t.Setenv("XIAOZHAO_WORKER_COUNT", "4")
	t.Setenv("XIAOZHAO_HISTORY_SIZE", "10")

	Convey("Given env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.LogLevel, ShouldEqual, "debug")
		So(cfg.WorkerCount, ShouldEqual, 4)
		So(cfg.HistorySize, ShouldEqual, 10)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	yaml := `
log_level: warn
percent_precision: 2
cohorts:
  - min_year: 2000
    label: "00后"
  - min_year: 1990
    label: "90后"
cohort_fallback: "更早"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XIAOZHAO_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.LogLevel, ShouldEqual, "warn")
		So(cfg.PercentPrecision, ShouldEqual, 2)
		So(cfg.Cohorts, ShouldHaveLength, 2)
		So(cfg.CohortFallback, ShouldEqual, "更早")

		Convey("And untouched tables keep their defaults", func() {
			So(cfg.DomesticTiers, ShouldHaveLength, 8)
		})
	})
}

func TestLoadEnvOutranksFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XIAOZHAO_CONFIG", path)
	t.Setenv("XIAOZHAO_LOG_LEVEL", "error")

	Convey("Given both a file and an env override", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.LogLevel, ShouldEqual, "error")
	})
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("XIAOZHAO_WORKER_COUNT", "0")

	Convey("Given an invalid worker count", t, func() {
		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XIAOZHAO_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	Convey("Given a config path that does not exist", t, func() {
		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}

package config_test

import (
	"testing"

	"github.com/okian/xiaozhao/internal/config"
	"github.com/okian/xiaozhao/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := config.New()

		Convey("Then the authoritative tables are loaded", func() {
			So(cfg.OverseasGate, ShouldEqual, "海外院校")
			So(cfg.UnclassifiedTier, ShouldEqual, "其他")
			So(cfg.DomesticTiers, ShouldHaveLength, 8)
			So(cfg.OverseasTiers, ShouldHaveLength, 2)
			So(cfg.Cohorts, ShouldHaveLength, 4)
			So(cfg.KeySchools, ShouldContain, "清华大学")
			So(cfg.ProvinceAliases["湖南长沙"], ShouldEqual, "湖南")
		})

		Convey("Then process knobs carry sane defaults", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.WorkerCount, ShouldBeGreaterThan, 0)
			So(cfg.HistorySize, ShouldEqual, 50)
			So(cfg.PercentPrecision, ShouldEqual, 1)
		})
	})
}

func TestOptionConversion(t *testing.T) {
	Convey("Given a config with a customized marker table", t, func() {
		cfg := config.New()
		cfg.DomesticTiers = []config.TierRule{
			{Precedence: 2, Marker: "双一流", Tier: "双一流"},
			{Precedence: 1, Marker: "省属", Tier: "省属"},
		}
		cfg.UnclassifiedTier = "未分类"

		Convey("When building a classifier from it", func() {
			c := tier.New(cfg.TierOptions()...)

			So(c.Classify("双一流,省属"), ShouldEqual, "双一流")
			So(c.Classify("民办"), ShouldEqual, "未分类")
		})
	})
}

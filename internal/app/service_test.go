package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	service "github.com/okian/xiaozhao/internal/app"
	"github.com/okian/xiaozhao/internal/domain/model"
	"github.com/okian/xiaozhao/internal/domain/schema"
	"github.com/okian/xiaozhao/internal/domain/stats"
	"github.com/okian/xiaozhao/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// sampleRow returns a complete valid data row; overrides replace cells.
func sampleRow(seq string, overrides map[string]string) model.Row {
	row := model.Row{
		model.ColSeq:            seq,
		model.ColName:           "张三",
		model.ColGender:         "男",
		model.ColAge:            "24",
		model.ColBirthDate:      "2001-06-15",
		model.ColPolitical:      "中共党员",
		model.ColOrigin:         "湖南长沙",
		model.ColStatus:         "已签两方",
		model.ColPosition:       "车辆工程师",
		model.ColDegree:         "硕士",
		model.ColMajor:          "车辆工程",
		model.ColMajorType:      "工学",
		model.ColInstitution:    "中南大学",
		model.ColInstitutionCat: "985,211",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestValidateAndEnrich(t *testing.T) {
	Convey("Given a service and a mixed batch", t, func() {
		svc := service.New(service.WithWorkerCount(2))
		rows := []model.Row{
			sampleRow("1", nil),
			sampleRow("2", map[string]string{model.ColAge: ""}),
			sampleRow("3", map[string]string{model.ColOrigin: "江苏南京"}),
		}

		Convey("When validating and enriching", func() {
			records, rowErrs, err := svc.ValidateAndEnrich(context.Background(), rows)

			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 2)

			Convey("Then the bad row is reported, not fatal", func() {
				So(rowErrs, ShouldHaveLength, 1)
				So(rowErrs[0].Row, ShouldEqual, 2)
				So(rowErrs[0].Kind, ShouldEqual, schema.KindMissing)
			})

			Convey("Then survivors carry the derived fields", func() {
				So(records[0].Tier, ShouldEqual, "985")
				So(records[0].Province, ShouldEqual, "湖南")
				So(records[0].Cohort, ShouldEqual, "00后")
				So(records[1].Province, ShouldEqual, "江苏")
			})
		})
	})
}

func TestValidateAndEnrichEmptyBatch(t *testing.T) {
	Convey("Given a batch where every row is invalid", t, func() {
		svc := service.New()
		rows := []model.Row{
			sampleRow("1", map[string]string{model.ColName: ""}),
			sampleRow("2", map[string]string{model.ColAge: "abc"}),
		}

		Convey("Then the batch fails as a whole", func() {
			_, rowErrs, err := svc.ValidateAndEnrich(context.Background(), rows)

			So(errors.Is(err, schema.ErrEmptyBatch), ShouldBeTrue)
			So(service.IsEmptyBatch(err), ShouldBeTrue)
			So(rowErrs, ShouldHaveLength, 2)
		})
	})
}

func TestProcess(t *testing.T) {
	Convey("Given a service processing a valid batch", t, func() {
		svc := service.New(service.WithHistorySize(3))
		rows := []model.Row{
			sampleRow("1", nil),
			sampleRow("2", map[string]string{
				model.ColGender:    "女",
				model.ColBirthDate: "1996-03-02",
				model.ColStatus:    "已签三方",
			}),
		}

		snap, rowErrs, err := svc.Process(context.Background(), rows, "九月批次")

		So(err, ShouldBeNil)
		So(rowErrs, ShouldBeEmpty)
		So(snap.ID, ShouldNotBeEmpty)
		So(snap.Description, ShouldEqual, "九月批次")
		So(snap.RecordCount, ShouldEqual, 2)

		Convey("Then the bundle reflects the batch", func() {
			So(snap.Bundle.Total, ShouldEqual, 2)
			So(snap.Bundle.Bilateral, ShouldEqual, 1)
			So(snap.Bundle.Trilateral, ShouldEqual, 1)
			So(snap.Bundle.Dimensions[stats.DimensionGender], ShouldHaveLength, 2)
		})

		Convey("Then the snapshot is retrievable", func() {
			latest, err := svc.Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest.ID, ShouldEqual, snap.ID)

			byID, err := svc.Snapshot(context.Background(), snap.ID)
			So(err, ShouldBeNil)
			So(byID.RecordCount, ShouldEqual, 2)

			So(svc.History(context.Background()), ShouldHaveLength, 1)
		})

		Convey("And Clear drops the history", func() {
			svc.Clear(context.Background())
			So(svc.History(context.Background()), ShouldBeEmpty)
		})
	})
}

func TestAggregateOverride(t *testing.T) {
	Convey("Given enriched records and a per-call aggregator shape", t, func() {
		svc := service.New()
		records, _, err := svc.ValidateAndEnrich(context.Background(), []model.Row{
			sampleRow("1", nil),
			sampleRow("2", map[string]string{model.ColGender: "女"}),
			sampleRow("3", map[string]string{model.ColGender: "女"}),
		})
		So(err, ShouldBeNil)

		Convey("When aggregating with zero-decimal percentages", func() {
			bundle, err := svc.Aggregate(context.Background(), records, stats.WithPrecision(0))

			So(err, ShouldBeNil)
			genders := bundle.Dimensions[stats.DimensionGender]
			So(genders[0].Name, ShouldEqual, "女")
			So(genders[0].Percentage, ShouldEqual, 67)
			So(genders[1].Percentage, ShouldEqual, 33)
		})
	})
}

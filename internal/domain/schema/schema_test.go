package schema_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/okian/xiaozhao/internal/domain/model"
	"github.com/okian/xiaozhao/internal/domain/schema"
	. "github.com/smartystreets/goconvey/convey"
)

// validRow builds a complete template row for tests.
func validRow(seq int) model.Row {
	return model.Row{
		model.ColSeq:            strconv.Itoa(seq),
		model.ColName:           "张三",
		model.ColGender:         "男",
		model.ColAge:            "24",
		model.ColBirthDate:      "2000-06-15",
		model.ColPolitical:      "共青团员",
		model.ColOrigin:         "湖南-长沙",
		model.ColStatus:         "已签约-两方协议",
		model.ColPosition:       "机械工程师",
		model.ColDegree:         "硕士研究生",
		model.ColMajor:          "机械工程",
		model.ColMajorType:      "工科",
		model.ColInstitution:    "中南大学",
		model.ColInstitutionCat: "985",
	}
}

func TestValidate(t *testing.T) {
	Convey("Given a batch of template rows", t, func() {
		Convey("When every row is complete", func() {
			records, rowErrs, err := schema.Validate([]model.Row{validRow(1), validRow(2)})

			So(err, ShouldBeNil)
			So(rowErrs, ShouldBeEmpty)
			So(records, ShouldHaveLength, 2)
			So(records[0].Row, ShouldEqual, 1)
			So(records[0].Seq, ShouldEqual, 1)
			So(records[0].Age, ShouldEqual, 24)
			So(records[0].BirthYear, ShouldEqual, 2000)
			So(records[1].Row, ShouldEqual, 2)
		})

		Convey("When row 2 is missing the age field", func() {
			rows := []model.Row{validRow(1), validRow(2), validRow(3)}
			delete(rows[1], model.ColAge)

			records, rowErrs, err := schema.Validate(rows)

			Convey("Then only row 2 is rejected", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 2)
				So(records[0].Seq, ShouldEqual, 1)
				So(records[1].Seq, ShouldEqual, 3)
			})

			Convey("And the report names the field at the row index", func() {
				So(rowErrs, ShouldHaveLength, 1)
				So(rowErrs[0].Row, ShouldEqual, 2)
				So(rowErrs[0].Kind, ShouldEqual, schema.KindMissing)
				So(rowErrs[0].Field, ShouldEqual, model.ColAge)
			})
		})

		Convey("When a row carries a non-numeric age", func() {
			rows := []model.Row{validRow(1)}
			rows[0][model.ColAge] = "二十四"

			_, rowErrs, err := schema.Validate(rows)

			So(errors.Is(err, schema.ErrEmptyBatch), ShouldBeTrue)
			So(rowErrs, ShouldHaveLength, 1)
			So(rowErrs[0].Kind, ShouldEqual, schema.KindMalformed)
			So(rowErrs[0].Field, ShouldEqual, model.ColAge)
		})

		Convey("When a row carries an unparseable birth date", func() {
			rows := []model.Row{validRow(1), validRow(2)}
			rows[1][model.ColBirthDate] = "不详"

			records, rowErrs, err := schema.Validate(rows)

			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(rowErrs, ShouldHaveLength, 1)
			So(rowErrs[0].Row, ShouldEqual, 2)
			So(rowErrs[0].Kind, ShouldEqual, schema.KindMalformed)
			So(rowErrs[0].Field, ShouldEqual, model.ColBirthDate)
		})

		Convey("When the header set is missing a required column", func() {
			rows := []model.Row{validRow(1), validRow(2)}
			for _, r := range rows {
				delete(r, model.ColInstitutionCat)
			}

			_, _, err := schema.Validate(rows)

			So(errors.Is(err, schema.ErrSchema), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, model.ColInstitutionCat)
		})

		Convey("When the batch is empty", func() {
			_, _, err := schema.Validate(nil)
			So(errors.Is(err, schema.ErrEmptyBatch), ShouldBeTrue)
		})

		Convey("When no row survives validation", func() {
			rows := []model.Row{validRow(1), validRow(2)}
			rows[0][model.ColAge] = "x"
			rows[1][model.ColBirthDate] = "x"

			_, rowErrs, err := schema.Validate(rows)

			So(errors.Is(err, schema.ErrEmptyBatch), ShouldBeTrue)
			So(rowErrs, ShouldHaveLength, 2)
		})
	})
}

package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/xiaozhao/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBucketJSON(t *testing.T) {
	Convey("Given a frequency bucket", t, func() {
		b := types.Bucket{Name: "硕士研究生", Count: 42, Percentage: 52.5}

		Convey("When marshaled for dashboard consumers", func() {
			data, err := json.Marshal(b)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"name":"硕士研究生","count":42,"percentage":52.5}`)
		})
	})
}

package stats

import (
	"strconv"
	"strings"

	"github.com/okian/xiaozhao/internal/domain/types"
)

// Dimension names one axis of aggregation.
type Dimension string

// Supported dimensions. The default configuration computes the seven
// dashboard dimensions; political affiliation and major type are available
// for report consumers that need them.
const (
	DimensionPosition  Dimension = "position"
	DimensionDegree    Dimension = "degree"
	DimensionTier      Dimension = "institution_tier"
	DimensionGender    Dimension = "gender"
	DimensionProvince  Dimension = "province"
	DimensionCohort    Dimension = "cohort"
	DimensionStatus    Dimension = "status"
	DimensionPolitical Dimension = "political"
	DimensionMajorType Dimension = "major_type"
)

// DefaultDimensions returns the seven dimensions computed by default.
func DefaultDimensions() []Dimension {
	return []Dimension{
		DimensionPosition,
		DimensionDegree,
		DimensionTier,
		DimensionGender,
		DimensionProvince,
		DimensionCohort,
		DimensionStatus,
	}
}

// Bundle is the immutable statistics snapshot for one processed batch.
// It is never mutated after construction and is safe to share read-only
// across consumers.
type Bundle struct {
	Total      int `json:"total_count"`
	Bilateral  int `json:"bilateral_count"`
	Trilateral int `json:"trilateral_count"`

	// Dimensions maps each computed dimension to its frequency table,
	// sorted by count descending with lexical tie-break.
	Dimensions map[Dimension][]types.Bucket `json:"dimensions"`

	// PositionByDegree cross-tabulates position against degree.
	PositionByDegree map[string]map[string]int `json:"position_by_degree,omitempty"`

	// KeyInstitutions counts records from the named key institutions, plus
	// the C9 remainder after excluding the individually listed members.
	KeyInstitutions map[string]int `json:"key_institutions,omitempty"`

	// KeyInstitutionSummary is the narrative line for the report generator.
	KeyInstitutionSummary string `json:"key_institution_summary,omitempty"`

	// BirthYearSeries counts records per birth year, ascending.
	BirthYearSeries []types.YearCount `json:"birth_year_series,omitempty"`
}

// c9SummaryLabel is how the C9 remainder reads in the narrative.
const c9SummaryLabel = "C9联盟（除清华北大外）"

// summarize renders the key-institution narrative in the fixed report
// order, skipping institutions with no hires.
func summarize(counts map[string]int, order []string, c9Label string) string {
	var parts []string
	for _, name := range order {
		n := counts[name]
		if n <= 0 {
			continue
		}
		label := name
		if name == c9Label {
			label = c9SummaryLabel
		}
		parts = append(parts, label+strconv.Itoa(n)+"人")
	}
	if len(parts) == 0 {
		return "暂无重点院校引进数据。"
	}
	return "引进重点院校人员情况如下：" + strings.Join(parts, "、") + "。"
}

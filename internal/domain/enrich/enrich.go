// Package enrich computes the derived analytical fields of a record.
//
// Enrichment is record-local and deterministic: identical input always
// yields identical output, with no hidden state and no wall-clock
// dependency. Cohort boundaries, the overseas marker and the province alias
// table are injected at construction.
package enrich

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/xiaozhao/internal/domain/model"
	"github.com/okian/xiaozhao/internal/domain/tier"
)

// CohortRule maps a minimum birth year to a bucket label. Rules are scanned
// by descending MinYear; the first rule at or below the year wins.
type CohortRule struct {
	MinYear int
	Label   string
}

// DefaultCohorts returns the decade-bucket table from the authoritative
// configuration: 2005+ 05后, 2000-2004 00后, 1995-1999 95后, 1990-1994 90后.
func DefaultCohorts() []CohortRule {
	return []CohortRule{
		{MinYear: 2005, Label: "05后"},
		{MinYear: 2000, Label: "00后"},
		{MinYear: 1995, Label: "95后"},
		{MinYear: 1990, Label: "90后"},
	}
}

// DefaultCohortFallback buckets birth years before the earliest rule.
const DefaultCohortFallback = "其他"

// DefaultUnknownProvince labels records whose origin cell is empty.
const DefaultUnknownProvince = "未知"

// DefaultProvinceAliases returns the origin normalization table mapping
// known origin spellings to province names.
func DefaultProvinceAliases() map[string]string {
	return map[string]string{
		"湖南长沙": "湖南",
		"湖南":   "湖南",
		"北京":   "北京",
		"上海":   "上海",
		"广东":   "广东",
		"江苏":   "江苏",
		"浙江":   "浙江",
		"山东":   "山东",
		"河南":   "河南",
		"四川":   "四川",
		"湖北":   "湖北",
		"河北":   "河北",
		"安徽":   "安徽",
		"福建":   "福建",
		"江西":   "江西",
		"辽宁":   "辽宁",
		"陕西":   "陕西",
		"山西":   "山西",
		"重庆":   "重庆",
		"天津":   "天津",
		"云南":   "云南",
		"贵州":   "贵州",
		"广西":   "广西",
		"海南":   "海南",
		"甘肃":   "甘肃",
		"青海":   "青海",
		"宁夏":   "宁夏",
		"新疆":   "新疆",
		"西藏":   "西藏",
		"内蒙古":  "内蒙古",
		"黑龙江":  "黑龙江",
		"吉林":   "吉林",
		"未知地区": "其他",
	}
}

// Enricher derives the analytical fields of a RawRecord.
type Enricher struct {
	classifier      *tier.Classifier
	cohorts         []CohortRule
	cohortFallback  string
	unknownProvince string
	aliases         map[string]string
	aliasKeys       []string // alias keys ordered for deterministic scans
}

// New creates an Enricher with the default tables, adjusted by options.
func New(opts ...Option) *Enricher {
	e := &Enricher{
		classifier:      tier.New(),
		cohorts:         DefaultCohorts(),
		cohortFallback:  DefaultCohortFallback,
		unknownProvince: DefaultUnknownProvince,
		aliases:         DefaultProvinceAliases(),
	}

	for _, opt := range opts {
		opt(e)
	}

	sort.SliceStable(e.cohorts, func(i, j int) bool {
		return e.cohorts[i].MinYear > e.cohorts[j].MinYear
	})

	// Longest alias first so the contains scan prefers the most specific
	// spelling; lexical order breaks length ties.
	e.aliasKeys = make([]string, 0, len(e.aliases))
	for k := range e.aliases {
		e.aliasKeys = append(e.aliasKeys, k)
	}
	sort.Slice(e.aliasKeys, func(i, j int) bool {
		if len(e.aliasKeys[i]) != len(e.aliasKeys[j]) {
			return len(e.aliasKeys[i]) > len(e.aliasKeys[j])
		}
		return e.aliasKeys[i] < e.aliasKeys[j]
	})

	return e
}

// Enrich derives the analytical fields for one record.
//
// The error path is defensive: records that passed schema validation carry a
// cached birth year and cannot fail here. A failure is reported as
// ErrDerivation wrapped with the offending column label.
func (e *Enricher) Enrich(r model.RawRecord) (model.EnrichedRecord, error) {
	year := r.BirthYear
	if year == 0 {
		var err error
		year, err = model.BirthYear(r.BirthDate)
		if err != nil {
			return model.EnrichedRecord{}, fmt.Errorf("%w: %s: %v", ErrDerivation, model.ColBirthDate, err)
		}
	}

	return model.EnrichedRecord{
		RawRecord: r,
		Overseas:  e.classifier.Overseas(r.InstitutionCat),
		Tier:      e.classifier.Classify(r.InstitutionCat),
		Province:  e.Province(r.Origin),
		Cohort:    e.Cohort(year),
	}, nil
}

// Cohort buckets a birth year using the configured boundary table.
func (e *Enricher) Cohort(year int) string {
	for _, c := range e.cohorts {
		if year >= c.MinYear {
			return c.Label
		}
	}
	return e.cohortFallback
}

// Province normalizes an origin cell to a province name. Resolution order:
// exact alias match, then the part before the first "-" separator (alias
// mapped when known), then a contains scan over the alias table. Origins
// without a separator that match nothing are returned whole.
func (e *Enricher) Province(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return e.unknownProvince
	}

	if p, ok := e.aliases[origin]; ok {
		return p
	}

	if i := strings.Index(origin, "-"); i >= 0 {
		part := origin[:i]
		if p, ok := e.aliases[part]; ok {
			return p
		}
		return part
	}

	for _, k := range e.aliasKeys {
		if strings.Contains(origin, k) {
			return e.aliases[k]
		}
	}

	return origin
}

// Package stats folds enriched record batches into the multi-dimensional
// statistics consumed by the dashboard and the report generator.
//
// Aggregation is a single pass: per-dimension tallies, the position-by-degree
// cross-tabulation, key-institution counts and the birth-year series all
// accumulate in the same traversal. Accumulation is commutative and the
// Tally merge is associative, so partial tallies from parallel shards can be
// combined in any order with a bit-identical result.
package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/xiaozhao/internal/domain/model"
	"github.com/okian/xiaozhao/internal/domain/types"
)

// Default aggregation configuration constants.
const (
	defaultPrecision    = 1 // percentage decimal places
	defaultC9Tier       = "C9联盟"
	defaultBilateral    = "两方"
	defaultTrilateral   = "三方"
	cancelCheckInterval = 4096 // rows between context checks
)

// DefaultKeySchools returns the named key institutions in report order.
func DefaultKeySchools() []string {
	return []string{
		"清华大学",
		"北京大学",
		"同济大学",
		"中南大学",
		"北京交通大学",
		"西南交通大学",
		"兰州交通大学",
		"大连交通大学",
		"华东交通大学",
	}
}

// defaultC9Exclusions are the C9 members reported individually; the C9
// remainder excludes them to avoid double counting.
func defaultC9Exclusions() []string {
	return []string{"清华大学", "北京大学"}
}

// Aggregator folds enriched records into a Bundle according to its
// dimension configuration.
type Aggregator struct {
	dims             map[Dimension]bool
	dimOrder         []Dimension
	precision        int
	crossTabs        bool
	series           bool
	keySchools       []string
	c9Tier           string
	c9Exclusions     []string
	bilateralMarker  string
	trilateralMarker string
}

// New creates an Aggregator computing the default seven dimensions, adjusted
// by options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		precision:        defaultPrecision,
		crossTabs:        true,
		series:           true,
		keySchools:       DefaultKeySchools(),
		c9Tier:           defaultC9Tier,
		c9Exclusions:     defaultC9Exclusions(),
		bilateralMarker:  defaultBilateral,
		trilateralMarker: defaultTrilateral,
	}
	a.setDimensions(DefaultDimensions())

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Aggregator) setDimensions(dims []Dimension) {
	a.dims = make(map[Dimension]bool, len(dims))
	a.dimOrder = a.dimOrder[:0]
	for _, d := range dims {
		if !a.dims[d] {
			a.dims[d] = true
			a.dimOrder = append(a.dimOrder, d)
		}
	}
}

// Aggregate folds a batch into a Bundle. Row order never affects the
// output. An empty batch yields an all-zero Bundle, not an error; the only
// error path is context cancellation on very large batches.
func (a *Aggregator) Aggregate(ctx context.Context, records []model.EnrichedRecord) (*Bundle, error) {
	t := a.NewTally()
	for i := range records {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, fmt.Errorf("aggregation aborted: %w", ctx.Err())
		}
		t.Add(records[i])
	}
	return t.Bundle(), nil
}

// Tally is a partial accumulation of one or more record shards. Zero-value
// tallies are not usable; obtain one from Aggregator.NewTally.
type Tally struct {
	agg *Aggregator

	total      int
	bilateral  int
	trilateral int
	dims       map[Dimension]map[string]int
	cross      map[string]map[string]int
	schools    map[string]int
	c9         int
	years      map[int]int
}

// NewTally returns an empty accumulator bound to this aggregator's
// configuration.
func (a *Aggregator) NewTally() *Tally {
	t := &Tally{
		agg:     a,
		dims:    make(map[Dimension]map[string]int, len(a.dimOrder)),
		schools: make(map[string]int, len(a.keySchools)),
	}
	for _, d := range a.dimOrder {
		t.dims[d] = make(map[string]int)
	}
	if a.crossTabs {
		t.cross = make(map[string]map[string]int)
	}
	if a.series {
		t.years = make(map[int]int)
	}
	return t
}

// Add folds one record into the tally.
func (t *Tally) Add(rec model.EnrichedRecord) {
	t.total++

	if strings.Contains(rec.Status, t.agg.bilateralMarker) {
		t.bilateral++
	}
	if strings.Contains(rec.Status, t.agg.trilateralMarker) {
		t.trilateral++
	}

	for d, counts := range t.dims {
		counts[dimensionValue(d, rec)]++
	}

	if t.cross != nil {
		byDegree := t.cross[rec.Position]
		if byDegree == nil {
			byDegree = make(map[string]int)
			t.cross[rec.Position] = byDegree
		}
		byDegree[rec.Degree]++
	}

	for _, school := range t.agg.keySchools {
		if rec.Institution == school {
			t.schools[school]++
			break
		}
	}
	if rec.Tier == t.agg.c9Tier {
		t.c9++
	}

	if t.years != nil {
		t.years[rec.BirthYear]++
	}
}

// Merge sums another tally into this one. Both tallies must come from
// aggregators with identical configuration; merge order is irrelevant.
func (t *Tally) Merge(o *Tally) {
	t.total += o.total
	t.bilateral += o.bilateral
	t.trilateral += o.trilateral
	t.c9 += o.c9
	for d, counts := range o.dims {
		dst := t.dims[d]
		for name, n := range counts {
			dst[name] += n
		}
	}
	if t.cross != nil && o.cross != nil {
		for pos, byDegree := range o.cross {
			dst := t.cross[pos]
			if dst == nil {
				dst = make(map[string]int)
				t.cross[pos] = dst
			}
			for degree, n := range byDegree {
				dst[degree] += n
			}
		}
	}
	for school, n := range o.schools {
		t.schools[school] += n
	}
	if t.years != nil && o.years != nil {
		for year, n := range o.years {
			t.years[year] += n
		}
	}
}

// Bundle finalizes the tally into an immutable statistics snapshot.
func (t *Tally) Bundle() *Bundle {
	a := t.agg
	b := &Bundle{
		Total:      t.total,
		Bilateral:  t.bilateral,
		Trilateral: t.trilateral,
		Dimensions: make(map[Dimension][]types.Bucket, len(a.dimOrder)),
	}

	for _, d := range a.dimOrder {
		b.Dimensions[d] = a.buckets(t.dims[d], t.total)
	}

	if t.cross != nil {
		b.PositionByDegree = make(map[string]map[string]int, len(t.cross))
		for pos, byDegree := range t.cross {
			dst := make(map[string]int, len(byDegree))
			for degree, n := range byDegree {
				dst[degree] = n
			}
			b.PositionByDegree[pos] = dst
		}
	}

	keyCounts := make(map[string]int, len(a.keySchools)+1)
	for _, school := range a.keySchools {
		keyCounts[school] = t.schools[school]
	}
	c9Rest := t.c9
	for _, name := range a.c9Exclusions {
		c9Rest -= t.schools[name]
	}
	keyCounts[a.c9Tier] = c9Rest
	b.KeyInstitutions = keyCounts
	b.KeyInstitutionSummary = summarize(keyCounts, a.summaryOrder(), a.c9Tier)

	if t.years != nil {
		b.BirthYearSeries = make([]types.YearCount, 0, len(t.years))
		for year, n := range t.years {
			b.BirthYearSeries = append(b.BirthYearSeries, types.YearCount{Year: year, Count: n})
		}
		sort.Slice(b.BirthYearSeries, func(i, j int) bool {
			return b.BirthYearSeries[i].Year < b.BirthYearSeries[j].Year
		})
	}

	return b
}

// summaryOrder interleaves the C9 remainder after the individually excluded
// members, matching the report layout.
func (a *Aggregator) summaryOrder() []string {
	order := make([]string, 0, len(a.keySchools)+1)
	excluded := make(map[string]bool, len(a.c9Exclusions))
	for _, name := range a.c9Exclusions {
		excluded[name] = true
	}
	inserted := false
	for _, school := range a.keySchools {
		order = append(order, school)
		if excluded[school] {
			delete(excluded, school)
			if len(excluded) == 0 && !inserted {
				order = append(order, a.c9Tier)
				inserted = true
			}
		}
	}
	if !inserted {
		order = append(order, a.c9Tier)
	}
	return order
}

// buckets converts a frequency map into a sorted table with percentages.
// Ties in count break by lexical order of the label for deterministic
// output. A zero total yields zero percentages, never NaN.
func (a *Aggregator) buckets(counts map[string]int, total int) []types.Bucket {
	out := make([]types.Bucket, 0, len(counts))
	for name, n := range counts {
		out = append(out, types.Bucket{
			Name:       name,
			Count:      n,
			Percentage: a.percent(n, total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (a *Aggregator) percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	scale := math.Pow(10, float64(a.precision))
	return math.Round(float64(count)/float64(total)*100*scale) / scale
}

// dimensionValue extracts the category value of a record along a dimension.
func dimensionValue(d Dimension, rec model.EnrichedRecord) string {
	switch d {
	case DimensionPosition:
		return rec.Position
	case DimensionDegree:
		return rec.Degree
	case DimensionTier:
		return rec.Tier
	case DimensionGender:
		return rec.Gender
	case DimensionProvince:
		return rec.Province
	case DimensionCohort:
		return rec.Cohort
	case DimensionStatus:
		return rec.Status
	case DimensionPolitical:
		return rec.Political
	case DimensionMajorType:
		return rec.MajorType
	default:
		return ""
	}
}

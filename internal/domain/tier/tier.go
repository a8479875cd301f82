// Package tier ranks institution-category labels against a fixed ordered
// marker table.
//
// Classification is a pure lookup: the highest-precedence rule whose marker
// substring appears in the label wins, regardless of where the marker sits
// inside the label. Labels carrying the overseas gate marker are ranked
// against a separate overseas sub-table. The classifier is total and never
// errors; unmatched labels fall back to the configured catch-all tier.
package tier

import (
	"sort"
	"strings"
)

// Default table from the authoritative recruiting configuration. Precedence
// is descending: a label matching two rules resolves to the higher one.
const (
	// DefaultOverseasGate marks an overseas institution label.
	DefaultOverseasGate = "海外院校"

	// DefaultOverseasFallback is the tier for overseas labels matching no
	// QS rule.
	DefaultOverseasFallback = "其他海外院校"

	// DefaultFallback is the unclassified tier.
	DefaultFallback = "其他"
)

// Rule binds a marker substring to a tier label with a precedence rank.
type Rule struct {
	Precedence int
	Marker     string
	Tier       string
}

// DefaultOverseasRules returns the overseas sub-table.
func DefaultOverseasRules() []Rule {
	return []Rule{
		{Precedence: 2, Marker: "QS1-50", Tier: "QS1-50"},
		{Precedence: 1, Marker: "QS100", Tier: "QS100"},
	}
}

// DefaultDomesticRules returns the domestic marker table.
func DefaultDomesticRules() []Rule {
	return []Rule{
		{Precedence: 8, Marker: "C9联盟", Tier: "C9联盟"},
		{Precedence: 7, Marker: "985", Tier: "985"},
		{Precedence: 6, Marker: "211", Tier: "211"},
		{Precedence: 5, Marker: "轨道交通合作院校", Tier: "轨道交通合作院校"},
		{Precedence: 4, Marker: "优势学科院校", Tier: "优势学科院校"},
		{Precedence: 3, Marker: "湖南省知名高校", Tier: "湖南省知名高校"},
		{Precedence: 2, Marker: "创新型大学", Tier: "创新型大学"},
		{Precedence: 1, Marker: "其他签字增补院校", Tier: "其他签字增补院校"},
	}
}

// Classifier resolves an institution-category label to a single tier.
type Classifier struct {
	overseasGate     string
	overseasRules    []Rule
	overseasFallback string
	domesticRules    []Rule
	fallback         string
}

// New creates a Classifier with the default marker tables, adjusted by the
// given options. Rule tables are sorted by descending precedence once here
// so configuration order never matters.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		overseasGate:     DefaultOverseasGate,
		overseasRules:    DefaultOverseasRules(),
		overseasFallback: DefaultOverseasFallback,
		domesticRules:    DefaultDomesticRules(),
		fallback:         DefaultFallback,
	}

	for _, opt := range opts {
		opt(c)
	}

	sortRules(c.overseasRules)
	sortRules(c.domesticRules)

	return c
}

// Classify returns the tier for an institution-category label. It always
// returns a value; unmatched labels yield the fallback tier.
func (c *Classifier) Classify(label string) string {
	if c.overseasGate != "" && strings.Contains(label, c.overseasGate) {
		if tier, ok := scan(c.overseasRules, label); ok {
			return tier
		}
		return c.overseasFallback
	}

	if tier, ok := scan(c.domesticRules, label); ok {
		return tier
	}
	return c.fallback
}

// Overseas reports whether a label carries the overseas gate marker.
func (c *Classifier) Overseas(label string) bool {
	return c.overseasGate != "" && strings.Contains(label, c.overseasGate)
}

// Fallback returns the unclassified tier label.
func (c *Classifier) Fallback() string {
	return c.fallback
}

func scan(rules []Rule, label string) (string, bool) {
	for _, r := range rules {
		if r.Marker != "" && strings.Contains(label, r.Marker) {
			return r.Tier, true
		}
	}
	return "", false
}

func sortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Precedence > rules[j].Precedence
	})
}

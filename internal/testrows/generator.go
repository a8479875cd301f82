// Package testrows generates synthetic upload batches for tests and
// benchmarks. Generation is deterministic for a given seed.
package testrows

import (
	"fmt"
	"math/rand"

	"github.com/okian/xiaozhao/internal/domain/model"
)

// Sample value tables. Institutions pair a school name with its category
// label so generated rows classify across the full tier range.
var (
	genders    = []string{"男", "女"}
	politicals = []string{"中共党员", "共青团员", "群众"}
	statuses   = []string{"已签两方", "已签三方", "待签约", "已发offer"}
	positions  = []string{"车辆工程师", "信号工程师", "软件工程师", "综合管理", "财务管理"}
	degrees    = []string{"博士", "硕士", "本科"}
	majors     = []string{"车辆工程", "交通运输", "计算机科学与技术", "会计学", "电气工程"}
	majorTypes = []string{"工学", "管理学", "理学"}
	origins    = []string{"湖南长沙", "湖北武汉", "广东", "四川成都", "北京", "内蒙"}

	institutions = []struct {
		name     string
		category string
	}{
		{"清华大学", "C9联盟,985,211"},
		{"中南大学", "985,211"},
		{"长沙理工大学", "湖南省知名高校"},
		{"北京交通大学", "211,轨道交通合作院校"},
		{"伦敦大学学院", "海外院校,QS1-50"},
		{"悉尼大学", "海外院校,QS100"},
		{"某某学院", "民办高校"},
	}
)

// Generator produces synthetic data rows.
type Generator struct {
	rng *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source so generated batches repeat exactly.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a Generator. Without WithSeed the batch differs per run.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(rand.Int63())),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Rows generates n complete data rows covering every required column.
func (g *Generator) Rows(n int) []model.Row {
	rows := make([]model.Row, n)
	for i := range rows {
		rows[i] = g.row(i + 1)
	}
	return rows
}

func (g *Generator) row(seq int) model.Row {
	year := 1988 + g.rng.Intn(20)
	month := 1 + g.rng.Intn(12)
	day := 1 + g.rng.Intn(28)
	inst := institutions[g.rng.Intn(len(institutions))]

	return model.Row{
		model.ColSeq:            fmt.Sprintf("%d", seq),
		model.ColName:           fmt.Sprintf("候选人%d", seq),
		model.ColGender:         pick(g.rng, genders),
		model.ColAge:            fmt.Sprintf("%d", 2026-year),
		model.ColBirthDate:      fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		model.ColPolitical:      pick(g.rng, politicals),
		model.ColOrigin:         pick(g.rng, origins),
		model.ColStatus:         pick(g.rng, statuses),
		model.ColPosition:       pick(g.rng, positions),
		model.ColDegree:         pick(g.rng, degrees),
		model.ColMajor:          pick(g.rng, majors),
		model.ColMajorType:      pick(g.rng, majorTypes),
		model.ColInstitution:    inst.name,
		model.ColInstitutionCat: inst.category,
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

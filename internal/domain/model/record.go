// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one spreadsheet data row keyed by column label, as produced by the
// upload parser. Cell values are kept verbatim.
type Row map[string]string

// RawRecord is a validated sign-up row. Field names mirror the column
// labels of the upload template.
type RawRecord struct {
	Row            int    // 1-based data row number in the source batch
	Seq            int    // 序号
	Name           string // 姓名
	Gender         string // 性别
	Age            int    // 年龄
	BirthDate      string // 出生日期, verbatim cell
	BirthYear      int    // year component of 出生日期, cached at validation
	Political      string // 政治面貌
	Origin         string // 籍贯, "省-市" form
	Status         string // 应聘状态
	Position       string // 应聘职位
	Degree         string // 最高学历
	Major          string // 最高学历专业
	MajorType      string // 专业类型
	Institution    string // 最高学历毕业院校
	InstitutionCat string // 最高学历毕业院校类别
}

// EnrichedRecord is a RawRecord plus the derived analytical fields. Every
// derived field is a pure function of the record itself.
type EnrichedRecord struct {
	RawRecord

	Overseas bool   // institution-category label carries the overseas marker
	Tier     string // ranked institution category, 其他 when unclassified
	Province string // province component of 籍贯
	Cohort   string // birth-year bucket, e.g. 95后
}

// BirthYear extracts the year component from a birth-date cell. Accepted
// forms are "YYYY-MM-DD", "YYYY/MM/DD" and any string with a leading
// four-digit year, matching the upload template conventions.
func BirthYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty birth date")
	}

	var yearPart string
	switch {
	case strings.Contains(s, "-"):
		yearPart = s[:strings.Index(s, "-")]
	case strings.Contains(s, "/"):
		yearPart = s[:strings.Index(s, "/")]
	case len(s) >= 4:
		yearPart = s[:4]
	default:
		yearPart = s
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil {
		return 0, fmt.Errorf("birth date %q: %w", s, err)
	}
	if year < 1900 || year > 2100 {
		return 0, fmt.Errorf("birth date %q: year %d out of range", s, year)
	}
	return year, nil
}

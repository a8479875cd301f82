// Package types contains common types shared with external consumers
// of the statistics bundle.
package types

// Bucket is one frequency-table entry of a statistical dimension.
type Bucket struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// YearCount is one point of the birth-year time series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

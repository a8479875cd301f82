package schema

import (
	"errors"
	"fmt"
)

// Sentinel kinds for batch-level validation failures. Both abort the upload;
// everything row-level is collected as RowError values instead.
var (
	ErrSchema     = errors.New("batch does not match the required column set")
	ErrEmptyBatch = errors.New("no valid rows in batch")
)

// Kind labels the class of a per-row failure.
type Kind string

const (
	KindMissing    Kind = "missing"
	KindMalformed  Kind = "malformed"
	KindDerivation Kind = "derivation"
)

// RowError reports one rejected row. Row is the 1-based data row number in
// the uploaded batch, Field the offending column label.
type RowError struct {
	Row   int    `json:"row"`
	Kind  Kind   `json:"kind"`
	Field string `json:"field"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s field %s", e.Row, e.Kind, e.Field)
}

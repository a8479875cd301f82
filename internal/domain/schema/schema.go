// Package schema validates raw upload batches against the required column
// set before enrichment runs.
//
// Validation is all-or-nothing per row: a row missing a required cell or
// carrying a type-incompatible value is dropped and reported, while the rest
// of the batch proceeds. Batch-level problems (missing columns, zero valid
// rows) abort the whole upload.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/xiaozhao/internal/domain/model"
)

// Validate checks a raw batch against the fourteen required columns and
// converts the surviving rows into typed RawRecords.
//
// The returned RowError slice lists every rejected row individually. The
// error return is reserved for batch-fatal conditions: ErrSchema when the
// header set is incomplete, ErrEmptyBatch when no row validates.
func Validate(rows []model.Row) ([]model.RawRecord, []RowError, error) {
	if len(rows) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	if missing := missingColumns(rows[0]); len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing %s", ErrSchema, strings.Join(missing, ", "))
	}

	records := make([]model.RawRecord, 0, len(rows))
	var rowErrs []RowError
	for i, row := range rows {
		rec, rowErr := validateRow(i+1, row)
		if rowErr != nil {
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, rowErrs, ErrEmptyBatch
	}
	return records, rowErrs, nil
}

// missingColumns reports required labels absent from the header row. The
// first row stands in for the header set: the upload parser materializes
// every header cell as a key on each row map.
func missingColumns(row model.Row) []string {
	var missing []string
	for _, col := range model.RequiredColumns() {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// validateRow converts a single row, reporting the first offending field.
func validateRow(num int, row model.Row) (model.RawRecord, *RowError) {
	for _, col := range model.RequiredColumns() {
		if strings.TrimSpace(row[col]) == "" {
			return model.RawRecord{}, &RowError{Row: num, Kind: KindMissing, Field: col}
		}
	}

	seq, err := strconv.Atoi(strings.TrimSpace(row[model.ColSeq]))
	if err != nil {
		return model.RawRecord{}, &RowError{Row: num, Kind: KindMalformed, Field: model.ColSeq}
	}

	age, err := strconv.Atoi(strings.TrimSpace(row[model.ColAge]))
	if err != nil || age <= 0 {
		return model.RawRecord{}, &RowError{Row: num, Kind: KindMalformed, Field: model.ColAge}
	}

	birthYear, err := model.BirthYear(row[model.ColBirthDate])
	if err != nil {
		return model.RawRecord{}, &RowError{Row: num, Kind: KindMalformed, Field: model.ColBirthDate}
	}

	return model.RawRecord{
		Row:            num,
		Seq:            seq,
		Name:           strings.TrimSpace(row[model.ColName]),
		Gender:         strings.TrimSpace(row[model.ColGender]),
		Age:            age,
		BirthDate:      strings.TrimSpace(row[model.ColBirthDate]),
		BirthYear:      birthYear,
		Political:      strings.TrimSpace(row[model.ColPolitical]),
		Origin:         strings.TrimSpace(row[model.ColOrigin]),
		Status:         strings.TrimSpace(row[model.ColStatus]),
		Position:       strings.TrimSpace(row[model.ColPosition]),
		Degree:         strings.TrimSpace(row[model.ColDegree]),
		Major:          strings.TrimSpace(row[model.ColMajor]),
		MajorType:      strings.TrimSpace(row[model.ColMajorType]),
		Institution:    strings.TrimSpace(row[model.ColInstitution]),
		InstitutionCat: strings.TrimSpace(row[model.ColInstitutionCat]),
	}, nil
}

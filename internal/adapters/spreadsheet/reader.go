// Package spreadsheet reads uploaded workbooks into raw row batches.
//
// The first row of the first sheet is the header; every following row maps
// header label to cell value. Short rows are padded with empty cells and
// fully empty rows are skipped, mirroring how recruiting staff trim the
// template. Transport of the file itself is out of scope.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/okian/xiaozhao/internal/domain/model"
)

// ReadFile reads a workbook by path, dispatching on the file extension.
// Supported: .xlsx, .xlsm, .csv.
func ReadFile(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadXLSX reads the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader) ([]model.Row, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}

	cells, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	return assemble(cells)
}

// ReadCSV reads comma-separated rows, header first.
func ReadCSV(r io.Reader) ([]model.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // template exports often trim trailing cells

	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return assemble(cells)
}

// assemble turns a cell grid into row maps keyed by the header labels.
// Every header label is materialized on every row so the validator can
// treat absent and empty cells uniformly.
func assemble(cells [][]string) ([]model.Row, error) {
	if len(cells) == 0 {
		return nil, ErrNoHeader
	}

	header := make([]string, len(cells[0]))
	for i, label := range cells[0] {
		header[i] = strings.TrimSpace(label)
	}

	rows := make([]model.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		if empty(line) {
			continue
		}
		row := make(model.Row, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(line) {
				row[label] = line[i]
			} else {
				row[label] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func empty(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

package spreadsheet

import "errors"

// Sentinel kinds for spreadsheet reading errors.
var (
	ErrNoHeader          = errors.New("spreadsheet has no header row")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

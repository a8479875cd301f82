package enrich

import "errors"

// ErrDerivation flags a derived field that could not be computed. Rows that
// passed schema validation should never hit this; it guards against a
// validator/enricher contract mismatch.
var ErrDerivation = errors.New("derived field could not be computed")

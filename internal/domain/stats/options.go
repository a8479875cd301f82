package stats

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithDimensions selects which dimensions to tabulate, replacing the
// default seven. Duplicates are ignored; order is preserved.
func WithDimensions(dims ...Dimension) Option {
	return func(a *Aggregator) {
		if len(dims) > 0 {
			a.setDimensions(dims)
		}
	}
}

// WithPrecision sets the number of percentage decimal places.
func WithPrecision(p int) Option {
	return func(a *Aggregator) {
		if p >= 0 {
			a.precision = p
		}
	}
}

// WithCrossTabs toggles the position-by-degree cross-tabulation.
func WithCrossTabs(enabled bool) Option {
	return func(a *Aggregator) {
		a.crossTabs = enabled
	}
}

// WithSeries toggles the birth-year time series.
func WithSeries(enabled bool) Option {
	return func(a *Aggregator) {
		a.series = enabled
	}
}

// WithKeySchools replaces the named key institutions, in report order.
func WithKeySchools(schools []string) Option {
	return func(a *Aggregator) {
		if len(schools) > 0 {
			a.keySchools = append([]string(nil), schools...)
		}
	}
}

// WithC9Tier sets the tier label whose records feed the C9 remainder.
func WithC9Tier(tierLabel string) Option {
	return func(a *Aggregator) {
		if tierLabel != "" {
			a.c9Tier = tierLabel
		}
	}
}

// WithAgreementMarkers sets the status substrings counted as bilateral and
// trilateral agreements.
func WithAgreementMarkers(bilateral, trilateral string) Option {
	return func(a *Aggregator) {
		if bilateral != "" {
			a.bilateralMarker = bilateral
		}
		if trilateral != "" {
			a.trilateralMarker = trilateral
		}
	}
}

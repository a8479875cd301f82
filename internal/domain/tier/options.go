package tier

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithOverseasGate overrides the marker that flags overseas labels. An empty
// gate disables the overseas branch entirely.
func WithOverseasGate(marker string) Option {
	return func(c *Classifier) {
		c.overseasGate = marker
	}
}

// WithOverseasRules replaces the overseas sub-table.
func WithOverseasRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.overseasRules = append([]Rule(nil), rules...)
	}
}

// WithOverseasFallback sets the tier for overseas labels matching no rule.
func WithOverseasFallback(tier string) Option {
	return func(c *Classifier) {
		if tier != "" {
			c.overseasFallback = tier
		}
	}
}

// WithDomesticRules replaces the domestic marker table.
func WithDomesticRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.domesticRules = append([]Rule(nil), rules...)
	}
}

// WithFallback sets the unclassified tier label.
func WithFallback(tier string) Option {
	return func(c *Classifier) {
		if tier != "" {
			c.fallback = tier
		}
	}
}

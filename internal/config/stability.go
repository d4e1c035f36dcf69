package config

// isStableOptionAndValue decides whether a file-merge assignment is
// permitted. Option-level instability and value/variant-level instability
// are independent rejection reasons; both degrade to a warning, keeping the
// prior value, and never abort the merge. Nightly-class builds accept
// everything.
func (c *Config) isStableOptionAndValue(name string, optionStable bool, value any) bool {
	if c.nightly {
		return true
	}
	if !optionStable {
		c.warnf("can't set `%s = %s`, unstable features are only available in nightly channel.",
			name, formatValue(value))
		return false
	}
	if !stableVariant(value) {
		c.warnf("can't set `%s = %s`, unstable variants are only available in nightly channel.",
			name, formatValue(value))
		return false
	}
	return true
}

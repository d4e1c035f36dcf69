package config

import "sync/atomic"

// slot holds one option's resolved value plus its provenance and usage
// bookkeeping. The registry is the sole owner; reads hand out copies.
type slot struct {
	def   *OptionDef
	value any

	// used is set the first time the value is read by any consumer. It is
	// atomic because reads may be shared across goroutines after the
	// resolution phase; races on it only affect the used-options report.
	used atomic.Bool

	// stable is fixed at construction from the catalog.
	stable bool

	// wasSet records a successful non-CLI, non-default assignment (file
	// merge or the programmatic override path). Monotonic.
	wasSet bool

	// wasSetCLI records a successful CLI-flag assignment, tracked
	// independently of wasSet. Monotonic.
	wasSetCLI bool
}

// read returns the current value and records the access.
func (s *slot) read() any {
	s.used.Store(true)
	return s.value
}

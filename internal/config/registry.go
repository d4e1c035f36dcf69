package config

import (
	"fmt"
	"io"
	"os"

	"github.com/Rawk/rustfmt/internal/config/filelines"
)

// Config is the authoritative configuration registry for one formatting
// invocation: a fixed option-name to slot mapping seeded from the catalog's
// per-style-edition defaults.
type Config struct {
	styleEdition StyleEdition
	nightly      bool
	warn         io.Writer
	slots        map[string]*slot
}

// Default builds a registry with the 2015 style edition defaults.
func Default() *Config {
	return DefaultWithStyleEdition(Edition2015)
}

// DefaultWithStyleEdition builds a registry seeded from the catalog's
// defaults for the given style edition, with all provenance flags clear.
func DefaultWithStyleEdition(styleEdition StyleEdition) *Config {
	c := &Config{
		styleEdition: styleEdition,
		nightly:      NightlyChannel(),
		warn:         os.Stderr,
		slots:        make(map[string]*slot, len(catalog)),
	}
	for _, def := range catalog {
		c.slots[def.Name] = &slot{
			def:    def,
			value:  def.Default(styleEdition),
			stable: def.Stable,
		}
	}
	return c
}

// SetWarningOutput redirects resolution warnings, which default to stderr.
func (c *Config) SetWarningOutput(w io.Writer) {
	c.warn = w
}

// Nightly reports whether this registry permits unstable assignments from
// configuration files.
func (c *Config) Nightly() bool {
	return c.nightly
}

// warnf emits a resolution warning.
func (c *Config) warnf(format string, args ...any) {
	fmt.Fprintf(c.warn, "Warning: "+format+"\n", args...)
}

// slotFor returns the slot for a known option name.
func (c *Config) slotFor(name string) (*slot, error) {
	s, ok := c.slots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return s, nil
}

// coerceValue converts value into the option's semantic type. It accepts
// either the semantic type itself or the raw shapes produced by file
// decoding (bool, integer, string, string list).
func coerceValue(def *OptionDef, value any) (any, error) {
	if v, err := def.Decode(value); err == nil {
		return v, nil
	}
	if sameDynamicType(value, def.Default(Edition2015)) {
		return value, nil
	}
	return nil, &ValueError{Option: def.Name, Expected: def.Hint, Actual: fmt.Sprintf("%T(%v)", value, value)}
}

// sameDynamicType reports whether two values share a dynamic type, without
// reflection, over the catalog's closed set of semantic types.
func sameDynamicType(a, b any) bool {
	switch a.(type) {
	case bool:
		_, ok := b.(bool)
		return ok
	case int:
		_, ok := b.(int)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case StyleEdition:
		_, ok := b.(StyleEdition)
		return ok
	case Edition:
		_, ok := b.(Edition)
		return ok
	case Heuristics:
		_, ok := b.(Heuristics)
		return ok
	case NewlineStyle:
		_, ok := b.(NewlineStyle)
		return ok
	case IndentStyle:
		_, ok := b.(IndentStyle)
		return ok
	case ImportGranularity:
		_, ok := b.(ImportGranularity)
		return ok
	case GroupImports:
		_, ok := b.(GroupImports)
		return ok
	case Density:
		_, ok := b.(Density)
		return ok
	case FormatVersion:
		_, ok := b.(FormatVersion)
		return ok
	case Color:
		_, ok := b.(Color)
		return ok
	case IgnoreList:
		_, ok := b.(IgnoreList)
		return ok
	case MacroSelectors:
		_, ok := b.(MacroSelectors)
		return ok
	case filelines.FileLines:
		_, ok := b.(filelines.FileLines)
		return ok
	default:
		return false
	}
}

// Set assigns an option programmatically. It does not mark file or CLI
// provenance and re-runs the derived computations for the option.
func (c *Config) Set(name string, value any) error {
	return c.assign(name, value, false, false)
}

// SetCLI assigns an option from a parsed CLI flag, marking CLI provenance.
func (c *Config) SetCLI(name string, value any) error {
	return c.assign(name, value, false, true)
}

func (c *Config) assign(name string, value any, markSet, markCLI bool) error {
	s, err := c.slotFor(name)
	if err != nil {
		return err
	}
	v, err := coerceValue(s.def, value)
	if err != nil {
		return err
	}
	s.value = v
	if markSet {
		s.wasSet = true
	}
	if markCLI {
		s.wasSetCLI = true
	}
	c.recompute(name)
	return nil
}

// OverrideValue parses an ad-hoc key=value override. Unknown keys and
// unparsable values are fatal: the caller explicitly demanded that exact
// assignment, so there is no value to silently fall back to. Overrides
// deliberately bypass the stability gate so unstable options can be probed
// on any channel.
func (c *Config) OverrideValue(key, val string) error {
	s, err := c.slotFor(key)
	if err != nil {
		return err
	}
	v, err := s.def.Parse(val)
	if err != nil {
		return &OverrideError{Key: key, Value: val, Expected: s.def.Hint, Err: err}
	}
	s.value = v
	s.wasSet = true
	c.recompute(key)
	return nil
}

// FillFromParsedConfig merges a sparse parsed configuration into the
// registry. Each present value passes the stability gate; rejected values
// leave the prior default untouched. After the per-option merge the derived
// computations run in a fixed order: width heuristics first (they must see
// the merged max_width and mode), then the ignore-list prefix, then the
// deprecated-alias reconciliations (which must observe whether the overlay
// touched the replacement names).
func (c *Config) FillFromParsedConfig(parsed *PartialConfig, baseDir string) {
	if parsed != nil {
		for _, def := range catalog {
			value, ok := parsed.Get(def.Name)
			if !ok {
				continue
			}
			s := c.slots[def.Name]
			if !c.isStableOptionAndValue(def.Name, s.stable, value) {
				continue
			}
			s.value = value
			s.wasSet = true
		}
	}

	c.setHeuristics()
	c.setIgnorePrefix(baseDir)
	c.setMergeImports()
	c.setFnArgsLayout()
	c.setHideParseErrors()
	c.setVersion()
}

// WasSet reports whether the option was assigned by file merge or override.
func (c *Config) WasSet(name string) bool {
	s, ok := c.slots[name]
	return ok && s.wasSet
}

// WasSetCLI reports whether the option was assigned via a CLI flag.
func (c *Config) WasSetCLI(name string) bool {
	s, ok := c.slots[name]
	return ok && s.wasSetCLI
}

// IsDefault reports whether the option was explicitly set to a value that
// equals its compiled default for this registry's style edition; that is,
// whether the user redundantly restated the default.
func (c *Config) IsDefault(key string) bool {
	s, ok := c.slots[key]
	if !ok {
		return false
	}
	return s.wasSet && valuesEqual(s.value, s.def.Default(c.styleEdition))
}

// UsedOptions returns a sparse snapshot of the options this run actually
// consulted.
func (c *Config) UsedOptions() *PartialConfig {
	p := NewPartialConfig()
	for _, def := range catalog {
		s := c.slots[def.Name]
		if s.used.Load() {
			p.values[def.Name] = s.value
		}
	}
	return p
}

// AllOptions returns every current value regardless of usage.
func (c *Config) AllOptions() *PartialConfig {
	p := NewPartialConfig()
	for _, def := range catalog {
		p.values[def.Name] = c.slots[def.Name].value
	}
	return p
}

// NonDefaultOptions returns the options whose current value differs from
// the compiled default for this registry's style edition; this is the
// minimal configuration that reproduces the current state.
func (c *Config) NonDefaultOptions() *PartialConfig {
	p := NewPartialConfig()
	for _, def := range catalog {
		s := c.slots[def.Name]
		if !valuesEqual(s.value, def.Default(c.styleEdition)) {
			p.values[def.Name] = s.value
		}
	}
	return p
}

// Typed read helpers behind the per-option accessors. The catalog
// guarantees each slot's value type, so the assertions cannot fail.

func (c *Config) boolOption(name string) bool {
	return c.slots[name].read().(bool)
}

func (c *Config) uintOption(name string) int {
	return c.slots[name].read().(int)
}

func (c *Config) stringOption(name string) string {
	return c.slots[name].read().(string)
}

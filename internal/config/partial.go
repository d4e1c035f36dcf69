package config

import (
	"fmt"
	"io"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// PartialConfig is a sparse, optional-valued mirror of the registry: only
// the options a source actually mentions are present, so absent fields
// never clobber compiled defaults during merge.
type PartialConfig struct {
	values map[string]any
}

// NewPartialConfig returns an empty overlay.
func NewPartialConfig() *PartialConfig {
	return &PartialConfig{values: make(map[string]any)}
}

// PartialFromMap builds an overlay from a decoded configuration file map.
// Unknown keys produce a warning on warn and are skipped; a value that
// cannot be decoded into its option's semantic type fails the whole load,
// since silently dropping an explicit file value would be worse than
// rejecting the file.
func PartialFromMap(raw map[string]any, warn io.Writer) (*PartialConfig, error) {
	p := NewPartialConfig()

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		def, ok := Lookup(key)
		if !ok {
			if warn != nil {
				fmt.Fprintf(warn, "Warning: Unknown configuration option `%s`\n", key)
			}
			continue
		}
		value, err := def.Decode(raw[key])
		if err != nil {
			return nil, fmt.Errorf("invalid value for `%s`: %w", key, err)
		}
		p.values[key] = value
	}
	return p, nil
}

// Set records a value for an option, coercing it into the option's
// semantic type.
func (p *PartialConfig) Set(name string, value any) error {
	def, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	v, err := coerceValue(def, value)
	if err != nil {
		return err
	}
	p.values[name] = v
	return nil
}

// Get returns the recorded value for an option, if present.
func (p *PartialConfig) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether the option is present in the overlay.
func (p *PartialConfig) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Len returns the number of present options.
func (p *PartialConfig) Len() int {
	return len(p.values)
}

// Names returns the present option names in catalog order.
func (p *PartialConfig) Names() []string {
	names := make([]string, 0, len(p.values))
	for _, def := range catalog {
		if _, ok := p.values[def.Name]; ok {
			names = append(names, def.Name)
		}
	}
	return names
}

// ToTOML renders the overlay as a configuration file. The line-range
// option is omitted: it has no file syntax and is only settable via its
// CLI flag.
func (p *PartialConfig) ToTOML() ([]byte, error) {
	out := make(map[string]any, len(p.values))
	for name, value := range p.values {
		if name == "file_lines" {
			continue
		}
		out[name] = tomlValue(value)
	}
	return toml.Marshal(out)
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rawk/rustfmt/internal/config/filelines"
)

// OptionDef is one catalog entry: the option's name, semantic type
// (expressed as its parser/decoder pair), per-style-edition default,
// stability tier, and documentation.
type OptionDef struct {
	// Name is the option's key in configuration files and overrides.
	Name string

	// Doc is the human-readable description.
	Doc string

	// Hint describes legal textual values; for enum-like options it is a
	// pipe-separated variant list.
	Hint string

	// Stable reports whether the option may be set at all outside a
	// nightly-class build.
	Stable bool

	// Default returns the compiled-in default for a style edition.
	Default func(StyleEdition) any

	// Parse converts override text into the option's semantic type.
	Parse func(string) (any, error)

	// Decode converts a value decoded from a configuration file into the
	// option's semantic type.
	Decode func(any) (any, error)
}

// constDefault returns the same default for every style edition.
func constDefault(v any) func(StyleEdition) any {
	return func(StyleEdition) any { return v }
}

// editionDefault returns older for editions before 2024 and newer from 2024
// onward.
func editionDefault(older, newer any) func(StyleEdition) any {
	return func(se StyleEdition) any {
		if se >= Edition2024 {
			return newer
		}
		return older
	}
}

// textParser adapts a typed parse function to the catalog signature.
func textParser[T any](parse func(string) (T, error)) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// stringDecoder decodes a file value that must be a string, reusing the
// option's text parser.
func stringDecoder[T any](parse func(string) (T, error), expected string) func(any) (any, error) {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected %s, got %T", expected, v)
		}
		u, err := parse(s)
		if err != nil {
			return nil, err
		}
		return u, nil
	}
}

func parseBoolText(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

func decodeBool(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}

func parseUintText(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid unsigned integer %q", s)
	}
	return n, nil
}

func decodeUint(v any) (any, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return nil, fmt.Errorf("expected unsigned integer, got %d", n)
		}
		return n, nil
	case int64:
		if n < 0 {
			return nil, fmt.Errorf("expected unsigned integer, got %d", n)
		}
		return int(n), nil
	case float64:
		if n < 0 || n != float64(int(n)) {
			return nil, fmt.Errorf("expected unsigned integer, got %v", n)
		}
		return int(n), nil
	default:
		return nil, fmt.Errorf("expected unsigned integer, got %T", v)
	}
}

func parseStringText(s string) (string, error) {
	return s, nil
}

func decodeString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// decodeStringList accepts the list shapes TOML decoding produces.
func decodeStringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list, got %T element", item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", v)
	}
}

func decodeIgnoreList(v any) (any, error) {
	patterns, err := decodeStringList(v)
	if err != nil {
		return nil, err
	}
	return NewIgnoreList(patterns...), nil
}

func decodeMacroSelectors(v any) (any, error) {
	names, err := decodeStringList(v)
	if err != nil {
		return nil, err
	}
	selectors := make(MacroSelectors, 0, len(names))
	for _, name := range names {
		parsed, err := ParseMacroSelectors(name)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, parsed...)
	}
	return selectors, nil
}

func parseFileLinesText(s string) (filelines.FileLines, error) {
	return filelines.Parse(s)
}

func decodeFileLines(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected JSON string, got %T", v)
	}
	fl, err := filelines.Parse(s)
	if err != nil {
		return nil, err
	}
	return fl, nil
}

// formatValue renders an option value for warnings and documentation.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		if val == UnlimitedWidth {
			return "none"
		}
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tomlValue converts an option value into a shape the TOML encoder accepts.
func tomlValue(v any) any {
	switch val := v.(type) {
	case bool, int, string:
		return val
	case IgnoreList:
		return val.Patterns()
	case MacroSelectors:
		return []string(val)
	case filelines.FileLines:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// valuesEqual compares two option values of the same semantic type.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case IgnoreList:
		bv, ok := b.(IgnoreList)
		return ok && av.Equal(bv)
	case MacroSelectors:
		bv, ok := b.(MacroSelectors)
		return ok && av.Equal(bv)
	case filelines.FileLines:
		bv, ok := b.(filelines.FileLines)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// stableVariant reports whether the value itself (as opposed to its option)
// is permitted outside nightly-class builds. Types without variant gating
// are always stable.
func stableVariant(v any) bool {
	if sv, ok := v.(interface{ StableVariant() bool }); ok {
		return sv.StableVariant()
	}
	return true
}

package config

import (
	"fmt"
	"strings"
)

// StyleEdition identifies a formatting-style generation. It selects the
// per-option compiled defaults and is fixed when a registry is built.
type StyleEdition uint8

const (
	// Edition2015 is the original formatting style.
	Edition2015 StyleEdition = iota
	// Edition2018 matches the 2018 style guide.
	Edition2018
	// Edition2021 matches the 2021 style guide.
	Edition2021
	// Edition2024 matches the 2024 style guide.
	Edition2024
	// Edition2027 is the in-progress next style generation.
	Edition2027
)

// String returns the canonical textual form of the style edition.
func (se StyleEdition) String() string {
	switch se {
	case Edition2015:
		return "2015"
	case Edition2018:
		return "2018"
	case Edition2021:
		return "2021"
	case Edition2024:
		return "2024"
	case Edition2027:
		return "2027"
	default:
		return "unknown"
	}
}

// StableVariant reports whether this particular edition may be selected
// outside a nightly-class build. The option itself is stable; only the
// in-progress edition is gated.
func (se StyleEdition) StableVariant() bool {
	return se != Edition2027
}

// ParseStyleEdition parses a style edition from text.
func ParseStyleEdition(s string) (StyleEdition, error) {
	switch strings.TrimSpace(s) {
	case "2015":
		return Edition2015, nil
	case "2018":
		return Edition2018, nil
	case "2021":
		return Edition2021, nil
	case "2024":
		return Edition2024, nil
	case "2027":
		return Edition2027, nil
	default:
		return Edition2015, fmt.Errorf("unknown style edition %q", s)
	}
}

// Edition identifies the language edition being formatted.
type Edition uint8

// Language editions.
const (
	Lang2015 Edition = iota
	Lang2018
	Lang2021
	Lang2024
)

// String returns the canonical textual form of the edition.
func (e Edition) String() string {
	switch e {
	case Lang2015:
		return "2015"
	case Lang2018:
		return "2018"
	case Lang2021:
		return "2021"
	case Lang2024:
		return "2024"
	default:
		return "unknown"
	}
}

// ParseEdition parses a language edition from text.
func ParseEdition(s string) (Edition, error) {
	switch strings.TrimSpace(s) {
	case "2015":
		return Lang2015, nil
	case "2018":
		return Lang2018, nil
	case "2021":
		return Lang2021, nil
	case "2024":
		return Lang2024, nil
	default:
		return Lang2015, fmt.Errorf("unknown edition %q", s)
	}
}

// Heuristics selects the width-heuristics derivation strategy.
type Heuristics uint8

const (
	// HeuristicsDefault scales each dependent width from max_width.
	HeuristicsDefault Heuristics = iota
	// HeuristicsOff disables every dependent width limit.
	HeuristicsOff
	// HeuristicsMax sets every dependent width to max_width.
	HeuristicsMax
)

// String returns the canonical textual form of the heuristics mode.
func (h Heuristics) String() string {
	switch h {
	case HeuristicsDefault:
		return "Default"
	case HeuristicsOff:
		return "Off"
	case HeuristicsMax:
		return "Max"
	default:
		return "unknown"
	}
}

// ParseHeuristics parses a heuristics mode from text.
func ParseHeuristics(s string) (Heuristics, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return HeuristicsDefault, nil
	case "off":
		return HeuristicsOff, nil
	case "max":
		return HeuristicsMax, nil
	default:
		return HeuristicsDefault, fmt.Errorf("unknown heuristics mode %q", s)
	}
}

// NewlineStyle controls line endings in emitted output.
type NewlineStyle uint8

// Newline styles.
const (
	NewlineAuto NewlineStyle = iota
	NewlineUnix
	NewlineWindows
	NewlineNative
)

// String returns the canonical textual form of the newline style.
func (n NewlineStyle) String() string {
	switch n {
	case NewlineAuto:
		return "Auto"
	case NewlineUnix:
		return "Unix"
	case NewlineWindows:
		return "Windows"
	case NewlineNative:
		return "Native"
	default:
		return "unknown"
	}
}

// ParseNewlineStyle parses a newline style from text.
func ParseNewlineStyle(s string) (NewlineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return NewlineAuto, nil
	case "unix":
		return NewlineUnix, nil
	case "windows":
		return NewlineWindows, nil
	case "native":
		return NewlineNative, nil
	default:
		return NewlineAuto, fmt.Errorf("unknown newline style %q", s)
	}
}

// IndentStyle controls how expressions and items are indented.
type IndentStyle uint8

// Indent styles.
const (
	IndentBlock IndentStyle = iota
	IndentVisual
)

// String returns the canonical textual form of the indent style.
func (i IndentStyle) String() string {
	switch i {
	case IndentBlock:
		return "Block"
	case IndentVisual:
		return "Visual"
	default:
		return "unknown"
	}
}

// ParseIndentStyle parses an indent style from text.
func ParseIndentStyle(s string) (IndentStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "block":
		return IndentBlock, nil
	case "visual":
		return IndentVisual, nil
	default:
		return IndentBlock, fmt.Errorf("unknown indent style %q", s)
	}
}

// ImportGranularity controls how use declarations are merged or split.
type ImportGranularity uint8

// Import granularities.
const (
	GranularityPreserve ImportGranularity = iota
	GranularityCrate
	GranularityModule
	GranularityItem
	GranularityOne
)

// String returns the canonical textual form of the granularity.
func (g ImportGranularity) String() string {
	switch g {
	case GranularityPreserve:
		return "Preserve"
	case GranularityCrate:
		return "Crate"
	case GranularityModule:
		return "Module"
	case GranularityItem:
		return "Item"
	case GranularityOne:
		return "One"
	default:
		return "unknown"
	}
}

// ParseImportGranularity parses an import granularity from text.
func ParseImportGranularity(s string) (ImportGranularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preserve":
		return GranularityPreserve, nil
	case "crate":
		return GranularityCrate, nil
	case "module":
		return GranularityModule, nil
	case "item":
		return GranularityItem, nil
	case "one":
		return GranularityOne, nil
	default:
		return GranularityPreserve, fmt.Errorf("unknown import granularity %q", s)
	}
}

// GroupImports controls regrouping of import blocks.
type GroupImports uint8

// Import grouping tactics.
const (
	GroupPreserve GroupImports = iota
	GroupStdExternalCrate
	GroupOne
)

// String returns the canonical textual form of the grouping tactic.
func (g GroupImports) String() string {
	switch g {
	case GroupPreserve:
		return "Preserve"
	case GroupStdExternalCrate:
		return "StdExternalCrate"
	case GroupOne:
		return "One"
	default:
		return "unknown"
	}
}

// ParseGroupImports parses an import grouping tactic from text.
func ParseGroupImports(s string) (GroupImports, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preserve":
		return GroupPreserve, nil
	case "stdexternalcrate":
		return GroupStdExternalCrate, nil
	case "one":
		return GroupOne, nil
	default:
		return GroupPreserve, fmt.Errorf("unknown import grouping %q", s)
	}
}

// Density controls the layout of comma-separated lists such as function
// parameters.
type Density uint8

// Densities.
const (
	DensityTall Density = iota
	DensityCompressed
	DensityVertical
)

// String returns the canonical textual form of the density.
func (d Density) String() string {
	switch d {
	case DensityTall:
		return "Tall"
	case DensityCompressed:
		return "Compressed"
	case DensityVertical:
		return "Vertical"
	default:
		return "unknown"
	}
}

// ParseDensity parses a density from text.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tall":
		return DensityTall, nil
	case "compressed":
		return DensityCompressed, nil
	case "vertical":
		return DensityVertical, nil
	default:
		return DensityTall, fmt.Errorf("unknown density %q", s)
	}
}

// FormatVersion is the deprecated predecessor of style_edition.
type FormatVersion uint8

// Format versions.
const (
	VersionOne FormatVersion = iota
	VersionTwo
)

// String returns the canonical textual form of the version.
func (v FormatVersion) String() string {
	switch v {
	case VersionOne:
		return "One"
	case VersionTwo:
		return "Two"
	default:
		return "unknown"
	}
}

// ParseFormatVersion parses a format version from text.
func ParseFormatVersion(s string) (FormatVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one":
		return VersionOne, nil
	case "two":
		return VersionTwo, nil
	default:
		return VersionOne, fmt.Errorf("unknown version %q", s)
	}
}

// StyleEditionForVersion maps the deprecated version option onto the style
// edition it implied.
func StyleEditionForVersion(v FormatVersion) StyleEdition {
	if v == VersionTwo {
		return Edition2024
	}
	return Edition2015
}

// Color controls colored terminal output.
type Color uint8

// Color modes.
const (
	ColorAuto Color = iota
	ColorAlways
	ColorNever
)

// String returns the canonical textual form of the color mode.
func (c Color) String() string {
	switch c {
	case ColorAuto:
		return "Auto"
	case ColorAlways:
		return "Always"
	case ColorNever:
		return "Never"
	default:
		return "unknown"
	}
}

// ParseColor parses a color mode from text.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

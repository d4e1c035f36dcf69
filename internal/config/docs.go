package config

import (
	"fmt"
	"io"
	"strings"
)

// hiddenOptions are excluded from generated documentation even when
// otherwise eligible: verbosity flags, the raw line-range and heuristics
// plumbing, and the non-canonical deprecated names.
var hiddenOptions = map[string]struct{}{
	"verbose":           {},
	"verbose_diff":      {},
	"file_lines":        {},
	"width_heuristics":  {},
	"merge_imports":     {},
	"fn_args_layout":    {},
	"hide_parse_errors": {},
}

// IsHiddenOption reports whether the option is excluded from generated
// documentation.
func IsHiddenOption(name string) bool {
	_, ok := hiddenOptions[name]
	return ok
}

// PrintDocs writes the option documentation: one block per visible option
// with its name, doc-hint, stringified 2015-edition default, and an
// unstable marker. Unstable options are skipped unless includeUnstable.
func PrintDocs(out io.Writer, includeUnstable bool) {
	width := 0
	for _, def := range catalog {
		if len(def.Name)+1 > width {
			width = len(def.Name) + 1
		}
	}
	pad := strings.Repeat(" ", width)

	fmt.Fprintln(out, "Configuration Options:")
	for _, def := range catalog {
		if !def.Stable && !includeUnstable {
			continue
		}
		if IsHiddenOption(def.Name) {
			continue
		}

		defaultStr := formatValue(def.Default(Edition2015))
		if defaultStr == "" {
			defaultStr = `""`
		}
		suffix := ""
		if !def.Stable {
			suffix = " (unstable)"
		}
		fmt.Fprintf(out, "%*s %s Default: %s%s\n", width-1, def.Name, def.Hint, defaultStr, suffix)
		fmt.Fprintf(out, "%s%s\n\n", pad, def.Doc)
	}
}

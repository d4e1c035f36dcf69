package config

import (
	"fmt"
	"strings"
)

// MacroSelectors is a name-selector list identifying macro invocations whose
// bodies are skipped during formatting. A selector is a macro name or "*"
// for all macros.
type MacroSelectors []string

// ParseMacroSelectors parses a comma-separated selector list from text.
func ParseMacroSelectors(s string) (MacroSelectors, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out MacroSelectors
	for _, part := range strings.Split(s, ",") {
		sel := strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"`))
		sel = strings.TrimSuffix(sel, "!")
		if sel == "" {
			return nil, fmt.Errorf("empty macro selector in %q", s)
		}
		out = append(out, sel)
	}
	return out, nil
}

// Matches reports whether the macro name is covered by any selector.
func (ms MacroSelectors) Matches(name string) bool {
	name = strings.TrimSuffix(name, "!")
	for _, sel := range ms {
		if sel == "*" || sel == name {
			return true
		}
	}
	return false
}

// Equal reports whether two selector lists are identical.
func (ms MacroSelectors) Equal(other MacroSelectors) bool {
	if len(ms) != len(other) {
		return false
	}
	for i, sel := range ms {
		if other[i] != sel {
			return false
		}
	}
	return true
}

// String renders the selectors as a bracketed list.
func (ms MacroSelectors) String() string {
	quoted := make([]string, len(ms))
	for i, sel := range ms {
		quoted[i] = `"` + sel + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

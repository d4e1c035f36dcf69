package config

import (
	"path/filepath"
	"sort"
	"strings"
)

// IgnoreList is the set of path patterns excluded from formatting. Patterns
// are as written in the configuration file; relative patterns are anchored
// to the configuration file's directory during merge.
type IgnoreList struct {
	prefix   string
	patterns []string
}

// NewIgnoreList builds an ignore list from path patterns.
func NewIgnoreList(patterns ...string) IgnoreList {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	sort.Strings(cleaned)
	return IgnoreList{patterns: cleaned}
}

// ParseIgnoreList parses a comma-separated pattern list from text.
func ParseIgnoreList(s string) (IgnoreList, error) {
	if strings.TrimSpace(s) == "" {
		return IgnoreList{}, nil
	}
	return NewIgnoreList(strings.Split(s, ",")...), nil
}

// AddPrefix anchors the list's relative patterns beneath dir. The prefix is
// remembered so the raw patterns can still be serialized as written.
func (il IgnoreList) AddPrefix(dir string) IgnoreList {
	il.prefix = dir
	return il
}

// IsEmpty reports whether the list has no patterns.
func (il IgnoreList) IsEmpty() bool {
	return len(il.patterns) == 0
}

// Patterns returns the raw patterns as written.
func (il IgnoreList) Patterns() []string {
	out := make([]string, len(il.patterns))
	copy(out, il.patterns)
	return out
}

// Matches reports whether path is covered by the ignore list. A pattern
// matches the path itself or any of its ancestors.
func (il IgnoreList) Matches(path string) bool {
	path = filepath.Clean(path)
	for _, pattern := range il.patterns {
		anchored := pattern
		if il.prefix != "" && !filepath.IsAbs(pattern) {
			anchored = filepath.Join(il.prefix, pattern)
		}
		anchored = filepath.Clean(anchored)
		if path == anchored || strings.HasPrefix(path, anchored+string(filepath.Separator)) {
			return true
		}
		if ok, err := filepath.Match(anchored, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Equal reports whether two ignore lists hold the same patterns.
func (il IgnoreList) Equal(other IgnoreList) bool {
	if len(il.patterns) != len(other.patterns) {
		return false
	}
	for i, p := range il.patterns {
		if other.patterns[i] != p {
			return false
		}
	}
	return true
}

// String renders the list as a bracketed pattern list.
func (il IgnoreList) String() string {
	quoted := make([]string, len(il.patterns))
	for i, p := range il.patterns {
		quoted[i] = `"` + p + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

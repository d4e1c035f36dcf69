package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"max_width", true},
		{"use_small_heuristics", true},
		{"merge_imports", true},
		{"file_lines", true},
		{"idem_potent", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidName(tt.name); got != tt.want {
			t.Errorf("IsValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsValidKeyVal(t *testing.T) {
	tests := []struct {
		key  string
		val  string
		want bool
	}{
		{"max_width", "80", true},
		{"max_width", "eighty", false},
		{"max_width", "-1", false},
		{"hard_tabs", "true", true},
		{"hard_tabs", "yes", false},
		{"use_small_heuristics", "Off", true},
		{"use_small_heuristics", "off", true},
		{"use_small_heuristics", "banana", false},
		{"style_edition", "2024", true},
		{"style_edition", "1999", false},
		{"does_not_exist", "true", false},
	}
	for _, tt := range tests {
		if got := IsValidKeyVal(tt.key, tt.val); got != tt.want {
			t.Errorf("IsValidKeyVal(%q, %q) = %v, want %v", tt.key, tt.val, got, tt.want)
		}
	}
}

func TestOptionNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range OptionNames() {
		if seen[name] {
			t.Errorf("duplicate option name %s", name)
		}
		seen[name] = true

		def, ok := Lookup(name)
		if !ok || def.Name != name {
			t.Errorf("Lookup(%q) did not round-trip", name)
		}
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for _, name := range OptionNames() {
		def, _ := Lookup(name)
		if def.Doc == "" || def.Hint == "" {
			t.Errorf("%s is missing documentation", name)
		}
		if def.Default == nil || def.Parse == nil || def.Decode == nil {
			t.Fatalf("%s is missing a handler", name)
		}
		// Every compiled default must survive its own decode/coerce path.
		if _, err := coerceValue(def, def.Default(Edition2015)); err != nil {
			t.Errorf("default for %s does not coerce: %v", name, err)
		}
	}
}

func TestIsHiddenOption(t *testing.T) {
	hidden := []string{
		"verbose", "verbose_diff", "file_lines", "width_heuristics",
		"merge_imports", "fn_args_layout", "hide_parse_errors",
	}
	for _, name := range hidden {
		if !IsHiddenOption(name) {
			t.Errorf("%s should be hidden from docs", name)
		}
	}
	if IsHiddenOption("max_width") {
		t.Error("max_width should be documented")
	}
}

func TestPrintDocsStableOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintDocs(buf, false)
	out := buf.String()

	if !strings.Contains(out, "max_width") {
		t.Error("stable docs missing max_width")
	}
	if strings.Contains(out, "wrap_comments") {
		t.Error("stable docs should omit unstable options")
	}
	if strings.Contains(out, "(unstable)") {
		t.Error("stable docs should carry no unstable markers")
	}
	for _, name := range []string{"file_lines", "merge_imports", "fn_args_layout", "hide_parse_errors"} {
		if strings.Contains(out, name) {
			t.Errorf("docs should omit hidden option %s", name)
		}
	}
}

func TestPrintDocsIncludeUnstable(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintDocs(buf, true)
	out := buf.String()

	if !strings.Contains(out, "wrap_comments") {
		t.Error("full docs missing unstable wrap_comments")
	}
	if !strings.Contains(out, "(unstable)") {
		t.Error("full docs missing unstable marker")
	}
	if strings.Contains(out, "file_lines") {
		t.Error("hidden options stay hidden even with unstable included")
	}
	if !strings.Contains(out, "Default: 100") {
		t.Error("docs missing stringified default for max_width")
	}
}

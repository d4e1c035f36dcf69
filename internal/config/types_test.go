package config

import "testing"

func TestParseStyleEdition(t *testing.T) {
	tests := []struct {
		in      string
		want    StyleEdition
		wantErr bool
	}{
		{"2015", Edition2015, false},
		{"2018", Edition2018, false},
		{"2021", Edition2021, false},
		{"2024", Edition2024, false},
		{"2027", Edition2027, false},
		{" 2024 ", Edition2024, false},
		{"1999", Edition2015, true},
		{"", Edition2015, true},
	}
	for _, tt := range tests {
		got, err := ParseStyleEdition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyleEdition(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseStyleEdition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStyleEditionStableVariant(t *testing.T) {
	for _, se := range []StyleEdition{Edition2015, Edition2018, Edition2021, Edition2024} {
		if !se.StableVariant() {
			t.Errorf("%v should be a stable variant", se)
		}
	}
	if Edition2027.StableVariant() {
		t.Error("2027 should be gated to nightly")
	}
}

func TestStyleEditionForVersion(t *testing.T) {
	if got := StyleEditionForVersion(VersionOne); got != Edition2015 {
		t.Errorf("version One maps to %v, want 2015", got)
	}
	if got := StyleEditionForVersion(VersionTwo); got != Edition2024 {
		t.Errorf("version Two maps to %v, want 2024", got)
	}
}

func TestEnumParsersCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"heuristics", func() (string, error) { v, err := ParseHeuristics("OFF"); return v.String(), err }, "Off"},
		{"newline", func() (string, error) { v, err := ParseNewlineStyle("windows"); return v.String(), err }, "Windows"},
		{"indent", func() (string, error) { v, err := ParseIndentStyle("Visual"); return v.String(), err }, "Visual"},
		{"granularity", func() (string, error) { v, err := ParseImportGranularity("crate"); return v.String(), err }, "Crate"},
		{"grouping", func() (string, error) { v, err := ParseGroupImports("stdexternalcrate"); return v.String(), err }, "StdExternalCrate"},
		{"density", func() (string, error) { v, err := ParseDensity("COMPRESSED"); return v.String(), err }, "Compressed"},
		{"version", func() (string, error) { v, err := ParseFormatVersion("two"); return v.String(), err }, "Two"},
		{"color", func() (string, error) { v, err := ParseColor("Never"); return v.String(), err }, "Never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnumParsersRejectUnknown(t *testing.T) {
	if _, err := ParseHeuristics("banana"); err == nil {
		t.Error("ParseHeuristics accepted garbage")
	}
	if _, err := ParseEdition("2030"); err == nil {
		t.Error("ParseEdition accepted garbage")
	}
	if _, err := ParseColor(""); err == nil {
		t.Error("ParseColor accepted empty input")
	}
}

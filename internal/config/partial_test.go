package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestPartialFromMapUnknownKey(t *testing.T) {
	warn := &bytes.Buffer{}
	p, err := PartialFromMap(map[string]any{
		"max_width":      int64(80),
		"does_not_exist": true,
	}, warn)
	if err != nil {
		t.Fatalf("PartialFromMap: %v", err)
	}

	if v, ok := p.Get("max_width"); !ok || v != 80 {
		t.Errorf("max_width = %v, want 80", v)
	}
	if p.Has("does_not_exist") {
		t.Error("unknown key should be skipped")
	}
	if !strings.Contains(warn.String(), "Warning: Unknown configuration option `does_not_exist`") {
		t.Errorf("warning = %q", warn.String())
	}
}

func TestPartialFromMapBadValue(t *testing.T) {
	_, err := PartialFromMap(map[string]any{"max_width": "eighty"}, nil)
	if err == nil {
		t.Fatal("expected error for mistyped value")
	}
	if !strings.Contains(err.Error(), "max_width") {
		t.Errorf("error %q does not name the option", err.Error())
	}
}

func TestPartialFromMapDecodesSemanticTypes(t *testing.T) {
	p, err := PartialFromMap(map[string]any{
		"use_small_heuristics": "Max",
		"ignore":               []any{"src", "target"},
		"newline_style":        "Windows",
	}, nil)
	if err != nil {
		t.Fatalf("PartialFromMap: %v", err)
	}

	if v, _ := p.Get("use_small_heuristics"); v != HeuristicsMax {
		t.Errorf("use_small_heuristics = %v, want Max", v)
	}
	if v, _ := p.Get("newline_style"); v != NewlineWindows {
		t.Errorf("newline_style = %v, want Windows", v)
	}
	il, ok := p.Get("ignore")
	if !ok || !il.(IgnoreList).Equal(NewIgnoreList("src", "target")) {
		t.Errorf("ignore = %v", il)
	}
}

func TestPartialNamesCatalogOrder(t *testing.T) {
	p := NewPartialConfig()
	if err := p.Set("verbose", true); err != nil {
		t.Fatal(err)
	}
	if err := p.Set("max_width", 90); err != nil {
		t.Fatal(err)
	}
	if err := p.Set("tab_spaces", 2); err != nil {
		t.Fatal(err)
	}

	got := p.Names()
	want := []string{"max_width", "tab_spaces", "verbose"}
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPartialSetUnknownOption(t *testing.T) {
	p := NewPartialConfig()
	if err := p.Set("does_not_exist", true); err == nil {
		t.Fatal("expected error for unknown option")
	}
}

func TestToTOML(t *testing.T) {
	p := NewPartialConfig()
	for name, value := range map[string]any{
		"max_width":     90,
		"newline_style": "Unix",
		"file_lines":    `[{"file":"a.rs","range":[1,5]}]`,
	} {
		if err := p.Set(name, value); err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
	}

	data, err := p.ToTOML()
	if err != nil {
		t.Fatalf("ToTOML: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "max_width = 90") {
		t.Errorf("output missing max_width: %q", out)
	}
	if !strings.Contains(out, "Unix") {
		t.Errorf("enum not rendered by variant name: %q", out)
	}
	if strings.Contains(out, "file_lines") {
		t.Errorf("file_lines must not appear in file output: %q", out)
	}
}

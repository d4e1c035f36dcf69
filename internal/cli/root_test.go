package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rustfmt.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootPrintsMinimalConfig(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")
	path := writeConfig(t, "max_width = 90\n")

	out, err := execute(t, "--config-path", path, "--print-config", "minimal")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "max_width = 90") {
		t.Errorf("output missing merged value: %q", out)
	}
	if strings.Contains(out, "tab_spaces") {
		t.Errorf("minimal output includes untouched option: %q", out)
	}
}

func TestRootPrintsDefaultConfig(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")

	out, err := execute(t, "--print-config", "default")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"max_width = 100", "tab_spaces = 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("default output missing %q: %q", want, out)
		}
	}
}

func TestRootAppliesOverrides(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")
	path := writeConfig(t, "max_width = 90\n")

	out, err := execute(t, "--config-path", path, "--config", "tab_spaces=2", "--print-config", "minimal")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "tab_spaces = 2") {
		t.Errorf("override not applied: %q", out)
	}
}

func TestRootRejectsBadOverride(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")
	path := writeConfig(t, "max_width = 90\n")

	if _, err := execute(t, "--config-path", path, "--config", "max_width=wat"); err == nil {
		t.Fatal("unparsable override should fail the run")
	}
	if _, err := execute(t, "--config-path", path, "--config", "max_width"); err == nil {
		t.Fatal("override without a value should fail the run")
	}
}

func TestRootMissingExplicitConfig(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")
	missing := filepath.Join(t.TempDir(), "nope.toml")

	if _, err := execute(t, "--config-path", missing); err == nil {
		t.Fatal("missing explicit config file should fail the run")
	}
}

func TestRootStyleEditionFlag(t *testing.T) {
	t.Setenv("CFG_RELEASE_CHANNEL", "stable")
	path := writeConfig(t, "")

	out, err := execute(t, "--config-path", path, "--style-edition", "2024", "--print-config", "current")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "style_edition = '2024'") && !strings.Contains(out, `style_edition = "2024"`) {
		t.Errorf("style edition flag not reflected: %q", out)
	}
}

package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Configuration file names, in precedence order within a directory.
var configFileNames = []string{"rustfmt.toml", ".rustfmt.toml"}

// ErrConfigNotFound is returned when no configuration file can be located.
var ErrConfigNotFound = errors.New("configuration file not found")

// Locate discovers the configuration file governing dir. An explicit path
// wins outright (and missing is then an error); otherwise each directory
// from dir up to the filesystem root is searched, then $XDG_CONFIG_HOME and
// the user's home directory.
func Locate(dir, explicitPath string) (string, error) {
	if path := strings.TrimSpace(explicitPath); path != "" {
		abs, err := filepath.Abs(filepath.Clean(path))
		if err != nil {
			return "", err
		}
		if fileExists(abs) {
			return abs, nil
		}
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, abs)
	}

	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if path, ok := findInDir(current); ok {
			return path, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		if path, ok := findInDir(filepath.Join(xdg, "rustfmt")); ok {
			return path, nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if path, ok := findInDir(home); ok {
			return path, nil
		}
	}

	return "", ErrConfigNotFound
}

// findInDir returns the first configuration file present in dir.
func findInDir(dir string) (string, bool) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

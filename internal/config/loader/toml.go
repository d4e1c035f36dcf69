// Package loader reads configuration files from disk and turns them into
// the sparse overlays the registry merges. File discovery walks from the
// target directory toward the filesystem root, then falls back to the
// user's configuration directory.
package loader

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/Rawk/rustfmt/internal/config"
)

// Load reads and decodes the configuration file at path into a sparse
// overlay. Unknown keys are reported on warn and skipped; syntactically
// invalid TOML or a value of the wrong type fails the load.
func Load(path string, warn io.Writer) (*config.PartialConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data, warn)
}

// Parse decodes configuration file contents into a sparse overlay.
func Parse(path string, data []byte, warn io.Writer) (*config.PartialConfig, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	parsed, err := config.PartialFromMap(raw, warn)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return parsed, nil
}

// ParseError represents a failure to decode a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

package config

import (
	"errors"
	"fmt"
)

// Errors returned by registry operations.
var (
	// ErrUnknownOption indicates the option name is not in the catalog.
	ErrUnknownOption = errors.New("unknown configuration option")

	// ErrTypeMismatch indicates a value has the wrong type for its option.
	ErrTypeMismatch = errors.New("type mismatch")
)

// OverrideError is returned when a raw key=value override cannot be parsed
// into the option's semantic type. Overrides are a deliberate, explicit user
// action, so this is fatal to the run rather than a degradable warning.
type OverrideError struct {
	// Key is the option name the override targeted.
	Key string
	// Value is the raw override text.
	Value string
	// Expected is the option's doc-hint type description.
	Expected string
	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *OverrideError) Error() string {
	return fmt.Sprintf("failed to parse override for %s (%q) as a %s", e.Key, e.Value, e.Expected)
}

// Unwrap returns the underlying error.
func (e *OverrideError) Unwrap() error {
	return e.Err
}

// ValueError describes a value that cannot be decoded for an option.
type ValueError struct {
	// Option is the option name.
	Option string
	// Expected is the expected type description.
	Expected string
	// Actual describes the rejected value.
	Actual string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: expected %s, got %s", e.Option, e.Expected, e.Actual)
}

// Is implements error matching for ValueError.
func (e *ValueError) Is(target error) bool {
	return target == ErrTypeMismatch
}

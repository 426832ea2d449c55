// errors.go - Error taxonomy for configuration and click-time failures
package main

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is through the typed errors below.
var (
	// ErrMissingImageBase is returned when no image base is configured.
	ErrMissingImageBase = errors.New("no image base specified")

	// ErrInvalidSortOrder is returned for a default sort order other than ascending or descending.
	ErrInvalidSortOrder = errors.New("invalid default sort order")

	// ErrInvalidExclusion is returned when an exclusion rule cannot be compiled.
	ErrInvalidExclusion = errors.New("invalid row exclusion rule")

	// ErrNoSortableRows is returned when the exclusion predicate removes every level-1 row.
	ErrNoSortableRows = errors.New("exclusion removed all sortable rows")

	// ErrNotInitialized is returned by Reinit when Init never succeeded.
	ErrNotInitialized = errors.New("sorter was never initialized")

	// ErrInvalidColumn is returned when a click targets a column outside the header.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrNoTable is returned when an HTML document holds no usable table.
	ErrNoTable = errors.New("no table found")
)

// ConfigError reports a missing or invalid option. It is returned before
// the table is touched.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("sortable table config: %v", e.Err)
	}
	return fmt.Sprintf("sortable table config: %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// RuntimeError reports a failed click. No rows were moved.
type RuntimeError struct {
	Op  string
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("sortable table %s: %v", e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func configErrorf(option string, sentinel error, format string, args ...any) error {
	if format == "" {
		return &ConfigError{Option: option, Err: sentinel}
	}
	return &ConfigError{Option: option, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

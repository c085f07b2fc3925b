package config

import (
	"fmt"
	"strings"
)

// Optional is a value that may be absent.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Config is the resolved reconciliation configuration.
type Config struct {
	// Dir is the directory whose immediate children are listed
	Dir string

	// ExpectedFile is the expected-list file read in check mode and written in generate mode
	ExpectedFile string

	// Suffixes filters the listing; empty means no filter
	Suffixes []string

	// SnapshotFile receives the current listing when check mode finds a mismatch
	SnapshotFile Optional[string]

	// Generate selects generate mode instead of check mode
	Generate bool
}

// String returns a string representation of the configuration
func (c Config) String() string {
	snapshot := "<none>"
	if path, ok := c.SnapshotFile.Get(); ok {
		snapshot = path
	}
	return fmt.Sprintf(
		"Config{Dir: %s, ExpectedFile: %s, Suffixes: %v, SnapshotFile: %s, Generate: %v}",
		c.Dir, c.ExpectedFile, c.Suffixes, snapshot, c.Generate,
	)
}

// MissingOptionsError reports required options that were not supplied.
type MissingOptionsError struct {
	Missing []Option
}

func (e *MissingOptionsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, opt := range e.Missing {
		names[i] = string(opt)
	}
	return fmt.Sprintf("missing required input: [%s]", strings.Join(names, ", "))
}

package core

import (
	"errors"
	"fmt"
)

// Rules violated by a structurally invalid catalog.
var (
	ErrEmptyID     = errors.New("document id is empty")
	ErrDuplicateID = errors.New("duplicate document id")
	ErrNoTriggers  = errors.New("document has no triggers")
)

// ErrNotFound is returned by content loaders for unknown document ids.
var ErrNotFound = errors.New("document not found")

// ConfigError reports a structurally invalid catalog entry.
// Construction aborts on the first violation; the error carries the
// offending document id and the specific rule so the catalog can be fixed.
type ConfigError struct {
	ID   string
	Rule error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid catalog entry %q: %v", e.ID, e.Rule)
}

func (e *ConfigError) Unwrap() error {
	return e.Rule
}

// PatternError reports an auto-trigger glob that cannot be parsed.
// Raised at catalog load time, never deferred to match time.
type PatternError struct {
	ID      string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid trigger pattern %q on document %q: %v", e.Pattern, e.ID, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

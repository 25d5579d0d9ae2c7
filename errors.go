// FILE: strata/errors.go
package strata

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions callers commonly branch on with errors.Is.
var (
	// ErrConfigNotFound indicates no configuration file could be located.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrAlreadyInitialized indicates Init was called on an already
	// initialized process-wide configuration.
	ErrAlreadyInitialized = errors.New("global config already initialized")

	// ErrNotInitialized indicates Reload was called before any global
	// configuration was loaded.
	ErrNotInitialized = errors.New("global config not initialized")
)

// ParseError reports a malformed document. The wrapped parser error carries
// the parser's own location information.
type ParseError struct {
	Path   string // File that failed to parse
	Format string // Detected or requested format, empty if undetermined
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to parse config file '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse %s config file '%s': %v", strings.ToUpper(e.Format), e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFileError reports a root document or extends entry that does not
// exist on disk.
type MissingFileError struct {
	Path         string // Missing file
	ReferencedBy string // File whose extends entry named it, empty for the root document
}

func (e *MissingFileError) Error() string {
	if e.ReferencedBy == "" {
		return fmt.Sprintf("config file not found: %s", e.Path)
	}
	return fmt.Sprintf("config file not found: %s (extended by %s)", e.Path, e.ReferencedBy)
}

func (e *MissingFileError) Is(target error) bool { return target == ErrConfigNotFound }

// CyclicExtendsError reports an extends chain that revisits a file already
// on the active resolution stack.
type CyclicExtendsError struct {
	Cycle []string // Resolution order, first and last entries are the same file
}

func (e *CyclicExtendsError) Error() string {
	return "cyclic extends chain: " + strings.Join(e.Cycle, " -> ")
}

// ExtendsError reports a malformed extends value: anything other than a
// sequence of file path strings.
type ExtendsError struct {
	Path   string // File declaring the extends key
	Reason string
}

func (e *ExtendsError) Error() string {
	return fmt.Sprintf("invalid extends in %s: %s", e.Path, e.Reason)
}

// KeyNotFoundError reports a lookup of a key absent from the merged tree.
type KeyNotFoundError struct {
	Path string // Full dotted path attempted
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Path)
}

// TypeMismatchError reports a value whose shape does not fit the requested
// operation, such as descending through a scalar or converting a mapping
// to an integer.
type TypeMismatchError struct {
	Path string // Dotted path of the offending node
	Want string // Shape or type the operation required
	Got  any    // Actual value found
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %s: want %s, got %T", e.Path, e.Want, e.Got)
}

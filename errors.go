package matchas

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/coregx/matchas/internal/engine"
)

// Common errors. Typed errors below match these with errors.Is.
var (
	// ErrInvalidPattern indicates the pattern text could not be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrTypeMismatch indicates a source's element type differs from the
	// pattern's character type.
	ErrTypeMismatch = errors.New("source element type does not match pattern character type")

	// ErrUnsupportedResultType indicates no converter is registered for the
	// requested result type.
	ErrUnsupportedResultType = errors.New("unsupported result type")

	// ErrDuplicateConverter indicates a converter is already registered for
	// the result type.
	ErrDuplicateConverter = errors.New("converter already registered")
)

// PatternError reports a pattern rejected by the engine.
type PatternError struct {
	Pattern string
	Engine  engine.Kind
	Err     error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("matchas: %s: compiling %q: %v", e.Engine, e.Pattern, e.Err)
}

// Unwrap returns the engine error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidPattern as a match
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// TypeMismatchError reports a source that cannot be searched by a pattern
// of the given character type.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("matchas: cannot search %v with a pattern over %v", e.Got, e.Want)
}

// Is reports ErrTypeMismatch as a match
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnsupportedResultTypeError reports a conversion request with no registered
// strategy.
type UnsupportedResultTypeError struct {
	Type reflect.Type
}

// Error implements the error interface
func (e *UnsupportedResultTypeError) Error() string {
	return fmt.Sprintf("matchas: no conversion to %v", e.Type)
}

// Is reports ErrUnsupportedResultType as a match
func (e *UnsupportedResultTypeError) Is(target error) bool {
	return target == ErrUnsupportedResultType
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("matchas: invalid config field %s: %s", e.Field, e.Message)
}

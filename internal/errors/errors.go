// Package errors provides the error taxonomy for fsops operations.
//
// Every failure an operation reports carries a Kind so callers can tell
// a missing path from a permission problem without reading the logs:
// - Not found / already exists pre-conditions
// - Permission and generic I/O failures
// - Traversal guards (depth, cycle)
// - Multi-error accumulation for tree operations
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies why an operation failed.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindAlreadyExists
	KindPermission
	KindIO
	KindInvalidName
	KindUnsupported
	KindDepthExceeded
	KindCycle
	KindIncomplete
	KindCanceled
)

//nolint:gochecknoglobals // Lookup table for Kind names
var kindNames = map[Kind]string{
	KindNone:          "none",
	KindNotFound:      "not_found",
	KindAlreadyExists: "already_exists",
	KindPermission:    "permission",
	KindIO:            "io",
	KindInvalidName:   "invalid_name",
	KindUnsupported:   "unsupported",
	KindDepthExceeded: "depth_exceeded",
	KindCycle:         "cycle",
	KindIncomplete:    "incomplete",
	KindCanceled:      "canceled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error categories for fsops operations
var (
	ErrNotFound      = errors.New("entry not found")
	ErrAlreadyExists = errors.New("entry already exists")
	ErrPermission    = errors.New("permission denied")
	ErrIO            = errors.New("i/o error")
	ErrInvalidName   = errors.New("invalid entry name")
	ErrUnsupported   = errors.New("unsupported entry type")
	ErrDepthExceeded = errors.New("maximum traversal depth exceeded")
	ErrCycle         = errors.New("traversal cycle detected")
	ErrIncomplete    = errors.New("operation left incomplete")
	ErrCanceled      = errors.New("operation canceled")
	ErrConfiguration = errors.New("configuration error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindPermission:
		return ErrPermission
	case KindIO:
		return ErrIO
	case KindInvalidName:
		return ErrInvalidName
	case KindUnsupported:
		return ErrUnsupported
	case KindDepthExceeded:
		return ErrDepthExceeded
	case KindCycle:
		return ErrCycle
	case KindIncomplete:
		return ErrIncomplete
	case KindCanceled:
		return ErrCanceled
	default:
		return nil
	}
}

// OperationError records a failed operation on a path.
type OperationError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// New creates an operation error of the given kind.
func New(op, path string, kind Kind, err error) *OperationError {
	return &OperationError{
		Op:   op,
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

// Wrap creates an operation error whose kind is derived from err.
func Wrap(op, path string, err error) *OperationError {
	return New(op, path, KindOf(err), err)
}

// KindOf classifies an error. OperationErrors report their own kind,
// raw file system errors are mapped by their fs sentinel.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}

	var multi *MultiError
	if errors.As(err, &multi) && len(multi.Errors) > 0 {
		return KindOf(multi.Errors[0])
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindIO
	}
}

// IsNotFound checks if an error represents a missing entry
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsAlreadyExists checks if an error represents a name collision
func IsAlreadyExists(err error) bool {
	return KindOf(err) == KindAlreadyExists
}

// IsPrecondition reports whether err is a pre-condition failure,
// which operations return without logging.
func IsPrecondition(err error) bool {
	switch KindOf(err) {
	case KindAlreadyExists, KindInvalidName:
		return true
	default:
		return false
	}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

func (e *MultiError) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e *MultiError) As(target any) bool {
	for _, err := range e.Errors {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// NewMultiError creates a new multi-error from a slice of errors
func NewMultiError(errs []error) *MultiError {
	var filteredErrors []error
	for _, err := range errs {
		if err != nil {
			filteredErrors = append(filteredErrors, err)
		}
	}
	return &MultiError{Errors: filteredErrors}
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return NewMultiError(nonNilErrors)
}

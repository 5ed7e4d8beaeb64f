// FILE: lixenwraith/configure/errors.go
package configure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocRoot is matched by every failure of the docRoot check.
	// A missing path, a path that is not a directory and a path whose
	// metadata could not be read are deliberately not told apart.
	ErrInvalidDocRoot = errors.New("invalid document root")

	// ErrValidation wraps failures reported by registered validators.
	ErrValidation = errors.New("configuration validation failed")

	// ErrKeyNotSet is returned by accessors for keys absent from a Document.
	ErrKeyNotSet = errors.New("key not set")

	// ErrInvalidAssignment is returned by ParseAssignment for malformed input.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrUnknownFormat is returned by Encode for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")

	errNoResult = errors.New("result holds no configuration")
)

// invalidDocRootFormat is the diagnostic written when the docRoot check fails.
const invalidDocRootFormat = "** %s does not exist or is not a directory!! **"

// InvalidDocRootError describes a rejected docRoot.
type InvalidDocRootError struct {
	Path   string
	Reason string
}

func newInvalidDocRootError(path string) *InvalidDocRootError {
	return &InvalidDocRootError{
		Path:   path,
		Reason: fmt.Sprintf(invalidDocRootFormat, path),
	}
}

func (e *InvalidDocRootError) Error() string {
	return e.Reason
}

// Unwrap exposes ErrInvalidDocRoot. The filesystem error that triggered the
// failure is intentionally not part of the chain.
func (e *InvalidDocRootError) Unwrap() error {
	return ErrInvalidDocRoot
}

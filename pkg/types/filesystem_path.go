// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is an absolute or relative path given on the command line
	// or in a config file. The zero value means "not given"; a given path must
	// not be whitespace-only.
	FilesystemPath string

	// InvalidFilesystemPathError is returned for a whitespace-only path.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the path.
func (p FilesystemPath) String() string { return string(p) }

// IsSet reports whether a path was given.
func (p FilesystemPath) IsSet() bool { return p != "" }

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }

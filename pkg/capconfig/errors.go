// SPDX-License-Identifier: MPL-2.0

package capconfig

import (
	"errors"
	"fmt"
)

const (
	// MissingToolkit means no SDK path could be resolved for a cap.
	MissingToolkit ErrorKind = iota + 1
	// InvalidToolkitPath means a toolkit path does not exist on disk.
	InvalidToolkitPath
	// NoCapsReferenced means the model has no caps.
	NoCapsReferenced
	// MissingOutput means a cap has a blank output path.
	MissingOutput
	// MissingAppletClass means an applet has a blank class name.
	MissingAppletClass
	// MissingImportFields means a local import lacks its exports or jar path.
	MissingImportFields
)

var (
	// ErrMissingToolkit is the sentinel wrapped by ConfigError for MissingToolkit.
	ErrMissingToolkit = errors.New("toolkit path is not set")
	// ErrInvalidToolkitPath is the sentinel wrapped by ConfigError for InvalidToolkitPath.
	ErrInvalidToolkitPath = errors.New("toolkit path does not exist")
	// ErrNoCapsReferenced is the sentinel wrapped by ConfigError for NoCapsReferenced.
	ErrNoCapsReferenced = errors.New("no caps were referenced")
	// ErrMissingOutput is the sentinel wrapped by ConfigError for MissingOutput.
	ErrMissingOutput = errors.New("cap output is required")
	// ErrMissingAppletClass is the sentinel wrapped by ConfigError for MissingAppletClass.
	ErrMissingAppletClass = errors.New("applet class is required")
	// ErrMissingImportFields is the sentinel wrapped by ConfigError for MissingImportFields.
	ErrMissingImportFields = errors.New("local import requires exps and jar")

	// ErrInvalidErrorKind is returned when an ErrorKind value is not recognized.
	ErrInvalidErrorKind = errors.New("invalid error kind")

	kindNames = map[ErrorKind]string{
		MissingToolkit:      "missing-toolkit",
		InvalidToolkitPath:  "invalid-toolkit-path",
		NoCapsReferenced:    "no-caps-referenced",
		MissingOutput:       "missing-output",
		MissingAppletClass:  "missing-applet-class",
		MissingImportFields: "missing-import-fields",
	}

	kindSentinels = map[ErrorKind]error{
		MissingToolkit:      ErrMissingToolkit,
		InvalidToolkitPath:  ErrInvalidToolkitPath,
		NoCapsReferenced:    ErrNoCapsReferenced,
		MissingOutput:       ErrMissingOutput,
		MissingAppletClass:  ErrMissingAppletClass,
		MissingImportFields: ErrMissingImportFields,
	}
)

type (
	// ErrorKind classifies a validation failure.
	ErrorKind int

	// ConfigError is the single error type returned by Validate. It wraps the
	// sentinel for its Kind so callers can use errors.Is.
	//
	// Cap and Index are zero-based positions in insertion order, or -1 when
	// they do not apply. Index is the applet index for MissingAppletClass and
	// the import index for MissingImportFields.
	ConfigError struct {
		Kind  ErrorKind
		Cap   int
		Index int
		// Path is the absolute toolkit path for InvalidToolkitPath.
		Path string
		// EnvVar is the toolkit variable consulted for MissingToolkit.
		EnvVar string
	}
)

// String returns the kebab-case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// IsValid reports whether k is one of the defined kinds.
func (k ErrorKind) IsValid() (bool, []error) {
	if _, ok := kindNames[k]; ok {
		return true, nil
	}
	return false, []error{fmt.Errorf("%w: %d", ErrInvalidErrorKind, int(k))}
}

// ParseErrorKind returns the kind with the given kebab-case name.
func ParseErrorKind(name string) (ErrorKind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidErrorKind, name)
}

// ErrorKinds returns every defined kind in declaration order.
func ErrorKinds() []ErrorKind {
	return []ErrorKind{
		MissingToolkit,
		InvalidToolkitPath,
		NoCapsReferenced,
		MissingOutput,
		MissingAppletClass,
		MissingImportFields,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch e.Kind {
	case MissingToolkit:
		envVar := e.EnvVar
		if envVar == "" {
			envVar = ToolkitEnvVar
		}
		if e.Cap < 0 {
			return fmt.Sprintf("jckit is not set and %s is not defined", envVar)
		}
		return fmt.Sprintf("caps[%d]: jckit is not set and %s is not defined", e.Cap, envVar)
	case InvalidToolkitPath:
		return fmt.Sprintf("jckit %s does not exist", e.Path)
	case NoCapsReferenced:
		return "no caps were referenced"
	case MissingOutput:
		return fmt.Sprintf("caps[%d].output: output is required", e.Cap)
	case MissingAppletClass:
		return fmt.Sprintf("caps[%d].applets[%d].class: applet class is required", e.Cap, e.Index)
	case MissingImportFields:
		return fmt.Sprintf("caps[%d].dependencies.local[%d]: exps and jar are both required", e.Cap, e.Index)
	default:
		return fmt.Sprintf("invalid configuration (%s)", e.Kind)
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *ConfigError) Unwrap() error {
	return kindSentinels[e.Kind]
}

func newCapError(kind ErrorKind, capIdx, idx int) *ConfigError {
	return &ConfigError{Kind: kind, Cap: capIdx, Index: idx}
}

func newPathError(capIdx int, path string) *ConfigError {
	return &ConfigError{Kind: InvalidToolkitPath, Cap: capIdx, Index: -1, Path: path}
}

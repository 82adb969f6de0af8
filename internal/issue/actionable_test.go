// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load build file"},
			expected: "failed to load build file",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load build file", Resource: "./jcbuild.cue"},
			expected: "failed to load build file: ./jcbuild.cue",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load config", Cause: errors.New("bad syntax")},
			expected: "failed to load config: bad syntax",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "validate build file",
				Resource:  "./jcbuild.cue",
				Cause:     errors.New("no caps were referenced"),
			},
			expected: "failed to validate build file: ./jcbuild.cue: no caps were referenced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := &ActionableError{Operation: "x", Cause: fmt.Errorf("wrapped: %w", sentinel)}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through the cause chain")
	}
	if (&ActionableError{Operation: "x"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil without a cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("root cause")
	err := &ActionableError{
		Operation:   "validate build file",
		Resource:    "jcbuild.cue",
		Suggestions: []string{"first hint", "second hint"},
		Cause:       fmt.Errorf("middle: %w", root),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "\n  • first hint\n  • second hint") {
		t.Errorf("Format(false) missing suggestions:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include the chain:\n%s", plain)
	}

	verbose := err.Format(true)
	for _, want := range []string{"Error chain:", "1. middle: root cause", "2. root cause"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, verbose)
		}
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
}

func TestErrorContext(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	ae := NewErrorContext().
		WithOperation("load build file").
		WithResource("jcbuild.toml").
		WithSuggestion("one").
		WithSuggestions("two", "three").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "load build file" || ae.Resource != "jcbuild.toml" || !errors.Is(ae, cause) {
		t.Errorf("Build() = %+v", ae)
	}
	if got := strings.Join(ae.Suggestions, ","); got != "one,two,three" {
		t.Errorf("Suggestions = %q", got)
	}

	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
	err := WrapWithContext(errors.New("boom"), "read config", "config.cue")
	if err.Error() != "failed to read config: config.cue: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

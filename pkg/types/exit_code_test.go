// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "success", value: ExitSuccess, wantValid: true},
		{name: "invalid build", value: ExitInvalidBuild, wantValid: true},
		{name: "bad build file", value: ExitBadBuildFile, wantValid: true},
		{name: "255", value: 255, wantValid: true},
		{name: "negative", value: -1},
		{name: "256", value: 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Fatalf("ExitCode(%d).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if err != nil && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("error does not wrap ErrInvalidExitCode: %v", err)
			}
		})
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	if got := ExitInvalidBuild.String(); got != "2" {
		t.Errorf("String() = %q, want 2", got)
	}
	if !ExitSuccess.IsSuccess() || ExitFailure.IsSuccess() {
		t.Error("IsSuccess() mismatch")
	}
}

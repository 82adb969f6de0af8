// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"

	"github.com/jcbuild/jcbuild/internal/testutil/captest"
	"github.com/jcbuild/jcbuild/pkg/capconfig"
)

func TestValues_OrderedAndComplete(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != int(MissingImportFieldsId) {
		t.Fatalf("len(Values()) = %d, want %d", len(values), MissingImportFieldsId)
	}
	names := make(map[string]bool)
	for i, v := range values {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if names[v.Name()] {
			t.Errorf("duplicate name %q", v.Name())
		}
		names[v.Name()] = true
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("%s has no guidance", v.Name())
		}
		if len(v.Suggestions()) == 0 {
			t.Errorf("%s has no suggestions", v.Name())
		}
	}
}

func TestForKind_CoversEveryKind(t *testing.T) {
	t.Parallel()

	for _, kind := range capconfig.ErrorKinds() {
		entry := ForKind(kind)
		if entry == nil {
			t.Errorf("ForKind(%s) = nil", kind)
			continue
		}
		if entry.Name() != kind.String() {
			t.Errorf("ForKind(%s).Name() = %q", kind, entry.Name())
		}
		if Lookup(kind.String()) != entry {
			t.Errorf("Lookup(%q) does not match ForKind", kind)
		}
	}
	if Lookup("nope") != nil {
		t.Error("Lookup(unknown) should return nil")
	}
}

func TestIssue_SuggestionsAreCopied(t *testing.T) {
	t.Parallel()

	entry := Get(MissingToolkitId)
	s := entry.Suggestions()
	s[0] = "changed"
	if entry.Suggestions()[0] == "changed" {
		t.Error("Suggestions() should return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(MissingImportFieldsId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Local import is incomplete") {
		t.Errorf("Render() output missing heading:\n%s", out)
	}
}

func TestFromValidation(t *testing.T) {
	t.Parallel()

	cfgErr := &capconfig.ConfigError{Kind: capconfig.MissingOutput, Cap: 0, Index: -1}
	err := FromValidation(cfgErr, "jcbuild.cue")

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("FromValidation() = %T, want *ActionableError", err)
	}
	if !errors.Is(err, capconfig.ErrMissingOutput) {
		t.Error("wrapped error should still match ErrMissingOutput")
	}
	if ae.Resource != "jcbuild.cue" {
		t.Errorf("Resource = %q", ae.Resource)
	}
	last := ae.Suggestions[len(ae.Suggestions)-1]
	if last != "Run 'jcbuild explain missing-output' for details" {
		t.Errorf("last suggestion = %q", last)
	}

	plain := errors.New("plain")
	if got := FromValidation(plain, "x"); got != plain {
		t.Errorf("FromValidation(plain) = %v, want unchanged", got)
	}
	if FromValidation(nil, "x") != nil {
		t.Error("FromValidation(nil) should be nil")
	}
}

func TestFromValidation_ValidatorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *capconfig.RootConfig
		env  capconfig.MapEnvironment
		want string
	}{
		{
			name: "missing toolkit",
			cfg:  captest.NewBuild(captest.WithCap("out/a.cap")),
			env:  capconfig.MapEnvironment{},
			want: "missing-toolkit",
		},
		{
			name: "missing applet class",
			cfg:  captest.NewBuild(captest.WithCap("out/a.cap", captest.WithApplet(" "))),
			env:  capconfig.MapEnvironment{capconfig.ToolkitEnvVar: "/opt/jc305u3"},
			want: "missing-applet-class",
		},
		{
			name: "incomplete import",
			cfg:  captest.NewBuild(captest.WithCap("out/a.cap", captest.WithLocalImport("libs/exp", ""))),
			env:  capconfig.MapEnvironment{capconfig.ToolkitEnvVar: "/opt/jc305u3"},
			want: "missing-import-fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := capconfig.Validate(tt.cfg, capconfig.NewMapFilesystem("/work"), tt.env)
			err := FromValidation(verr, "jcbuild.cue")

			var ae *ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("FromValidation() = %T, want *ActionableError", err)
			}
			want := "Run 'jcbuild explain " + tt.want + "' for details"
			if last := ae.Suggestions[len(ae.Suggestions)-1]; last != want {
				t.Errorf("last suggestion = %q, want %q", last, want)
			}
			if Lookup(tt.want) == nil {
				t.Errorf("suggested issue %q is not in the catalog", tt.want)
			}
		})
	}
}

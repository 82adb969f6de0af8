// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/jcbuild/jcbuild/internal/issue"
	"github.com/jcbuild/jcbuild/pkg/capconfig"
)

func TestExplainCommand_List(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "explain")
	if res.err != nil {
		t.Fatalf("explain error = %v", res.err)
	}

	var names []string
	for _, line := range strings.Split(res.stdout, "\n") {
		if strings.HasPrefix(line, "  ") {
			names = append(names, strings.TrimSpace(line))
		}
	}
	if len(names) != len(issue.Values()) {
		t.Errorf("listed %d issues, want %d:\n%s", len(names), len(issue.Values()), res.stdout)
	}

	kinds := capconfig.ErrorKinds()
	for i, kind := range kinds {
		if names[i] != kind.String() {
			t.Errorf("names[%d] = %q, want %q", i, names[i], kind)
		}
	}
	if names[len(kinds)] != "build-file-not-found" {
		t.Errorf("first other issue = %q", names[len(kinds)])
	}
}

func TestLookupIssue(t *testing.T) {
	t.Parallel()

	for _, kind := range capconfig.ErrorKinds() {
		if got := lookupIssue(kind.String()); got != issue.ForKind(kind) {
			t.Errorf("lookupIssue(%q) = %v, want the %s entry", kind, got, kind)
		}
	}
	if got := lookupIssue("config-load-failed"); got != issue.Get(issue.ConfigLoadFailedId) {
		t.Errorf("lookupIssue(config-load-failed) = %v", got)
	}
	if got := lookupIssue("nope"); got != nil {
		t.Errorf("lookupIssue(nope) = %v, want nil", got)
	}
}

func TestExplainCommand_Render(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "explain", "missing-output")
	if res.err != nil {
		t.Fatalf("explain error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Cap output is required") {
		t.Errorf("rendered guidance missing heading:\n%s", res.stdout)
	}
}

func TestExplainCommand_Unknown(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "explain", "nope")
	if res.err == nil || !strings.Contains(res.err.Error(), "unknown issue") {
		t.Errorf("error = %v, want unknown issue", res.err)
	}
}

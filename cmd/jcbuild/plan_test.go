// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/jcbuild/jcbuild/internal/testutil/captest"
	"github.com/jcbuild/jcbuild/pkg/capconfig"

	"github.com/google/go-cmp/cmp"
)

func TestPlanCommand_Text(t *testing.T) {
	t.Parallel()

	path, sdk := writeBuildFile(t, walletBuild)

	res := runCLI(t, Dependencies{}, "plan", path)
	if res.err != nil {
		t.Fatalf("plan error = %v\nstderr: %s", res.err, res.stderr)
	}
	for _, want := range []string{
		"toolkit: " + sdk,
		"install: --force 'a b'",
		"caps[0] out/wallet.cap",
		"package: com.example.wallet",
		"verify=true debug=false ints=false",
		"applet com.example.wallet.Wallet (A00000006203010101)",
		"import libs/exp libs/crypto.jar",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestPlanCommand_TOMLRoundTrip(t *testing.T) {
	t.Parallel()

	path, _ := writeBuildFile(t, walletBuild)

	res := runCLI(t, Dependencies{}, "plan", path, "--format", "toml")
	if res.err != nil {
		t.Fatalf("plan error = %v\nstderr: %s", res.err, res.stderr)
	}

	want, err := capconfig.Load(capconfig.OSFilesystem{}, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := capconfig.Validate(want, capconfig.OSFilesystem{}, capconfig.MapEnvironment{}); err != nil {
		t.Fatal(err)
	}

	got, err := capconfig.LoadBytes([]byte(res.stdout), "plan.toml")
	if err != nil {
		t.Fatalf("plan output is not a loadable build file: %v\n%s", err, res.stdout)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanCommand_InvalidFormat(t *testing.T) {
	t.Parallel()

	path, _ := writeBuildFile(t, walletBuild)

	res := runCLI(t, Dependencies{}, "plan", path, "--format", "yaml")
	if !errors.Is(res.err, ErrInvalidPlanFormat) {
		t.Errorf("error = %v, want ErrInvalidPlanFormat", res.err)
	}
}

func TestQuoteArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: ""},
		{args: []string{"-v"}, want: "-v"},
		{args: []string{"--params", "a b"}, want: "--params 'a b'"},
		{args: []string{"$HOME"}, want: "'$HOME'"},
	}

	for _, tt := range tests {
		got, err := quoteArgs(tt.args)
		if err != nil {
			t.Fatalf("quoteArgs(%q) error = %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("quoteArgs(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRenderPlanText_MinimalCap(t *testing.T) {
	t.Parallel()

	model := captest.NewBuild(captest.WithCap("out/min.cap"))
	v := &capconfig.Validator{
		FS:  capconfig.NewMapFilesystem("/work"),
		Env: capconfig.MapEnvironment{capconfig.ToolkitEnvVar: "/opt/jc222"},
	}
	if err := v.Validate(model); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := renderPlanText(&buf, &buildTarget{path: "jcbuild.cue", model: model, validator: v}); err != nil {
		t.Fatalf("renderPlanText() error = %v", err)
	}
	out := buf.String()
	for _, unwanted := range []string{"install:", "class path:", "package:", "applet ", "import "} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output should omit %q:\n%s", unwanted, out)
		}
	}
	if !strings.Contains(out, "toolkit: /opt/jc222") {
		t.Errorf("output missing toolkit from environment:\n%s", out)
	}
}

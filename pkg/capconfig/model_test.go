// SPDX-License-Identifier: MPL-2.0

package capconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRootConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewRootConfig()
	if !cfg.AddSurrogateSimulatorRepo || !cfg.AddImplicitSimulatorTestDeps {
		t.Errorf("flags should default to true, got %+v", cfg)
	}
	if len(cfg.Caps) != 0 || len(cfg.InstallArgs) != 0 || cfg.ToolkitPath != "" {
		t.Errorf("new config should be empty, got %+v", cfg)
	}
}

func TestRootConfig_Builders(t *testing.T) {
	t.Parallel()

	cfg := NewRootConfig()
	cfg.SetToolkitPath("sdk")
	cfg.SetToolkitPath("sdk2")
	cfg.SetClassPath("ant-javacard.jar")
	cfg.SetLogLevel("DEBUG")
	cfg.AddInstallArg("--force")
	cfg.AddInstallArg("--default")

	first := cfg.AddCap()
	first.SetOutput("first.cap")
	applet := first.AddApplet()
	applet.SetClassName("com.example.A")
	applet.SetClassName("com.example.B")
	imp := first.Dependency().AddLocalImport()
	imp.SetExportsPath("libs/exp")
	imp.SetJarPath("libs/lib.jar")
	if first.Dependency() != first.Dependencies {
		t.Error("Dependency() should return the existing block")
	}

	second := cfg.AddCap()
	second.SetToolkitPath("sdk3")

	want := &RootConfig{
		ToolkitPath: "sdk2",
		ClassPath:   "ant-javacard.jar",
		LogLevel:    "DEBUG",
		InstallArgs: []string{"--force", "--default"},
		Caps: []*CapSpec{
			{
				Output:  "first.cap",
				Verify:  true,
				Applets: []*AppletSpec{{ClassName: "com.example.B"}},
				Dependencies: &DependencySpec{
					LocalImports: []*LocalImportSpec{{ExportsPath: "libs/exp", JarPath: "libs/lib.jar"}},
				},
			},
			{ToolkitPath: "sdk3", Verify: true},
		},
		AddSurrogateSimulatorRepo:    true,
		AddImplicitSimulatorTestDeps: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestRootConfig_AddCapReturnsOwnedHandle(t *testing.T) {
	t.Parallel()

	cfg := NewRootConfig()
	a := cfg.AddCap()
	b := cfg.AddCap()
	a.SetOutput("a.cap")
	b.SetOutput("b.cap")

	if cfg.Caps[0] != a || cfg.Caps[1] != b {
		t.Fatal("AddCap() should append in insertion order and return the stored cap")
	}
	if cfg.Caps[0].Output != "a.cap" || cfg.Caps[1].Output != "b.cap" {
		t.Errorf("outputs = %q, %q", cfg.Caps[0].Output, cfg.Caps[1].Output)
	}
}

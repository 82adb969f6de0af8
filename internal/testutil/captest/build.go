// SPDX-License-Identifier: MPL-2.0

package captest

import "github.com/jcbuild/jcbuild/pkg/capconfig"

type (
	// BuildOption configures a test build.
	BuildOption func(*capconfig.RootConfig)

	// CapOption configures a cap added with WithCap.
	CapOption func(*capconfig.CapSpec)
)

// NewBuild returns a model created with capconfig.NewRootConfig and
// populated by opts in order.
func NewBuild(opts ...BuildOption) *capconfig.RootConfig {
	cfg := capconfig.NewRootConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithToolkit sets the root toolkit path.
func WithToolkit(path string) BuildOption {
	return func(c *capconfig.RootConfig) {
		c.SetToolkitPath(path)
	}
}

// WithInstallArgs appends installer arguments.
func WithInstallArgs(args ...string) BuildOption {
	return func(c *capconfig.RootConfig) {
		for _, a := range args {
			c.AddInstallArg(a)
		}
	}
}

// WithCap appends a cap with the given output.
func WithCap(output string, opts ...CapOption) BuildOption {
	return func(c *capconfig.RootConfig) {
		spec := c.AddCap()
		spec.SetOutput(output)
		for _, opt := range opts {
			opt(spec)
		}
	}
}

// WithCapToolkit sets the cap's own toolkit path.
func WithCapToolkit(path string) CapOption {
	return func(s *capconfig.CapSpec) {
		s.SetToolkitPath(path)
	}
}

// WithPackage sets the cap's package name and AID.
func WithPackage(name, aid string) CapOption {
	return func(s *capconfig.CapSpec) {
		s.PackageName = name
		s.AID = aid
	}
}

// WithApplet appends an applet with the given class.
func WithApplet(class string) CapOption {
	return func(s *capconfig.CapSpec) {
		s.AddApplet().SetClassName(class)
	}
}

// WithLocalImport appends a local import.
func WithLocalImport(exps, jar string) CapOption {
	return func(s *capconfig.CapSpec) {
		imp := s.Dependency().AddLocalImport()
		imp.SetExportsPath(exps)
		imp.SetJarPath(jar)
	}
}

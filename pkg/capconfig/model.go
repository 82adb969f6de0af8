// SPDX-License-Identifier: MPL-2.0

package capconfig

type (
	// RootConfig is the top-level build declaration. The zero value is usable,
	// but NewRootConfig applies the flag defaults a build file would get.
	RootConfig struct {
		// ToolkitPath is the root-level default SDK location. Blank means unset.
		ToolkitPath string `toml:"jckit,omitempty"`
		// Caps are the build units in insertion order.
		Caps []*CapSpec `toml:"caps"`
		// InstallArgs are passed through verbatim to the installer.
		InstallArgs []string `toml:"install_args,omitempty"`
		// ClassPath is the toolkit task classpath handed to the packager.
		ClassPath string `toml:"class_path,omitempty"`
		// LogLevel is the packager log level.
		LogLevel string `toml:"log_level,omitempty"`
		// AddSurrogateSimulatorRepo adds the simulator artifact repository to the build.
		AddSurrogateSimulatorRepo bool `toml:"add_surrogate_simulator_repo"`
		// AddImplicitSimulatorTestDeps adds simulator and unit test dependencies to the test classpath.
		AddImplicitSimulatorTestDeps bool `toml:"add_implicit_simulator_test_deps"`
	}

	// CapSpec is one buildable package. It is owned by exactly one RootConfig.
	CapSpec struct {
		// ToolkitPath overrides the SDK location for this cap. Empty means no override.
		ToolkitPath string `toml:"jckit,omitempty"`
		// Output is the cap file to produce. Required.
		Output string `toml:"output,omitempty"`
		// Applets are the applet classes in declaration order.
		Applets []*AppletSpec `toml:"applets,omitempty"`
		// Dependencies is nil when the cap declares none.
		Dependencies *DependencySpec `toml:"dependencies,omitempty"`

		PackageName string `toml:"package,omitempty"`
		AID         string `toml:"aid,omitempty"`
		Version     string `toml:"version,omitempty"`
		Sources     string `toml:"sources,omitempty"`
		Export      string `toml:"export,omitempty"`
		TargetSDK   string `toml:"target_sdk,omitempty"`
		Verify      bool   `toml:"verify"`
		Debug       bool   `toml:"debug"`
		Ints        bool   `toml:"ints"`
	}

	// AppletSpec is an on-card applet class inside a cap.
	AppletSpec struct {
		ClassName string `toml:"class,omitempty"`
		AID       string `toml:"aid,omitempty"`
	}

	// DependencySpec lists what a cap links against.
	DependencySpec struct {
		LocalImports []*LocalImportSpec `toml:"local,omitempty"`
	}

	// LocalImportSpec references a pre-built export/jar pair on disk.
	LocalImportSpec struct {
		ExportsPath string `toml:"exps,omitempty"`
		JarPath     string `toml:"jar,omitempty"`
	}
)

// NewRootConfig returns an empty model with the default flags set.
func NewRootConfig() *RootConfig {
	return &RootConfig{
		AddSurrogateSimulatorRepo:    true,
		AddImplicitSimulatorTestDeps: true,
	}
}

// AddCap appends a new cap and returns it for population.
func (c *RootConfig) AddCap() *CapSpec {
	spec := &CapSpec{Verify: true}
	c.Caps = append(c.Caps, spec)
	return spec
}

// AddInstallArg appends a passthrough installer argument.
func (c *RootConfig) AddInstallArg(arg string) {
	c.InstallArgs = append(c.InstallArgs, arg)
}

// SetToolkitPath sets the root-level SDK path.
func (c *RootConfig) SetToolkitPath(path string) { c.ToolkitPath = path }

// SetClassPath sets the toolkit task classpath.
func (c *RootConfig) SetClassPath(classPath string) { c.ClassPath = classPath }

// SetLogLevel sets the packager log level.
func (c *RootConfig) SetLogLevel(level string) { c.LogLevel = level }

// SetToolkitPath sets the per-cap SDK override.
func (s *CapSpec) SetToolkitPath(path string) { s.ToolkitPath = path }

// SetOutput sets the cap output file.
func (s *CapSpec) SetOutput(output string) { s.Output = output }

// AddApplet appends a new applet and returns it for population.
func (s *CapSpec) AddApplet() *AppletSpec {
	applet := &AppletSpec{}
	s.Applets = append(s.Applets, applet)
	return applet
}

// Dependency returns the cap's dependency block, creating it on first use.
func (s *CapSpec) Dependency() *DependencySpec {
	if s.Dependencies == nil {
		s.Dependencies = &DependencySpec{}
	}
	return s.Dependencies
}

// SetClassName sets the applet class.
func (a *AppletSpec) SetClassName(name string) { a.ClassName = name }

// AddLocalImport appends a new local import and returns it for population.
func (d *DependencySpec) AddLocalImport() *LocalImportSpec {
	imp := &LocalImportSpec{}
	d.LocalImports = append(d.LocalImports, imp)
	return imp
}

// SetExportsPath sets the export file directory of the import.
func (i *LocalImportSpec) SetExportsPath(path string) { i.ExportsPath = path }

// SetJarPath sets the jar of the import.
func (i *LocalImportSpec) SetJarPath(path string) { i.JarPath = path }

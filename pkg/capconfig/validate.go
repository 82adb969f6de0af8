// SPDX-License-Identifier: MPL-2.0

package capconfig

import (
	"strings"

	"github.com/charmbracelet/log"
)

type (
	// Validator checks a RootConfig and resolves its toolkit paths.
	// FS and Env are required. EnvVar defaults to ToolkitEnvVar and a nil
	// Logger disables logging.
	Validator struct {
		FS     Filesystem
		Env    Environment
		EnvVar string
		Logger *log.Logger
	}

	// check is one validation stage. Stages run in a fixed order and each
	// one scans every cap before the next starts.
	check struct {
		name string
		run  func(*Validator, *RootConfig) error
	}
)

var checks = []check{
	{name: "toolkit", run: (*Validator).checkToolkit},
	{name: "output", run: (*Validator).checkOutput},
	{name: "applet-class", run: (*Validator).checkAppletClass},
	{name: "dependency", run: (*Validator).checkDependency},
}

// Validate checks cfg using fsys and env and the default toolkit variable.
// See Validator.Validate.
func Validate(cfg *RootConfig, fsys Filesystem, env Environment) error {
	v := &Validator{FS: fsys, Env: env}
	return v.Validate(cfg)
}

// Validate runs the toolkit, output, applet class and dependency checks in
// that order and returns the first violation as a *ConfigError.
//
// The toolkit check rewrites cfg.ToolkitPath, and per-cap toolkit paths that
// it resolves, to absolute form. No other check mutates cfg. Calling Validate
// again on a model it already accepted succeeds without further changes.
func (v *Validator) Validate(cfg *RootConfig) error {
	for _, c := range checks {
		v.debug("running check", "check", c.name, "caps", len(cfg.Caps))
		if err := c.run(v, cfg); err != nil {
			v.debug("check failed", "check", c.name, "err", err)
			return err
		}
	}
	return nil
}

// checkToolkit resolves the effective SDK location.
//
// A non-blank root path wins over everything, JC_HOME included. At the cap
// level the order is reversed: when JC_HOME is set, a per-cap path is left as
// written and never checked. JC_HOME counts as set when it is present in the
// environment, even if empty.
func (v *Validator) checkToolkit(cfg *RootConfig) error {
	if !isBlank(cfg.ToolkitPath) {
		abs, err := v.resolve(-1, cfg.ToolkitPath)
		if err != nil {
			return err
		}
		cfg.ToolkitPath = abs
		if len(cfg.Caps) == 0 {
			return &ConfigError{Kind: NoCapsReferenced, Cap: -1, Index: -1}
		}
		return nil
	}

	if len(cfg.Caps) == 0 {
		return &ConfigError{Kind: NoCapsReferenced, Cap: -1, Index: -1}
	}

	_, envSet := v.lookupToolkitEnv()
	for i, spec := range cfg.Caps {
		if spec.ToolkitPath == "" {
			if !envSet {
				return &ConfigError{Kind: MissingToolkit, Cap: i, Index: -1, EnvVar: v.envVar()}
			}
			continue
		}
		if envSet {
			continue
		}
		abs, err := v.resolve(i, spec.ToolkitPath)
		if err != nil {
			return err
		}
		spec.ToolkitPath = abs
	}
	return nil
}

func (v *Validator) checkOutput(cfg *RootConfig) error {
	for i, spec := range cfg.Caps {
		if isBlank(spec.Output) {
			return newCapError(MissingOutput, i, -1)
		}
	}
	return nil
}

func (v *Validator) checkAppletClass(cfg *RootConfig) error {
	for i, spec := range cfg.Caps {
		for j, applet := range spec.Applets {
			if isBlank(applet.ClassName) {
				return newCapError(MissingAppletClass, i, j)
			}
		}
	}
	return nil
}

func (v *Validator) checkDependency(cfg *RootConfig) error {
	for i, spec := range cfg.Caps {
		if spec.Dependencies == nil {
			continue
		}
		for j, imp := range spec.Dependencies.LocalImports {
			if isBlank(imp.ExportsPath) || isBlank(imp.JarPath) {
				return newCapError(MissingImportFields, i, j)
			}
		}
	}
	return nil
}

// resolve returns the absolute form of path, or an InvalidToolkitPath error
// naming it if nothing exists there.
func (v *Validator) resolve(capIdx int, path string) (string, error) {
	abs := v.FS.AbsolutePath(path)
	if !v.FS.PathExists(abs) {
		return "", newPathError(capIdx, abs)
	}
	v.debug("resolved toolkit", "cap", capIdx, "path", abs)
	return abs, nil
}

func (v *Validator) lookupToolkitEnv() (string, bool) {
	return v.Env.LookupEnv(v.envVar())
}

func (v *Validator) envVar() string {
	if v.EnvVar == "" {
		return ToolkitEnvVar
	}
	return v.EnvVar
}

func (v *Validator) debug(msg string, keyvals ...any) {
	if v.Logger != nil {
		v.Logger.Debug(msg, keyvals...)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jcbuild/jcbuild/pkg/capconfig"
)

const (
	// LogLevelDebug logs every validation stage.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidEnvVarName is returned when a toolkit variable name is not a valid identifier.
	ErrInvalidEnvVarName = errors.New("invalid environment variable name")
	// ErrInvalidConfig is the sentinel wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	envVarPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type (
	// LogLevel is the minimum level jcbuild logs at.
	LogLevel string

	// ColorScheme selects the output palette.
	ColorScheme string

	// InvalidConfigError collects every invalid field of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds jcbuild's settings.
	Config struct {
		// LogLevel is the minimum level logged to stderr.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// BuildFile is the build file used when none is given on the command line.
		BuildFile string `json:"build_file" mapstructure:"build_file"`
		// Toolkit configures SDK lookup.
		Toolkit ToolkitConfig `json:"toolkit" mapstructure:"toolkit"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// ToolkitConfig configures SDK lookup.
	ToolkitConfig struct {
		// EnvVar names the environment variable holding the SDK home.
		EnvVar string `json:"env_var" mapstructure:"env_var"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  LogLevelInfo,
		BuildFile: capconfig.BuildFileCUE,
		Toolkit:   ToolkitConfig{EnvVar: capconfig.ToolkitEnvVar},
		UI:        UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

// String returns the level name.
func (l LogLevel) String() string { return string(l) }

// IsValid reports whether l is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, l)}
	}
}

// String returns the scheme name.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid reports whether cs is one of the defined schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w %q (valid: auto, dark, light)", ErrInvalidColorScheme, cs)}
	}
}

// IsValid reports whether the toolkit settings are usable.
func (c ToolkitConfig) IsValid() (bool, []error) {
	if !envVarPattern.MatchString(c.EnvVar) {
		return false, []error{fmt.Errorf("%w %q", ErrInvalidEnvVarName, c.EnvVar)}
	}
	return true, nil
}

// IsValid checks every field and returns all problems found.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.LogLevel.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.Toolkit.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if strings.TrimSpace(c.BuildFile) == "" {
		errs = append(errs, errors.New("build_file must not be empty"))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the config sentinel and the field sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

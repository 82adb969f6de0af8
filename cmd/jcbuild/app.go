// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jcbuild/jcbuild/internal/config"
	"github.com/jcbuild/jcbuild/pkg/capconfig"
	"github.com/jcbuild/jcbuild/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reaches configuration, the filesystem and the
	// environment only through it.
	App struct {
		Config ConfigProvider
		FS     capconfig.SourceFS
		Env    capconfig.Environment
		stdout io.Writer
		stderr io.Writer
		flags  rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		FS     capconfig.SourceFS
		Env    capconfig.Environment
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (config.LoadResult, error)
	}

	// rootFlags holds the persistent flags shared by every command.
	rootFlags struct {
		verbose    bool
		configPath string
		toolkitEnv string
	}

	// session is the per-invocation state derived from flags and settings.
	session struct {
		app    *App
		cfg    *config.Config
		logger *log.Logger
		envVar string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.FS == nil {
		deps.FS = capconfig.OSFilesystem{}
	}
	if deps.Env == nil {
		deps.Env = capconfig.OSEnvironment{}
	}

	return &App{
		Config: deps.Config,
		FS:     deps.FS,
		Env:    deps.Env,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// loadSettings loads configuration honoring --config.
func (a *App) loadSettings(ctx context.Context) (*config.Config, error) {
	res, err := a.loadSettingsWithPath(ctx)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// loadSettingsWithPath is loadSettings that also reports the file read. A
// broken config file is reported as a warning and the defaults are used,
// except when the file was named explicitly.
func (a *App) loadSettingsWithPath(ctx context.Context) (config.LoadResult, error) {
	opts := config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configPath)}
	res, err := a.Config.Load(ctx, opts)
	if err != nil {
		if opts.ConfigFilePath.IsSet() {
			return config.LoadResult{}, err
		}
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		return config.LoadResult{Config: config.DefaultConfig()}, nil
	}
	return res, nil
}

// newSession resolves settings, the logger and the toolkit variable name
// for one command invocation.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	envVar := cfg.Toolkit.EnvVar
	if a.flags.toolkitEnv != "" {
		tk := config.ToolkitConfig{EnvVar: a.flags.toolkitEnv}
		if ok, errs := tk.IsValid(); !ok {
			return nil, fmt.Errorf("--toolkit-env: %w", errs[0])
		}
		envVar = tk.EnvVar
	}

	return &session{
		app:    a,
		cfg:    cfg,
		logger: newLogger(a.stderr, cfg.LogLevel, a.flags.verbose || cfg.UI.Verbose),
		envVar: envVar,
	}, nil
}

// validator returns a Validator bound to the App's collaborators.
func (s *session) validator() *capconfig.Validator {
	return &capconfig.Validator{
		FS:     s.app.FS,
		Env:    s.app.Env,
		EnvVar: s.envVar,
		Logger: s.logger,
	}
}

func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jcbuild/jcbuild/internal/issue"
	"github.com/jcbuild/jcbuild/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the jcbuild command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jcbuild",
		Short: "Validate and resolve Java Card build declarations",
		Long: TitleStyle.Render("jcbuild") + SubtitleStyle.Render(" - Java Card build declarations") + `

jcbuild reads a build file (jcbuild.cue or jcbuild.toml) describing one or
more caps, checks that every cap can be built and resolves the SDK location
each one will use.

The SDK is found from the root 'jckit' path, then $JC_HOME, then each cap's
own 'jckit'.

` + SubtitleStyle.Render("Examples:") + `
  jcbuild validate              Validate ./jcbuild.cue
  jcbuild toolkit               Print the effective SDK path
  jcbuild plan --format toml    Print the resolved build as TOML
  jcbuild explain missing-toolkit
  jcbuild config show           Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $HOME/.config/jcbuild/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.flags.toolkitEnv, "toolkit-env", "", "environment variable naming the SDK home (default JC_HOME)")

	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newToolkitCommand(app))
	rootCmd.AddCommand(newPlanCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newExplainCommand(app))

	return rootCmd
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process. It is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(types.ExitFailure))
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps a command error to the process exit code. An error never
// exits with success, even when it carries a success code.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && !exitErr.Code.IsSuccess() {
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay renders an ActionableError with its suggestions, and
// the error chain in verbose mode. Other errors render as Error().
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// reportFailure prints err to stderr and returns an ExitError with code,
// silencing cobra's own error output.
func reportFailure(cmd *cobra.Command, app *App, code types.ExitCode, err error) error {
	cmd.SilenceErrors = true
	fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("✗ ")+formatErrorForDisplay(err, app.flags.verbose))
	return &ExitError{Code: code, Err: err}
}

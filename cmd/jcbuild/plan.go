// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcbuild/jcbuild/pkg/capconfig"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

const (
	planFormatText = "text"
	planFormatTOML = "toml"
)

// ErrInvalidPlanFormat is returned for an unknown --format value.
var ErrInvalidPlanFormat = errors.New("invalid plan format")

func newPlanCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Print the resolved build",
		Long: `Validate a build file and print the resolved build: absolute SDK paths,
every cap with its applets and imports, and the installer arguments.

Formats:
  text   human-readable listing, installer arguments shell-quoted
  toml   the resolved model as TOML, loadable as a jcbuild.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != planFormatText && format != planFormatTOML {
				return fmt.Errorf("%w %q (valid: text, toml)", ErrInvalidPlanFormat, format)
			}
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			target, err := s.loadBuild(cmd, firstArg(args))
			if err != nil {
				return err
			}

			if format == planFormatTOML {
				return renderPlanTOML(cmd.OutOrStdout(), target.model)
			}
			return renderPlanText(cmd.OutOrStdout(), target)
		},
	}

	cmd.Flags().StringVar(&format, "format", planFormatText, "output format (text, toml)")

	return cmd
}

func renderPlanTOML(w io.Writer, model *capconfig.RootConfig) error {
	data, err := toml.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func renderPlanText(w io.Writer, target *buildTarget) error {
	model := target.model

	install, err := quoteArgs(model.InstallArgs)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("toolkit:"), target.validator.EffectiveToolkit(model))
	if model.ClassPath != "" {
		fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("class path:"), model.ClassPath)
	}
	if model.LogLevel != "" {
		fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("log level:"), model.LogLevel)
	}
	if install != "" {
		fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("install:"), install)
	}
	fmt.Fprintf(w, "%s simulator repo=%v, simulator test deps=%v\n",
		KeyStyle.Render("flags:"), model.AddSurrogateSimulatorRepo, model.AddImplicitSimulatorTestDeps)

	for i, spec := range model.Caps {
		fmt.Fprintf(w, "\n%s %s\n", capHeaderStyle.Render(fmt.Sprintf("caps[%d]", i)), spec.Output)
		fmt.Fprintf(w, "  toolkit: %s\n", target.validator.CapToolkit(model, i))
		writeField(w, "package", spec.PackageName)
		writeField(w, "aid", spec.AID)
		writeField(w, "version", spec.Version)
		writeField(w, "sources", spec.Sources)
		writeField(w, "export", spec.Export)
		writeField(w, "target sdk", spec.TargetSDK)
		fmt.Fprintf(w, "  verify=%v debug=%v ints=%v\n", spec.Verify, spec.Debug, spec.Ints)
		for _, applet := range spec.Applets {
			if applet.AID != "" {
				fmt.Fprintf(w, "  applet %s (%s)\n", applet.ClassName, applet.AID)
			} else {
				fmt.Fprintf(w, "  applet %s\n", applet.ClassName)
			}
		}
		if spec.Dependencies != nil {
			for _, imp := range spec.Dependencies.LocalImports {
				fmt.Fprintf(w, "  import %s %s\n", imp.ExportsPath, imp.JarPath)
			}
		}
	}
	return nil
}

func writeField(w io.Writer, name, value string) {
	if value != "" {
		fmt.Fprintf(w, "  %s: %s\n", name, value)
	}
}

// quoteArgs joins args into one shell-safe line.
func quoteArgs(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("install_args[%d]: %w", i, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

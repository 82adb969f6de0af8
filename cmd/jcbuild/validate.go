// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/jcbuild/jcbuild/pkg/capconfig"

	"github.com/spf13/cobra"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a build file",
		Long: `Validate a build file and resolve its SDK paths.

Checks run in order and stop at the first problem: SDK location, cap output,
applet classes, then local imports.

Examples:
  jcbuild validate
  jcbuild validate cards/jcbuild.toml
  JC_HOME=/opt/jc305u3 jcbuild validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			target, err := s.loadBuild(cmd, firstArg(args))
			if err != nil {
				return err
			}
			renderValidation(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func renderValidation(w io.Writer, target *buildTarget) {
	model := target.model
	fmt.Fprintf(w, "%s %s is valid\n", SuccessStyle.Render("✓"), pathStyle.Render(target.path))
	fmt.Fprintf(w, "%s %s\n\n", KeyStyle.Render("toolkit:"), displayPath(target.validator.EffectiveToolkit(model)))

	for i, spec := range model.Caps {
		fmt.Fprintf(w, "%s %s\n", capHeaderStyle.Render(fmt.Sprintf("caps[%d]", i)), spec.Output)
		fmt.Fprintf(w, "  %s %s\n", KeyStyle.Render("toolkit:"), displayPath(target.validator.CapToolkit(model, i)))
		fmt.Fprintf(w, "  %s %d, %s %d\n",
			KeyStyle.Render("applets:"), len(spec.Applets),
			KeyStyle.Render("imports:"), countImports(spec))
	}
}

func countImports(spec *capconfig.CapSpec) int {
	if spec.Dependencies == nil {
		return 0
	}
	return len(spec.Dependencies.LocalImports)
}

func displayPath(path string) string {
	if path == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return pathStyle.Render(path)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

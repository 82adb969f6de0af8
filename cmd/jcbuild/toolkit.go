// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolkitCommand(app *App) *cobra.Command {
	var perCap bool

	cmd := &cobra.Command{
		Use:   "toolkit [file]",
		Short: "Print the effective SDK path",
		Long: `Validate a build file and print the SDK path the build will use.

The SDK environment variable (JC_HOME unless configured otherwise) wins when
set, then the root 'jckit', then the last cap's own 'jckit'. With --caps,
one line is printed per cap instead.`,
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

			w := cmd.OutOrStdout()
			if !perCap {
				fmt.Fprintln(w, target.validator.EffectiveToolkit(target.model))
				return nil
			}
			for i := range target.model.Caps {
				fmt.Fprintf(w, "caps[%d]\t%s\n", i, target.validator.CapToolkit(target.model, i))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&perCap, "caps", false, "print the SDK path of each cap")

	return cmd
}

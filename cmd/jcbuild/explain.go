// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/jcbuild/jcbuild/internal/issue"
	"github.com/jcbuild/jcbuild/pkg/capconfig"

	"github.com/spf13/cobra"
)

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [issue]",
		Short: "Explain a validation failure",
		Long: `Show guidance for a failure reported by jcbuild.

Without an argument, lists every known issue name. Names match the kinds
printed by 'jcbuild validate', for example missing-toolkit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				listIssues(w)
				return nil
			}

			entry := lookupIssue(args[0])
			if entry == nil {
				return fmt.Errorf("unknown issue %q (run 'jcbuild explain' for the list)", args[0])
			}

			cfg, err := app.loadSettings(cmd.Context())
			if err != nil {
				return err
			}
			rendered, err := entry.Render(cfg.UI.ColorScheme.String())
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", entry.Name(), err)
			}
			fmt.Fprint(w, rendered)
			return nil
		},
	}
}

// lookupIssue resolves a validation kind name first, then any other
// catalog entry.
func lookupIssue(name string) *issue.Issue {
	if kind, err := capconfig.ParseErrorKind(name); err == nil {
		return issue.ForKind(kind)
	}
	return issue.Lookup(name)
}

// listIssues prints validation kinds in the order the validator checks
// them, then the remaining catalog entries.
func listIssues(w io.Writer) {
	fmt.Fprintln(w, SubtitleStyle.Render("Validation failures:"))
	for _, kind := range capconfig.ErrorKinds() {
		fmt.Fprintf(w, "  %s\n", kind)
	}

	fmt.Fprintln(w, SubtitleStyle.Render("Other issues:"))
	for _, entry := range issue.Values() {
		if _, err := capconfig.ParseErrorKind(entry.Name()); err == nil {
			continue
		}
		fmt.Fprintf(w, "  %s\n", entry.Name())
	}
}

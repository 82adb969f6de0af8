// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/jcbuild/jcbuild/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `jcbuild config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jcbuild configuration",
		Long: `Manage jcbuild configuration.

Configuration is stored in:
  - Linux: ~/.config/jcbuild/config.cue
  - macOS: ~/Library/Application Support/jcbuild/config.cue
  - Windows: %APPDATA%\jcbuild\config.cue

Any setting can be overridden with a JCBUILD_ environment variable, for
example JCBUILD_TOOLKIT_ENV_VAR=JC_CLASSIC_HOME.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.loadSettingsWithPath(cmd.Context())
			if err != nil {
				return err
			}
			showConfig(cmd.OutOrStdout(), res)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create the default configuration file.

An existing file is left alone unless --force is given, in which case it is
replaced with the defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfig(force)
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadSettings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func configFilePath(app *App) (string, error) {
	if app.flags.configPath != "" {
		return app.flags.configPath, nil
	}
	return config.ConfigFilePath()
}

func initConfig(force bool) (string, error) {
	if !force {
		return config.CreateDefaultConfig()
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return config.ConfigFilePath()
}

func showConfig(w io.Writer, res config.LoadResult) {
	cfg := res.Config

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if res.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), res.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("log_level"), SuccessStyle.Render(cfg.LogLevel.String()))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("build_file"), SuccessStyle.Render(cfg.BuildFile))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("toolkit"))
	fmt.Fprintf(w, "  env_var: %s\n", SuccessStyle.Render(cfg.Toolkit.EnvVar))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
}

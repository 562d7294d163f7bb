package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/fsh/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging the config file, FSH_* environment
variables and command line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printConfig(cmd.OutOrStdout(), app.config)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "[prompt]")
	fmt.Fprintf(w, "  show_hostname = %v\n", cfg.Prompt.ShowHostname)
	fmt.Fprintf(w, "  path_style    = %s\n", cfg.Prompt.PathStyle)
	fmt.Fprintf(w, "  vcs           = %v\n", cfg.Prompt.VCS)
	fmt.Fprintf(w, "  on_error      = %s\n", cfg.Prompt.OnError)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[render]")
	fmt.Fprintf(w, "  color = %s\n", cfg.Render.Color)
	fmt.Fprintf(w, "  shell = %s\n", cfg.Render.Shell)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[theme]")
	fmt.Fprintf(w, "  color_identity  = %s\n", cfg.Theme.ColorIdentity)
	fmt.Fprintf(w, "  color_host      = %s\n", cfg.Theme.ColorHost)
	fmt.Fprintf(w, "  color_location  = %s\n", cfg.Theme.ColorLocation)
	fmt.Fprintf(w, "  color_reference = %s\n", cfg.Theme.ColorReference)
	fmt.Fprintf(w, "  color_operation = %s\n", cfg.Theme.ColorOperation)
	fmt.Fprintf(w, "  color_positive  = %s\n", cfg.Theme.ColorPositive)
	fmt.Fprintf(w, "  color_negative  = %s\n", cfg.Theme.ColorNegative)
	fmt.Fprintf(w, "  color_prompt    = %s\n", cfg.Theme.ColorPrompt)
	fmt.Fprintf(w, "  icon_branch     = %q\n", cfg.Theme.IconBranch)
	fmt.Fprintf(w, "  icon_staged     = %q\n", cfg.Theme.IconStaged)
	fmt.Fprintf(w, "  icon_unstaged   = %q\n", cfg.Theme.IconUnstaged)
	fmt.Fprintf(w, "  icon_arrow      = %q\n", cfg.Theme.IconArrow)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[log]")
	fmt.Fprintf(w, "  level = %s\n", cfg.Log.Level)
}

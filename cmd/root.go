// Package cmd provides the CLI commands for fsh.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/fsh/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	dirFlag    string
	debugMode  bool
	colorFlag  string
	shellFlag  string
	noHostname bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fsh [exit-status]",
	Short: "fsh - a colour-coded shell prompt",
	Long: `fsh prints a shell prompt showing the user, host, working directory,
the git branch, any merge, rebase, revert or cherry-pick in progress and
whether there are staged or unstaged changes.

Pass the previous command's exit status as the only argument; a non-zero
status is shown in front of the prompt arrow. Run "fsh init <shell>" to
print the integration snippet for your shell.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runPrompt,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.fsh/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Directory to describe (default: working directory)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Log diagnostics to stderr at debug level")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colour output: auto, always, never (default from config)")
	rootCmd.PersistentFlags().StringVar(&shellFlag, "shell", "", "Escape for a shell prompt: none, bash, zsh (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noHostname, "no-hostname", false, "Hide the host name")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("fsh\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shellInitCmd)
	rootCmd.AddCommand(mcpCmd)
}

// runPrompt renders the prompt to stdout without a trailing newline.
func runPrompt(cmd *cobra.Command, args []string) error {
	exitStatus, err := parseExitStatus(args)
	if err != nil {
		return err
	}

	segments, err := app.prompt.Build(cmd.Context(), ports.PromptRequest{
		Dir:        dirFlag,
		ExitStatus: exitStatus,
	})
	if err != nil {
		return err
	}

	return app.renderer.Write(cmd.OutOrStdout(), segments)
}

// parseExitStatus reads the optional exit status argument, defaulting to 0.
func parseExitStatus(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	status, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid exit status %q: must be an integer", args[0])
	}
	return status, nil
}

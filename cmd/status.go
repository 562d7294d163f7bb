package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/fsh/internal/domain"
)

var statusJSON bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the repository state",
	Long: `Show the reference, in-progress operation and change markers fsh
derives for the repository enclosing --dir. Errors are always reported,
regardless of the prompt.on_error setting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.prompt.RepoState(cmd.Context(), dirFlag)
		if err != nil {
			return err
		}

		if statusJSON {
			return outputStatusJSON(cmd.OutOrStdout(), state)
		}
		outputStatusText(cmd.OutOrStdout(), state)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output results in JSON format")
}

func outputStatusJSON(w io.Writer, state *domain.RepoState) error {
	var result interface{} = state
	if state == nil {
		result = map[string]interface{}{"in_repository": false}
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func outputStatusText(w io.Writer, state *domain.RepoState) {
	if state == nil {
		fmt.Fprintln(w, "Not inside a git repository")
		return
	}

	fmt.Fprintf(w, "Reference:  %s (%s)\n", state.Reference.Display(), state.Reference.Kind)
	fmt.Fprintf(w, "Lifecycle:  %s\n", state.Lifecycle)
	if label, ok := state.Operation(); ok {
		fmt.Fprintf(w, "Operation:  %s\n", label)
	} else {
		fmt.Fprintln(w, "Operation:  none")
	}
	fmt.Fprintf(w, "Staged:     %s\n", yesNo(state.Changes.Staged))
	fmt.Fprintf(w, "Unstaged:   %s\n", yesNo(state.Changes.Unstaged))
	fmt.Fprintf(w, "Clean:      %s\n", yesNo(state.IsClean()))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// shellSnippets hold the prompt hooks printed by "fsh init". Each captures
// the exit status before anything else runs.
var shellSnippets = map[string]string{
	"bash": `_fsh_prompt() {
  local status=$?
  PS1="$(fsh --shell bash "$status")"
}
PROMPT_COMMAND="_fsh_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
`,
	"zsh": `setopt prompt_subst
_fsh_precmd() {
  PROMPT="$(fsh --shell zsh "$?")"
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd _fsh_precmd
`,
	"fish": `function fish_prompt
    fsh $status
end
`,
}

var shellInitCmd = &cobra.Command{
	Use:   "init <bash|zsh|fish>",
	Short: "Print the shell integration snippet",
	Long: `Print the snippet that installs fsh as the prompt. Add it to your shell
startup file, for example:

  eval "$(fsh init bash)"     # ~/.bashrc
  eval "$(fsh init zsh)"      # ~/.zshrc
  fsh init fish | source      # ~/.config/fish/config.fish`,
	ValidArgs: []string{"bash", "zsh", "fish"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		snippet, ok := shellSnippets[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), snippet)
		return nil
	},
}

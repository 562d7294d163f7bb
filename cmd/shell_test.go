package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestShellInitCmd(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "PROMPT_COMMAND"},
		{"zsh", "add-zsh-hook precmd"},
		{"fish", "function fish_prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			resetFlags(t)
			cfg := filepath.Join(t.TempDir(), "config.toml")

			stdout, _, err := executeCmd(rootCmd, "init", tt.shell, "--config", cfg)
			if err != nil {
				t.Fatalf("init %s failed: %v", tt.shell, err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("snippet for %s missing %q:\n%s", tt.shell, tt.want, stdout)
			}
			if !strings.Contains(stdout, "fsh") {
				t.Errorf("snippet for %s should invoke fsh", tt.shell)
			}
		})
	}
}

func TestShellInitCmd_Unsupported(t *testing.T) {
	resetFlags(t)
	cfg := filepath.Join(t.TempDir(), "config.toml")

	if _, _, err := executeCmd(rootCmd, "init", "powershell", "--config", cfg); err == nil {
		t.Error("expected error for unsupported shell")
	}
	if _, _, err := executeCmd(rootCmd, "init", "--config", cfg); err == nil {
		t.Error("expected error when no shell is given")
	}
}

func TestShellSnippets_PassShellDialect(t *testing.T) {
	if !strings.Contains(shellSnippets["bash"], "--shell bash") {
		t.Error("bash snippet should request bash escaping")
	}
	if !strings.Contains(shellSnippets["zsh"], "--shell zsh") {
		t.Error("zsh snippet should request zsh escaping")
	}
	// zsh escaping relies on prompt_subst unquoting the text
	if !strings.Contains(shellSnippets["zsh"], "setopt prompt_subst") {
		t.Error("zsh snippet should enable prompt_subst")
	}
}

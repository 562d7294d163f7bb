package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// resetFlags restores flag variables between executions of the shared rootCmd.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(clearFlags)
	clearFlags()
}

func clearFlags() {
	configPath = ""
	dirFlag = ""
	debugMode = false
	colorFlag = ""
	shellFlag = ""
	noHostname = false
	statusJSON = false
	forceInit = false
}

// isolatedArgs points fsh at a config file that does not exist and disables colour.
func isolatedArgs(t *testing.T, dir string) []string {
	t.Helper()
	return []string{
		"--config", filepath.Join(t.TempDir(), "config.toml"),
		"--dir", dir,
		"--color", "never",
		"--no-hostname",
	}
}

// newCommittedRepo creates a repository with one commit on the default branch.
func newCommittedRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("fsh"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("README"); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}
	if _, err := worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return dir
}

func dosPath(dir string) string {
	return "C:" + strings.ReplaceAll(dir, "/", `\`)
}

func TestRootCmd_Structure(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "fsh [exit-status]" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "fsh [exit-status]")
	}
}

// TestRootCmd_Help tests the --help flag
func TestRootCmd_Help(t *testing.T) {
	resetFlags(t)

	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !strings.Contains(stdout, "fsh") {
		t.Error("help output should contain 'fsh'")
	}
}

// TestRootCmd_Flags tests that global flags are registered
func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "dir", "debug", "color", "shell", "no-hostname"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
}

func TestRootCmd_PromptOutsideRepository(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	stdout, _, err := executeCmd(rootCmd, isolatedArgs(t, dir)...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	if !strings.Contains(stdout, " in "+dosPath(dir)+" ") {
		t.Errorf("prompt should contain the directory, got %q", stdout)
	}
	if !strings.HasSuffix(stdout, "\uf061 ") {
		t.Errorf("prompt should end with the arrow, got %q", stdout)
	}
	if strings.HasSuffix(stdout, "\n") {
		t.Error("prompt must not end with a newline")
	}
	if strings.Contains(stdout, "\ue725") {
		t.Error("prompt outside a repository must not show a branch")
	}
	if strings.Contains(stdout, "@") {
		t.Error("--no-hostname should hide the host")
	}
}

func TestRootCmd_PromptExitStatus(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	args := append(isolatedArgs(t, dir), "127")
	stdout, _, err := executeCmd(rootCmd, args...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	if !strings.HasSuffix(stdout, "127 \uf061 ") {
		t.Errorf("prompt should show the exit status, got %q", stdout)
	}
}

func TestRootCmd_PromptInRepository(t *testing.T) {
	resetFlags(t)
	dir := newCommittedRepo(t)

	stdout, _, err := executeCmd(rootCmd, isolatedArgs(t, dir)...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	if !strings.Contains(stdout, "\ue725 master ") && !strings.Contains(stdout, "\ue725 main ") {
		t.Errorf("prompt should show the branch, got %q", stdout)
	}
	if strings.Contains(stdout, "performing a") {
		t.Errorf("clean repository should show no operation, got %q", stdout)
	}
}

func TestRootCmd_PromptInRepositoryWithChanges(t *testing.T) {
	resetFlags(t)
	dir := newCommittedRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("new"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".git", "MERGE_HEAD"), []byte(strings.Repeat("0", 40)+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write MERGE_HEAD: %v", err)
	}

	stdout, _, err := executeCmd(rootCmd, isolatedArgs(t, dir)...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	if !strings.Contains(stdout, "performing a merge ● ") {
		t.Errorf("prompt should show the merge and unstaged marker, got %q", stdout)
	}
}

func TestRootCmd_InvalidExitStatus(t *testing.T) {
	resetFlags(t)

	args := append(isolatedArgs(t, t.TempDir()), "abc")
	stdout, _, err := executeCmd(rootCmd, args...)
	if err == nil {
		t.Fatal("expected error for non-integer exit status")
	}
	if !strings.Contains(err.Error(), "invalid exit status") {
		t.Errorf("unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("no prompt should be written on error, got %q", stdout)
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	resetFlags(t)

	args := append(isolatedArgs(t, t.TempDir()), "1", "2")
	if _, _, err := executeCmd(rootCmd, args...); err == nil {
		t.Error("expected error for more than one argument")
	}
}

func TestRootCmd_InvalidColorFlag(t *testing.T) {
	resetFlags(t)

	args := isolatedArgs(t, t.TempDir())
	args = append(args, "--color", "sometimes")
	if _, _, err := executeCmd(rootCmd, args...); err == nil {
		t.Error("expected error for invalid --color")
	}
}

func TestRootCmd_ShellEscaping(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	args := append(isolatedArgs(t, dir), "--shell", "bash")
	stdout, _, err := executeCmd(rootCmd, args...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	want := "C:" + strings.ReplaceAll(dir, "/", `\\\\`)
	if !strings.Contains(stdout, want) {
		t.Errorf("bash output should quote backslashes, want %q in %q", want, stdout)
	}
}

func TestRootCmd_ShellEscapingCommandSubstitution(t *testing.T) {
	resetFlags(t)
	dir := filepath.Join(t.TempDir(), "$(touch pwned)")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	args := append(isolatedArgs(t, dir), "--shell", "bash")
	stdout, _, err := executeCmd(rootCmd, args...)
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	if !strings.Contains(stdout, `\\$(touch pwned)`) {
		t.Errorf("expected quoted command substitution in %q", stdout)
	}
	if strings.Count(stdout, "$") != strings.Count(stdout, `\\$`) {
		t.Errorf("every $ should be quoted for bash: %q", stdout)
	}
}

func TestRootCmd_BrokenConfigFallsBackToDefaults(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgFile, []byte("[prompt]\npath_style = \"unix\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	stdout, stderr, err := executeCmd(rootCmd, "--config", cfgFile, "--dir", dir, "--color", "never", "--debug")
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}
	if !strings.Contains(stdout, dosPath(dir)) {
		t.Errorf("expected default path style, got %q", stdout)
	}
	if !strings.Contains(stderr, "failed to load config") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
}

func TestParseExitStatus(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"absent", nil, 0, false},
		{"zero", []string{"0"}, 0, false},
		{"failure", []string{"1"}, 1, false},
		{"signal", []string{"130"}, 130, false},
		{"whitespace", []string{" 2 "}, 2, false},
		{"word", []string{"abc"}, 0, true},
		{"empty", []string{""}, 0, true},
		{"float", []string{"1.5"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExitStatus(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseExitStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseExitStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

//go:build !windows

package path

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinyuli/uvm/src/internal/ui"
)

func setupEnv(t *testing.T, shell, answer string) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", shell)
	t.Setenv("PATH", "/usr/bin")

	t.Cleanup(ui.SetOutput(io.Discard, io.Discard))
	t.Cleanup(ui.SetInput(strings.NewReader(answer)))
	return home
}

func nodeBlock(home string) Block {
	return Block{
		Language: "node",
		Path:     []string{filepath.Join(home, ".uvm", "data", "node", "current", "bin")},
	}
}

func TestGetShellConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"zsh":  filepath.Join(home, ".zshrc"),
		"bash": filepath.Join(home, ".bash_profile"),
		"fish": filepath.Join(home, ".config", "fish", "config.fish"),
		"ksh":  filepath.Join(home, ".profile"),
	}
	for shell, expected := range tests {
		if got := GetShellConfigFile(shell); got != expected {
			t.Errorf("GetShellConfigFile(%q) = %q, want %q", shell, got, expected)
		}
	}

	// .bashrc wins once it exists
	bashrc := filepath.Join(home, ".bashrc")
	if err := os.WriteFile(bashrc, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got := GetShellConfigFile("bash"); got != bashrc {
		t.Errorf("GetShellConfigFile(bash) = %q, want %q", got, bashrc)
	}
}

func TestSetup_AppendsBlock(t *testing.T) {
	home := setupEnv(t, "/bin/zsh", "y\n")
	block := nodeBlock(home)

	if err := Setup(block); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(home, ".zshrc"))
	if err != nil {
		t.Fatalf("failed to read .zshrc: %v", err)
	}
	if !strings.Contains(string(content), "# Added by uvm (node)") {
		t.Errorf(".zshrc = %q, want the uvm marker", content)
	}
	if !strings.Contains(string(content), block.Path[0]+":$PATH") {
		t.Errorf(".zshrc = %q, want the PATH export", content)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	home := setupEnv(t, "/bin/zsh", "y\ny\n")
	block := nodeBlock(home)

	if err := Setup(block); err != nil {
		t.Fatalf("first Setup() error = %v", err)
	}
	if err := Setup(block); err != nil {
		t.Fatalf("second Setup() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(home, ".zshrc"))
	if err != nil {
		t.Fatalf("failed to read .zshrc: %v", err)
	}
	if n := strings.Count(string(content), "# Added by uvm (node)"); n != 1 {
		t.Errorf("marker appears %d times, want 1", n)
	}
}

func TestSetup_Declined(t *testing.T) {
	home := setupEnv(t, "/bin/zsh", "n\n")

	if err := Setup(nodeBlock(home)); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".zshrc")); !os.IsNotExist(err) {
		t.Errorf(".zshrc should not be created when the user declines, stat err = %v", err)
	}
}

func TestSetup_FishCreatesConfigDir(t *testing.T) {
	home := setupEnv(t, "/usr/bin/fish", "\n")

	if err := Setup(nodeBlock(home)); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	content, err := os.ReadFile(filepath.Join(home, ".config", "fish", "config.fish"))
	if err != nil {
		t.Fatalf("failed to read config.fish: %v", err)
	}
	if !strings.Contains(string(content), "set -gx PATH") {
		t.Errorf("config.fish = %q, want a fish PATH statement", content)
	}
}

func TestSetup_UnknownShell(t *testing.T) {
	home := setupEnv(t, "", "")
	if err := Setup(nodeBlock(home)); err == nil {
		t.Error("Setup() should fail when the shell cannot be detected")
	}
}

//go:build !windows

package path

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/ui"
)

// DetectShell returns the user's shell name (bash, zsh, fish, etc.)
func DetectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "unknown"
	}

	// Extract just the shell name from the path
	return filepath.Base(shell)
}

// GetShellConfigFile returns the config file path for the given shell
func GetShellConfigFile(shell string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch shell {
	case constants.ShellBash:
		// Prefer .bashrc if it exists, otherwise .bash_profile
		bashrc := filepath.Join(home, ".bashrc")
		if _, err := os.Stat(bashrc); err == nil {
			return bashrc
		}
		return filepath.Join(home, ".bash_profile")

	case constants.ShellZsh:
		return filepath.Join(home, ".zshrc")

	case constants.ShellFish:
		return filepath.Join(home, ".config", "fish", "config.fish")

	default:
		// Try .profile as a fallback
		return filepath.Join(home, ".profile")
	}
}

// Setup appends the language block to the user's shell config file
func Setup(block Block) error {
	if IsActive(block) {
		ui.Info("%s is already set up in this shell", block.Language)
		return nil
	}

	shell := DetectShell()
	if shell == "unknown" {
		return fmt.Errorf("could not detect shell - please add this to your shell config manually:%s", RenderShell(block, ""))
	}

	configFile := GetShellConfigFile(shell)
	if configFile == "" {
		return fmt.Errorf("could not determine config file for shell %s", shell)
	}

	// Check if the config file already contains the block
	if containsBlock(configFile, block.Language) {
		ui.Warning("%s setup already exists in %s, but not active in current shell", block.Language, configFile)
		ui.Info("Please restart your terminal or run: source %s", configFile)
		return nil
	}

	lines := RenderShell(block, shell)

	ui.Header("Shell Setup")
	ui.Info("Shell: %s", ui.Highlight(shell))
	ui.Info("Config file: %s", ui.Highlight(configFile))
	ui.Info("Will append:%s", lines)

	if !ui.Confirm("Proceed?", true) {
		ui.Warning("Shell config not modified. Please add this manually to your %s:", configFile)
		ui.Println("%s", strings.TrimSpace(lines))
		return nil
	}

	// Ensure the directory exists for fish config
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(configFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(lines); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}

	ui.Success("Added %s setup to %s", block.Language, configFile)
	ui.Warning("Please restart your terminal or run: source %s", configFile)

	return nil
}

// containsBlock checks if the config file already has the language block
func containsBlock(configFile, language string) bool {
	f, err := os.Open(configFile)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	want := marker(language)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == want {
			return true
		}
	}

	return false
}

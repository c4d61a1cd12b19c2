// Package path persists a language's environment (PATH entries and
// variables) into the user's shell configuration
package path

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jinyuli/uvm/src/internal/constants"
)

// Var is an environment variable to persist
type Var struct {
	Name  string
	Value string
}

// Block is the environment one language needs
type Block struct {
	// Language names the block in shell config files
	Language string
	Vars     []Var
	// Path is prepended to PATH, first entry first
	Path []string
}

// IsInPath checks if a directory is in the system PATH
func IsInPath(dir string) bool {
	pathEnv := os.Getenv("PATH")

	// Get the path separator for this OS
	separator := ":"
	if runtime.GOOS == constants.OSWindows {
		separator = ";"
	}

	// Normalize the directory path for comparison
	dir = filepath.Clean(dir)

	for _, p := range strings.Split(pathEnv, separator) {
		if p != "" && filepath.Clean(p) == dir {
			return true
		}
	}

	return false
}

// IsActive reports whether the current process already sees the block
func IsActive(block Block) bool {
	for _, v := range block.Vars {
		if os.Getenv(v.Name) != v.Value {
			return false
		}
	}
	for _, dir := range block.Path {
		if !IsInPath(dir) {
			return false
		}
	}
	return true
}

// marker is the comment line that opens a language block in a shell config
func marker(language string) string {
	return fmt.Sprintf("# Added by uvm (%s)", language)
}

// RenderShell renders the block as POSIX shell or fish statements
func RenderShell(block Block, shell string) string {
	var b strings.Builder
	b.WriteString("\n" + marker(block.Language) + "\n")

	for _, v := range block.Vars {
		if shell == constants.ShellFish {
			fmt.Fprintf(&b, "set -gx %s \"%s\"\n", v.Name, v.Value)
		} else {
			fmt.Fprintf(&b, "export %s=\"%s\"\n", v.Name, v.Value)
		}
	}

	if len(block.Path) > 0 {
		if shell == constants.ShellFish {
			fmt.Fprintf(&b, "set -gx PATH \"%s\" $PATH\n", strings.Join(block.Path, "\" \""))
		} else {
			fmt.Fprintf(&b, "export PATH=\"%s:$PATH\"\n", strings.Join(block.Path, ":"))
		}
	}

	return b.String()
}

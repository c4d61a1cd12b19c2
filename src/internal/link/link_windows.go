//go:build windows

package link

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jinyuli/uvm/src/internal/ui"
)

// createLink tries a directory symlink first. Creating symlinks needs
// developer mode or elevation, so it falls back to a junction.
func createLink(linkPath, target string) error {
	err := os.Symlink(target, linkPath)
	if err == nil {
		return nil
	}
	ui.Debug("Symlink failed (%v), falling back to a junction", err)

	if info, statErr := os.Lstat(linkPath); statErr == nil && info.IsDir() {
		if err := os.Remove(linkPath); err != nil {
			return err
		}
	}

	cmd := exec.Command("cmd", "/c", "mklink", "/j", linkPath, target)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /j failed: %w (%s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// removeLink removes a symlink or junction without following it
func removeLink(linkPath string) error {
	return os.Remove(linkPath)
}

func isLink(info os.FileInfo) bool {
	return info.Mode()&(os.ModeSymlink|os.ModeIrregular) != 0
}

func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}

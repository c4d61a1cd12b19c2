//go:build !windows

package link

import (
	"os"
	"path/filepath"
)

func createLink(linkPath, target string) error {
	return os.Symlink(target, linkPath)
}

func removeLink(linkPath string) error {
	return os.Remove(linkPath)
}

func isLink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

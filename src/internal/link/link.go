// Package link manages the directory links that point a language's current
// pointer, or a virtual environment, at an installed version
package link

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinyuli/uvm/src/internal/ui"
)

// ErrNotLink is returned when a path exists but is not a link
var ErrNotLink = errors.New("not a link")

// Create makes linkPath point at target. The link must not already exist.
func Create(linkPath, target string) error {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}

	ui.Debug("Linking %s -> %s", linkPath, absTarget)
	if err := createLink(linkPath, absTarget); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", linkPath, absTarget, err)
	}
	return nil
}

// Remove deletes the link at linkPath. The target is left untouched.
func Remove(linkPath string) error {
	ui.Debug("Removing link %s", linkPath)
	if err := removeLink(linkPath); err != nil {
		return fmt.Errorf("failed to remove link %s: %w", linkPath, err)
	}
	return nil
}

// Replace points linkPath at target, removing any previous link first
func Replace(linkPath, target string) error {
	if Exists(linkPath) {
		if err := Remove(linkPath); err != nil {
			return err
		}
	}
	return Create(linkPath, target)
}

// Exists reports whether anything exists at linkPath, including a dangling
// link
func Exists(linkPath string) bool {
	_, err := os.Lstat(linkPath)
	return err == nil
}

// Target returns the directory linkPath points at
func Target(linkPath string) (string, error) {
	info, err := os.Lstat(linkPath)
	if err != nil {
		return "", err
	}
	if !isLink(info) {
		return "", fmt.Errorf("%s: %w", linkPath, ErrNotLink)
	}

	target, err := os.Readlink(linkPath)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target), nil
}

// TargetName returns the base name of the directory linkPath points at, or
// false when there is no readable link
func TargetName(linkPath string) (string, bool) {
	target, err := Target(linkPath)
	if err != nil {
		return "", false
	}
	return filepath.Base(target), true
}

// PointsTo reports whether linkPath is a link to target
func PointsTo(linkPath, target string) bool {
	current, err := Target(linkPath)
	if err != nil {
		return false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	return samePath(current, absTarget)
}

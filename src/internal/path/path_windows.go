//go:build windows

package path

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"unsafe"

	"github.com/jinyuli/uvm/src/internal/ui"
	"golang.org/x/sys/windows/registry"
)

var (
	moduser32              = syscall.NewLazyDLL("user32.dll")
	procSendMessageTimeout = moduser32.NewProc("SendMessageTimeoutW")
)

const (
	HWND_BROADCAST   = 0xffff
	WM_SETTINGCHANGE = 0x001A
	SMTO_ABORTIFHUNG = 0x0002
)

// Setup writes the language block into the user environment in the registry
func Setup(block Block) error {
	if IsActive(block) {
		ui.Info("%s is already set up in this shell", block.Language)
		return nil
	}

	ui.Header("Environment Setup")
	for _, v := range block.Vars {
		ui.Info("Set %s to %s", v.Name, ui.Highlight(v.Value))
	}
	for _, dir := range block.Path {
		ui.Info("Add to PATH: %s", ui.Highlight(dir))
	}
	ui.Info("This will modify your user environment variables")

	if !ui.Confirm("Proceed?", true) {
		ui.Warning("Environment not modified. You can run this again later: uvm setup %s", block.Language)
		return nil
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open registry key: %w", err)
	}
	defer func() { _ = key.Close() }()

	for _, v := range block.Vars {
		if err := key.SetStringValue(v.Name, v.Value); err != nil {
			return fmt.Errorf("failed to set %s in registry: %w", v.Name, err)
		}
	}

	currentPath, _, err := key.GetStringValue("Path")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to read current PATH: %w", err)
	}

	newPath := prependPath(currentPath, block.Path)
	if newPath != currentPath {
		if err := key.SetStringValue("Path", newPath); err != nil {
			return fmt.Errorf("failed to update PATH in registry: %w", err)
		}
	}

	// Broadcast WM_SETTINGCHANGE to notify running processes
	broadcastSettingChange()

	ui.Success("Updated your environment for %s", block.Language)
	ui.Warning("Please restart your terminal for the changes to take effect")

	return nil
}

// prependPath puts dirs at the front of a ';' separated PATH, skipping
// entries already present
func prependPath(currentPath string, dirs []string) string {
	existing := strings.Split(currentPath, ";")

	var missing []string
	for _, dir := range dirs {
		found := false
		for _, p := range existing {
			if strings.EqualFold(strings.TrimSpace(p), dir) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, dir)
		}
	}

	if len(missing) == 0 {
		return currentPath
	}
	if currentPath == "" {
		return strings.Join(missing, ";")
	}
	return strings.Join(missing, ";") + ";" + currentPath
}

// broadcastSettingChange broadcasts WM_SETTINGCHANGE to notify the system of environment changes
func broadcastSettingChange() {
	env := syscall.StringToUTF16Ptr("Environment")
	_, _, _ = procSendMessageTimeout.Call(
		uintptr(HWND_BROADCAST),
		uintptr(WM_SETTINGCHANGE),
		0,
		uintptr(unsafe.Pointer(env)),
		uintptr(SMTO_ABORTIFHUNG),
		5000, // 5 second timeout
		0,
	)
}

// DetectShell returns "powershell" or "cmd" on Windows
func DetectShell() string {
	if os.Getenv("PSModulePath") != "" {
		return "powershell"
	}
	return "cmd"
}

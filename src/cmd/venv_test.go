package cmd

import (
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

func TestVenv(t *testing.T) {
	paths := setupHome(t)
	fakeInstall(t, paths, "go", "1.21.5")
	envDir := filepath.Join(t.TempDir(), ".venv")

	out, err := executeCommand(t, "", "venv", "go", "1.21.5", "--dir", envDir)
	if err != nil {
		t.Fatalf("venv error = %v", err)
	}
	if !strings.Contains(out, "Created") {
		t.Errorf("output = %q, want a created message", out)
	}

	script := "activate.sh"
	if goruntime.GOOS == constants.OSWindows {
		script = "activate.ps1"
	}
	if _, err := os.Stat(filepath.Join(envDir, script)); err != nil {
		t.Errorf("activation script missing: %v", err)
	}
	if !strings.Contains(out, filepath.Join(envDir, script)) {
		t.Errorf("output = %q, want the activation command", out)
	}

	out, err = executeCommand(t, "", "venv", "go", "1.21.5", "--dir", envDir)
	if err != nil {
		t.Fatalf("second venv error = %v", err)
	}
	if !strings.Contains(out, "already uses Go 1.21.5") {
		t.Errorf("output = %q, want an already configured message", out)
	}
}

func TestVenv_NotInstalled(t *testing.T) {
	setupHome(t)

	_, err := executeCommand(t, "", "venv", "node", "20.10.0", "--dir", filepath.Join(t.TempDir(), "env"))
	if err == nil || !strings.Contains(err.Error(), "not installed") {
		t.Errorf("error = %v, want a not installed error", err)
	}
}

func TestActivateCommand(t *testing.T) {
	if got := activateCommand(constants.OSLinux, ".venv/activate.sh"); got != "source .venv/activate.sh" {
		t.Errorf("activateCommand(linux) = %q", got)
	}
	if got := activateCommand(constants.OSWindows, `.venv\activate.ps1`); got != `. .venv\activate.ps1` {
		t.Errorf("activateCommand(windows) = %q", got)
	}
}

func TestShellBlock(t *testing.T) {
	block := shellBlock("go", runtime.ShellEnv{
		Vars: []runtime.EnvVar{
			{Name: "GOROOT", Value: "/u/.uvm/data/go/current"},
			{Name: "GOPATH", Value: "/u/.uvm/data/go/go_path"},
		},
		Path: []string{"/u/.uvm/data/go/current/bin"},
	})

	if block.Language != "go" {
		t.Errorf("Language = %q, want go", block.Language)
	}
	if len(block.Vars) != 2 || block.Vars[0].Name != "GOROOT" || block.Vars[1].Value != "/u/.uvm/data/go/go_path" {
		t.Errorf("Vars = %+v, want GOROOT and GOPATH in order", block.Vars)
	}
	if len(block.Path) != 1 || block.Path[0] != "/u/.uvm/data/go/current/bin" {
		t.Errorf("Path = %v", block.Path)
	}
}

func TestCacheClear(t *testing.T) {
	paths := setupHome(t)

	cached := filepath.Join(paths.LanguageCache("node"), "0123456789abcdef.cache.json")
	if err := os.MkdirAll(filepath.Dir(cached), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cached, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "", "cache", "clear", "node")
	if err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(out, "Cleared the catalog cache") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(cached); !os.IsNotExist(err) {
		t.Errorf("cached catalog should be removed, stat err = %v", err)
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Not installed", &runtime.ErrVersionNotInstalled{Version: "1.21.5"}, "uvm install go"},
		{"No match", &runtime.ErrNoMatch{Expression: "9.9"}, "uvm list go"},
		{"Source unavailable", &catalog.ErrSourceUnavailable{URL: "https://go.dev/dl/", Err: errors.New("timeout")}, "proxy or mirror"},
		{"Other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeError("go", tt.err)
			if !strings.Contains(got.Error(), tt.want) {
				t.Errorf("describeError() = %q, want %q", got, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("describeError() should wrap the original error")
			}
		})
	}
}

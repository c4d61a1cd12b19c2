package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinyuli/uvm/src/internal/config"
)

func TestConfig_SetGetDel(t *testing.T) {
	paths := setupHome(t)

	if _, err := executeCommand(t, "", "config", "set", "proxy", "http://127.0.0.1:7890"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	out, err := executeCommand(t, "", "config", "get", "proxy")
	if err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if strings.TrimSpace(out) != "http://127.0.0.1:7890" {
		t.Errorf("config get proxy = %q", strings.TrimSpace(out))
	}

	out, err = executeCommand(t, "", "config", "get")
	if err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if !strings.Contains(out, `proxy = "http://127.0.0.1:7890"`) || !strings.Contains(out, `data_dir = ""`) {
		t.Errorf("config get = %q, want every key", out)
	}

	if _, err := executeCommand(t, "", "config", "del", "--proxy"); err != nil {
		t.Fatalf("config del error = %v", err)
	}
	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.Proxy != "" {
		t.Errorf("proxy = %q after del, want empty", settings.Proxy)
	}
}

func TestConfig_SetDataDirFlag(t *testing.T) {
	paths := setupHome(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	if _, err := executeCommand(t, "", "config", "set", "--data-dir", dataDir); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.DataDir != dataDir {
		t.Errorf("data_dir = %q, want %q", settings.DataDir, dataDir)
	}
	if got := config.NewPaths(paths.Root).Data; got != dataDir {
		t.Errorf("relocated data directory = %q, want %q", got, dataDir)
	}
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Invalid proxy", []string{"config", "set", "proxy", "127.0.0.1"}, "invalid proxy"},
		{"Unknown key", []string{"config", "get", "mirror"}, "unknown config key"},
		{"Nothing to set", []string{"config", "set"}, "nothing to set"},
		{"Nothing to delete", []string{"config", "del"}, "nothing to delete"},
		{"Odd arguments", []string{"config", "set", "proxy"}, "accepts 0 or 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)

			_, err := executeCommand(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "simple text", input: "go"},
		{name: "text with spaces", input: "hello world"},
		{name: "empty string", input: ""},
		{name: "path", input: "/home/u/.uvm/data/go/current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Highlight(tt.input)

			// Colors may be disabled under test, so only containment is checked
			if !strings.Contains(result, tt.input) {
				t.Errorf("Highlight(%q) = %q, does not contain input", tt.input, result)
			}
			if tt.input == "" && result != "" {
				t.Errorf("Highlight(%q) = %q, want empty string", tt.input, result)
			}
		})
	}
}

func TestHighlightVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.21.0"},
		{name: "node version", version: "v20.10.0"},
		{name: "java dir name", version: "corretto-21.0.1.12.1"},
		{name: "empty string", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HighlightVersion(tt.version)
			if !strings.Contains(result, tt.version) {
				t.Errorf("HighlightVersion(%q) = %q, does not contain version", tt.version, result)
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	for name, symbol := range map[string]string{
		"success": successSymbol,
		"error":   errorSymbol,
		"warning": warningSymbol,
		"info":    infoSymbol,
		"debug":   debugSymbol,
	} {
		if symbol == "" {
			t.Errorf("%s symbol should not be empty", name)
		}
	}
}

func TestOutputRedirect(t *testing.T) {
	var stdout, stderr bytes.Buffer
	restore := SetOutput(&stdout, &stderr)
	defer restore()

	Success("installed %s", "go 1.21.0")
	Info("run %s", "uvm use")
	Error("failed %d", 1)

	if !strings.Contains(stdout.String(), "installed go 1.21.0") {
		t.Errorf("stdout = %q, missing success message", stdout.String())
	}
	if !strings.Contains(stdout.String(), "run uvm use") {
		t.Errorf("stdout = %q, missing info message", stdout.String())
	}
	if !strings.Contains(stderr.String(), "failed 1") {
		t.Errorf("stderr = %q, missing error message", stderr.String())
	}
	if strings.Contains(stdout.String(), "failed 1") {
		t.Error("error message should not reach stdout")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes", input: "YES\n", want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", want: false},
		{name: "eof takes default", input: "", defaultYes: true, want: true},
		{name: "anything else is no", input: "maybe\n", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			restoreOut := SetOutput(&stdout, &stdout)
			defer restoreOut()
			restoreIn := SetInput(strings.NewReader(tt.input))
			defer restoreIn()

			if got := Confirm("Continue?", tt.defaultYes); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(stdout.String(), "Continue?") {
				t.Error("question was not printed")
			}
		})
	}
}

func TestVerboseMode(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Verbose mode should be off after SetVerbose(false)")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Verbose mode should be on after SetVerbose(true)")
	}
}

func TestCheckVerboseEnv(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			SetVerbose(false)
			t.Setenv(VerboseEnvVar, tt.value)
			CheckVerboseEnv()
			if IsVerbose() != tt.want {
				t.Errorf("%s=%q: verbose = %v, want %v", VerboseEnvVar, tt.value, IsVerbose(), tt.want)
			}
		})
	}
}

func TestDebug(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	var stdout, stderr bytes.Buffer
	restore := SetOutput(&stdout, &stderr)
	defer restore()

	SetVerbose(false)
	Debug("hidden %s", "message")
	if stderr.Len() != 0 {
		t.Errorf("Debug wrote %q with verbose off", stderr.String())
	}

	SetVerbose(true)
	Debugf("shown %s", "message")
	if !strings.Contains(stderr.String(), "shown message") {
		t.Errorf("stderr = %q, want debug message", stderr.String())
	}
}

func TestInitLogging(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")
	if err := InitLogging(dir); err != nil {
		t.Fatalf("InitLogging() error: %v", err)
	}
	defer CloseLogging()

	var stdout, stderr bytes.Buffer
	restore := SetOutput(&stdout, &stderr)
	defer restore()

	Debug("written to %s", "file")
	CloseLogging()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want debug message", string(data))
	}
}

func TestWithSpinner(t *testing.T) {
	var buf bytes.Buffer
	defer SetOutput(&buf, &buf)()

	if err := WithSpinner("Fetching Go versions...", func() error { return nil }); err != nil {
		t.Fatalf("WithSpinner() error = %v", err)
	}
	if !strings.Contains(buf.String(), successSymbol+" Fetching Go versions...") {
		t.Errorf("output = %q, want a success line", buf.String())
	}

	buf.Reset()
	want := os.ErrNotExist
	if err := WithSpinner("Fetching", func() error { return want }); err != want {
		t.Fatalf("WithSpinner() error = %v, want %v", err, want)
	}
	if !strings.Contains(buf.String(), "Fetching failed") {
		t.Errorf("output = %q, want a failure line", buf.String())
	}
}

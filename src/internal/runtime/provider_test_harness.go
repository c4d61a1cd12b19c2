package runtime

import (
	"bytes"
	"strings"
	"testing"
	"text/template"

	"github.com/jinyuli/uvm/src/internal/config"
)

// LanguageTestHarness runs a suite of contract tests against a Language implementation
// This ensures all languages behave consistently and implement the interface correctly
type LanguageTestHarness struct {
	Language Language
	T        *testing.T
	Options  Options

	// Expected values for validation
	ExpectedName        string
	ExpectedDisplayName string

	// SampleExpression is a valid version request (e.g., "1.21.0")
	SampleExpression string
	// ExpectedInstalledName is the directory SampleExpression maps to
	ExpectedInstalledName string
	// SampleRecord and ExpectedDirName check the on-disk naming
	SampleRecord    *VersionRecord
	ExpectedDirName string
}

// RunAllTests executes the complete test suite
func (h *LanguageTestHarness) RunAllTests() {
	h.T.Run("Name", func(t *testing.T) { h.TestName(t) })
	h.T.Run("DisplayName", func(t *testing.T) { h.TestDisplayName(t) })
	h.T.Run("Platform", func(t *testing.T) { h.TestPlatform(t) })
	h.T.Run("Request", func(t *testing.T) { h.TestRequest(t) })
	h.T.Run("InvalidRequest", func(t *testing.T) { h.TestInvalidRequest(t) })
	h.T.Run("DirName", func(t *testing.T) { h.TestDirName(t) })
	h.T.Run("InstalledName", func(t *testing.T) { h.TestInstalledName(t) })
	h.T.Run("EnvHint", func(t *testing.T) { h.TestEnvHint(t) })
	h.T.Run("ShellEnv", func(t *testing.T) { h.TestShellEnv(t) })
	h.T.Run("Scripts", func(t *testing.T) { h.TestScripts(t) })
	h.T.Run("CatalogBase", func(t *testing.T) { h.TestCatalogBase(t) })
}

// TestName verifies the language returns the expected name
func (h *LanguageTestHarness) TestName(t *testing.T) {
	name := h.Language.Name()

	if name == "" {
		t.Error("Name() returned empty string")
	}

	if name != h.ExpectedName {
		t.Errorf("Name() = %q, want %q", name, h.ExpectedName)
	}

	// Name is used on disk and on the command line
	if name != strings.ToLower(name) {
		t.Errorf("Name() = %q should be lowercase", name)
	}
}

// TestDisplayName verifies the language returns a human-readable name
func (h *LanguageTestHarness) TestDisplayName(t *testing.T) {
	displayName := h.Language.DisplayName()

	if displayName == "" {
		t.Error("DisplayName() returned empty string")
	}

	if displayName != h.ExpectedDisplayName {
		t.Errorf("DisplayName() = %q, want %q", displayName, h.ExpectedDisplayName)
	}
}

// TestPlatform verifies the common hosts map onto catalog names
func (h *LanguageTestHarness) TestPlatform(t *testing.T) {
	hosts := []struct{ goos, goarch string }{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "arm64"},
		{"windows", "amd64"},
	}

	for _, host := range hosts {
		os, arch := h.Language.Platform(host.goos, host.goarch, h.Options)
		if os == "" || arch == "" {
			t.Errorf("Platform(%q, %q) = (%q, %q), want non-empty names", host.goos, host.goarch, os, arch)
		}
		if os != strings.ToLower(os) || arch != strings.ToLower(arch) {
			t.Errorf("Platform(%q, %q) = (%q, %q) should be lowercase", host.goos, host.goarch, os, arch)
		}
	}

	if _, arch := h.Language.Platform("linux", "not-an-arch", h.Options); arch != "" {
		t.Errorf("Platform() for an unknown arch = %q, want empty", arch)
	}
}

// TestRequest verifies a sample expression builds a usable request
func (h *LanguageTestHarness) TestRequest(t *testing.T) {
	if h.SampleExpression == "" {
		t.Skip("No sample expression provided")
	}

	req, err := h.Language.Request(h.SampleExpression, h.Options)
	if err != nil {
		t.Fatalf("Request(%q) error: %v", h.SampleExpression, err)
	}
	if req.ExactToken == "" {
		t.Error("Request() returned empty exact token")
	}
	if req.Range == nil {
		t.Error("Request() returned nil range")
	}
	if req.Expression != h.SampleExpression {
		t.Errorf("Request().Expression = %q, want %q", req.Expression, h.SampleExpression)
	}
	if h.SampleRecord != nil && !req.Range.Check(h.SampleRecord.Ordering) {
		t.Errorf("Request(%q) range does not admit %s", h.SampleExpression, h.SampleRecord.Ordering)
	}
}

// TestInvalidRequest verifies an unparsable expression is rejected
func (h *LanguageTestHarness) TestInvalidRequest(t *testing.T) {
	_, err := h.Language.Request("not a version", h.Options)
	if err == nil {
		t.Fatal("Request() expected error, got nil")
	}
	if !IsInvalidExpression(err) {
		t.Errorf("Request() error = %v, want ErrInvalidExpression", err)
	}
}

// TestDirName verifies the installed directory naming
func (h *LanguageTestHarness) TestDirName(t *testing.T) {
	if h.SampleRecord == nil {
		t.Skip("No sample record provided")
	}

	name := h.Language.DirName(h.SampleRecord)
	if name != h.ExpectedDirName {
		t.Errorf("DirName() = %q, want %q", name, h.ExpectedDirName)
	}
	if strings.ContainsAny(name, `/\`) {
		t.Errorf("DirName() = %q contains a path separator", name)
	}
}

// TestInstalledName verifies expressions map onto directory names
func (h *LanguageTestHarness) TestInstalledName(t *testing.T) {
	if h.SampleExpression == "" {
		t.Skip("No sample expression provided")
	}

	name := h.Language.InstalledName(h.SampleExpression, h.Options)
	if name != h.ExpectedInstalledName {
		t.Errorf("InstalledName(%q) = %q, want %q", h.SampleExpression, name, h.ExpectedInstalledName)
	}
	if h.SampleRecord != nil && h.ExpectedDirName == h.ExpectedInstalledName {
		if again := h.Language.InstalledName(h.Language.DirName(h.SampleRecord), h.Options); again != name {
			t.Errorf("InstalledName(DirName()) = %q, want %q", again, name)
		}
	}
}

// TestEnvHint verifies the setup hint mentions the current link
func (h *LanguageTestHarness) TestEnvHint(t *testing.T) {
	dirs := config.LanguageDirs{
		Home:     "/uvm/data/lang",
		Versions: "/uvm/data/lang/versions",
		Current:  "/uvm/data/lang/current",
		Tmp:      "/uvm/data/lang/tmp",
	}

	hint := h.Language.EnvHint(dirs)
	if !strings.Contains(hint, dirs.Current) {
		t.Errorf("EnvHint() = %q, want it to mention %q", hint, dirs.Current)
	}
}

// TestShellEnv verifies the persisted environment points into the language home
func (h *LanguageTestHarness) TestShellEnv(t *testing.T) {
	dirs := config.LanguageDirs{
		Home:    "/uvm/data/lang",
		Current: "/uvm/data/lang/current",
	}

	env := h.Language.ShellEnv(dirs)
	if len(env.Path) == 0 {
		t.Fatal("ShellEnv() returned no PATH entries")
	}
	for _, dir := range env.Path {
		if !strings.HasPrefix(dir, dirs.Home) {
			t.Errorf("ShellEnv() PATH entry %q is outside %q", dir, dirs.Home)
		}
	}
	for _, v := range env.Vars {
		if v.Name == "" || v.Name != strings.ToUpper(v.Name) {
			t.Errorf("ShellEnv() variable name %q should be non-empty and uppercase", v.Name)
		}
		if v.Value == "" {
			t.Errorf("ShellEnv() variable %s has an empty value", v.Name)
		}
	}
}

// TestScripts verifies every activation script renders on each platform
func (h *LanguageTestHarness) TestScripts(t *testing.T) {
	data := ScriptData{
		EnvDir:   "/work/.venv",
		LinkDir:  "/work/.venv/" + h.Language.Name(),
		Language: h.Language.Name(),
		Prompt:   "(" + h.Language.Name() + ") ",
	}

	for _, goos := range []string{"linux", "darwin", "windows"} {
		scripts := h.Language.Scripts(goos)
		if len(scripts) == 0 {
			t.Errorf("Scripts(%q) returned no scripts", goos)
			continue
		}

		for _, script := range scripts {
			if script.Name == "" {
				t.Errorf("Scripts(%q) returned a script without a name", goos)
			}
			if goos == "windows" && !strings.HasSuffix(script.Name, ".ps1") {
				t.Errorf("Scripts(windows) returned %q, want a .ps1 script", script.Name)
			}

			tmpl, err := template.New(script.Name).Parse(script.Template)
			if err != nil {
				t.Errorf("script %s does not parse: %v", script.Name, err)
				continue
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				t.Errorf("script %s does not render: %v", script.Name, err)
				continue
			}
			if strings.HasPrefix(script.Name, "activate") && !strings.Contains(buf.String(), data.Prompt) {
				t.Errorf("script %s does not add the prompt prefix", script.Name)
			}
			if !strings.Contains(buf.String(), data.LinkDir) && !strings.Contains(buf.String(), data.EnvDir) {
				t.Errorf("script %s does not reference the environment", script.Name)
			}
		}
	}
}

// TestCatalogBase verifies the mirrored base is an absolute URL
func (h *LanguageTestHarness) TestCatalogBase(t *testing.T) {
	base := h.Language.CatalogBase()
	if !strings.HasPrefix(base, "https://") {
		t.Errorf("CatalogBase() = %q, want an https URL", base)
	}
}

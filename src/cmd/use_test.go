package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUse_NotInstalled(t *testing.T) {
	setupHome(t)

	_, err := executeCommand(t, "", "use", "go", "1.21.5")
	if err == nil {
		t.Fatal("use should fail for a version that is not installed")
	}
	if !strings.Contains(err.Error(), "not installed") || !strings.Contains(err.Error(), "uvm install go") {
		t.Errorf("error = %q, want a not installed diagnostic with an install hint", err)
	}
}

func TestUse_UnknownLanguage(t *testing.T) {
	setupHome(t)

	_, err := executeCommand(t, "", "use", "ruby", "3.2.0")
	if err == nil {
		t.Fatal("use should fail for an unknown language")
	}
	if !strings.Contains(err.Error(), "available languages: go, java, node") {
		t.Errorf("error = %q, want the list of available languages", err)
	}
}

func TestUse_SwitchesAndReports(t *testing.T) {
	paths := setupHome(t)
	fakeInstall(t, paths, "go", "1.20.0")
	fakeInstall(t, paths, "go", "1.21.5")

	out, err := executeCommand(t, "", "use", "go", "1.21.5")
	if err != nil {
		t.Fatalf("use error = %v", err)
	}
	if !strings.Contains(out, "Now using Go 1.21.5") {
		t.Errorf("output = %q, want a success message", out)
	}
	if !strings.Contains(out, "uvm setup go") {
		t.Errorf("first use should print the PATH hint, output = %q", out)
	}

	out, err = executeCommand(t, "", "use", "go", "1.21.5")
	if err != nil {
		t.Fatalf("second use error = %v", err)
	}
	if !strings.Contains(out, "already in use") {
		t.Errorf("output = %q, want an already in use message", out)
	}

	out, err = executeCommand(t, "", "use", "go", "1.20.0")
	if err != nil {
		t.Fatalf("switch error = %v", err)
	}
	if strings.Contains(out, "uvm setup go") {
		t.Errorf("switching should not repeat the PATH hint, output = %q", out)
	}
}

func TestCurrentAndWhere(t *testing.T) {
	paths := setupHome(t)
	dir := fakeInstall(t, paths, "go", "1.21.5")

	out, err := executeCommand(t, "", "current", "go")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if !strings.Contains(out, "No Go version is in use") {
		t.Errorf("output = %q, want no version in use", out)
	}

	if _, err := executeCommand(t, "", "use", "go", "1.21.5"); err != nil {
		t.Fatalf("use error = %v", err)
	}

	out, err = executeCommand(t, "", "current")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	for _, want := range []string{"Current Versions", "1.21.5", "Node.js", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("current output missing %q:\n%s", want, out)
		}
	}

	out, err = executeCommand(t, "", "where", "go")
	if err != nil {
		t.Fatalf("where error = %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("where = %q, want %q", strings.TrimSpace(out), dir)
	}

	out, err = executeCommand(t, "", "where", "go", "go1.21.5")
	if err != nil {
		t.Fatalf("where with version error = %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("where = %q, want %q", strings.TrimSpace(out), dir)
	}
}

func TestUnuse(t *testing.T) {
	paths := setupHome(t)
	fakeInstall(t, paths, "node", "20.10.0")

	out, err := executeCommand(t, "", "unuse", "node")
	if err != nil {
		t.Fatalf("unuse error = %v", err)
	}
	if !strings.Contains(out, "No Node.js version is in use") {
		t.Errorf("output = %q, want nothing to unuse", out)
	}

	if _, err := executeCommand(t, "", "use", "node", "v20.10.0"); err != nil {
		t.Fatalf("use error = %v", err)
	}
	out, err = executeCommand(t, "", "unuse", "node")
	if err != nil {
		t.Fatalf("unuse error = %v", err)
	}
	if !strings.Contains(out, "Stopped using Node.js 20.10.0") {
		t.Errorf("output = %q, want a stopped message", out)
	}

	if _, err := os.Lstat(paths.Language("node").Current); !os.IsNotExist(err) {
		t.Errorf("current link should be removed, lstat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(paths.Language("node").Versions, "20.10.0")); err != nil {
		t.Errorf("unuse must keep the installed version: %v", err)
	}
}

func TestVendorFlag_OnlyForJava(t *testing.T) {
	setupHome(t)

	_, err := executeCommand(t, "", "list", "go", "--local", "--vendor", "corretto")
	if err == nil || !strings.Contains(err.Error(), "--vendor only applies to java") {
		t.Errorf("error = %v, want a vendor misuse error", err)
	}
}

func TestUse_JavaVendor(t *testing.T) {
	paths := setupHome(t)
	fakeInstall(t, paths, "java", "corretto-21.0.1.12.1")

	out, err := executeCommand(t, "", "use", "java", "21.0.1.12.1", "--vendor", "corretto")
	if err != nil {
		t.Fatalf("use error = %v", err)
	}
	if !strings.Contains(out, "corretto-21.0.1.12.1") {
		t.Errorf("output = %q, want the vendor prefixed name", out)
	}

	// Without --vendor the default vendor from the settings file applies
	if err := os.WriteFile(paths.Config, []byte("[java]\ndefault_vendor = \"corretto\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = executeCommand(t, "", "use", "java", "21.0.1.12.1")
	if err != nil {
		t.Fatalf("use with default vendor error = %v", err)
	}
	if !strings.Contains(out, "already in use") {
		t.Errorf("output = %q, want the corretto version to be already in use", out)
	}
}

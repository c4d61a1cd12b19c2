package runtime

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jinyuli/uvm/src/internal/link"
	"github.com/jinyuli/uvm/src/internal/ui"
)

// EnvOutcome is the successful result of creating a virtual environment
type EnvOutcome int

const (
	// EnvCreated means the environment was (re)built
	EnvCreated EnvOutcome = iota
	// EnvAlreadyConfigured means the environment already links the version
	EnvAlreadyConfigured
)

// CreateEnv builds a virtual environment in targetDir that links an
// installed version and carries the language's activation scripts. An
// environment for another version is replaced.
func (m *Manager) CreateEnv(expression, targetDir string) (EnvOutcome, error) {
	dir, err := m.VersionPath(expression)
	if err != nil {
		return EnvCreated, err
	}

	envDir, err := filepath.Abs(targetDir)
	if err != nil {
		return EnvCreated, fmt.Errorf("failed to resolve %s: %w", targetDir, err)
	}
	linkDir := filepath.Join(envDir, m.language.Name())

	if link.PointsTo(linkDir, dir) {
		return EnvAlreadyConfigured, nil
	}

	if err := checkEnvDir(envDir); err != nil {
		return EnvCreated, err
	}

	ui.Debug("Rebuilding environment %s", envDir)
	if err := os.RemoveAll(envDir); err != nil {
		return EnvCreated, fmt.Errorf("failed to clear %s: %w", envDir, err)
	}
	if err := os.MkdirAll(envDir, 0755); err != nil {
		return EnvCreated, fmt.Errorf("failed to create %s: %w", envDir, err)
	}
	if err := link.Create(linkDir, dir); err != nil {
		return EnvCreated, err
	}

	data := ScriptData{
		EnvDir:   envDir,
		LinkDir:  linkDir,
		Language: m.language.Name(),
		Prompt:   fmt.Sprintf("(%s) ", m.language.Name()),
	}
	if err := WriteScripts(envDir, m.language.Scripts(m.goos), data); err != nil {
		return EnvCreated, err
	}
	return EnvCreated, nil
}

// WriteScripts renders scripts into dir, replacing existing files
func WriteScripts(dir string, scripts []Script, data ScriptData) error {
	for _, script := range scripts {
		tmpl, err := template.New(script.Name).Parse(script.Template)
		if err != nil {
			return fmt.Errorf("failed to parse script %s: %w", script.Name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render script %s: %w", script.Name, err)
		}

		path := filepath.Join(dir, script.Name)
		if err := os.WriteFile(path, buf.Bytes(), 0755); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// checkEnvDir refuses to clear the working directory or one of its parents
func checkEnvDir(envDir string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(envDir, cwd)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("refusing to replace %s: it contains the working directory", envDir)
	}
	return nil
}

package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnv(t *testing.T) {
	f := newManagerFixture(t)
	installed(t, f, "1.20.0", "1.21.0")
	envDir := filepath.Join(t.TempDir(), ".venv")

	outcome, err := f.manager.CreateEnv("1.21.0", envDir)
	require.NoError(t, err)
	assert.Equal(t, EnvCreated, outcome)

	linkDir := filepath.Join(envDir, "mock")
	assert.True(t, link.PointsTo(linkDir, filepath.Join(f.dirs.Versions, "1.21.0")))

	activate, err := os.ReadFile(filepath.Join(envDir, "activate.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(activate), linkDir+"/bin")
	assert.Contains(t, string(activate), "(mock) ")
	assert.FileExists(t, filepath.Join(envDir, "deactivate.sh"))

	info, err := os.Stat(filepath.Join(envDir, "activate.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0100, "scripts should be executable")
}

func TestCreateEnv_AlreadyConfigured(t *testing.T) {
	f := newManagerFixture(t)
	installed(t, f, "1.21.0")
	envDir := filepath.Join(t.TempDir(), ".venv")

	_, err := f.manager.CreateEnv("1.21.0", envDir)
	require.NoError(t, err)
	marker := filepath.Join(envDir, "marker")
	require.NoError(t, os.WriteFile(marker, nil, 0644))

	outcome, err := f.manager.CreateEnv("v1.21.0", envDir)
	require.NoError(t, err)
	assert.Equal(t, EnvAlreadyConfigured, outcome)
	assert.FileExists(t, marker, "a configured environment is left untouched")
}

func TestCreateEnv_ReplacesOtherVersion(t *testing.T) {
	f := newManagerFixture(t)
	installed(t, f, "1.20.0", "1.21.0")
	envDir := filepath.Join(t.TempDir(), ".venv")

	_, err := f.manager.CreateEnv("1.20.0", envDir)
	require.NoError(t, err)
	marker := filepath.Join(envDir, "marker")
	require.NoError(t, os.WriteFile(marker, nil, 0644))

	outcome, err := f.manager.CreateEnv("1.21.0", envDir)
	require.NoError(t, err)
	assert.Equal(t, EnvCreated, outcome)
	assert.NoFileExists(t, marker)
	assert.True(t, link.PointsTo(filepath.Join(envDir, "mock"), filepath.Join(f.dirs.Versions, "1.21.0")))
	assert.DirExists(t, filepath.Join(f.dirs.Versions, "1.20.0"), "the previous version stays installed")
}

func TestCreateEnv_NotInstalled(t *testing.T) {
	f := newManagerFixture(t)
	envDir := filepath.Join(t.TempDir(), ".venv")

	_, err := f.manager.CreateEnv("1.21.0", envDir)
	assert.True(t, IsVersionNotInstalled(err))
	assert.NoDirExists(t, envDir)
}

func TestCreateEnv_RefusesWorkingDirectory(t *testing.T) {
	f := newManagerFixture(t)
	installed(t, f, "1.21.0")
	envDir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(envDir, "src"), 0755))
	t.Chdir(filepath.Join(envDir, "src"))

	_, err := f.manager.CreateEnv("1.21.0", envDir)
	require.Error(t, err)
	assert.DirExists(t, filepath.Join(envDir, "src"))
}

func TestCreateEnv_WindowsScripts(t *testing.T) {
	f := newManagerFixture(t)
	installed(t, f, "1.21.0")
	m := f.newManager(t, catalog.Mirror{})
	m.goos = "windows"
	envDir := filepath.Join(t.TempDir(), ".venv")

	_, err := m.CreateEnv("1.21.0", envDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(envDir, "activate.ps1"))
	assert.NoFileExists(t, filepath.Join(envDir, "activate.sh"))
}

func TestWriteScripts_BadTemplate(t *testing.T) {
	err := WriteScripts(t.TempDir(), []Script{{Name: "broken.sh", Template: "{{.Missing"}}, ScriptData{})
	assert.Error(t, err)
}

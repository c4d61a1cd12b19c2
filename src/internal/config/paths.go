// Package config manages uvm configuration including paths and user settings
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// HomeEnvVar overrides the uvm home directory when set
const HomeEnvVar = "UVM_HOME"

// ConfigFileName is the name of the settings file inside the home directory
const ConfigFileName = "config"

// Paths holds all important uvm directory paths
type Paths struct {
	Root   string // Root uvm directory (~/.uvm)
	Data   string // Data directory holding one folder per language (~/.uvm/data)
	Log    string // Log directory (~/.uvm/log)
	Cache  string // Catalog cache directory (~/.uvm/cache)
	Config string // Settings file (~/.uvm/config)
}

// LanguageDirs is the on-disk layout of a single language:
// <data>/<lang>/{versions,current,tmp}
type LanguageDirs struct {
	Home     string // <data>/<lang>
	Versions string // installed version trees
	Current  string // the current-version link
	Tmp      string // transient downloads
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default uvm paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

// initPaths initializes the default paths
func initPaths() *Paths {
	return NewPaths(getRootDir())
}

// NewPaths builds the directory layout under root. A data_dir from the
// settings file relocates the data directory.
func NewPaths(root string) *Paths {
	p := &Paths{
		Root:   root,
		Data:   filepath.Join(root, "data"),
		Log:    filepath.Join(root, "log"),
		Cache:  filepath.Join(root, "cache"),
		Config: filepath.Join(root, ConfigFileName),
	}

	if settings, err := LoadSettings(p.Config); err == nil && settings.DataDir != "" {
		p.Data = settings.DataDir
	}

	return p
}

// getRootDir returns the root uvm directory
func getRootDir() string {
	if root := os.Getenv(HomeEnvVar); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return ".uvm"
	}

	return filepath.Join(home, ".uvm")
}

// Language returns the directory layout for a language
func (p *Paths) Language(name string) LanguageDirs {
	home := filepath.Join(p.Data, name)
	return LanguageDirs{
		Home:     home,
		Versions: filepath.Join(home, "versions"),
		Current:  filepath.Join(home, "current"),
		Tmp:      filepath.Join(home, "tmp"),
	}
}

// LanguageCache returns the catalog cache directory of a language
func (p *Paths) LanguageCache(name string) string {
	return filepath.Join(p.Cache, name)
}

// EnsureDirectories creates the base directories plus the layout of every
// given language. The current link is not created here.
func (p *Paths) EnsureDirectories(languages ...string) error {
	dirs := []string{
		p.Root,
		p.Data,
		p.Log,
		p.Cache,
	}
	for _, lang := range languages {
		l := p.Language(lang)
		dirs = append(dirs, l.Home, l.Versions, l.Tmp)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// EnsureDirectories creates all necessary uvm directories for the default paths
func EnsureDirectories(languages ...string) error {
	return DefaultPaths().EnsureDirectories(languages...)
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}

// Package runtime resolves, installs and switches language versions. Each
// supported language plugs in through the Language interface.
package runtime

import (
	"context"
	"net/http"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/config"
)

// Language defines what a supported language contributes to the engine:
// its remote catalog, host naming and on-disk naming rules
type Language interface {
	// Name returns the name used on the command line and on disk (e.g., "go", "node", "java")
	Name() string

	// DisplayName returns a human-readable name (e.g., "Go", "Node.js", "Java")
	DisplayName() string

	// FetchCatalog retrieves and normalizes every published release.
	// An empty catalog is not an error.
	FetchCatalog(ctx context.Context, env FetchEnv) ([]*VersionRecord, error)

	// Platform maps Go's GOOS/GOARCH onto the naming the catalog uses.
	// Unsupported values map to an empty string.
	Platform(goos, goarch string, opts Options) (os, arch string)

	// Request builds the resolution request for a user expression
	Request(expression string, opts Options) (Request, error)

	// DirName returns the directory name a release is installed under
	DirName(rec *VersionRecord) string

	// FallbackFolder names the extracted folder when the archive does not
	// report a single top folder
	FallbackFolder(rec *VersionRecord, pkg Package) string

	// InstalledName maps a user expression onto an installed directory name
	InstalledName(expression string, opts Options) string

	// EnvHint returns the shell instructions that put the current link on PATH
	EnvHint(dirs config.LanguageDirs) string

	// ShellEnv returns the variables and PATH entries `uvm setup` persists
	ShellEnv(dirs config.LanguageDirs) ShellEnv

	// Scripts returns the activation scripts written into a virtual environment
	Scripts(goos string) []Script

	// CatalogBase returns the official base URL a configured mirror replaces
	CatalogBase() string
}

// Options carries per-invocation choices that affect naming and catalogs
type Options struct {
	// Vendor selects a Java distribution ("openjdk", "corretto")
	Vendor string
}

// FetchEnv is what a language needs to retrieve its catalog
type FetchEnv struct {
	// Source serves catalog documents and checksum files
	Source catalog.Source
	// HTTPClient is the proxy-aware client for API SDKs
	HTTPClient *http.Client
	Options    Options
}

// Script is a virtual environment script rendered with ScriptData
type Script struct {
	Name     string
	Template string
}

// ScriptData is the data a Script template is rendered with
type ScriptData struct {
	// EnvDir is the absolute virtual environment directory
	EnvDir string
	// LinkDir is the absolute path of the link to the installed version
	LinkDir string
	// Language is the language name, which also names the link
	Language string
	// Prompt is the prefix added to the shell prompt, e.g. "(go) "
	Prompt string
}

// EnvVar is an environment variable assignment
type EnvVar struct {
	Name  string
	Value string
}

// ShellEnv is what a language needs in the user's shell to run the
// current version
type ShellEnv struct {
	Vars []EnvVar
	// Path is prepended to PATH, first entry first
	Path []string
}

// Package node implements the Node.js language for uvm
package node

import (
	"context"
	"fmt"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Provider implements the runtime.Language interface for Node.js
type Provider struct{}

// NewProvider creates a new Node.js language provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the language name
func (p *Provider) Name() string {
	return constants.LangNode
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "Node.js"
}

// CatalogBase returns the official distribution base
func (p *Provider) CatalogBase() string {
	return distURL
}

// FetchCatalog reads nodejs.org/dist/index.json
func (p *Provider) FetchCatalog(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error) {
	content, err := env.Source.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	return parseIndex(content)
}

var archNames = map[string]string{
	constants.ArchAMD64:   "x64",
	constants.ArchARM64:   "arm64",
	constants.Arch386:     "x86",
	constants.ArchARM:     "armv7l",
	constants.ArchPPC64LE: "ppc64le",
	constants.ArchPPC64:   "ppc64",
	constants.ArchS390X:   "s390x",
}

// Platform maps GOOS/GOARCH onto index.json descriptor tokens
func (p *Provider) Platform(goos, goarch string, _ runtime.Options) (string, string) {
	var os string
	switch goos {
	case constants.OSWindows:
		os = "win"
	case constants.OSDarwin:
		os = "osx"
	case constants.OSAIX:
		os = "aix"
	default:
		os = "linux"
	}
	return os, archNames[goarch]
}

// Request accepts 20.10.0, v20.10.0 and ranges such as ^18
func (p *Provider) Request(expression string, _ runtime.Options) (runtime.Request, error) {
	trimmed := strings.TrimPrefix(expression, "v")
	return runtime.NewRequest(expression, "v"+trimmed, trimmed)
}

// DirName returns the version without its leading v
func (p *Provider) DirName(rec *runtime.VersionRecord) string {
	return runtime.FormatVersion(rec.Ordering)
}

// FallbackFolder is the folder a Node archive unpacks into
func (p *Provider) FallbackFolder(rec *runtime.VersionRecord, pkg runtime.Package) string {
	return fmt.Sprintf("node-v%s-%s-%s", runtime.FormatVersion(rec.Ordering), fileOS(pkg.OS), pkg.Arch)
}

// InstalledName strips the leading v
func (p *Provider) InstalledName(expression string, _ runtime.Options) string {
	return strings.TrimPrefix(expression, "v")
}

// EnvHint tells the user how to put the current Node on PATH
func (p *Provider) EnvHint(dirs config.LanguageDirs) string {
	if goruntime.GOOS == constants.OSWindows {
		return fmt.Sprintf("Please add %s to your PATH,\nor run: uvm setup node", dirs.Current)
	}
	binDir := filepath.Join(dirs.Current, "bin")
	return fmt.Sprintf(`Please add %[1]s to your PATH, for example:
    export PATH="%[1]s:$PATH"
or run: uvm setup node`, binDir)
}

// ShellEnv puts the current Node on PATH
func (p *Provider) ShellEnv(dirs config.LanguageDirs) runtime.ShellEnv {
	if goruntime.GOOS == constants.OSWindows {
		return runtime.ShellEnv{Path: []string{dirs.Current}}
	}
	return runtime.ShellEnv{Path: []string{filepath.Join(dirs.Current, "bin")}}
}

// init registers the Node.js provider on package load
func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register Node.js provider: %v", err))
	}
}

// Package golang implements the Go language for uvm
package golang

import (
	"context"
	"fmt"
	"path/filepath"
	goruntime "runtime"
	"sort"
	"strings"

	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Provider implements the runtime.Language interface for Go
type Provider struct{}

// NewProvider creates a new Go language provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the language name
func (p *Provider) Name() string {
	return constants.LangGo
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "Go"
}

// CatalogBase returns the official download base
func (p *Provider) CatalogBase() string {
	return downloadURL
}

// FetchCatalog scrapes the go.dev download page
func (p *Provider) FetchCatalog(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error) {
	content, err := env.Source.Fetch(ctx, downloadURL)
	if err != nil {
		return nil, err
	}

	releases, err := parseDownloadPage(content)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(releases))
	for id := range releases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]*runtime.VersionRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := toRecord(id, releases[id]); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

var archNames = map[string]string{
	constants.ArchAMD64:   "x86-64",
	constants.Arch386:     "x86",
	constants.ArchARM:     "armv6",
	constants.ArchARM64:   "arm64",
	constants.ArchLoong64: "loong64",
	constants.ArchPPC64:   "ppc64",
	constants.ArchPPC64LE: "ppc64le",
	constants.ArchS390X:   "s390x",
	"riscv64":             "riscv64",
}

var osNames = map[string]string{
	constants.OSDarwin:  "macos",
	constants.OSWindows: "windows",
	constants.OSLinux:   "linux",
	constants.OSFreeBSD: "freebsd",
}

// Platform maps GOOS/GOARCH onto the go.dev table columns
func (p *Provider) Platform(goos, goarch string, _ runtime.Options) (string, string) {
	return osNames[goos], archNames[goarch]
}

// Request accepts 1.21.0, go1.21.0 and ranges such as ^1.20
func (p *Provider) Request(expression string, _ runtime.Options) (runtime.Request, error) {
	trimmed := strings.TrimPrefix(expression, "go")
	return runtime.NewRequest(expression, "go"+trimmed, trimmed)
}

// DirName returns the formatted version, e.g. 1.21.0 or 1.21.0-rc2
func (p *Provider) DirName(rec *runtime.VersionRecord) string {
	return runtime.FormatVersion(rec.Ordering)
}

// FallbackFolder is the folder every Go archive unpacks into
func (p *Provider) FallbackFolder(_ *runtime.VersionRecord, _ runtime.Package) string {
	return "go"
}

// InstalledName normalizes go1.21rc2 to 1.21.0-rc2
func (p *Provider) InstalledName(expression string, _ runtime.Options) string {
	trimmed := strings.TrimPrefix(expression, "go")
	if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
		return trimmed
	}
	if v, ok := parseVersion(trimmed); ok {
		return runtime.FormatVersion(v)
	}
	return trimmed
}

// EnvHint tells the user how to put the current Go on PATH
func (p *Provider) EnvHint(dirs config.LanguageDirs) string {
	binDir := filepath.Join(dirs.Current, "bin")
	goPath := filepath.Join(dirs.Home, "go_path")

	if goruntime.GOOS == constants.OSWindows {
		return fmt.Sprintf("Please add %s to your PATH and set GOPATH to %s,\nor run: uvm setup go", binDir, goPath)
	}
	return fmt.Sprintf(`Please add %[1]s to your PATH and set GOPATH, for example:
    export PATH="%[1]s:$PATH"
    export GOPATH="%[2]s"
or run: uvm setup go`, binDir, goPath)
}

// ShellEnv sets GOROOT and GOPATH and puts both bin directories on PATH
func (p *Provider) ShellEnv(dirs config.LanguageDirs) runtime.ShellEnv {
	goPath := filepath.Join(dirs.Home, "go_path")
	return runtime.ShellEnv{
		Vars: []runtime.EnvVar{
			{Name: "GOROOT", Value: dirs.Current},
			{Name: "GOPATH", Value: goPath},
		},
		Path: []string{filepath.Join(dirs.Current, "bin"), filepath.Join(goPath, "bin")},
	}
}

// init registers the Go provider on package load
func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register Go provider: %v", err))
	}
}

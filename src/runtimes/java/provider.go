// Package java implements the Java language for uvm. Two vendors are
// supported: OpenJDK builds from jdk.java.net and Amazon Corretto.
package java

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

// Provider implements the runtime.Language interface for Java
type Provider struct{}

// NewProvider creates a new Java language provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the language name
func (p *Provider) Name() string {
	return constants.LangJava
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "Java"
}

// CatalogBase returns the OpenJDK site; Corretto is read through the GitHub API
func (p *Provider) CatalogBase() string {
	return openJDKHome
}

// FetchCatalog lists the releases of the selected vendor
func (p *Provider) FetchCatalog(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error) {
	v, err := lookupVendor(env.Options)
	if err != nil {
		return nil, err
	}
	return v.fetch(ctx, env)
}

var archNames = map[string]string{
	constants.ArchAMD64:   "x64",
	constants.ArchARM64:   "aarch64",
	constants.Arch386:     "x86",
	constants.ArchPPC64:   "ppc64",
	constants.ArchPPC64LE: "ppc64le",
	constants.ArchLoong64: "loong64",
}

// Platform maps GOOS/GOARCH onto the vendor's file naming
func (p *Provider) Platform(goos, goarch string, opts runtime.Options) (string, string) {
	return vendorOrDefault(opts).osName(goos), archNames[goarch]
}

// Request accepts 21, 21.0.1, openjdk-21.0.1 or corretto-21.0.1.12.1
func (p *Provider) Request(expression string, opts runtime.Options) (runtime.Request, error) {
	v, err := lookupVendor(opts)
	if err != nil {
		return runtime.Request{}, err
	}
	trimmed := v.trim(expression)
	return runtime.NewRequest(expression, trimmed, v.rangeExpr(trimmed))
}

// DirName prefixes the version with its vendor: openjdk-21.0.1
func (p *Provider) DirName(rec *runtime.VersionRecord) string {
	vendor := rec.Vendor
	if vendor == "" {
		vendor = DefaultVendor
	}
	return vendor + "-" + rec.Raw
}

// FallbackFolder is the archive name without its extension
func (p *Provider) FallbackFolder(_ *runtime.VersionRecord, pkg runtime.Package) string {
	return strings.TrimSuffix(pkg.BaseName(), "."+pkg.Kind.Extension())
}

// InstalledName adds the vendor prefix unless the expression carries one
func (p *Provider) InstalledName(expression string, opts runtime.Options) string {
	for _, name := range Vendors() {
		if strings.HasPrefix(expression, name+"-") {
			return expression
		}
	}
	return vendorOrDefault(opts).name + "-" + expression
}

// EnvHint tells the user how to set JAVA_HOME and PATH
func (p *Provider) EnvHint(dirs config.LanguageDirs) string {
	binDir := filepath.Join(dirs.Current, "bin")
	if goruntime.GOOS == constants.OSWindows {
		return fmt.Sprintf("Please add %s to your PATH and set JAVA_HOME to %s,\nor run: uvm setup java", binDir, dirs.Current)
	}
	return fmt.Sprintf(`Please add %[1]s to your PATH and set JAVA_HOME, for example:
    export JAVA_HOME="%[2]s"
    export PATH="%[1]s:$PATH"
or run: uvm setup java`, binDir, dirs.Current)
}

// ShellEnv sets JAVA_HOME and puts its bin directory on PATH
func (p *Provider) ShellEnv(dirs config.LanguageDirs) runtime.ShellEnv {
	return runtime.ShellEnv{
		Vars: []runtime.EnvVar{{Name: "JAVA_HOME", Value: dirs.Current}},
		Path: []string{filepath.Join(dirs.Current, "bin")},
	}
}

// init registers the Java provider on package load
func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register Java provider: %v", err))
	}
}

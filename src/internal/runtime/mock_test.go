package runtime

import (
	"context"
	"strings"

	"github.com/jinyuli/uvm/src/internal/config"
)

// mockLanguage is a configurable test implementation of the Language interface
type mockLanguage struct {
	name        string
	displayName string
	records     []*VersionRecord
	fetchErr    error
	fetches     int
	fallback    string
}

func (m *mockLanguage) Name() string        { return m.name }
func (m *mockLanguage) DisplayName() string { return m.displayName }

func (m *mockLanguage) FetchCatalog(_ context.Context, _ FetchEnv) ([]*VersionRecord, error) {
	m.fetches++
	return m.records, m.fetchErr
}

func (m *mockLanguage) Platform(goos, goarch string, _ Options) (string, string) {
	return goos, goarch
}

func (m *mockLanguage) Request(expression string, _ Options) (Request, error) {
	return NewRequest(expression, "v"+expression, expression)
}

func (m *mockLanguage) DirName(rec *VersionRecord) string {
	return FormatVersion(rec.Ordering)
}

func (m *mockLanguage) FallbackFolder(_ *VersionRecord, _ Package) string {
	return m.fallback
}

func (m *mockLanguage) InstalledName(expression string, _ Options) string {
	return strings.TrimPrefix(expression, "v")
}

func (m *mockLanguage) EnvHint(dirs config.LanguageDirs) string {
	return "export PATH=" + dirs.Current + "/bin:$PATH"
}

func (m *mockLanguage) ShellEnv(dirs config.LanguageDirs) ShellEnv {
	return ShellEnv{Path: []string{dirs.Current + "/bin"}}
}

func (m *mockLanguage) Scripts(goos string) []Script {
	if goos == "windows" {
		return []Script{{Name: "activate.ps1", Template: `$Env:Path = "{{.LinkDir}}\bin;$Env:Path"`}}
	}
	return []Script{
		{Name: "activate.sh", Template: "export PATH=\"{{.LinkDir}}/bin:$PATH\"\nexport PS1=\"{{.Prompt}}$PS1\"\n"},
		{Name: "deactivate.sh", Template: "export PS1=\"${PS1#{{.Prompt}}}\"\n"},
	}
}

func (m *mockLanguage) CatalogBase() string { return "https://example.test/" }

package cmd

import (
	"fmt"
	"strings"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

// lookupLanguage finds a registered language by its command line name
func lookupLanguage(name string) (runtime.Language, error) {
	lang, err := runtime.Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return nil, fmt.Errorf("%w (available languages: %s)", err, strings.Join(runtime.List(), ", "))
	}
	return lang, nil
}

// newManager wires a Manager for one language from the settings file:
// proxy, mirror and, for Java, the default vendor
func newManager(name, vendor string) (*runtime.Manager, error) {
	lang, err := lookupLanguage(name)
	if err != nil {
		return nil, err
	}

	paths := config.DefaultPaths()
	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, err
	}

	if vendor != "" && lang.Name() != constants.LangJava {
		return nil, fmt.Errorf("--vendor only applies to %s", constants.LangJava)
	}
	if vendor == "" && lang.Name() == constants.LangJava {
		vendor = settings.Java.DefaultVendor
	}

	if err := paths.EnsureDirectories(lang.Name()); err != nil {
		return nil, fmt.Errorf("failed to create uvm directories: %w", err)
	}

	client, err := download.NewClient(settings.ProxyFor(lang.Name()), clientOptions()...)
	if err != nil {
		return nil, err
	}

	mirror := catalog.Mirror{
		Official: lang.CatalogBase(),
		Base:     settings.MirrorFor(lang.Name()),
	}
	source := catalog.New(client, catalog.Options{
		CacheDir: paths.LanguageCache(lang.Name()),
		Refresh:  refresh,
		Mirror:   mirror,
	})

	ui.Debug("Manager for %s: data=%s vendor=%q mirror=%q", lang.Name(), paths.Data, vendor, mirror.Base)

	return runtime.NewManager(runtime.ManagerConfig{
		Language: lang,
		Dirs:     paths.Language(lang.Name()),
		Options:  runtime.Options{Vendor: vendor},
		Env: runtime.FetchEnv{
			Source:     source,
			HTTPClient: client.HTTPClient(),
		},
		Downloader: client,
		Mirror:     mirror,
	}), nil
}

// addVendorFlag registers the Java vendor flag on a command
func addVendorFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "vendor", "", "Java vendor (openjdk, corretto); defaults to java.default_vendor or openjdk")
}

// describeError adds a hint to engine errors the user can act on
func describeError(lang string, err error) error {
	switch {
	case runtime.IsVersionNotInstalled(err):
		return fmt.Errorf("%w (install it with: uvm install %s <version>)", err, lang)
	case runtime.IsNoMatch(err):
		return fmt.Errorf("%w (see available versions with: uvm list %s)", err, lang)
	case catalog.IsSourceUnavailable(err):
		return fmt.Errorf("%w (check your network, proxy or mirror settings)", err)
	case runtime.IsVerificationFailed(err):
		return fmt.Errorf("%w (the download was removed, please retry)", err)
	}
	return err
}

// clientOptions applies the global --timeout flag
func clientOptions() []download.Option {
	if timeout <= 0 {
		return nil
	}
	return []download.Option{download.WithTimeout(timeout)}
}

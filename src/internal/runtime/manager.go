package runtime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/link"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Downloader saves the body of a URL to a local file
type Downloader interface {
	DownloadFile(ctx context.Context, url, destPath string) error
}

// ManagerConfig wires a Manager to one language and its directories
type ManagerConfig struct {
	Language   Language
	Dirs       config.LanguageDirs
	Options    Options
	Env        FetchEnv
	Downloader Downloader
	// Mirror, when set, is tried before the official download URL
	Mirror catalog.Mirror
	// GOOS and GOARCH default to the running host
	GOOS   string
	GOARCH string
}

// Manager installs, switches and removes versions of one language
type Manager struct {
	language   Language
	dirs       config.LanguageDirs
	options    Options
	env        FetchEnv
	downloader Downloader
	mirror     catalog.Mirror
	goos       string
	goarch     string
}

// NewManager creates a Manager from cfg
func NewManager(cfg ManagerConfig) *Manager {
	goos := cfg.GOOS
	if goos == "" {
		goos = goruntime.GOOS
	}
	goarch := cfg.GOARCH
	if goarch == "" {
		goarch = goruntime.GOARCH
	}
	env := cfg.Env
	env.Options = cfg.Options

	return &Manager{
		language:   cfg.Language,
		dirs:       cfg.Dirs,
		options:    cfg.Options,
		env:        env,
		downloader: cfg.Downloader,
		mirror:     cfg.Mirror,
		goos:       goos,
		goarch:     goarch,
	}
}

// Language returns the language this manager works on
func (m *Manager) Language() Language {
	return m.language
}

// Dirs returns the directories this manager works in
func (m *Manager) Dirs() config.LanguageDirs {
	return m.dirs
}

// Platform returns the catalog os and arch names of the host
func (m *Manager) Platform() (string, string) {
	return m.language.Platform(m.goos, m.goarch, m.options)
}

// GOOS returns the operating system the manager installs for
func (m *Manager) GOOS() string {
	return m.goos
}

// InstalledName maps a user expression onto the directory it installs to
func (m *Manager) InstalledName(expression string) string {
	return m.language.InstalledName(strings.TrimSpace(expression), m.options)
}

// InstallOutcome is the successful result of an install
type InstallOutcome int

const (
	// InstallSuccess means the version was installed
	InstallSuccess InstallOutcome = iota
	// InstallSuccessNeedsPathHint means the version was installed and the
	// current link was created for the first time
	InstallSuccessNeedsPathHint
	// InstallAlreadyInstalled means nothing was done
	InstallAlreadyInstalled
)

// InstallOptions controls an install
type InstallOptions struct {
	// NoUse leaves the current link alone
	NoUse bool
}

// InstallResult describes a finished install
type InstallResult struct {
	Outcome InstallOutcome
	// Name is the installed directory name
	Name string
	// Dir is the absolute installed directory
	Dir     string
	Version *VersionRecord
}

// Resolve fetches the catalog and picks the release an expression refers to
func (m *Manager) Resolve(ctx context.Context, expression string) (*VersionRecord, error) {
	req, err := m.language.Request(strings.TrimSpace(expression), m.options)
	if err != nil {
		return nil, err
	}

	records, err := m.language.FetchCatalog(ctx, m.env)
	if err != nil {
		return nil, err
	}
	ui.Debug("%s catalog has %d versions", m.language.Name(), len(records))

	return Resolve(records, req)
}

// Install resolves expression, downloads and verifies its archive, unpacks
// it into the versions directory and, unless opts.NoUse, makes it current.
// An installed version is never downloaded again.
func (m *Manager) Install(ctx context.Context, expression string, opts InstallOptions) (*InstallResult, error) {
	rec, err := m.Resolve(ctx, expression)
	if err != nil {
		return nil, err
	}

	osName, arch := m.Platform()
	pkg, ok := SelectPackage(rec, osName, arch)
	if !ok {
		return nil, &ErrNoMatchingPackage{Version: rec.Raw, OS: osName, Arch: arch}
	}

	name := m.language.DirName(rec)
	result := &InstallResult{
		Name:    name,
		Dir:     filepath.Join(m.dirs.Versions, name),
		Version: rec,
	}
	if isDir(result.Dir) {
		result.Outcome = InstallAlreadyInstalled
		return result, nil
	}

	ui.WithFields(logrus.Fields{
		"language": m.language.Name(),
		"version":  rec.Raw,
		"package":  pkg.BaseName(),
		"url":      pkg.URL,
	}).Debug("Installing")

	if err := os.MkdirAll(m.dirs.Tmp, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", m.dirs.Tmp, err)
	}
	if err := os.MkdirAll(m.dirs.Versions, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", m.dirs.Versions, err)
	}

	archive := filepath.Join(m.dirs.Tmp, pkg.BaseName())
	if err := m.fetchArchive(ctx, rec, pkg, archive); err != nil {
		return nil, err
	}

	if err := m.unpack(rec, pkg, archive, result.Dir); err != nil {
		return nil, err
	}

	result.Outcome = InstallSuccess
	if !opts.NoUse {
		hadLink := link.Exists(m.dirs.Current)
		if err := link.Replace(m.dirs.Current, result.Dir); err != nil {
			return nil, err
		}
		if !hadLink {
			result.Outcome = InstallSuccessNeedsPathHint
		}
	}

	if err := os.Remove(archive); err != nil && !os.IsNotExist(err) {
		ui.Debug("failed to remove %s: %v", archive, err)
	}
	return result, nil
}

// fetchArchive leaves a verified archive at dest. A previous download is
// reused only when it verifies against a known digest.
func (m *Manager) fetchArchive(ctx context.Context, rec *VersionRecord, pkg Package, dest string) error {
	digest, err := ResolveDigest(ctx, m.env.Source, pkg)
	if err != nil {
		return fmt.Errorf("failed to get checksum of %s: %w", pkg.BaseName(), err)
	}
	if digest == nil {
		ui.Debug("no checksum published for %s", pkg.BaseName())
	}

	if isFile(dest) {
		if digest != nil && download.VerifyFile(dest, *digest) == nil {
			ui.Debug("Reusing verified download %s", dest)
			return nil
		}
		ui.Debug("Discarding previous download %s", dest)
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dest, err)
		}
	}

	if err := m.download(ctx, pkg.URL, dest); err != nil {
		return err
	}

	if digest != nil {
		if err := download.VerifyFile(dest, *digest); err != nil {
			_ = os.Remove(dest)
			return &ErrVerificationFailed{Version: rec.Raw, File: pkg.BaseName(), Err: err}
		}
		ui.Debug("Verified %s (%s)", pkg.BaseName(), digest.Method)
	}
	return nil
}

// download tries the mirror first, then the official URL
func (m *Manager) download(ctx context.Context, url, dest string) error {
	if mirrored, ok := m.mirror.Rewrite(url); ok {
		err := m.downloader.DownloadFile(ctx, mirrored, dest)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		ui.Debug("Mirror download failed, using %s: %v", url, err)
	}
	return m.downloader.DownloadFile(ctx, url, dest)
}

// unpack extracts archive into the versions directory and renames its top
// folder to dir
func (m *Manager) unpack(rec *VersionRecord, pkg Package, archive, dir string) error {
	fallback := m.language.FallbackFolder(rec, pkg)
	if fallback != "" {
		stale := filepath.Join(m.dirs.Versions, fallback)
		if isDir(stale) {
			ui.Debug("Removing stale folder %s", stale)
			if err := os.RemoveAll(stale); err != nil {
				return fmt.Errorf("failed to remove %s: %w", stale, err)
			}
		}
	}

	top, err := download.Extract(archive, m.dirs.Versions)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", filepath.Base(archive), err)
	}
	if top == "" {
		top = fallback
	}
	if top == "" {
		return fmt.Errorf("failed to find the top folder of %s", filepath.Base(archive))
	}

	extracted := filepath.Join(m.dirs.Versions, top)
	if extracted == dir {
		return nil
	}
	if err := os.Rename(extracted, dir); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", extracted, dir, err)
	}
	return nil
}

// UseOutcome is the successful result of switching versions
type UseOutcome int

const (
	// UseSuccess means the current link now points at the version
	UseSuccess UseOutcome = iota
	// UseSuccessNeedsPathHint means the current link was created for the
	// first time
	UseSuccessNeedsPathHint
	// UseAlreadyInUse means the version was already current
	UseAlreadyInUse
)

// Use points the current link at an installed version
func (m *Manager) Use(expression string) (UseOutcome, error) {
	name := m.InstalledName(expression)
	dir := filepath.Join(m.dirs.Versions, name)
	if !isDir(dir) {
		return UseSuccess, &ErrVersionNotInstalled{Version: name}
	}

	if link.PointsTo(m.dirs.Current, dir) {
		return UseAlreadyInUse, nil
	}

	hadLink := link.Exists(m.dirs.Current)
	if err := link.Replace(m.dirs.Current, dir); err != nil {
		return UseSuccess, err
	}
	if !hadLink {
		return UseSuccessNeedsPathHint, nil
	}
	return UseSuccess, nil
}

// Unuse removes the current link. Without a link it does nothing.
func (m *Manager) Unuse() error {
	if !link.Exists(m.dirs.Current) {
		return nil
	}
	return link.Remove(m.dirs.Current)
}

// UninstallOutcome is the successful result of an uninstall
type UninstallOutcome int

const (
	// UninstallRemoved means the version directory was deleted
	UninstallRemoved UninstallOutcome = iota
	// UninstallNotInstalled means there was nothing to delete
	UninstallNotInstalled
)

// Uninstall deletes an installed version, removing the current link first
// when it points at it
func (m *Manager) Uninstall(expression string) (UninstallOutcome, error) {
	name := m.InstalledName(expression)
	dir := filepath.Join(m.dirs.Versions, name)
	if !isDir(dir) {
		return UninstallNotInstalled, nil
	}

	if link.PointsTo(m.dirs.Current, dir) {
		if err := link.Remove(m.dirs.Current); err != nil {
			return UninstallRemoved, err
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return UninstallRemoved, fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return UninstallRemoved, nil
}

// Current returns the name of the version the current link points at
func (m *Manager) Current() (string, bool) {
	return link.TargetName(m.dirs.Current)
}

// VersionPath returns the directory of an installed version
func (m *Manager) VersionPath(expression string) (string, error) {
	name := m.InstalledName(expression)
	dir := filepath.Join(m.dirs.Versions, name)
	if !isDir(dir) {
		return "", &ErrVersionNotInstalled{Version: name}
	}
	return dir, nil
}

// Installed returns the names of the installed versions in ascending order
func (m *Manager) Installed() ([]string, error) {
	entries, err := os.ReadDir(m.dirs.Versions)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", m.dirs.Versions, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sortNames(names)
	return names, nil
}

// ListOptions controls a listing
type ListOptions struct {
	// LocalOnly lists installed versions without fetching the catalog
	LocalOnly bool
	// Filter keeps versions containing it, ignoring case
	Filter string
}

// List returns versions in ascending order along with their installed and
// current state
func (m *Manager) List(ctx context.Context, opts ListOptions) ([]ListedVersion, error) {
	installed, err := m.Installed()
	if err != nil {
		return nil, err
	}
	current, _ := m.Current()
	filter := strings.ToLower(opts.Filter)
	matches := func(values ...string) bool {
		return filter == "" || lo.SomeBy(values, func(v string) bool {
			return strings.Contains(strings.ToLower(v), filter)
		})
	}

	if opts.LocalOnly {
		listed := make([]ListedVersion, 0, len(installed))
		for _, name := range installed {
			if matches(name) {
				listed = append(listed, ListedVersion{
					Version:   name,
					Installed: true,
					InUse:     name == current,
				})
			}
		}
		return listed, nil
	}

	records, err := m.language.FetchCatalog(ctx, m.env)
	if err != nil {
		return nil, err
	}

	installedSet := lo.SliceToMap(installed, func(name string) (string, bool) {
		return name, true
	})
	index := make(map[string]int)
	var listed []ListedVersion
	sorted := SortDescending(records)
	for i := len(sorted) - 1; i >= 0; i-- {
		rec := sorted[i]
		name := m.language.DirName(rec)
		if !matches(rec.Raw, name) {
			continue
		}
		if at, seen := index[name]; seen {
			listed[at].LTS = listed[at].LTS || rec.LTS
			continue
		}
		index[name] = len(listed)
		listed = append(listed, ListedVersion{
			Version:   name,
			Installed: installedSet[name],
			InUse:     name == current,
			LTS:       rec.LTS,
		})
	}

	return listed, nil
}

// sortNames orders installed directory names by version when they parse,
// falling back to string order
func sortNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		a, errA := semver.NewVersion(trimVendor(names[i]))
		b, errB := semver.NewVersion(trimVendor(names[j]))
		if errA == nil && errB == nil && !a.Equal(b) {
			return a.LessThan(b)
		}
		return names[i] < names[j]
	})
}

func trimVendor(name string) string {
	if i := strings.LastIndex(name, "-"); i >= 0 && strings.IndexFunc(name[:i], isDigit) < 0 {
		return name[i+1:]
	}
	return name
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

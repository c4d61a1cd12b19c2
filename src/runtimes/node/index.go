package node

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
)

const (
	distURL  = "https://nodejs.org/dist/"
	indexURL = distURL + "index.json"
)

// release is one entry of nodejs.org/dist/index.json
type release struct {
	Version string      `json:"version"`
	Date    string      `json:"date"`
	Files   []string    `json:"files"`
	NPM     string      `json:"npm"`
	LTS     interface{} `json:"lts"` // Can be false or a string like "Iron"
}

// isLTS reports whether the release carries an LTS codename
func (r release) isLTS() bool {
	codename, ok := r.LTS.(string)
	return ok && codename != ""
}

// parseIndex decodes index.json into version records. Entries whose version
// is not strict semver are dropped.
func parseIndex(content string) ([]*runtime.VersionRecord, error) {
	var releases []release
	if err := json.Unmarshal([]byte(content), &releases); err != nil {
		return nil, catalog.NewParseError(indexURL, "invalid json", err)
	}

	records := make([]*runtime.VersionRecord, 0, len(releases))
	for _, r := range releases {
		ordering, err := semver.StrictNewVersion(strings.TrimPrefix(r.Version, "v"))
		if err != nil {
			ui.Debug("skipping node release %q: %v", r.Version, err)
			continue
		}

		version := runtime.FormatVersion(ordering)
		packages := make([]runtime.Package, 0, len(r.Files))
		for _, descriptor := range r.Files {
			if pkg, ok := parseDescriptor(version, descriptor); ok {
				packages = append(packages, pkg)
			}
		}

		records = append(records, &runtime.VersionRecord{
			Raw:      r.Version,
			Ordering: ordering,
			Packages: packages,
			LTS:      r.isLTS(),
		})
	}
	return records, nil
}

// parseDescriptor turns a files entry such as "linux-x64", "osx-arm64-tar"
// or "win-x64-zip" into a package. Entries with fewer than two tokens
// ("src", "headers") are dropped.
func parseDescriptor(version, descriptor string) (runtime.Package, bool) {
	tokens := strings.Split(descriptor, "-")
	if len(tokens) < 2 {
		return runtime.Package{}, false
	}

	os, arch := tokens[0], tokens[1]
	kind := runtime.KindNone
	switch {
	case len(tokens) >= 3:
		kind = descriptorKind(tokens[2])
	case os != "win" && os != "osx":
		// nodejs.org lists the plain unix tarball as "linux-x64", with no format suffix
		kind = runtime.KindTarGz
	}

	ext := string(kind)
	if kind == runtime.KindNone {
		ext = string(runtime.KindTarGz)
	}
	fileName := fmt.Sprintf("node-v%s-%s-%s.%s", version, fileOS(os), arch, ext)

	return runtime.Package{
		OS:       os,
		Arch:     arch,
		Kind:     kind,
		URL:      fmt.Sprintf("%sv%s/%s", distURL, version, fileName),
		FileName: fileName,
		Checksum: runtime.ChecksumSumsFile{
			Method: download.MethodSHA256,
			URL:    fmt.Sprintf("%sv%s/SHASUMS256.txt", distURL, version),
			Entry:  fileName,
		},
	}, true
}

func descriptorKind(token string) runtime.Kind {
	switch token {
	case "tar":
		return runtime.KindTarGz
	case "zip", "7z", "msi", "exe", "pkg":
		return runtime.ParseKind(token)
	default:
		return runtime.KindNone
	}
}

// fileOS maps the index os token onto the one used in file names
func fileOS(os string) string {
	if strings.EqualFold(os, "osx") {
		return "darwin"
	}
	return strings.ToLower(os)
}

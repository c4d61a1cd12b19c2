package java

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/go-github/v57/github"
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"golang.org/x/oauth2"
)

const correttoOrg = "corretto"

// githubAPIURL overrides the GitHub API endpoint; tests point it at a local server
var githubAPIURL = ""

var (
	correttoRepo     = regexp.MustCompile(`^corretto-(\d+)$`)
	correttoLink     = regexp.MustCompile(`\[.*\]\((?P<url>.*)\)`)
	correttoChecksum = regexp.MustCompile("`(?P<md5>[^`]*)`(\\s+/<br\\s+/>\\s+`(?P<sha256>[^`]+)`)?")
	correttoFile     = regexp.MustCompile(`amazon-corretto-([\d.]+)-(?P<os>[^-.]+)-(?P<arch>[^-.]+)(-(jdk|jre))?\.(?P<ext>.*)`)
)

// newGitHubClient builds a client over the proxy-aware HTTP client,
// authenticated when GITHUB_TOKEN is set
func newGitHubClient(ctx context.Context, hc *http.Client) (*github.Client, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		if hc != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(hc)
	if githubAPIURL != "" {
		base, err := url.Parse(strings.TrimSuffix(githubAPIURL, "/") + "/")
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
	}
	return client, nil
}

// fetchCorretto lists the releases of every corretto-<major> repository
func fetchCorretto(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error) {
	client, err := newGitHubClient(ctx, env.HTTPClient)
	if err != nil {
		return nil, err
	}

	repos, _, err := client.Repositories.ListByOrg(ctx, correttoOrg, &github.RepositoryListByOrgOptions{
		Type:        "sources",
		ListOptions: github.ListOptions{PerPage: 50},
	})
	if err != nil {
		return nil, &catalog.ErrSourceUnavailable{URL: "github.com/" + correttoOrg, Err: err}
	}

	var records []*runtime.VersionRecord
	for _, repo := range repos {
		name := repo.GetName()
		if !correttoRepo.MatchString(name) {
			continue
		}

		releases, _, err := client.Repositories.ListReleases(ctx, correttoOrg, name, &github.ListOptions{PerPage: 100})
		if err != nil {
			return nil, &catalog.ErrSourceUnavailable{URL: "github.com/" + correttoOrg + "/" + name, Err: err}
		}
		ui.Debug("corretto repository %s has %d releases", name, len(releases))

		for _, release := range releases {
			if rec, ok := parseReleaseBody(release.GetBody()); ok {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

// parseReleaseBody reads the download table of a Corretto release note:
//
//	| Platform | Type | Download Link | Checksum (MD5) / SHA256 |
//	| Linux x64 | JDK | [amazon-corretto-...tar.gz](https://...) | `md5` /<br /> `sha256` |
func parseReleaseBody(body string) (*runtime.VersionRecord, bool) {
	var (
		version  string
		packages []runtime.Package
	)

	for _, line := range strings.Split(body, "\n") {
		segments := splitRow(strings.TrimRight(line, "\r"))
		if len(segments) < 4 || segments[1] != "JDK" {
			continue
		}

		link := correttoLink.FindStringSubmatch(segments[2])
		if link == nil {
			ui.Debug("corretto download link not recognized: %s", segments[2])
			continue
		}
		sums := correttoChecksum.FindStringSubmatch(segments[3])
		if sums == nil {
			ui.Debug("corretto checksum not recognized: %s", segments[3])
			continue
		}

		href := link[correttoLink.SubexpIndex("url")]
		v, pkg, ok := toCorrettoPackage(href,
			sums[correttoChecksum.SubexpIndex("md5")],
			sums[correttoChecksum.SubexpIndex("sha256")])
		if !ok {
			continue
		}
		if version == "" {
			version = v
		}
		packages = append(packages, pkg)
	}

	if len(packages) == 0 {
		return nil, false
	}

	ordering, ok := parseOrdering(correttoVersion(version))
	if !ok {
		ui.Debug("skipping corretto version %q", version)
		return nil, false
	}
	return &runtime.VersionRecord{
		Raw:      version,
		Ordering: ordering,
		Packages: packages,
		Vendor:   VendorCorretto,
	}, true
}

// splitRow splits a markdown table row, dropping empty cells and the
// separator dashes
func splitRow(line string) []string {
	var segments []string
	for _, seg := range strings.Split(line, "|") {
		seg = strings.TrimFunc(seg, func(r rune) bool {
			return unicode.IsSpace(r) || r == '-'
		})
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// toCorrettoPackage parses a download URL such as
// https://corretto.aws/downloads/resources/21.0.1.12.1/amazon-corretto-21.0.1.12.1-linux-x64.tar.gz
func toCorrettoPackage(href, md5, sha256 string) (string, runtime.Package, bool) {
	dir, name := path.Split(href)
	version := path.Base(strings.TrimSuffix(dir, "/"))
	if dir == "" || version == "" || version == "." || version == "/" {
		return "", runtime.Package{}, false
	}

	m := correttoFile.FindStringSubmatch(name)
	if m == nil {
		return "", runtime.Package{}, false
	}
	group := func(key string) string { return m[correttoFile.SubexpIndex(key)] }

	kind := runtime.ParseKind(group("ext"))
	if kind == runtime.KindNone || kind == runtime.KindSource {
		return "", runtime.Package{}, false
	}

	var checksum runtime.Checksum = runtime.ChecksumNone{}
	switch {
	case md5 != "":
		checksum = runtime.ChecksumInline{Method: download.MethodMD5, Value: md5}
	case sha256 != "":
		checksum = runtime.ChecksumInline{Method: download.MethodSHA256, Value: sha256}
	}

	return version, runtime.Package{
		OS:       strings.ToLower(group("os")),
		Arch:     strings.ToLower(group("arch")),
		Kind:     kind,
		URL:      href,
		FileName: name,
		Checksum: checksum,
	}, true
}

package java

import (
	"context"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
)

const (
	openJDKSite    = "https://jdk.java.net"
	openJDKHome    = openJDKSite + "/"
	openJDKArchive = openJDKSite + "/archive/"

	// only links into the download host are artifacts
	openJDKDownloadPrefix = "https://download.java.net/java"
)

var (
	earlyAccessFile = regexp.MustCompile(`openjdk-(?P<version>[0-9.]+-\w+\+\w+)_(?P<os>\w+)-(?P<arch>[^_.]+)(_[^.]+)?\.(?P<ext>.*)`)
	archiveFile     = regexp.MustCompile(`openjdk-(?P<version>[0-9.]+)_(?P<os>\w+)-(?P<arch>[^._]+)(_[^.]+)?\.(?P<ext>.*)`)
)

// fetchOpenJDK lists the GA archive and every early access build linked
// from jdk.java.net
func fetchOpenJDK(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error) {
	content, err := env.Source.Fetch(ctx, openJDKArchive)
	if err != nil {
		return nil, err
	}
	records, err := parseArchivePage(content)
	if err != nil {
		return nil, err
	}

	content, err = env.Source.Fetch(ctx, openJDKHome)
	if err != nil {
		return nil, err
	}
	pages, err := parseEarlyAccessLinks(content)
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		content, err := env.Source.Fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		eaRecords, err := parseEarlyAccessPage(page, content)
		if err != nil {
			return nil, err
		}
		records = append(records, eaRecords...)
	}

	return records, nil
}

// parseEarlyAccessLinks returns the early access pages linked from the
// "Early access" headings of the home page
func parseEarlyAccessLinks(content string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, catalog.NewParseError(openJDKHome, "invalid html", err)
	}

	var pages []string
	doc.Find("h1").Each(func(_ int, h1 *goquery.Selection) {
		if !strings.Contains(h1.Text(), "Early access") {
			return
		}
		h1.Find("a").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || !strings.Contains(a.Text(), "JDK") {
				return
			}
			if strings.HasPrefix(href, "/") {
				href = openJDKSite + href
			}
			pages = append(pages, href)
		})
	})
	return pages, nil
}

// parseEarlyAccessPage reads the builds table of an early access page
func parseEarlyAccessPage(url, content string) ([]*runtime.VersionRecord, error) {
	return parseLinks(url, content, `blockquote > table[summary^="builds"] tr a`, earlyAccessFile)
}

// parseArchivePage reads the downloads tables of the GA archive
func parseArchivePage(content string) ([]*runtime.VersionRecord, error) {
	return parseLinks(openJDKArchive, content, `#downloads > table[summary^="Downloads"] tr a`, archiveFile)
}

func parseLinks(url, content, selector string, fileName *regexp.Regexp) ([]*runtime.VersionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, catalog.NewParseError(url, "invalid html", err)
	}

	var hrefs []string
	doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && strings.HasPrefix(href, openJDKDownloadPrefix) {
			hrefs = append(hrefs, href)
		}
	})
	return toRecords(hrefs, fileName), nil
}

// toRecords groups artifact links by version. ".sha256" links are attached
// to the artifact they sit next to.
func toRecords(hrefs []string, fileName *regexp.Regexp) []*runtime.VersionRecord {
	digests := make(map[string]string)
	for _, href := range hrefs {
		if name := path.Base(href); strings.HasSuffix(name, ".sha256") {
			digests[strings.TrimSuffix(name, ".sha256")] = href
		}
	}

	grouped := make(map[string][]runtime.Package)
	for _, href := range hrefs {
		name := path.Base(href)
		version, pkg, ok := toPackage(href, name, fileName)
		if !ok {
			continue
		}
		if digestURL, ok := digests[name]; ok {
			pkg.Checksum = runtime.ChecksumDigestURL{Method: download.MethodSHA256, URL: digestURL}
		}
		grouped[version] = append(grouped[version], pkg)
	}

	versions := make([]string, 0, len(grouped))
	for version := range grouped {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	records := make([]*runtime.VersionRecord, 0, len(versions))
	for _, version := range versions {
		ordering, ok := parseOrdering(version)
		if !ok {
			ui.Debug("skipping openjdk version %q", version)
			continue
		}
		records = append(records, &runtime.VersionRecord{
			Raw:      version,
			Ordering: ordering,
			Packages: grouped[version],
			Vendor:   VendorOpenJDK,
		})
	}
	return records
}

func toPackage(href, name string, fileName *regexp.Regexp) (string, runtime.Package, bool) {
	m := fileName.FindStringSubmatch(name)
	if m == nil {
		ui.Debug("openjdk file name not recognized: %s", name)
		return "", runtime.Package{}, false
	}
	group := func(key string) string { return m[fileName.SubexpIndex(key)] }

	kind := runtime.ParseKind(group("ext"))
	if kind == runtime.KindNone || kind == runtime.KindSource {
		return "", runtime.Package{}, false
	}

	return group("version"), runtime.Package{
		OS:       strings.ToLower(group("os")),
		Arch:     strings.ToLower(group("arch")),
		Kind:     kind,
		URL:      href,
		FileName: name,
		Checksum: runtime.ChecksumNone{},
	}, true
}

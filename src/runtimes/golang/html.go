package golang

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/PuerkitoBio/goquery"
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
)

const (
	siteURL     = "https://go.dev"
	downloadURL = siteURL + "/dl/"
)

// versionPattern reads go.dev ids such as 1.21.0, 1.21rc2 and 1.9beta1
var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(\.(\d+))?(.*)`)

// downloadRow is one row of a go.dev download table
type downloadRow struct {
	fileName string
	url      string
	kind     string
	os       string
	arch     string
	size     string
	checksum string
}

// parseDownloadPage reads the stable, unstable and archived release tables
// of the go.dev download page, keyed by release id (e.g. "go1.21.0")
func parseDownloadPage(content string) (map[string][]downloadRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, catalog.NewParseError(downloadURL, "invalid html", err)
	}

	stable := parseSections(doc.Find(`#stable ~ div[id^="go"]`))
	unstable := parseSections(doc.Find(`#unstable ~ div[id^="go"]`))
	archive := parseSections(doc.Find(`#archive div[id^="go"]`))
	ui.Debug("go.dev lists %d stable, %d unstable and %d archived releases", len(stable), len(unstable), len(archive))

	// "#stable ~ div" also reaches the unstable divs, which follow it
	for id := range unstable {
		delete(stable, id)
	}

	releases := make(map[string][]downloadRow, len(stable)+len(unstable)+len(archive))
	for _, section := range []map[string][]downloadRow{stable, unstable, archive} {
		for id, rows := range section {
			releases[id] = rows
		}
	}
	return releases, nil
}

func parseSections(divs *goquery.Selection) map[string][]downloadRow {
	releases := make(map[string][]downloadRow)

	divs.Each(func(_ int, div *goquery.Selection) {
		id, ok := div.Attr("id")
		if !ok {
			return
		}

		div.Find("table.downloadtable").Each(func(_ int, table *goquery.Selection) {
			var rows []downloadRow
			table.Find("tbody > tr").Each(func(_ int, tr *goquery.Selection) {
				if row, ok := parseRow(tr); ok {
					rows = append(rows, row)
				}
			})
			if len(rows) > 0 {
				releases[id] = rows
			}
		})
	})

	return releases
}

func parseRow(tr *goquery.Selection) (downloadRow, bool) {
	tds := tr.Find("td")
	if tds.Length() < 6 {
		return downloadRow{}, false
	}

	a := tds.Eq(0).Find("a").First()
	if a.Length() == 0 {
		return downloadRow{}, false
	}
	href, ok := a.Attr("href")
	if !ok {
		return downloadRow{}, false
	}

	checksum := tds.Eq(5).Text()
	if tt := tds.Eq(5).Find("tt").First(); tt.Length() > 0 {
		checksum = tt.Text()
	}

	return downloadRow{
		fileName: strings.TrimSpace(a.Text()),
		url:      href,
		kind:     strings.TrimSpace(tds.Eq(1).Text()),
		os:       strings.TrimSpace(tds.Eq(2).Text()),
		arch:     strings.TrimSpace(tds.Eq(3).Text()),
		size:     strings.TrimSpace(tds.Eq(4).Text()),
		checksum: strings.TrimSpace(checksum),
	}, true
}

// parseVersion derives the ordering of a release id. The text after the
// numbers becomes the prerelease, so 1.21rc2 orders as 1.21.0-rc2.
func parseVersion(id string) (*semver.Version, bool) {
	m := versionPattern.FindStringSubmatch(id)
	if m == nil {
		return nil, false
	}

	major, _ := strconv.ParseUint(m[1], 10, 64)
	minor, _ := strconv.ParseUint(m[2], 10, 64)
	var patch uint64
	if m[4] != "" {
		patch, _ = strconv.ParseUint(m[4], 10, 64)
	}

	text := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if pre := strings.TrimLeft(m[5], "-."); pre != "" {
		text += "-" + pre
	}

	v, err := semver.StrictNewVersion(text)
	if err != nil {
		return nil, false
	}
	return v, true
}

// toRecord builds the version record of one release. Releases whose id does
// not parse are dropped.
func toRecord(id string, rows []downloadRow) (*runtime.VersionRecord, bool) {
	ordering, ok := parseVersion(id)
	if !ok {
		ui.Debug("skipping go.dev release %q: unrecognized version", id)
		return nil, false
	}

	packages := make([]runtime.Package, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, toPackage(row))
	}

	return &runtime.VersionRecord{
		Raw:      id,
		Ordering: ordering,
		Packages: packages,
	}, true
}

func toPackage(row downloadRow) runtime.Package {
	url := row.url
	if strings.HasPrefix(url, "/") {
		url = siteURL + url
	}

	var checksum runtime.Checksum = runtime.ChecksumNone{}
	if row.checksum != "" {
		checksum = runtime.ChecksumInline{Method: download.MethodSHA256, Value: row.checksum}
	}

	return runtime.Package{
		OS:       strings.ToLower(row.os),
		Arch:     strings.ToLower(row.arch),
		Kind:     packageKind(row.kind, row.fileName),
		URL:      url,
		FileName: row.fileName,
		Checksum: checksum,
	}
}

// packageKind combines the kind column with the file extension. Only rows
// marked Archive are installable.
func packageKind(kind, fileName string) runtime.Kind {
	switch strings.ToLower(kind) {
	case "archive":
		switch {
		case strings.HasSuffix(fileName, ".tar.gz"):
			return runtime.KindTarGz
		case strings.HasSuffix(fileName, ".zip"):
			return runtime.KindZip
		}
	case "installer":
		if i := strings.LastIndex(fileName, "."); i >= 0 {
			if k := runtime.ParseKind(fileName[i+1:]); k.IsInstaller() {
				return k
			}
		}
	case "source":
		return runtime.KindSource
	}
	return runtime.KindNone
}

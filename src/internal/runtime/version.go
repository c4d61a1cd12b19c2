package runtime

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jinyuli/uvm/src/internal/download"
)

// Kind classifies a downloadable artifact
type Kind string

// Artifact kinds. Only archives are installable.
const (
	KindTarGz  Kind = "tar.gz"
	KindZip    Kind = "zip"
	Kind7z     Kind = "7z"
	KindMsi    Kind = "msi"
	KindExe    Kind = "exe"
	KindPkg    Kind = "pkg"
	KindSource Kind = "source"
	KindNone   Kind = ""
)

// ParseKind maps a file extension or listing token onto a Kind. Unknown
// values yield KindNone.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "tar.gz", "tgz":
		return KindTarGz
	case "zip":
		return KindZip
	case "7z":
		return Kind7z
	case "msi":
		return KindMsi
	case "exe":
		return KindExe
	case "pkg":
		return KindPkg
	case "source", "src":
		return KindSource
	default:
		return KindNone
	}
}

// IsArchive reports whether the kind can be unpacked into a version directory
func (k Kind) IsArchive() bool {
	switch k {
	case KindTarGz, KindZip, Kind7z:
		return true
	default:
		return false
	}
}

// IsInstaller reports whether the kind is a platform installer
func (k Kind) IsInstaller() bool {
	switch k {
	case KindMsi, KindExe, KindPkg:
		return true
	default:
		return false
	}
}

// Extension returns the file extension of the kind, without a leading dot
func (k Kind) Extension() string {
	return string(k)
}

// Checksum describes where the digest of a package comes from. It is one of
// ChecksumNone, ChecksumInline, ChecksumDigestURL or ChecksumSumsFile.
type Checksum interface {
	checksum()
}

// ChecksumNone means the listing publishes no digest
type ChecksumNone struct{}

// ChecksumInline is a digest printed in the listing itself
type ChecksumInline struct {
	Method download.Method
	Value  string
}

// ChecksumDigestURL is a URL whose body is the digest
type ChecksumDigestURL struct {
	Method download.Method
	URL    string
}

// ChecksumSumsFile is a listing of "<digest> <file>" lines; Entry names the
// line to use
type ChecksumSumsFile struct {
	Method download.Method
	URL    string
	Entry  string
}

func (ChecksumNone) checksum()      {}
func (ChecksumInline) checksum()    {}
func (ChecksumDigestURL) checksum() {}
func (ChecksumSumsFile) checksum()  {}

// Package is one downloadable artifact of a release
type Package struct {
	OS       string
	Arch     string
	Kind     Kind
	URL      string
	FileName string
	Checksum Checksum
}

// BaseName returns the file name of the package, taken from the URL when
// the listing did not name it
func (p Package) BaseName() string {
	if p.FileName != "" {
		return p.FileName
	}
	if i := strings.LastIndex(p.URL, "/"); i >= 0 {
		return p.URL[i+1:]
	}
	return p.URL
}

// VersionRecord is one published release of a language
type VersionRecord struct {
	// Raw is the version as published (go1.21.0, v20.10.0, 21.0.1.12.1)
	Raw string
	// Ordering drives sorting and range matching
	Ordering *semver.Version
	Packages []Package
	LTS      bool
	Vendor   string
}

func (r *VersionRecord) String() string {
	if r.Vendor != "" {
		return fmt.Sprintf("%s %s", r.Vendor, r.Raw)
	}
	return r.Raw
}

// FormatVersion renders an ordering version as major.minor.patch with its
// prerelease and build suffixes
func FormatVersion(v *semver.Version) string {
	return v.String()
}

// ListedVersion is one row of a version listing
type ListedVersion struct {
	Version   string
	Installed bool
	InUse     bool
	LTS       bool
}

package runtime

import "strings"

// SelectPackage returns the archive package of rec built for os and arch.
// Installers and source bundles are never selected.
func SelectPackage(rec *VersionRecord, os, arch string) (Package, bool) {
	for _, pkg := range rec.Packages {
		if pkg.Kind.IsArchive() &&
			strings.EqualFold(pkg.OS, os) &&
			strings.EqualFold(pkg.Arch, arch) {
			return pkg, true
		}
	}
	return Package{}, false
}

// HasPackage reports whether rec has an installable archive for os and arch
func HasPackage(rec *VersionRecord, os, arch string) bool {
	_, ok := SelectPackage(rec, os, arch)
	return ok
}

package catalog

import (
	"context"
	"errors"
	"strings"
)

// errNotMirrored tells a FallbackSource that the mirror does not cover a URL
var errNotMirrored = errors.New("url not covered by mirror")

// Mirror maps URLs under an official base onto a mirror base
type Mirror struct {
	Official string
	Base     string
}

// Rewrite returns the mirror URL for url, or false when url is outside the
// official base or no mirror is set
func (m Mirror) Rewrite(url string) (string, bool) {
	if m.Base == "" || m.Official == "" {
		return "", false
	}
	official := withSlash(m.Official)
	if !strings.HasPrefix(url, official) {
		return "", false
	}
	return withSlash(m.Base) + strings.TrimPrefix(url, official), true
}

func withSlash(base string) string {
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}

// MirrorSource fetches the mirrored copy of each covered URL
type MirrorSource struct {
	source Source
	mirror Mirror
}

// NewMirrorSource creates a Source that rewrites URLs through mirror
func NewMirrorSource(source Source, mirror Mirror) *MirrorSource {
	return &MirrorSource{source: source, mirror: mirror}
}

// Fetch retrieves the mirrored URL. URLs the mirror does not cover fail
// with errNotMirrored so a FallbackSource goes straight to the official one.
func (s *MirrorSource) Fetch(ctx context.Context, url string) (string, error) {
	mirrored, ok := s.mirror.Rewrite(url)
	if !ok {
		return "", errNotMirrored
	}
	return s.source.Fetch(ctx, mirrored)
}

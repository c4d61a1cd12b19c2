package runtime

import (
	"context"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/ui"
)

// ResolveDigest turns a package checksum into the digest to verify against.
// A nil digest means none is known. Remote digests are fetched through
// source.
func ResolveDigest(ctx context.Context, source catalog.Source, pkg Package) (*download.Digest, error) {
	switch c := pkg.Checksum.(type) {
	case ChecksumInline:
		if c.Value == "" {
			return nil, nil
		}
		return &download.Digest{Method: c.Method, Value: c.Value}, nil

	case ChecksumDigestURL:
		body, err := source.Fetch(ctx, c.URL)
		if err != nil {
			return nil, err
		}
		value, ok := download.ParseDigestFile(body)
		if !ok {
			return nil, catalog.NewParseError(c.URL, "empty digest file", nil)
		}
		return &download.Digest{Method: c.Method, Value: value}, nil

	case ChecksumSumsFile:
		body, err := source.Fetch(ctx, c.URL)
		if err != nil {
			return nil, err
		}
		value, ok := download.ParseSumsFile(body, c.Entry)
		if !ok {
			ui.Debug("%s has no entry for %s", c.URL, c.Entry)
			return nil, nil
		}
		return &download.Digest{Method: c.Method, Value: value}, nil

	default:
		return nil, nil
	}
}

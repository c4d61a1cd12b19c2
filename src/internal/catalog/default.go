package catalog

import (
	"time"
)

// Options configures the source stack built by New
type Options struct {
	// CacheDir holds cached documents; empty disables caching
	CacheDir string
	// TTL defaults to DefaultCacheTTL
	TTL time.Duration
	// Refresh bypasses cached copies
	Refresh bool
	// Mirror, when set, is tried before the official URLs
	Mirror Mirror
}

// New builds the layered source used by the commands:
//  1. the on-disk cache
//  2. the mirror, when configured
//  3. the official URL
func New(client TextGetter, opts Options) Source {
	direct := NewHTTPSource(client)

	var source Source = direct
	if opts.Mirror.Base != "" {
		source = NewFallbackSource(NewMirrorSource(direct, opts.Mirror), direct)
	}

	if opts.CacheDir == "" {
		return source
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	cached := NewCachedSource(source, opts.CacheDir, ttl)
	cached.SetRefresh(opts.Refresh)
	return cached
}

package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jinyuli/uvm/src/internal/ui"
)

// DefaultCacheTTL is how long a fetched document is reused
const DefaultCacheTTL = time.Hour

// CachedSource wraps a Source and keeps fetched documents on disk
type CachedSource struct {
	source   Source
	cacheDir string
	ttl      time.Duration
	refresh  bool
}

// cacheEntry stores a document along with its fetch timestamp
type cacheEntry struct {
	CachedAt time.Time `json:"cached_at"`
	URL      string    `json:"url"`
	Body     string    `json:"body"`
}

// NewCachedSource creates a Source that caches results from source in cacheDir
func NewCachedSource(source Source, cacheDir string, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:   source,
		cacheDir: cacheDir,
		ttl:      ttl,
	}
}

// SetRefresh makes every Fetch bypass the cached copy, still storing the
// fresh result
func (s *CachedSource) SetRefresh(refresh bool) {
	s.refresh = refresh
}

// Fetch returns a cached document if still valid, otherwise fetches it
func (s *CachedSource) Fetch(ctx context.Context, url string) (string, error) {
	if !s.refresh {
		if body, err := s.loadFromCache(url); err == nil {
			ui.Debug("Using cached copy of %s", url)
			return body, nil
		}
	}

	body, err := s.source.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := s.saveToCache(url, body); err != nil {
		ui.Debug("Failed to cache %s: %v", url, err)
	}

	return body, nil
}

// ForceRefresh drops the cached copy of url and fetches it again
func (s *CachedSource) ForceRefresh(ctx context.Context, url string) (string, error) {
	_ = os.Remove(s.cachePath(url))

	body, err := s.source.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	_ = s.saveToCache(url, body)
	return body, nil
}

// ClearCache removes every cached document of this source
func (s *CachedSource) ClearCache() error {
	return ClearCache(s.cacheDir)
}

// ClearCache removes all cached documents below dir
func ClearCache(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := ClearCache(path); err != nil {
				return err
			}
			continue
		}
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	return nil
}

func (s *CachedSource) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(s.cacheDir, hex.EncodeToString(sum[:8])+".cache.json")
}

func (s *CachedSource) loadFromCache(url string) (string, error) {
	data, err := os.ReadFile(s.cachePath(url))
	if err != nil {
		return "", err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", err
	}

	// a hash collision or a stale entry counts as a miss
	if entry.URL != url || time.Since(entry.CachedAt) > s.ttl {
		return "", os.ErrNotExist
	}

	return entry.Body, nil
}

func (s *CachedSource) saveToCache(url, body string) error {
	if err := os.MkdirAll(s.cacheDir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(cacheEntry{
		CachedAt: time.Now(),
		URL:      url,
		Body:     body,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(s.cachePath(url), data, 0644)
}

package catalog

import (
	"context"
	"errors"

	"github.com/jinyuli/uvm/src/internal/ui"
)

// FallbackSource tries a primary source and falls back to a second one when
// the primary fails
type FallbackSource struct {
	primary  Source
	fallback Source
}

// NewFallbackSource creates a Source that tries primary first, then fallback
func NewFallbackSource(primary, fallback Source) *FallbackSource {
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
	}
}

// Fetch tries the primary source, falling back on any error except
// cancellation
func (s *FallbackSource) Fetch(ctx context.Context, url string) (string, error) {
	body, err := s.primary.Fetch(ctx, url)
	if err == nil {
		return body, nil
	}
	if errors.Is(err, context.Canceled) {
		return "", err
	}

	if !errors.Is(err, errNotMirrored) {
		ui.Debug("Primary source failed for %s: %v, falling back", url, err)
	}

	return s.fallback.Fetch(ctx, url)
}

package catalog

import (
	"context"
	"errors"
)

// HTTPSource fetches documents directly from the network
type HTTPSource struct {
	client TextGetter
}

// NewHTTPSource creates a Source that fetches through client
func NewHTTPSource(client TextGetter) *HTTPSource {
	return &HTTPSource{client: client}
}

// Fetch retrieves url. Any failure other than cancellation is reported as
// ErrSourceUnavailable.
func (s *HTTPSource) Fetch(ctx context.Context, url string) (string, error) {
	body, err := s.client.GetText(ctx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &ErrSourceUnavailable{URL: url, Err: err}
	}
	return body, nil
}

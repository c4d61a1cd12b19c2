// Package catalog retrieves the remote documents that list available
// versions: download pages, JSON indexes and checksum files
package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Source retrieves a catalog document by URL. Implementations include the
// direct HTTP source, the on-disk cache, mirrors and fallbacks.
type Source interface {
	// Fetch returns the document body at url
	Fetch(ctx context.Context, url string) (string, error)
}

// TextGetter is the HTTP collaborator a Source fetches through.
// *download.Client implements it.
type TextGetter interface {
	GetText(ctx context.Context, url string) (string, error)
}

// ErrSourceUnavailable is returned when a catalog document cannot be
// retrieved, because of transport failure or an unexpected HTTP status.
type ErrSourceUnavailable struct {
	URL string
	Err error
}

func (e *ErrSourceUnavailable) Error() string {
	return fmt.Sprintf("catalog source unavailable: %s: %v", e.URL, e.Err)
}

func (e *ErrSourceUnavailable) Unwrap() error {
	return e.Err
}

// IsSourceUnavailable checks if an error indicates an unreachable source
func IsSourceUnavailable(err error) bool {
	var target *ErrSourceUnavailable
	return errors.As(err, &target)
}

// ErrParseFailed is returned when a document does not have the expected shape
type ErrParseFailed struct {
	Source string
	Reason string
	Err    error
}

func (e *ErrParseFailed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Source, e.Reason)
}

func (e *ErrParseFailed) Unwrap() error {
	return e.Err
}

// NewParseError builds an ErrParseFailed
func NewParseError(source, reason string, err error) error {
	return &ErrParseFailed{Source: source, Reason: reason, Err: err}
}

// IsParseFailed checks if an error indicates an unrecognized document
func IsParseFailed(err error) bool {
	var target *ErrParseFailed
	return errors.As(err, &target)
}

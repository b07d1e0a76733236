package resolvers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// HTTPFetcher resolves http and https URLs with a GET request
type HTTPFetcher struct {
	Client *http.Client

	// Retries is the number of extra attempts after a failed fetch.
	// Client errors (4xx) are never retried.
	Retries int

	// NewBackOff builds the retry schedule; nil means exponential
	NewBackOff func() backoff.BackOff

	logger zerolog.Logger
}

// NewHTTPFetcher creates a fetcher. A nil client uses http.DefaultClient.
func NewHTTPFetcher(client *http.Client, retries int) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		Client:  client,
		Retries: retries,
		logger:  logging.GetLogger("resolvers.http"),
	}
}

// HTTP returns a resolver backed by a new HTTPFetcher
func HTTP(client *http.Client, retries int) types.ResolveFunc {
	return NewHTTPFetcher(client, retries).Resolve
}

// Resolve fetches source and returns the response body. Any status other
// than 200 is a failure.
func (h *HTTPFetcher) Resolve(ctx context.Context, source string, _ *types.Request) (string, error) {
	attempt := 0
	op := func() (string, error) {
		attempt++
		body, err := h.fetch(ctx, source)
		if err != nil {
			h.logger.Debug().
				Err(err).
				Str("url", source).
				Int("attempt", attempt).
				Msg("Fetch failed")
		}
		return body, err
	}

	if h.Retries <= 0 {
		body, err := op()
		return body, unwrapPermanent(err)
	}

	var b backoff.BackOff
	if h.NewBackOff != nil {
		b = h.NewBackOff()
	} else {
		b = backoff.NewExponentialBackOff()
	}
	b = backoff.WithContext(backoff.WithMaxRetries(b, uint64(h.Retries)), ctx)

	return backoff.RetryWithData(op, b)
}

func (h *HTTPFetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("invalid request for %s: %w", url, err))
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP status code was %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	h.logger.Trace().
		Str("url", url).
		Int("bytes", len(body)).
		Msg("Fetched remote source")
	return string(body), nil
}

func unwrapPermanent(err error) error {
	if p, ok := err.(*backoff.PermanentError); ok {
		return p.Err
	}
	return err
}

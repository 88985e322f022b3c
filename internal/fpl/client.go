// Package fpl fetches the public fantasy premier league bootstrap snapshot.
package fpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leighmacdonald/fpl-form/internal/encoding"
)

var (
	// ErrFetch is joined into every error returned by Client.Fetch.
	ErrFetch           = errors.New("failed to fetch bootstrap data")
	ErrFetchRequest    = errors.New("bootstrap request failed")
	ErrFetchStatus     = errors.New("unexpected bootstrap response status")
	ErrFetchDecode     = errors.New("malformed bootstrap response")
	ErrFetchMissingKey = errors.New("bootstrap response missing expected key")
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Fetcher provides the raw player and club collections.
type Fetcher interface {
	Fetch(ctx context.Context) (Bootstrap, error)
}

// NewHTTPClient returns a client with a finite timeout, the upstream imposes none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// New creates a new bootstrap client for the given endpoint.
func New(httpClient HTTPDoer, url string) *Client {
	return &Client{httpClient: httpClient, url: url}
}

type Client struct {
	httpClient HTTPDoer
	url        string
}

// Fetch performs exactly one GET against the endpoint. There is no retry, any failure is returned to the
// caller joined with ErrFetch and one of the more specific fetch errors.
func (c *Client) Fetch(ctx context.Context) (Bootstrap, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if errReq != nil {
		return Bootstrap{}, errors.Join(errReq, ErrFetchRequest, ErrFetch)
	}

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return Bootstrap{}, errors.Join(errResp, ErrFetchRequest, ErrFetch)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Bootstrap{}, errors.Join(fmt.Errorf("status code: %d", resp.StatusCode), ErrFetchStatus, ErrFetch)
	}

	payload, errDecode := encoding.UnmarshalJSON[bootstrapPayload](resp.Body)
	if errDecode != nil {
		return Bootstrap{}, errors.Join(errDecode, ErrFetchDecode, ErrFetch)
	}

	if payload.Elements == nil {
		return Bootstrap{}, errors.Join(errors.New(`key "elements"`), ErrFetchMissingKey, ErrFetch)
	}

	if payload.Teams == nil {
		return Bootstrap{}, errors.Join(errors.New(`key "teams"`), ErrFetchMissingKey, ErrFetch)
	}

	slog.Debug("Fetched bootstrap data", slog.Int("players", len(*payload.Elements)),
		slog.Int("clubs", len(*payload.Teams)))

	return Bootstrap{Players: *payload.Elements, Clubs: *payload.Teams}, nil
}

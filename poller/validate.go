package poller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/theoremus-urban-solutions/transit-arrivals/config"
	"github.com/theoremus-urban-solutions/transit-arrivals/feed"
)

// ErrInvalidAuth is returned by ValidateFeed when the feed rejects the
// configured credentials.
var ErrInvalidAuth = errors.New("feed rejected credentials")

// ValidateFeed probes the configured feed once at setup time. HTTP 401 means
// the credentials are invalid; any 2xx response with a decodable body means
// the configuration is usable. This is a one-shot side interface and plays
// no part in steady-state polling.
func ValidateFeed(ctx context.Context, cfg *config.AppConfig) error {
	req, err := buildRequest(ctx, cfg.Feed)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: cfg.Feed.Timeout()}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidAuth
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpStatusError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	payload := feed.Payload{
		Kind: resolveKind(cfg.Feed, resp.Header.Get("Content-Type")),
		Body: body,
	}
	if _, err := payload.Decode(cfg.Location); err != nil {
		return fmt.Errorf("feed responded but body is not decodable: %w", err)
	}
	return nil
}

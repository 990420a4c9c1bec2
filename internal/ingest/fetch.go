package ingest

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/antennalabs/patterncmp/internal/config"
	"github.com/antennalabs/patterncmp/internal/pattern"
)

// Fetcher retrieves CSV tables over HTTP with retries.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher(cfg *config.ClientEnvConfig) *Fetcher {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.HTTPClient.Timeout = cfg.ClientTimeout
	rc.Logger = nil

	cli := resty.NewWithClient(rc.StandardClient())

	log.Info().
		Int("retry_max", rc.RetryMax).
		Str("timeout", rc.HTTPClient.Timeout.String()).
		Msg("table fetcher initialized")

	return &Fetcher{client: cli}
}

// Fetch downloads a CSV table. The table is named after the last URL path
// segment.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*pattern.Table, error) {
	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch table: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch table: status %d from %s", resp.StatusCode(), rawURL)
	}

	name := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}

	return ReadTable(bytes.NewReader(resp.Body()), name)
}

// Package openexchange fetches the USD exchange rate table from the
// open.er-api.com HTTP API.
package openexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amirasaad/countrypulse/pkg/config"
	"github.com/amirasaad/countrypulse/pkg/provider"
)

// SourceName identifies this provider in SourceError details.
const SourceName = "open.er-api.com"

// Source implements provider.RateSource against open.er-api.com.
type Source struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a rate source using the configured endpoint and HTTP timeout.
func New(cfg *config.Sources, logger *slog.Logger) *Source {
	return &Source{
		url:        cfg.RatesUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchLatest issues one request for the latest rate table. A transport
// failure, non-success status or undecodable payload is a
// *provider.SourceError. No retries.
func (s *Source) FetchLatest(ctx context.Context) (*provider.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	s.logger.Info("fetching exchange rates", "url", s.url)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to fetch rates: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("API returned status %d", resp.StatusCode)}
	}

	var table provider.RateTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &table, nil
}

// Ensure Source implements provider.RateSource
var _ provider.RateSource = (*Source)(nil)

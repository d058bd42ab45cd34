// Package restcountries fetches the country catalog from the restcountries
// HTTP API.
package restcountries

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
const SourceName = "restcountries.com"

// Source implements provider.CountrySource against restcountries.com.
type Source struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a restcountries source using the configured endpoint and
// HTTP timeout.
func New(cfg *config.Sources, logger *slog.Logger) *Source {
	return &Source{
		url:        cfg.CountriesUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchAll issues one request for the full catalog. A transport failure,
// non-success status or undecodable payload is a *provider.SourceError.
// No retries.
func (s *Source) FetchAll(ctx context.Context) ([]provider.RawCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	s.logger.Info("fetching country catalog", "url", s.url)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to fetch countries: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("API returned status %d", resp.StatusCode)}
	}

	var countries []provider.RawCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, &provider.SourceError{Source: SourceName, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return countries, nil
}

// Ensure Source implements provider.CountrySource
var _ provider.CountrySource = (*Source)(nil)

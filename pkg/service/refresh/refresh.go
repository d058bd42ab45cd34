// Package refresh implements the country data refresh pipeline:
// fetch the country catalog and exchange rate table, normalize raw entries,
// persist the batch atomically and regenerate the summary artifact.
package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/countrypulse/pkg/dto"
	"github.com/amirasaad/countrypulse/pkg/provider"
	countryrepo "github.com/amirasaad/countrypulse/pkg/repository/country"
	"github.com/google/uuid"
)

// Renderer regenerates the summary artifact after a successful persist.
// Render failures are recovered inside Run; they never fail the refresh.
type Renderer interface {
	Render(ctx context.Context, now time.Time) error
}

// Result describes one completed refresh run.
type Result struct {
	RunID       uuid.UUID
	RefreshedAt time.Time
}

// Service orchestrates one refresh run per call. Runs are not coordinated
// with each other; concurrent runs race with last-committed-wins semantics
// inside their own transactions.
type Service struct {
	countries  provider.CountrySource
	rates      provider.RateSource
	repo       countryrepo.Repository
	renderer   Renderer
	multiplier Multiplier
	logger     *slog.Logger
}

// New creates a refresh service. renderer may be nil when no summary artifact
// is wanted (e.g. in tests).
func New(
	countries provider.CountrySource,
	rates provider.RateSource,
	repo countryrepo.Repository,
	renderer Renderer,
	multiplier Multiplier,
	logger *slog.Logger,
) *Service {
	return &Service{
		countries:  countries,
		rates:      rates,
		repo:       repo,
		renderer:   renderer,
		multiplier: multiplier,
		logger:     logger,
	}
}

// Run executes one refresh: country fetch, rate fetch (sequential, in that
// order), normalization, transactional upsert of the whole batch, then a
// best-effort summary render.
//
// Fetch failures surface as *provider.SourceError; persistence failures as
// the repository error. Either aborts the run with the store untouched by
// this run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New()
	logger := s.logger.With("run_id", runID)

	rawCountries, err := s.countries.FetchAll(ctx)
	if err != nil {
		logger.Error("country catalog fetch failed", "error", err)
		return nil, err
	}
	logger.Info("country catalog fetched", "entries", len(rawCountries))

	table, err := s.rates.FetchLatest(ctx)
	if err != nil {
		logger.Error("exchange rate fetch failed", "error", err)
		return nil, err
	}
	logger.Info("exchange rates fetched", "base", table.Base, "rates", len(table.Rates))

	now := time.Now().UTC()
	records := make([]dto.CountryUpsert, 0, len(rawCountries))
	for _, raw := range rawCountries {
		if rec := normalize(raw, table.Rates, now, s.multiplier); rec != nil {
			records = append(records, *rec)
		}
	}
	logger.Info("records normalized", "accepted", len(records), "dropped", len(rawCountries)-len(records))

	if err := s.repo.UpsertBatch(ctx, records); err != nil {
		logger.Error("batch persist failed, transaction rolled back", "error", err)
		return nil, err
	}

	if s.renderer != nil {
		if err := s.renderer.Render(ctx, now); err != nil {
			// Non-fatal: the refresh itself succeeded.
			logger.Warn("summary render failed", "error", err)
		}
	}

	logger.Info("refresh completed", "refreshed_at", now)
	return &Result{RunID: runID, RefreshedAt: now}, nil
}

// Package country provides the query-side service over persisted country
// records: listing, lookup, deletion and aggregate status.
package country

import (
	"context"
	"log/slog"

	"github.com/amirasaad/countrypulse/pkg/dto"
	countryrepo "github.com/amirasaad/countrypulse/pkg/repository/country"
)

// Service exposes read and delete operations over the country store.
type Service struct {
	repo   countryrepo.Repository
	logger *slog.Logger
}

// New creates a country query service.
func New(repo countryrepo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns countries matching the filter.
func (s *Service) List(ctx context.Context, filter dto.ListFilter) ([]*dto.CountryRead, error) {
	return s.repo.List(ctx, filter)
}

// Get retrieves one country by case-insensitive name match.
// Returns domain.ErrCountryNotFound when no row matches.
func (s *Service) Get(ctx context.Context, name string) (*dto.CountryRead, error) {
	return s.repo.GetByName(ctx, name)
}

// Delete removes one country by case-insensitive name match.
// Returns domain.ErrCountryNotFound when no row matches.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return err
	}
	s.logger.Info("country deleted", "name", name)
	return nil
}

// Status returns the total row count and the latest refresh timestamp.
func (s *Service) Status(ctx context.Context) (*dto.Stats, error) {
	return s.repo.Stats(ctx)
}

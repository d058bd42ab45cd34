package country

import (
	"context"

	"github.com/amirasaad/countrypulse/pkg/dto"
)

// Repository defines the data access operations for persisted country records.
// Name matching is case-insensitive everywhere: at most one row exists per
// country name ignoring case.
type Repository interface {
	// UpsertBatch applies the whole batch inside a single transaction:
	// for each record it updates the row whose name matches case-insensitively,
	// or inserts a new one. Any failure rolls back the entire batch.
	UpsertBatch(ctx context.Context, records []dto.CountryUpsert) error

	// List returns countries matching the filter as read-optimized DTOs.
	List(ctx context.Context, filter dto.ListFilter) ([]*dto.CountryRead, error)

	// GetByName retrieves a single country by case-insensitive name match.
	// Returns domain.ErrCountryNotFound when no row matches.
	GetByName(ctx context.Context, name string) (*dto.CountryRead, error)

	// DeleteByName removes the row matching the name case-insensitively.
	// Returns domain.ErrCountryNotFound when no row matches.
	DeleteByName(ctx context.Context, name string) error

	// Stats returns the total row count and the latest refresh timestamp.
	Stats(ctx context.Context) (*dto.Stats, error)

	// TopByGDP returns up to limit countries ordered by estimated GDP
	// descending. Ties keep storage order.
	TopByGDP(ctx context.Context, limit int) ([]dto.GDPEntry, error)
}

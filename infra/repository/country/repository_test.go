package country_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/countrypulse/infra/database"
	countryrepo "github.com/amirasaad/countrypulse/infra/repository/country"
	"github.com/amirasaad/countrypulse/pkg/domain"
	"github.com/amirasaad/countrypulse/pkg/dto"
	repo "github.com/amirasaad/countrypulse/pkg/repository/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return countryrepo.New(db)
}

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }

func wakanda(now time.Time) dto.CountryUpsert {
	return dto.CountryUpsert{
		Name:            "Wakanda",
		Capital:         strptr("Birnin Zana"),
		Region:          strptr("Africa"),
		Population:      1000,
		CurrencyCode:    strptr("WKD"),
		ExchangeRate:    f64ptr(2.0),
		EstimatedGDP:    750000,
		FlagURL:         strptr("f.png"),
		LastRefreshedAt: now,
	}
}

func TestUpsertBatchIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.UpsertBatch(ctx, []dto.CountryUpsert{wakanda(first)}))

	second := first.Add(time.Hour)
	require.NoError(t, r.UpsertBatch(ctx, []dto.CountryUpsert{wakanda(second)}))

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalCountries)

	got, err := r.GetByName(ctx, "Wakanda")
	require.NoError(t, err)
	assert.Equal(t, "Wakanda", got.Name)
	assert.EqualValues(t, 1000, got.Population)
	assert.Equal(t, 750000.0, got.EstimatedGDP)
	assert.True(t, got.LastRefreshedAt.Equal(second), "last_refreshed_at must advance to the later run")
}

func TestUpsertBatchCaseInsensitiveIdentity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	france := dto.CountryUpsert{Name: "France", Population: 67000000, LastRefreshedAt: now}
	require.NoError(t, r.UpsertBatch(ctx, []dto.CountryUpsert{france}))

	shouted := dto.CountryUpsert{Name: "FRANCE", Population: 68000000, LastRefreshedAt: now.Add(time.Minute)}
	require.NoError(t, r.UpsertBatch(ctx, []dto.CountryUpsert{shouted}))

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalCountries, "FRANCE must update the France row, not create a second one")

	got, err := r.GetByName(ctx, "france")
	require.NoError(t, err)
	assert.Equal(t, "France", got.Name, "the original identity key is preserved")
	assert.EqualValues(t, 68000000, got.Population)
}

func TestListFiltersAndSort(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	batch := []dto.CountryUpsert{
		{Name: "Wakanda", Region: strptr("Africa"), CurrencyCode: strptr("WKD"), Population: 1000, EstimatedGDP: 750000, LastRefreshedAt: now},
		{Name: "Latveria", Region: strptr("Europe"), CurrencyCode: strptr("LAT"), Population: 500, EstimatedGDP: 100, LastRefreshedAt: now},
		{Name: "Genosha", Region: strptr("Africa"), CurrencyCode: strptr("GEN"), Population: 800, EstimatedGDP: 5000, LastRefreshedAt: now},
	}
	require.NoError(t, r.UpsertBatch(ctx, batch))

	africa, err := r.List(ctx, dto.ListFilter{Region: "Africa"})
	require.NoError(t, err)
	assert.Len(t, africa, 2)

	lat, err := r.List(ctx, dto.ListFilter{Currency: "LAT"})
	require.NoError(t, err)
	require.Len(t, lat, 1)
	assert.Equal(t, "Latveria", lat[0].Name)

	desc, err := r.List(ctx, dto.ListFilter{Sort: "gdp_desc"})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, "Wakanda", desc[0].Name)
	assert.Equal(t, "Latveria", desc[2].Name)

	asc, err := r.List(ctx, dto.ListFilter{Sort: "gdp_asc"})
	require.NoError(t, err)
	assert.Equal(t, "Latveria", asc[0].Name)
}

func TestGetByNameNotFound(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.GetByName(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestDeleteByName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, r.UpsertBatch(ctx, []dto.CountryUpsert{wakanda(now)}))
	require.NoError(t, r.DeleteByName(ctx, "WAKANDA"))

	_, err := r.GetByName(ctx, "Wakanda")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	err = r.DeleteByName(ctx, "Wakanda")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestStatsEmptyStore(t *testing.T) {
	r := newTestRepo(t)
	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCountries)
	assert.Nil(t, stats.LastRefreshedAt)
}

func TestTopByGDP(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	batch := make([]dto.CountryUpsert, 0, 7)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		batch = append(batch, dto.CountryUpsert{
			Name:            name,
			Population:      100,
			EstimatedGDP:    float64((i + 1) * 1000),
			LastRefreshedAt: now,
		})
	}
	require.NoError(t, r.UpsertBatch(ctx, batch))

	top, err := r.TopByGDP(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, "G", top[0].Name)
	assert.Equal(t, 7000.0, top[0].EstimatedGDP)
	assert.Equal(t, "C", top[4].Name)
}

package country

import (
	"context"
	"errors"

	"github.com/amirasaad/countrypulse/pkg/domain"
	"github.com/amirasaad/countrypulse/pkg/dto"
	repo "github.com/amirasaad/countrypulse/pkg/repository/country"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a country repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// UpsertBatch implements country.Repository. The whole batch runs inside one
// transaction: lookup by LOWER(name), update every mutable field on a hit
// (the row keeps its id and stored name casing), insert on a miss. Any
// failure rolls the entire batch back so the store never mixes old and new
// data from a partial run.
func (r *repository) UpsertBatch(ctx context.Context, records []dto.CountryUpsert) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			rec := &records[i]

			var existing Country
			err := tx.Where("LOWER(name) = LOWER(?)", rec.Name).First(&existing).Error
			switch {
			case err == nil:
				updates := map[string]any{
					"capital":           rec.Capital,
					"region":            rec.Region,
					"population":        rec.Population,
					"currency_code":     rec.CurrencyCode,
					"exchange_rate":     rec.ExchangeRate,
					"estimated_gdp":     rec.EstimatedGDP,
					"flag_url":          rec.FlagURL,
					"last_refreshed_at": rec.LastRefreshedAt,
				}
				if err := tx.Model(&Country{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				row := mapUpsertToModel(rec)
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// List implements country.Repository.
func (r *repository) List(ctx context.Context, filter dto.ListFilter) ([]*dto.CountryRead, error) {
	q := r.db.WithContext(ctx).Model(&Country{})
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Currency != "" {
		q = q.Where("currency_code = ?", filter.Currency)
	}
	switch filter.Sort {
	case "gdp_desc":
		q = q.Order("estimated_gdp DESC")
	case "gdp_asc":
		q = q.Order("estimated_gdp ASC")
	}

	var rows []Country
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.CountryRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

// GetByName implements country.Repository.
func (r *repository) GetByName(ctx context.Context, name string) (*dto.CountryRead, error) {
	var row Country
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

// DeleteByName implements country.Repository.
func (r *repository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).Delete(&Country{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

// Stats implements country.Repository.
func (r *repository) Stats(ctx context.Context) (*dto.Stats, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Country{}).Count(&total).Error; err != nil {
		return nil, err
	}

	stats := &dto.Stats{TotalCountries: total}
	if total == 0 {
		return stats, nil
	}

	var row Country
	if err := r.db.WithContext(ctx).Model(&Country{}).
		Order("last_refreshed_at DESC").First(&row).Error; err != nil {
		return nil, err
	}
	stats.LastRefreshedAt = &row.LastRefreshedAt
	return stats, nil
}

// TopByGDP implements country.Repository.
func (r *repository) TopByGDP(ctx context.Context, limit int) ([]dto.GDPEntry, error) {
	var rows []Country
	if err := r.db.WithContext(ctx).Model(&Country{}).
		Order("estimated_gdp DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]dto.GDPEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, dto.GDPEntry{Name: rows[i].Name, EstimatedGDP: rows[i].EstimatedGDP})
	}
	return entries, nil
}

// mapUpsertToModel maps an upsert DTO to a GORM model for insertion.
func mapUpsertToModel(rec *dto.CountryUpsert) Country {
	return Country{
		Name:            rec.Name,
		Capital:         rec.Capital,
		Region:          rec.Region,
		Population:      rec.Population,
		CurrencyCode:    rec.CurrencyCode,
		ExchangeRate:    rec.ExchangeRate,
		EstimatedGDP:    rec.EstimatedGDP,
		FlagURL:         rec.FlagURL,
		LastRefreshedAt: rec.LastRefreshedAt,
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(row *Country) *dto.CountryRead {
	return &dto.CountryRead{
		ID:              row.ID,
		Name:            row.Name,
		Capital:         row.Capital,
		Region:          row.Region,
		Population:      row.Population,
		CurrencyCode:    row.CurrencyCode,
		ExchangeRate:    row.ExchangeRate,
		EstimatedGDP:    row.EstimatedGDP,
		FlagURL:         row.FlagURL,
		LastRefreshedAt: row.LastRefreshedAt,
	}
}

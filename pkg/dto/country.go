package dto

import "time"

// CountryRead is a read-optimized DTO for country queries and API responses.
type CountryRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Capital         *string   `json:"capital"`
	Region          *string   `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    float64   `json:"estimated_gdp"`
	FlagURL         *string   `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// CountryUpsert carries one normalized country record into the persistence
// layer. Name is the natural key; the repository matches it case-insensitively
// and either updates the existing row or inserts a new one.
type CountryUpsert struct {
	Name            string
	Capital         *string
	Region          *string
	Population      int64
	CurrencyCode    *string
	ExchangeRate    *float64
	EstimatedGDP    float64
	FlagURL         *string
	LastRefreshedAt time.Time
}

// ListFilter narrows and orders country listings.
type ListFilter struct {
	Region   string
	Currency string
	Sort     string // "gdp_desc", "gdp_asc" or empty for storage order
}

// Stats aggregates the persisted data set for the status endpoint.
type Stats struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// GDPEntry is one row of the top-N ranking used by the summary renderer.
type GDPEntry struct {
	Name         string
	EstimatedGDP float64
}

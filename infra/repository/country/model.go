package country

import "time"

// Country represents a persisted country record. Name is the natural key;
// a functional unique index on LOWER(name) (created in infra/database)
// enforces case-insensitive uniqueness.
type Country struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"size:255;not null"`
	Capital         *string `gorm:"size:255"`
	Region          *string `gorm:"size:255"`
	Population      int64   `gorm:"not null"`
	CurrencyCode    *string `gorm:"size:8"`
	ExchangeRate    *float64
	EstimatedGDP    float64 `gorm:"column:estimated_gdp;not null;default:0"`
	FlagURL         *string `gorm:"column:flag_url;size:512"`
	LastRefreshedAt time.Time `gorm:"not null"`
}

// TableName overrides the default pluralization.
func (Country) TableName() string { return "countries" }

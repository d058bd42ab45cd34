// Package provider defines the contracts for the two external data sources
// the refresh pipeline consumes: a country catalog and a currency exchange
// rate table. Concrete HTTP implementations live under infra/provider.
package provider

import (
	"context"
	"fmt"
)

// RawCurrency is one entry of a country's currency list. The upstream catalog
// sometimes omits the code entirely.
type RawCurrency struct {
	Code *string `json:"code"`
}

// RawCountry is a single country entry exactly as the catalog returns it.
// It is ephemeral: entries are normalized before anything is persisted.
type RawCountry struct {
	Name       string        `json:"name"`
	Capital    *string       `json:"capital"`
	Region     *string       `json:"region"`
	Population int64         `json:"population"`
	Flag       string        `json:"flag"`
	Currencies []RawCurrency `json:"currencies"`
}

// RateTable is the exchange rate response: rate-per-USD keyed by currency code.
type RateTable struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// CountrySource fetches the full country catalog.
type CountrySource interface {
	FetchAll(ctx context.Context) ([]RawCountry, error)
}

// RateSource fetches the latest exchange rate table.
type RateSource interface {
	FetchLatest(ctx context.Context) (*RateTable, error)
}

// SourceError wraps any network or decode failure against an external source.
// Source names the upstream host so the caller can report which side failed.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

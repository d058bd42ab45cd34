package refresh

import (
	"strings"
	"time"

	"github.com/amirasaad/countrypulse/pkg/dto"
	"github.com/amirasaad/countrypulse/pkg/provider"
)

// normalize converts one raw catalog entry into a persistable record.
// Entries with a blank trimmed name or zero population are rejected and
// return nil; they never reach the store.
//
// The first currency entry with a non-blank code is the record's currency.
// When that code resolves against the rate table, the estimated GDP is
// population * multiplier / rate; otherwise both exchange rate and GDP keep
// their zero defaults.
func normalize(raw provider.RawCountry, rates map[string]float64, now time.Time, m Multiplier) *dto.CountryUpsert {
	if strings.TrimSpace(raw.Name) == "" || raw.Population <= 0 {
		return nil
	}

	var currencyCode *string
	if len(raw.Currencies) > 0 {
		if code := raw.Currencies[0].Code; code != nil && strings.TrimSpace(*code) != "" {
			currencyCode = code
		}
	}

	var exchangeRate *float64
	var estimatedGDP float64
	if currencyCode != nil {
		if rate, ok := rates[*currencyCode]; ok && rate > 0 {
			exchangeRate = &rate
			estimatedGDP = float64(raw.Population) * m.Draw() / rate
		}
	}

	flagURL := raw.Flag
	return &dto.CountryUpsert{
		Name:            raw.Name,
		Capital:         raw.Capital,
		Region:          raw.Region,
		Population:      raw.Population,
		CurrencyCode:    currencyCode,
		ExchangeRate:    exchangeRate,
		EstimatedGDP:    estimatedGDP,
		FlagURL:         &flagURL,
		LastRefreshedAt: now,
	}
}

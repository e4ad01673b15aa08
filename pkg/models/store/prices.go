package store

import "time"

// CachedPriceQuotes is the persisted form of the annual offer quotes. Tax
// labels are localized on read and never stored.
type CachedPriceQuotes struct {
	AnnualPromoPrice         string    `json:"annual_promo_price"`
	AnnualPromoTaxIncluded   bool      `json:"annual_promo_tax_included"`
	AnnualRegularPrice       string    `json:"annual_regular_price"`
	AnnualRegularTaxIncluded bool      `json:"annual_regular_tax_included"`
	CachedAt                 time.Time `json:"cached_at"`
}

// DiagnosticEvent is a row of the diagnostic_events table.
type DiagnosticEvent struct {
	ID         string
	Name       string
	Profile    string
	OccurredAt time.Time
}

package domain

// OfferPrice is the display price of a single offer.
type OfferPrice struct {
	Price    string // "$19.99", "19,99 kr", or empty when unavailable
	TaxLabel string // localized "including tax" / "excluding tax"
}

// PriceSummary is the flattened result of a price lookup.
// Every field is empty when its data could not be retrieved.
type PriceSummary struct {
	AnnualPromoPrice      string
	TaxLabelAnnualPromo   string
	AnnualRegularPrice    string
	TaxLabelAnnualRegular string
}

// NewPriceSummary merges the promotional and regular offer prices.
func NewPriceSummary(promo, regular OfferPrice) PriceSummary {
	return PriceSummary{
		AnnualPromoPrice:      promo.Price,
		TaxLabelAnnualPromo:   promo.TaxLabel,
		AnnualRegularPrice:    regular.Price,
		TaxLabelAnnualRegular: regular.TaxLabel,
	}
}

// OfferQuote is an offer price before localization: the formatted amount and
// whether tax is included.
type OfferQuote struct {
	Price       string
	TaxIncluded bool
}

// PriceQuotes holds the quotes of both annual offers. Only complete lookups are
// cached, so it carries no failure state.
type PriceQuotes struct {
	Promo   OfferQuote
	Regular OfferQuote
}

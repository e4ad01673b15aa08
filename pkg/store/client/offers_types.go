package client

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// OfferResponse is the body of the offers endpoint: an array of offers where
// only the first one is relevant.
type OfferResponse []Offer

type Offer struct {
	OfferID string   `json:"offer_id,omitempty"`
	Pricing *Pricing `json:"pricing,omitempty"`
}

type Pricing struct {
	Currency *Currency     `json:"currency,omitempty"`
	Prices   []OfferPrices `json:"prices,omitempty"`
}

type Currency struct {
	Symbol       string `json:"symbol"`
	Delimiter    string `json:"delimiter"`
	FormatString string `json:"format_string"`
}

// IsZero reports whether no formatting metadata was supplied.
func (c Currency) IsZero() bool {
	return c.Symbol == "" && c.Delimiter == "" && c.FormatString == ""
}

// SymbolAfter reports whether the symbol goes after the amount ("#,##0.00 kr").
func (c Currency) SymbolAfter() bool {
	return strings.HasPrefix(c.FormatString, "#")
}

type OfferPrices struct {
	PriceDetails *PriceDetails `json:"price_details,omitempty"`
}

type PriceDetails struct {
	DisplayRules *DisplayRules `json:"display_rules,omitempty"`
}

type DisplayRules struct {
	Price *Amount `json:"price,omitempty"`
	Tax   string  `json:"tax,omitempty"`
}

// maxAmount bounds the magnitude of a decoded price.
const maxAmount = 1e12

// Amount decodes a price sent either as a JSON number or as a numeric string.
// Unparseable values are treated as absent, and so is anything non-finite or
// beyond maxAmount.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxAmount {
		return nil
	}
	*a = Amount(f)
	return nil
}

// OfferDetail is the first offer of a response flattened into plain values.
type OfferDetail struct {
	Price    float64
	HasPrice bool
	Tax      string
	Currency Currency
}

// ParseOfferResponse decodes body as leniently as possible. Fields whose JSON
// type does not match the schema are skipped; a body that is not JSON at all
// yields an empty response.
func ParseOfferResponse(body []byte) OfferResponse {
	var resp OfferResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil
		}
	}
	return resp
}

// Detail flattens the first offer. Missing levels leave the zero value.
func (r OfferResponse) Detail() OfferDetail {
	var d OfferDetail
	if len(r) == 0 || r[0].Pricing == nil {
		return d
	}
	pricing := r[0].Pricing
	if pricing.Currency != nil {
		d.Currency = *pricing.Currency
	}
	if len(pricing.Prices) == 0 || pricing.Prices[0].PriceDetails == nil {
		return d
	}
	rules := pricing.Prices[0].PriceDetails.DisplayRules
	if rules == nil {
		return d
	}
	d.Tax = rules.Tax
	if rules.Price != nil {
		d.Price = float64(*rules.Price)
		d.HasPrice = true
	}
	return d
}

package pricing

import (
	"strconv"
	"strings"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/store/client"
)

const (
	KeyIncludingTax = "includingTax"
	KeyExcludingTax = "excludingTax"

	taxIncluded = "included"
)

// Labels resolves localized strings by key.
type Labels interface {
	Get(key string) string
}

// ExtractPrice turns an offers response into a display price and tax label.
// It never fails: anything missing leaves the price empty.
func ExtractPrice(resp client.OfferResponse, labels Labels) domain.OfferPrice {
	return LabelQuote(QuoteOffer(resp), labels)
}

// QuoteOffer reads the formatted price and tax mode of the first offer.
func QuoteOffer(resp client.OfferResponse) domain.OfferQuote {
	detail := resp.Detail()

	price := ""
	if detail.HasPrice && detail.Price != 0 {
		price = FormatPrice(detail.Price, detail.Currency)
	}
	return domain.OfferQuote{Price: price, TaxIncluded: detail.Tax == taxIncluded}
}

// LabelQuote attaches the localized tax label to q.
func LabelQuote(q domain.OfferQuote, labels Labels) domain.OfferPrice {
	key := KeyExcludingTax
	if q.TaxIncluded {
		key = KeyIncludingTax
	}

	label := ""
	if labels != nil {
		label = labels.Get(key)
	}
	return domain.OfferPrice{Price: q.Price, TaxLabel: label}
}

// FormatPrice renders amount with two decimals and applies the currency's
// delimiter and symbol placement.
func FormatPrice(amount float64, currency client.Currency) string {
	price := strconv.FormatFloat(amount, 'f', 2, 64)
	if currency.IsZero() {
		return price
	}
	if currency.Delimiter != "" {
		price = strings.Replace(price, ".", currency.Delimiter, 1)
	}
	if currency.SymbolAfter() {
		return price + " " + currency.Symbol
	}
	return currency.Symbol + price
}

func labelQuotes(q domain.PriceQuotes, labels Labels) domain.PriceSummary {
	return domain.NewPriceSummary(LabelQuote(q.Promo, labels), LabelQuote(q.Regular, labels))
}

// labelResult is the display price of one fetch; a failed fetch has neither
// price nor label.
func labelResult(res client.FetchResult, labels Labels) domain.OfferPrice {
	if res.Failed() {
		return domain.OfferPrice{}
	}
	return ExtractPrice(res.Offers(), labels)
}

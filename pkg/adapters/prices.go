package adapters

import (
	"time"

	"github.com/de-tools/team-migration/pkg/models/api"
	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/models/store"
)

func MapPriceSummaryDomainToApi(s domain.PriceSummary) api.PriceSummary {
	return api.PriceSummary{
		AnnualPromoPrice:      s.AnnualPromoPrice,
		TaxLabelAnnualPromo:   s.TaxLabelAnnualPromo,
		AnnualRegularPrice:    s.AnnualRegularPrice,
		TaxLabelAnnualRegular: s.TaxLabelAnnualRegular,
	}
}

func MapPriceQuotesDomainToStore(q domain.PriceQuotes, cachedAt time.Time) store.CachedPriceQuotes {
	return store.CachedPriceQuotes{
		AnnualPromoPrice:         q.Promo.Price,
		AnnualPromoTaxIncluded:   q.Promo.TaxIncluded,
		AnnualRegularPrice:       q.Regular.Price,
		AnnualRegularTaxIncluded: q.Regular.TaxIncluded,
		CachedAt:                 cachedAt,
	}
}

func MapPriceQuotesStoreToDomain(q store.CachedPriceQuotes) domain.PriceQuotes {
	return domain.PriceQuotes{
		Promo:   domain.OfferQuote{Price: q.AnnualPromoPrice, TaxIncluded: q.AnnualPromoTaxIncluded},
		Regular: domain.OfferQuote{Price: q.AnnualRegularPrice, TaxIncluded: q.AnnualRegularTaxIncluded},
	}
}

func MapProfileDomainToApi(p domain.ConfigProfile) api.Profile {
	return api.Profile{
		Name:        p.Name,
		Environment: string(p.Environment),
	}
}

func MapDiagnosticEventStoreToApi(e store.DiagnosticEvent) api.DiagnosticEvent {
	return api.DiagnosticEvent{
		ID:         e.ID,
		Name:       e.Name,
		OccurredAt: e.OccurredAt,
	}
}

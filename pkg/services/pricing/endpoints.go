package pricing

import "github.com/de-tools/team-migration/pkg/models/domain"

const (
	regularAnnualOfferID = "1F61C22FE9B64715930972A648B9DF78"
	promoAnnualOfferID   = "2A02777A415E0FBCF8E64199394D7CA6"

	prodHost  = "https://bps-il.adobe.io"
	stageHost = "https://bps-il-stage.adobe.io"

	prodAPIKey  = "dc-prod-sign-jil"
	stageAPIKey = "dc-stage-sign-jil"
)

// ResolveEndpoints returns the offer URL templates for env. Unknown tags,
// including the empty one, resolve to staging.
func ResolveEndpoints(env domain.Environment) domain.EndpointPair {
	switch env {
	case domain.EnvironmentProd:
		return endpointPair(prodHost, prodAPIKey)
	default:
		return endpointPair(stageHost, stageAPIKey)
	}
}

func endpointPair(host, apiKey string) domain.EndpointPair {
	return domain.EndpointPair{
		PromoURL:   offerURL(host, promoAnnualOfferID, apiKey),
		RegularURL: offerURL(host, regularAnnualOfferID, apiKey),
	}
}

func offerURL(host, offerID, apiKey string) string {
	return host + "/jil-api/offers/" + offerID +
		"?service_providers=PRICING&country={0}&locale={1}&show_availability_dates=false&api_key=" + apiKey
}

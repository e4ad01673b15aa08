package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/team-migration/pkg/models/api"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/de-tools/team-migration/pkg/services/events"
	"github.com/de-tools/team-migration/pkg/services/i18n"
	"github.com/de-tools/team-migration/pkg/services/migration"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/de-tools/team-migration/pkg/store/client"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profiles = `
[acme]
environment = prod
country = us
language = en
app_root = https://secure.example.com
is_dismissible = true
show_purchase_option_modal = true
num_of_active_users = 1
purchase_url = https://buy.example.com
faq_url = https://faq.example.com
`

const offerTemplate = `[{"pricing":{"currency":{"symbol":"$","delimiter":".","format_string":"'$'#,##0.00"},
"prices":[{"price_details":{"display_rules":{"price":%s,"tax":"%s"}}}]}}]`

// rewriteTransport sends every request to target, keeping path and query.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(out)
}

func newOffersServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		assert.Equal(t, "US_en", r.URL.Query().Get("locale"))

		switch {
		case strings.Contains(r.URL.Path, "2A02777A415E0FBCF8E64199394D7CA6"):
			_, _ = fmt.Fprintf(w, offerTemplate, "14.99", "excluded")
		case strings.Contains(r.URL.Path, "1F61C22FE9B64715930972A648B9DF78"):
			_, _ = fmt.Fprintf(w, offerTemplate, `"29.99"`, "included")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestAPI(t *testing.T, offers *httptest.Server) *httptest.Server {
	target, err := url.Parse(offers.URL)
	require.NoError(t, err)

	registry, err := config.NewRegistryFromBytes([]byte(profiles))
	require.NoError(t, err)

	httpClient := &http.Client{Transport: rewriteTransport{target: target}}
	prices := pricing.NewService(client.NewOffersClient(httpClient, events.Discard), pricing.Options{
		FetchTimeout: 5 * time.Second,
	})
	catalog := i18n.NewCatalog(i18n.NewEmbeddedLoader(), nil)

	router := ConfigureRouter(Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Dependencies: Dependencies{
			Registry:  registry,
			Strings:   catalog,
			Prices:    prices,
			Migration: migration.NewService(catalog, prices, events.Discard),
			Logger:    zerolog.New(zerolog.NewTestWriter(t)),
		},
	})
	return httptest.NewServer(router)
}

func TestWebAPI_Endpoints(t *testing.T) {
	offers := newOffersServer(t)
	defer offers.Close()
	testServer := newTestAPI(t, offers)
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "ListProfiles",
			method:         http.MethodGet,
			path:           "/api/v1/profiles",
			expectedStatus: http.StatusOK,
			expected:       []api.Profile{{Name: "acme", Environment: "prod"}},
			parseResponse:  unmarshalResponse[[]api.Profile](),
		},
		{
			name:           "GetPrices",
			method:         http.MethodGet,
			path:           "/api/v1/profiles/acme/prices",
			expectedStatus: http.StatusOK,
			expected: api.PriceSummary{
				AnnualPromoPrice:      "$14.99",
				TaxLabelAnnualPromo:   "excl. tax",
				AnnualRegularPrice:    "$29.99",
				TaxLabelAnnualRegular: "incl. tax",
			},
			parseResponse: unmarshalResponse[api.PriceSummary](),
		},
		{
			name:           "BuyNow_SingleUser",
			method:         http.MethodPost,
			path:           "/api/v1/profiles/acme/modal/buy",
			expectedStatus: http.StatusOK,
			expected:       api.Action{Kind: "redirect", RedirectURL: "https://buy.example.com"},
			parseResponse:  unmarshalResponse[api.Action](),
		},
		{
			name:           "CloseModal",
			method:         http.MethodPost,
			path:           "/api/v1/profiles/acme/modal/purchase/close",
			expectedStatus: http.StatusOK,
			expected:       api.Action{Kind: "redirect", RedirectURL: "https://secure.example.com/public/login"},
			parseResponse:  unmarshalResponse[api.Action](),
		},
		{
			name:           "EventHistoryDisabled",
			method:         http.MethodGet,
			path:           "/api/v1/profiles/acme/events",
			expectedStatus: http.StatusNotImplemented,
			expected:       "event history is not configured\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "UnknownProfile",
			method:         http.MethodGet,
			path:           "/api/v1/profiles/ghost/prices",
			expectedStatus: http.StatusNotFound,
			expected:       "profile not found\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_PurchaseModal(t *testing.T) {
	offers := newOffersServer(t)
	defer offers.Close()
	testServer := newTestAPI(t, offers)
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/profiles/acme/modal")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var modal api.Modal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&modal))
	assert.Equal(t, "purchase", modal.Kind)
	assert.Equal(t, "en_US", modal.Locale)
	assert.True(t, modal.Options.Close)
	require.NotNil(t, modal.Purchase)
	assert.Equal(t, "Special offer: $14.99/year for the first year (excl. tax)", modal.Purchase.PriceMsg)
	assert.Equal(t, "After the first year you will be billed $29.99/year (incl. tax).", modal.Purchase.BillingMsg2)
}

func TestWebAPI_Healthz(t *testing.T) {
	router := ConfigureRouter(Config{Dependencies: Dependencies{Logger: zerolog.Nop()}})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}

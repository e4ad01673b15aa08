package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/team-migration/pkg/services/events"
	"github.com/rs/zerolog"
)

const maxOfferBodySize = 1 << 20

// FetchResult is the settled outcome of an offers request. Err is set for
// transport failures and non-2xx answers; Body then holds whatever the
// server returned.
type FetchResult struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (r FetchResult) Failed() bool {
	return r.Err != nil
}

// Offers returns the parsed body of a successful fetch and nil otherwise.
func (r FetchResult) Offers() OfferResponse {
	if r.Failed() {
		return nil
	}
	return ParseOfferResponse(r.Body)
}

type OffersClient interface {
	// Fetch never returns an error: failures are logged, reported to the
	// diagnostic sink and handed back inside the result.
	Fetch(ctx context.Context, url string) FetchResult
}

type offersClient struct {
	http   *http.Client
	events events.Sink
}

func NewOffersClient(httpClient *http.Client, sink events.Sink) OffersClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if sink == nil {
		sink = events.Discard
	}
	return &offersClient{http: httpClient, events: sink}
}

func (c *offersClient) Fetch(ctx context.Context, url string) FetchResult {
	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fail(ctx, FetchResult{Err: fmt.Errorf("failed to create offers request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, FetchResult{Err: fmt.Errorf("offers request failed: %w", err)})
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close offers response body")
		}
	}(resp.Body)

	result := FetchResult{StatusCode: resp.StatusCode}
	result.Body, err = io.ReadAll(io.LimitReader(resp.Body, maxOfferBodySize))
	if err != nil {
		result.Err = fmt.Errorf("failed to read offers response: %w", err)
		return c.fail(ctx, result)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		result.Err = fmt.Errorf("offers endpoint returned status %d", resp.StatusCode)
		return c.fail(ctx, result)
	}
	return result
}

func (c *offersClient) fail(ctx context.Context, result FetchResult) FetchResult {
	zerolog.Ctx(ctx).Warn().
		Err(result.Err).
		Int("status", result.StatusCode).
		Msg("failed to fetch offer prices")
	c.events.Log(ctx, events.PriceFetchFailed)
	return result
}

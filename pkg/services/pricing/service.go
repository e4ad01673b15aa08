package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/store/client"
	"github.com/de-tools/team-migration/pkg/textfmt"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
)

const DefaultFetchTimeout = 10 * time.Second

// Cache stores offer quotes between lookups. Tax labels are applied after a
// read, so one entry serves every translation of a locale. Implementations
// live in pkg/store/pricecache.
type Cache interface {
	Get(ctx context.Context, key string) (domain.PriceQuotes, bool, error)
	Set(ctx context.Context, key string, quotes domain.PriceQuotes) error
}

type Service interface {
	// GetPrices looks up the promotional and regular annual prices and invokes
	// callback exactly once with the result, whatever happens on the way.
	GetPrices(ctx context.Context, cfg domain.HostConfig, labels Labels, callback func(domain.PriceSummary))
	// Summary is GetPrices without the callback.
	Summary(ctx context.Context, cfg domain.HostConfig, labels Labels) domain.PriceSummary
	// Refresh skips the cache read and stores what it fetched.
	Refresh(ctx context.Context, cfg domain.HostConfig, labels Labels) domain.PriceSummary
}

type Options struct {
	// FetchTimeout bounds both requests together. Zero disables the deadline.
	FetchTimeout time.Duration
	Cache        Cache
}

type service struct {
	client  client.OffersClient
	timeout time.Duration
	cache   Cache
}

func NewService(offers client.OffersClient, opts Options) Service {
	return &service{
		client:  offers,
		timeout: opts.FetchTimeout,
		cache:   opts.Cache,
	}
}

func (s *service) GetPrices(
	ctx context.Context,
	cfg domain.HostConfig,
	labels Labels,
	callback func(domain.PriceSummary),
) {
	callback(s.Summary(ctx, cfg, labels))
}

func (s *service) Summary(ctx context.Context, cfg domain.HostConfig, labels Labels) domain.PriceSummary {
	if cached, ok := s.cached(ctx, cfg); ok {
		return labelQuotes(cached, labels)
	}
	return s.Refresh(ctx, cfg, labels)
}

func (s *service) cached(ctx context.Context, cfg domain.HostConfig) (quotes domain.PriceQuotes, ok bool) {
	if s.cache == nil {
		return domain.PriceQuotes{}, false
	}
	defer func() {
		if r := recover(); r != nil {
			zerolog.Ctx(ctx).Error().Interface("panic", r).Msg("price cache panicked")
			quotes, ok = domain.PriceQuotes{}, false
		}
	}()

	quotes, ok, err := s.cache.Get(ctx, CacheKey(cfg))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to read cached prices")
		return domain.PriceQuotes{}, false
	}
	return quotes, ok
}

func (s *service) Refresh(ctx context.Context, cfg domain.HostConfig, labels Labels) (summary domain.PriceSummary) {
	logger := zerolog.Ctx(ctx).With().
		Str("environment", string(cfg.Environment)).
		Str("country", cfg.CountryCode()).
		Str("language", cfg.Language).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("price lookup panicked")
			summary = domain.PriceSummary{}
		}
	}()

	if !cfg.Environment.Known() {
		logger.Warn().Msg("unknown environment, using staging pricing endpoints")
	}

	promo, regular, err := s.fetch(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("price aggregation failed")
		return domain.PriceSummary{}
	}

	if promo.Failed() || regular.Failed() {
		return domain.NewPriceSummary(labelResult(promo, labels), labelResult(regular, labels))
	}

	quotes := domain.PriceQuotes{
		Promo:   QuoteOffer(promo.Offers()),
		Regular: QuoteOffer(regular.Offers()),
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, CacheKey(cfg), quotes); err != nil {
			logger.Warn().Err(err).Msg("failed to cache prices")
		}
	}
	return labelQuotes(quotes, labels)
}

// fetch issues both offer requests concurrently and waits for the slower one.
// The error is only set when one of the requests panicked.
func (s *service) fetch(ctx context.Context, cfg domain.HostConfig) (client.FetchResult, client.FetchResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	endpoints := ResolveEndpoints(cfg.Environment)
	country, locale := cfg.CountryCode(), cfg.PricingLocale()
	promoURL := textfmt.Format(endpoints.PromoURL, country, locale)
	regularURL := textfmt.Format(endpoints.RegularURL, country, locale)

	var promo, regular client.FetchResult
	var wg conc.WaitGroup
	wg.Go(func() { promo = s.client.Fetch(ctx, promoURL) })
	wg.Go(func() { regular = s.client.Fetch(ctx, regularURL) })

	if recovered := wg.WaitAndRecover(); recovered != nil {
		return client.FetchResult{}, client.FetchResult{}, fmt.Errorf("offers fetch panicked: %w", recovered.AsError())
	}
	return promo, regular, nil
}

// CacheKey identifies the prices of one environment and locale.
func CacheKey(cfg domain.HostConfig) string {
	env := cfg.Environment
	if !env.Known() {
		env = domain.EnvironmentStage
	}
	return fmt.Sprintf("prices:%s:%s", env, cfg.PricingLocale())
}

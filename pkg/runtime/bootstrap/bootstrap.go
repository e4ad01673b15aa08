// Package bootstrap assembles the service graph shared by the web and cli commands.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/team-migration/pkg/models/store"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/de-tools/team-migration/pkg/services/events"
	"github.com/de-tools/team-migration/pkg/services/i18n"
	"github.com/de-tools/team-migration/pkg/services/migration"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/de-tools/team-migration/pkg/store/client"
	"github.com/de-tools/team-migration/pkg/store/pricecache"
	sqlstore "github.com/de-tools/team-migration/pkg/store/sql"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

type EventHistory interface {
	Recent(ctx context.Context, profile string, limit int) ([]store.DiagnosticEvent, error)
}

type App struct {
	Registry  config.Registry
	Strings   migration.StringsSource
	Prices    pricing.Service
	Migration migration.Service
	// History stays nil unless an events database is configured.
	History EventHistory

	closers []func() error
}

// Close releases the database and cache connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func Build(ctx context.Context, s *config.Settings) (*App, error) {
	logger := zerolog.Ctx(ctx)
	app := &App{}

	registry, err := config.NewRegistry(s.Profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to create config registry: %w", err)
	}
	app.Registry = registry

	sink, err := app.eventSink(ctx, s.Events)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	loader, err := stringsLoader(ctx, s)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	catalog := i18n.NewCatalog(loader, i18n.NewEmbeddedLoader())
	app.Strings = catalog

	offers := client.NewOffersClient(&http.Client{Timeout: s.Pricing.FetchTimeout}, sink)
	app.Prices = pricing.NewService(offers, pricing.Options{
		FetchTimeout: s.Pricing.FetchTimeout,
		Cache:        app.priceCache(s.Cache),
	})
	app.Migration = migration.NewService(catalog, app.Prices, sink)

	logger.Info().
		Str("profiles", s.Profiles).
		Str("cache", s.Cache.Backend).
		Str("strings", s.Strings.Source).
		Bool("events_db", s.Events.DSN != "").
		Msg("services configured")
	return app, nil
}

func (a *App) eventSink(ctx context.Context, s config.EventsSettings) (events.Sink, error) {
	logSink := events.NewLogSink()
	if s.DSN == "" {
		return logSink, nil
	}

	db, err := sql.Open("postgres", s.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open events database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	eventStore, err := sqlstore.NewEventStore(db)
	if err != nil {
		return nil, err
	}
	if err := eventStore.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize events store: %w", err)
	}
	a.History = eventStore
	return events.Multi(logSink, events.NewStoreSink(eventStore)), nil
}

func (a *App) priceCache(s config.CacheSettings) pricing.Cache {
	switch s.Backend {
	case config.CacheRedis:
		c := pricecache.NewRedisCache(pricecache.RedisConfig{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
			TTL:      s.TTL,
		})
		a.closers = append(a.closers, c.Close)
		return c
	case config.CacheMemory:
		return pricecache.NewMemoryCache(s.TTL)
	default:
		return nil
	}
}

func stringsLoader(ctx context.Context, s *config.Settings) (i18n.Loader, error) {
	switch s.Strings.Source {
	case config.StringsHTTP:
		return i18n.NewHTTPLoader(s.Strings.BaseURL, s.Strings.Version, &http.Client{Timeout: s.Pricing.FetchTimeout}), nil
	case config.StringsS3:
		loader, err := i18n.NewS3Loader(ctx, i18n.S3Config{
			Bucket:   s.Strings.S3.Bucket,
			Prefix:   s.Strings.S3.Prefix,
			Region:   s.Strings.S3.Region,
			Endpoint: s.Strings.S3.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 strings loader: %w", err)
		}
		return loader, nil
	default:
		return i18n.NewEmbeddedLoader(), nil
	}
}

// Package warmup keeps the price cache populated for every configured profile
// so modal requests rarely wait on the offers API.
package warmup

import (
	"context"
	"time"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/de-tools/team-migration/pkg/services/migration"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/rs/zerolog"
)

type RunnerConfig struct {
	// Interval between two refresh rounds. Zero or less runs a single round.
	Interval time.Duration
}

type RunnerProgress struct {
	Profile     string
	Summary     domain.PriceSummary
	RefreshedAt time.Time
}

type Runner struct {
	registry config.Registry
	strings  migration.StringsSource
	prices   pricing.Service
	config   RunnerConfig
	done     chan struct{}
	progress chan RunnerProgress
	now      func() time.Time
}

func NewRunner(
	registry config.Registry,
	strings migration.StringsSource,
	prices pricing.Service,
	cfg RunnerConfig,
) *Runner {
	return &Runner{
		registry: registry,
		strings:  strings,
		prices:   prices,
		config:   cfg,
		done:     make(chan struct{}),
		progress: make(chan RunnerProgress, 100),
		now:      time.Now,
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Progress reports each refreshed profile. Updates are dropped when nobody reads.
func (r *Runner) Progress() <-chan RunnerProgress {
	return r.progress
}

// Run refreshes prices until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)
	defer close(r.progress)

	logger := zerolog.Ctx(ctx)
	if r.config.Interval <= 0 {
		r.refreshAll(ctx)
		logger.Info().Msg("price warmup finished single round")
		return
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		r.refreshAll(ctx)

		select {
		case <-ctx.Done():
			logger.Info().Msg("price warmup stopped")
			return
		case <-ticker.C:
		}
	}
}

func (r *Runner) refreshAll(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	profiles, err := r.registry.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		return
	}

	seen := make(map[string]bool)
	for _, p := range profiles {
		if ctx.Err() != nil {
			return
		}

		cfg, err := r.registry.GetConfig(ctx, p.Name)
		if err != nil {
			logger.Warn().Err(err).Str("profile", p.Name).Msg("failed to read profile")
			continue
		}
		// Profiles sharing environment and locale share a cache entry.
		key := pricing.CacheKey(cfg)
		if seen[key] {
			continue
		}
		seen[key] = true

		tr, err := r.strings.For(ctx, cfg.Language, cfg.Country)
		if err != nil {
			logger.Warn().Err(err).Str("profile", p.Name).Msg("failed to load strings")
			continue
		}

		summary := r.prices.Refresh(ctx, cfg, tr)
		select {
		case r.progress <- RunnerProgress{Profile: p.Name, Summary: summary, RefreshedAt: r.now()}:
		default:
		}
	}
}

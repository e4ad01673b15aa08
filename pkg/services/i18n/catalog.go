package i18n

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Catalog loads bundles on first use and keeps them for the process lifetime.
// Concurrent requests for one locale share a single load; other locales are
// never held up by it.
type Catalog struct {
	loader   Loader
	fallback Loader

	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]*Strings
}

// NewCatalog uses loader for every locale. When fallback is set, a failed
// load is retried against it with the default locale.
func NewCatalog(loader, fallback Loader) *Catalog {
	return &Catalog{
		loader:   loader,
		fallback: fallback,
		loaded:   make(map[string]*Strings),
	}
}

// For returns the strings matching a host language and country.
func (c *Catalog) For(ctx context.Context, language, country string) (*Strings, error) {
	return c.Locale(ctx, ResolveLocale(language, country))
}

func (c *Catalog) Locale(ctx context.Context, locale string) (*Strings, error) {
	c.mu.RLock()
	s, ok := c.loaded[locale]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := c.group.Do(locale, func() (any, error) {
		values, err := c.loader.Load(ctx, locale)
		if err != nil {
			return nil, err
		}
		s := NewStrings(locale, values)
		c.mu.Lock()
		c.loaded[locale] = s
		c.mu.Unlock()
		return s, nil
	})
	if err == nil {
		return v.(*Strings), nil
	}

	if c.fallback == nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	zerolog.Ctx(ctx).Warn().Err(err).Str("locale", locale).Msg("falling back to default translations")
	values, err := c.fallback.Load(ctx, DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback translations: %w", err)
	}
	// Not cached so the primary source is retried next time.
	return NewStrings(DefaultLocale, values), nil
}

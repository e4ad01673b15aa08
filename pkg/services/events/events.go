package events

import (
	"context"
	"time"

	"github.com/de-tools/team-migration/pkg/models/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Diagnostic event tags.
const (
	PriceFetchFailed          = "price-fetch-failed"
	PurchaseModalClosed       = "purchase-modal-closed"
	AdobeIDModalClosed        = "adobe-id-modal-closed"
	DownloadCSVModalClosed    = "download-csv-modal-closed"
	FAQLinkClicked            = "faq-link-clicked"
	SkipDownloadClicked       = "skip-download-clicked"
	DownloadUserListRequested = "download-user-list-requested"
)

// Sink records diagnostic events. Log is fire-and-forget: implementations
// never report failures to the caller.
type Sink interface {
	Log(ctx context.Context, name string)
}

// Store persists events for a StoreSink.
type Store interface {
	Add(ctx context.Context, event store.DiagnosticEvent) error
}

type profileKey struct{}

func WithProfile(ctx context.Context, profile string) context.Context {
	return context.WithValue(ctx, profileKey{}, profile)
}

func ProfileFromContext(ctx context.Context) string {
	profile, _ := ctx.Value(profileKey{}).(string)
	return profile
}

type logSink struct{}

// NewLogSink writes events to the context logger.
func NewLogSink() Sink {
	return logSink{}
}

func (logSink) Log(ctx context.Context, name string) {
	zerolog.Ctx(ctx).Info().
		Str("event", name).
		Str("profile", ProfileFromContext(ctx)).
		Msg("diagnostic event")
}

type storeSink struct {
	store Store
	now   func() time.Time
}

// NewStoreSink persists every event through store.
func NewStoreSink(s Store) Sink {
	return &storeSink{store: s, now: time.Now}
}

func (s *storeSink) Log(ctx context.Context, name string) {
	event := store.DiagnosticEvent{
		ID:         uuid.NewString(),
		Name:       name,
		Profile:    ProfileFromContext(ctx),
		OccurredAt: s.now().UTC(),
	}
	if err := s.store.Add(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("event", name).Msg("failed to persist diagnostic event")
	}
}

type multiSink []Sink

// Multi fans an event out to every sink. A panicking sink does not stop the others.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Log(ctx context.Context, name string) {
	for _, s := range m {
		logSafely(ctx, s, name)
	}
}

func logSafely(ctx context.Context, s Sink, name string) {
	defer func() {
		if r := recover(); r != nil {
			zerolog.Ctx(ctx).Error().Interface("panic", r).Str("event", name).Msg("diagnostic sink panicked")
		}
	}()
	s.Log(ctx, name)
}

type discard struct{}

// Discard drops every event.
var Discard Sink = discard{}

func (discard) Log(context.Context, string) {}

package migration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/team-migration/pkg/adapters"
	"github.com/de-tools/team-migration/pkg/models/api"
	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/models/store"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/de-tools/team-migration/pkg/services/migration"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// EventHistory lists the most recent diagnostic events of a profile.
type EventHistory interface {
	Recent(ctx context.Context, profile string, limit int) ([]store.DiagnosticEvent, error)
}

type Handler struct {
	registry  config.Registry
	strings   migration.StringsSource
	prices    pricing.Service
	migration migration.Service
	history   EventHistory
}

// NewHandler builds the profile handler. history may be nil when no event
// database is configured.
func NewHandler(
	registry config.Registry,
	strings migration.StringsSource,
	prices pricing.Service,
	migrationSvc migration.Service,
	history EventHistory,
) *Handler {
	return &Handler{
		registry:  registry,
		strings:   strings,
		prices:    prices,
		migration: migrationSvc,
		history:   history,
	}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.registry.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	response := make([]api.Profile, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, adapters.MapProfileDomainToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	tr, err := h.strings.For(ctx, cfg.Language, cfg.Country)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load strings")
		http.Error(w, "failed to load strings", http.StatusInternalServerError)
		return
	}

	var summary domain.PriceSummary
	h.prices.GetPrices(ctx, cfg, tr, func(s domain.PriceSummary) {
		summary = s
	})
	writeJSON(w, r, http.StatusOK, adapters.MapPriceSummaryDomainToApi(summary))
}

// GetModal returns the modal named by the kind query parameter, or the one
// the account should see after login when kind is omitted.
func (h *Handler) GetModal(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var (
		view domain.ModalView
		err  error
	)
	if kind := r.URL.Query().Get("kind"); kind != "" {
		view, err = h.migration.Modal(ctx, cfg, domain.ModalKind(kind))
	} else {
		view, err = h.migration.Start(ctx, cfg)
	}
	if errors.Is(err, migration.ErrNoModal) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, r, err, "failed to build modal")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapModalDomainToApi(view))
}

func (h *Handler) BuyNow(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}

	action, err := h.migration.BuyNow(r.Context(), cfg)
	if err != nil {
		writeError(w, r, err, "failed to handle buy now")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapActionDomainToApi(action))
}

func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}
	kind := domain.ModalKind(chi.URLParam(r, "kind"))

	action, err := h.migration.Close(r.Context(), cfg, kind)
	if err != nil {
		writeError(w, r, err, "failed to close modal")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapActionDomainToApi(action))
}

func (h *Handler) TrackEvent(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}

	var event api.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	if err := h.migration.Track(r.Context(), cfg, event.Name); err != nil {
		writeError(w, r, err, "failed to track event")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// ListEvents returns the newest recorded events of a profile. The limit query
// parameter defaults to 50 and is capped at 500.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "event history is not configured", http.StatusNotImplemented)
		return
	}
	cfg, ok := h.hostConfig(w, r)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	events, err := h.history.Recent(r.Context(), cfg.Profile, limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("profile", cfg.Profile).
			Msg("failed to list events")
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}

	response := make([]api.DiagnosticEvent, 0, len(events))
	for _, e := range events {
		response = append(response, adapters.MapDiagnosticEventStoreToApi(e))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) hostConfig(w http.ResponseWriter, r *http.Request) (domain.HostConfig, bool) {
	profile := chi.URLParam(r, "profile")
	cfg, err := h.registry.GetConfig(r.Context(), profile)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().
			Err(err).
			Str("profile", profile).
			Msg("unknown profile")
		http.Error(w, "profile not found", http.StatusNotFound)
		return domain.HostConfig{}, false
	}
	return cfg, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, migration.ErrUnknownModal) || errors.Is(err, migration.ErrUnknownEvent) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

// Routes registers the profile endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/profiles", h.ListProfiles)
	r.Route("/profiles/{profile}", func(r chi.Router) {
		r.Get("/prices", h.GetPrices)
		r.Get("/modal", h.GetModal)
		r.Post("/modal/buy", h.BuyNow)
		r.Post("/modal/{kind}/close", h.CloseModal)
		r.Get("/events", h.ListEvents)
		r.Post("/events", h.TrackEvent)
	})
}

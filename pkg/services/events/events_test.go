package events

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/team-migration/pkg/models/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Add(ctx context.Context, event store.DiagnosticEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type recordingSink struct {
	names []string
}

func (r *recordingSink) Log(_ context.Context, name string) {
	r.names = append(r.names, name)
}

type panickingSink struct{}

func (panickingSink) Log(context.Context, string) {
	panic("boom")
}

func TestLogSink_WritesEventAndProfile(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithProfile(logger.WithContext(context.Background()), "acme")

	NewLogSink().Log(ctx, PriceFetchFailed)

	assert.Contains(t, buf.String(), `"event":"price-fetch-failed"`)
	assert.Contains(t, buf.String(), `"profile":"acme"`)
}

func TestStoreSink_PersistsEvent(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	st := new(mockStore)
	st.On("Add", mock.Anything, mock.MatchedBy(func(e store.DiagnosticEvent) bool {
		return e.Name == FAQLinkClicked && e.Profile == "acme" && e.ID != "" && e.OccurredAt.Equal(fixed)
	})).Return(nil)

	sink := &storeSink{store: st, now: func() time.Time { return fixed }}
	sink.Log(WithProfile(context.Background(), "acme"), FAQLinkClicked)

	st.AssertExpectations(t)
}

func TestStoreSink_SwallowsStoreErrors(t *testing.T) {
	st := new(mockStore)
	st.On("Add", mock.Anything, mock.Anything).Return(errors.New("db down"))

	sink := NewStoreSink(st)
	require.NotPanics(t, func() {
		sink.Log(context.Background(), PriceFetchFailed)
	})
	st.AssertExpectations(t)
}

func TestMulti_ContinuesAfterPanickingSink(t *testing.T) {
	rec := &recordingSink{}
	sink := Multi(panickingSink{}, rec, Discard)

	require.NotPanics(t, func() {
		sink.Log(context.Background(), SkipDownloadClicked)
	})
	assert.Equal(t, []string{SkipDownloadClicked}, rec.names)
}

func TestProfileFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", ProfileFromContext(context.Background()))
}

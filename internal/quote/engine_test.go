package quote

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstateclean/sunstate-backend/pkg/bookings"
	"github.com/sunstateclean/sunstate-backend/pkg/enums"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
)

type stubSubmitter struct {
	mu      sync.Mutex
	calls   int
	payload bookings.QuotePayload
	quoteID string
	err     error

	// entered and release let a test hold a submission open.
	entered chan struct{}
	release chan struct{}
}

func (s *stubSubmitter) SubmitQuote(_ context.Context, payload bookings.QuotePayload) (string, error) {
	s.mu.Lock()
	s.calls++
	s.payload = payload
	s.mu.Unlock()
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return "", s.err
	}
	return s.quoteID, nil
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine(testCatalog(t), opts...)
	require.NoError(t, err)
	return engine
}

func readyEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine := newTestEngine(t, append(opts, WithDraft(validDraft()))...)
	require.Empty(t, engine.Validate())
	return engine
}

func TestNewEngineRequiresCatalog(t *testing.T) {
	_, err := NewEngine(nil)
	require.Error(t, err)
}

func TestSetRoomCountFloorsNegatives(t *testing.T) {
	engine := newTestEngine(t)
	engine.SetCleaningType("general")
	engine.SetRoomCount("bedroom", -3)

	assert.Equal(t, 0, engine.Draft().Rooms["bedroom"])
	assert.Equal(t, 0, engine.Breakdown().RoomsTotal)
}

func TestToggleExtraIsItsOwnInverse(t *testing.T) {
	engine := newTestEngine(t)
	engine.SetCleaningType("general")

	engine.ToggleExtra("oven_clean")
	assert.Equal(t, 35, engine.Breakdown().ExtrasTotal)

	engine.ToggleExtra("oven_clean")
	assert.Empty(t, engine.Draft().Extras)
	assert.Equal(t, 0, engine.Breakdown().ExtrasTotal)
}

func TestToggleExtraUnknownIDIsNoOp(t *testing.T) {
	engine := newTestEngine(t)
	before := engine.Draft()

	engine.ToggleExtra("jet_wash")

	assert.Equal(t, before, engine.Draft())
}

func TestSetUrgencyUnknownLeavesLevelUnchanged(t *testing.T) {
	engine := newTestEngine(t)
	engine.SetUrgency("same_day")
	engine.SetUrgency("yesterday")

	assert.Equal(t, enums.UrgencySameDay, engine.Draft().Urgency)
}

func TestSetCleaningTypeUnknownPricesAtZero(t *testing.T) {
	engine := newTestEngine(t)
	engine.SetCleaningType("chimney_sweep")
	engine.SetRoomCount("bedroom", 2)

	bd := engine.Breakdown()
	assert.Equal(t, "chimney_sweep", engine.Draft().CleaningType)
	assert.Equal(t, 0, bd.BasePrice)
	assert.Equal(t, 50, bd.Subtotal)
}

func TestSubmitInvalidDraftNeverCallsSubmitter(t *testing.T) {
	submitter := &stubSubmitter{quoteID: "q-1"}
	engine := newTestEngine(t, WithSubmitter(submitter))

	_, err := engine.Submit(context.Background())

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Zero(t, submitter.callCount())
	assert.Contains(t, engine.FieldErrors(), FieldCleaningType)
}

func TestSubmitSuccess(t *testing.T) {
	submitter := &stubSubmitter{quoteID: "q-42"}
	fixed := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	engine := readyEngine(t, WithSubmitter(submitter), WithNow(func() time.Time { return fixed }))
	engine.SetUrgency("same_day")

	result, err := engine.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "q-42", result.QuoteID)
	assert.Equal(t, fixed, result.SubmittedAt)
	assert.True(t, result.Breakdown.DepositRequired)
	assert.Equal(t, 1, submitter.callCount())
	assert.Equal(t, fixed.Format(time.RFC3339), submitter.payload.SubmittedAt)
	assert.Nil(t, engine.FieldErrors())
}

func TestSubmitTransportFailurePreservesDraft(t *testing.T) {
	submitter := &stubSubmitter{err: pkgerrors.New(pkgerrors.CodeDependency, "bookings api unreachable")}
	engine := readyEngine(t, WithSubmitter(submitter))
	before := engine.Draft()

	_, err := engine.Submit(context.Background())

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
	assert.Equal(t, before, engine.Draft())

	// The same draft can be retried once the dependency recovers.
	submitter.err = nil
	submitter.quoteID = "q-2"
	result, err := engine.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "q-2", result.QuoteID)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	submitter := &stubSubmitter{
		quoteID: "q-1",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	engine := readyEngine(t, WithSubmitter(submitter))

	done := make(chan error, 1)
	go func() {
		_, err := engine.Submit(context.Background())
		done <- err
	}()

	<-submitter.entered

	_, err := engine.Submit(context.Background())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	close(submitter.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, submitter.callCount())
}

func TestResetClearsDraftAndErrors(t *testing.T) {
	engine := newTestEngine(t, WithSubmitter(&stubSubmitter{}))
	engine.SetCleaningType("general")
	engine.SetRoomCount("bedroom", 2)
	_, _ = engine.Submit(context.Background())
	require.NotEmpty(t, engine.FieldErrors())

	engine.Reset()

	assert.Equal(t, NewDraft(), engine.Draft())
	assert.Equal(t, Breakdown{}, engine.Breakdown())
	assert.Nil(t, engine.FieldErrors())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewMemoryDraftStore()
	engine := newTestEngine(t)
	engine.SetCleaningType("general")
	engine.SetRoomCount("bedroom", 2)
	engine.ToggleExtra("oven_clean")
	engine.SetUrgency("urgent")
	require.NoError(t, engine.Save(context.Background(), store, "d-1"))

	restored := newTestEngine(t)
	found, err := restored.Load(context.Background(), store, "d-1")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, engine.Draft(), restored.Draft())
	assert.Equal(t, engine.Breakdown(), restored.Breakdown())
}

func TestLoadMissingDraftLeavesEngineUnchanged(t *testing.T) {
	store := NewMemoryDraftStore()
	engine := newTestEngine(t)
	engine.SetCleaningType("general")
	before := engine.Draft()

	found, err := engine.Load(context.Background(), store, "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, engine.Draft())
}

func TestLoadDropsUnresolvableExtras(t *testing.T) {
	store := NewMemoryDraftStore()
	d := validDraft()
	d.Extras = []ExtraSelection{
		{ID: "oven_clean", Price: 35},
		{ID: "pool_scrub", Price: 90},
	}
	require.NoError(t, store.Save(context.Background(), "d-1", d))

	engine := newTestEngine(t)
	found, err := engine.Load(context.Background(), store, "d-1")
	require.NoError(t, err)
	require.True(t, found)

	extras := engine.Draft().Extras
	require.Len(t, extras, 1)
	assert.Equal(t, "oven_clean", extras[0].ID)
	assert.Equal(t, 35, engine.Breakdown().ExtrasTotal)
}

func TestLoadIgnoresUnknownStoredFields(t *testing.T) {
	store := NewMemoryDraftStore()
	store.SaveRaw("d-1", []byte(`{
		"cleaning_type": "general",
		"rooms": {"bedroom": 2},
		"urgency": "standard",
		"loyalty_tier": "gold",
		"legacy_discount": 15
	}`))

	engine := newTestEngine(t)
	found, err := engine.Load(context.Background(), store, "d-1")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "general", engine.Draft().CleaningType)
	assert.Equal(t, 170, engine.Breakdown().Subtotal)
}

func TestWithDraftSanitizesSeed(t *testing.T) {
	d := Draft{
		CleaningType: "general",
		Rooms:        map[string]int{"bedroom": -2},
		Extras:       []ExtraSelection{{ID: "pool_scrub", Price: 90}},
	}

	engine, err := NewEngine(testCatalog(t), WithDraft(d))
	require.NoError(t, err)

	assert.Equal(t, 0, engine.Draft().Rooms["bedroom"])
	assert.Empty(t, engine.Draft().Extras)
}

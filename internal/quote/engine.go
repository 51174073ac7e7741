package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	"github.com/sunstateclean/sunstate-backend/pkg/bookings"
	"github.com/sunstateclean/sunstate-backend/pkg/enums"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
)

// Submitter hands a finalized quote to the external bookings API.
type Submitter interface {
	SubmitQuote(ctx context.Context, payload bookings.QuotePayload) (string, error)
}

// SubmitResult is the acknowledgement for an accepted quote.
type SubmitResult struct {
	QuoteID     string
	Breakdown   Breakdown
	SubmittedAt time.Time
}

// Engine owns one quote draft, keeps the price breakdown consistent
// with it, validates on demand, and submits through the bookings API.
// Every mutating operation is a single atomic state transition; Submit
// is the only operation that performs I/O.
type Engine struct {
	mu          sync.Mutex
	catalog     *catalog.Catalog
	submitter   Submitter
	draft       Draft
	breakdown   Breakdown
	fieldErrors map[string]string
	submitting  bool
	now         func() time.Time
}

// EngineOption configures an engine at construction time.
type EngineOption func(*Engine)

// WithDraft seeds the engine with a rehydrated draft. Extras whose ids
// no longer resolve in the catalog are dropped so stale snapshots never
// reach the breakdown.
func WithDraft(d Draft) EngineOption {
	return func(e *Engine) {
		e.draft = d.Clone()
	}
}

// WithSubmitter wires the bookings collaborator used by Submit.
func WithSubmitter(s Submitter) EngineOption {
	return func(e *Engine) {
		e.submitter = s
	}
}

// WithNow overrides the submission timestamp source.
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds an engine around an injected read-only catalog.
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	e := &Engine{
		catalog: cat,
		draft:   NewDraft(),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.sanitizeDraft()
	e.recompute()
	return e, nil
}

// sanitizeDraft normalizes a rehydrated draft: nil maps become empty
// and extras with unresolvable ids are dropped.
func (e *Engine) sanitizeDraft() {
	if e.draft.Rooms == nil {
		e.draft.Rooms = map[string]int{}
	}
	for category, count := range e.draft.Rooms {
		if count < 0 {
			e.draft.Rooms[category] = 0
		}
	}
	kept := e.draft.Extras[:0]
	for _, extra := range e.draft.Extras {
		if _, ok := e.catalog.ExtraByID(extra.ID); ok {
			kept = append(kept, extra)
		}
	}
	e.draft.Extras = kept
}

func (e *Engine) recompute() {
	e.breakdown = ComputeBreakdown(e.draft, e.catalog)
}

func (e *Engine) clearFieldError(field string) {
	delete(e.fieldErrors, field)
}

// SetCleaningType records the selected service. Unknown ids are still
// recorded and price at zero; validation rejects them at submit time.
func (e *Engine) SetCleaningType(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.CleaningType = id
	e.clearFieldError(FieldCleaningType)
	e.recompute()
}

// SetRoomCount stores a room count, silently flooring negatives to zero.
// Unknown categories are kept but contribute nothing to the total.
func (e *Engine) SetRoomCount(category string, count int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if count < 0 {
		count = 0
	}
	e.draft.Rooms[category] = count
	e.clearFieldError(FieldRooms)
	e.recompute()
}

// ToggleExtra adds the add-on with a price snapshot taken now, or
// removes it if already selected. Ids that do not resolve in the
// catalog are a no-op: a stale reference should never block the quote.
func (e *Engine) ToggleExtra(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft.hasExtra(id) {
		kept := e.draft.Extras[:0]
		for _, extra := range e.draft.Extras {
			if extra.ID != id {
				kept = append(kept, extra)
			}
		}
		e.draft.Extras = kept
		e.recompute()
		return
	}
	extra, ok := e.catalog.ExtraByID(id)
	if !ok {
		return
	}
	e.draft.Extras = append(e.draft.Extras, ExtraSelection{ID: extra.ID, Price: extra.Price})
	e.recompute()
}

// SetUrgency applies a recognized urgency level; unrecognized input
// leaves the current level unchanged.
func (e *Engine) SetUrgency(level string) {
	parsed, err := enums.ParseUrgency(level)
	if err != nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Urgency = parsed
	e.clearFieldError(FieldUrgency)
	e.recompute()
}

// SetCustomerField updates one customer contact field and clears its
// validation error.
func (e *Engine) SetCustomerField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch field {
	case FieldName:
		e.draft.Customer.Name = value
	case FieldEmail:
		e.draft.Customer.Email = value
	case FieldPhone:
		e.draft.Customer.Phone = value
	case FieldNDISNumber:
		e.draft.Customer.NDISNumber = value
	default:
		return fmt.Errorf("unknown customer field %q", field)
	}
	e.clearFieldError(field)
	return nil
}

// SetNDISParticipant flips the NDIS flag; clearing it also clears any
// pending NDIS-number error.
func (e *Engine) SetNDISParticipant(participant bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Customer.IsNDISParticipant = participant
	e.clearFieldError(FieldNDISNumber)
}

// SetLocationField updates one location field and clears its error.
func (e *Engine) SetLocationField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch field {
	case FieldSuburb:
		e.draft.Location.Suburb = value
	case FieldPostcode:
		e.draft.Location.Postcode = value
	default:
		return fmt.Errorf("unknown location field %q", field)
	}
	e.clearFieldError(field)
	return nil
}

// SetSpecialRequests stores free-form notes from the visitor.
func (e *Engine) SetSpecialRequests(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.SpecialRequests = value
}

// SetPreferredDate stores the requested service date.
func (e *Engine) SetPreferredDate(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.PreferredDate = value
}

// SetPreferredTime stores the requested time window.
func (e *Engine) SetPreferredTime(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.PreferredTime = value
}

// Draft returns a copy of the current draft.
func (e *Engine) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Breakdown returns the breakdown derived from the current draft.
func (e *Engine) Breakdown() Breakdown {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.breakdown
}

// FieldErrors returns a copy of the stored per-field error messages.
func (e *Engine) FieldErrors() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.fieldErrors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.fieldErrors))
	for field, msg := range e.fieldErrors {
		out[field] = msg
	}
	return out
}

// Validate checks the current draft without mutating it.
func (e *Engine) Validate() map[string]string {
	e.mu.Lock()
	draft := e.draft.Clone()
	e.mu.Unlock()
	return Validate(draft, e.catalog)
}

// Submit validates the draft and forwards it to the bookings API. An
// invalid draft fails before any network call. A transport failure
// leaves the draft untouched so the caller can retry. While one
// submission is outstanding, further Submit calls are rejected.
func (e *Engine) Submit(ctx context.Context) (*SubmitResult, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submission already in progress")
	}

	errs := Validate(e.draft, e.catalog)
	if len(errs) > 0 {
		e.fieldErrors = errs
		e.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote is not ready to submit").WithDetails(errs)
	}

	if e.submitter == nil {
		e.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "submitter not configured")
	}

	e.submitting = true
	draft := e.draft.Clone()
	breakdown := e.breakdown
	e.mu.Unlock()

	submittedAt := e.now().UTC()
	quoteID, err := e.submitter.SubmitQuote(ctx, bookings.QuotePayload{
		Draft:       draft,
		Breakdown:   breakdown,
		SubmittedAt: submittedAt.Format(time.RFC3339),
	})

	e.mu.Lock()
	e.submitting = false
	if err == nil {
		e.fieldErrors = nil
	}
	e.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &SubmitResult{QuoteID: quoteID, Breakdown: breakdown, SubmittedAt: submittedAt}, nil
}

// Reset replaces the draft with an empty one and clears all derived
// state. The bookings API is never contacted.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = NewDraft()
	e.fieldErrors = nil
	e.recompute()
}

// Save serializes the current draft to the store under the given key.
func (e *Engine) Save(ctx context.Context, store DraftStore, draftID string) error {
	if store == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "draft store not configured")
	}
	return store.Save(ctx, draftID, e.Draft())
}

// Load rehydrates the draft from the store. A missing draft leaves the
// engine unchanged and reports found=false. Stored extras that no
// longer resolve in the catalog are dropped.
func (e *Engine) Load(ctx context.Context, store DraftStore, draftID string) (bool, error) {
	if store == nil {
		return false, pkgerrors.New(pkgerrors.CodeInternal, "draft store not configured")
	}
	stored, err := store.Load(ctx, draftID)
	if err != nil {
		return false, err
	}
	if stored == nil {
		return false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = stored.Clone()
	e.fieldErrors = nil
	e.sanitizeDraft()
	e.recompute()
	return true, nil
}

package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/metrics"
)

const defaultSubmitLockTTL = 30 * time.Second

// SubmitLocker serializes submissions per draft across API instances.
type SubmitLocker interface {
	AcquireSubmitLock(ctx context.Context, draftID string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, draftID string) error
}

// Service exposes draft lifecycle operations to the HTTP layer.
type Service interface {
	CreateDraft(ctx context.Context) (*DraftView, error)
	GetDraft(ctx context.Context, draftID string) (*DraftView, error)
	UpdateDraft(ctx context.Context, draftID string, input UpdateInput) (*DraftView, error)
	SubmitDraft(ctx context.Context, draftID string) (*SubmitView, error)
	DiscardDraft(ctx context.Context, draftID string) error
}

// DraftView is the API-facing snapshot of a draft and its breakdown.
type DraftView struct {
	ID          string            `json:"id"`
	Draft       Draft             `json:"draft"`
	Breakdown   Breakdown         `json:"breakdown"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// SubmitView is the API-facing acknowledgement of an accepted quote.
type SubmitView struct {
	QuoteID         string    `json:"quote_id"`
	Total           int       `json:"total"`
	DepositRequired bool      `json:"deposit_required"`
	DepositAmount   int       `json:"deposit_amount"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// UpdateInput applies partial updates; nil fields are left untouched.
// Extras is the desired id set and is reconciled against the current
// selection via toggles so existing price snapshots survive.
type UpdateInput struct {
	CleaningType      *string
	Rooms             map[string]int
	Extras            *[]string
	Urgency           *string
	Suburb            *string
	Postcode          *string
	Name              *string
	Email             *string
	Phone             *string
	IsNDISParticipant *bool
	NDISNumber        *string
	SpecialRequests   *string
	PreferredDate     *string
	PreferredTime     *string
}

// ServiceParams bundles the collaborators for NewService.
type ServiceParams struct {
	Catalog   *catalog.Catalog
	Store     DraftStore
	Submitter Submitter
	Locks     SubmitLocker
	Metrics   *metrics.QuoteMetrics
	LockTTL   time.Duration
}

type service struct {
	catalog   *catalog.Catalog
	store     DraftStore
	submitter Submitter
	locks     SubmitLocker
	metrics   *metrics.QuoteMetrics
	lockTTL   time.Duration
}

// NewService builds the quote service backed by the provided stack.
// Locks and Metrics are optional; catalog, store, and submitter are not.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("draft store required")
	}
	if params.Submitter == nil {
		return nil, fmt.Errorf("submitter required")
	}
	lockTTL := params.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultSubmitLockTTL
	}
	return &service{
		catalog:   params.Catalog,
		store:     params.Store,
		submitter: params.Submitter,
		locks:     params.Locks,
		metrics:   params.Metrics,
		lockTTL:   lockTTL,
	}, nil
}

func (s *service) CreateDraft(ctx context.Context) (*DraftView, error) {
	engine, err := NewEngine(s.catalog)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create engine")
	}

	draftID := uuid.NewString()
	if err := engine.Save(ctx, s.store, draftID); err != nil {
		return nil, err
	}
	return s.view(draftID, engine), nil
}

func (s *service) GetDraft(ctx context.Context, draftID string) (*DraftView, error) {
	engine, err := s.loadEngine(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return s.view(draftID, engine), nil
}

func (s *service) UpdateDraft(ctx context.Context, draftID string, input UpdateInput) (*DraftView, error) {
	engine, err := s.loadEngine(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(engine, input); err != nil {
		return nil, err
	}

	if err := engine.Save(ctx, s.store, draftID); err != nil {
		return nil, err
	}
	return s.view(draftID, engine), nil
}

func (s *service) SubmitDraft(ctx context.Context, draftID string) (*SubmitView, error) {
	engine, err := s.loadEngine(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if s.locks != nil {
		acquired, err := s.locks.AcquireSubmitLock(ctx, draftID, s.lockTTL)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire submit lock")
		}
		if !acquired {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submission already in progress")
		}
		defer func() { _ = s.locks.ReleaseSubmitLock(ctx, draftID) }()
	}

	start := time.Now()
	result, err := engine.Submit(ctx)
	if err != nil {
		s.observeSubmission(err, start)
		return nil, err
	}
	s.metrics.ObserveSubmission("success", time.Since(start))

	// The quote was accepted upstream; a failed cleanup only means the
	// draft lingers until its TTL expires.
	_ = s.store.Delete(ctx, draftID)

	return &SubmitView{
		QuoteID:         result.QuoteID,
		Total:           result.Breakdown.Total,
		DepositRequired: result.Breakdown.DepositRequired,
		DepositAmount:   result.Breakdown.DepositAmount,
		SubmittedAt:     result.SubmittedAt,
	}, nil
}

func (s *service) DiscardDraft(ctx context.Context, draftID string) error {
	return s.store.Delete(ctx, draftID)
}

func (s *service) loadEngine(ctx context.Context, draftID string) (*Engine, error) {
	stored, err := s.store.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "draft not found")
	}
	engine, err := NewEngine(s.catalog, WithDraft(*stored), WithSubmitter(s.submitter))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create engine")
	}
	return engine, nil
}

func (s *service) view(draftID string, engine *Engine) *DraftView {
	return &DraftView{
		ID:          draftID,
		Draft:       engine.Draft(),
		Breakdown:   engine.Breakdown(),
		FieldErrors: engine.FieldErrors(),
	}
}

func (s *service) observeSubmission(err error, start time.Time) {
	outcome := "transport_failed"
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation:
			outcome = "validation_failed"
		case pkgerrors.CodeStateConflict:
			outcome = "rejected_in_flight"
		}
	}
	s.metrics.ObserveSubmission(outcome, time.Since(start))
}

func applyUpdate(engine *Engine, input UpdateInput) error {
	if input.CleaningType != nil {
		engine.SetCleaningType(*input.CleaningType)
	}
	for category, count := range input.Rooms {
		engine.SetRoomCount(category, count)
	}
	if input.Extras != nil {
		reconcileExtras(engine, *input.Extras)
	}
	if input.Urgency != nil {
		engine.SetUrgency(*input.Urgency)
	}
	if input.Suburb != nil {
		if err := engine.SetLocationField(FieldSuburb, *input.Suburb); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set location field")
		}
	}
	if input.Postcode != nil {
		if err := engine.SetLocationField(FieldPostcode, *input.Postcode); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set location field")
		}
	}
	for field, value := range map[string]*string{
		FieldName:       input.Name,
		FieldEmail:      input.Email,
		FieldPhone:      input.Phone,
		FieldNDISNumber: input.NDISNumber,
	} {
		if value == nil {
			continue
		}
		if err := engine.SetCustomerField(field, *value); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set customer field")
		}
	}
	if input.IsNDISParticipant != nil {
		engine.SetNDISParticipant(*input.IsNDISParticipant)
	}
	if input.SpecialRequests != nil {
		engine.SetSpecialRequests(*input.SpecialRequests)
	}
	if input.PreferredDate != nil {
		engine.SetPreferredDate(*input.PreferredDate)
	}
	if input.PreferredTime != nil {
		engine.SetPreferredTime(*input.PreferredTime)
	}
	return nil
}

// reconcileExtras drives the current selection to the desired id set
// through toggles, preserving snapshots for ids already selected.
func reconcileExtras(engine *Engine, desired []string) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}

	for _, extra := range engine.Draft().Extras {
		if _, keep := want[extra.ID]; !keep {
			engine.ToggleExtra(extra.ID)
		}
	}
	for _, id := range desired {
		if !engine.Draft().hasExtra(id) {
			engine.ToggleExtra(id)
		}
	}
}

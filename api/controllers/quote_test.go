package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	quotesvc "github.com/sunstateclean/sunstate-backend/internal/quote"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
)

type stubQuoteService struct {
	create  func(ctx context.Context) (*quotesvc.DraftView, error)
	get     func(ctx context.Context, draftID string) (*quotesvc.DraftView, error)
	update  func(ctx context.Context, draftID string, input quotesvc.UpdateInput) (*quotesvc.DraftView, error)
	submit  func(ctx context.Context, draftID string) (*quotesvc.SubmitView, error)
	discard func(ctx context.Context, draftID string) error
}

func (s *stubQuoteService) CreateDraft(ctx context.Context) (*quotesvc.DraftView, error) {
	if s.create != nil {
		return s.create(ctx)
	}
	return &quotesvc.DraftView{ID: "d-1"}, nil
}

func (s *stubQuoteService) GetDraft(ctx context.Context, draftID string) (*quotesvc.DraftView, error) {
	if s.get != nil {
		return s.get(ctx, draftID)
	}
	return &quotesvc.DraftView{ID: draftID}, nil
}

func (s *stubQuoteService) UpdateDraft(ctx context.Context, draftID string, input quotesvc.UpdateInput) (*quotesvc.DraftView, error) {
	if s.update != nil {
		return s.update(ctx, draftID, input)
	}
	return &quotesvc.DraftView{ID: draftID}, nil
}

func (s *stubQuoteService) SubmitDraft(ctx context.Context, draftID string) (*quotesvc.SubmitView, error) {
	if s.submit != nil {
		return s.submit(ctx, draftID)
	}
	return &quotesvc.SubmitView{QuoteID: "q-1"}, nil
}

func (s *stubQuoteService) DiscardDraft(ctx context.Context, draftID string) error {
	if s.discard != nil {
		return s.discard(ctx, draftID)
	}
	return nil
}

func draftRouter(svc quotesvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/drafts", DraftCreate(svc, nil))
	r.Get("/drafts/{draftId}", DraftFetch(svc, nil))
	r.Patch("/drafts/{draftId}", DraftUpdate(svc, nil))
	r.Delete("/drafts/{draftId}", DraftDiscard(svc, nil))
	r.Post("/drafts/{draftId}/submit", DraftSubmit(svc, nil))
	return r
}

func TestDraftCreateReturns201(t *testing.T) {
	router := draftRouter(&stubQuoteService{})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/drafts", nil))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestDraftFetchPassesID(t *testing.T) {
	var got string
	router := draftRouter(&stubQuoteService{
		get: func(_ context.Context, draftID string) (*quotesvc.DraftView, error) {
			got = draftID
			return &quotesvc.DraftView{ID: draftID}, nil
		},
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/drafts/d-42", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got != "d-42" {
		t.Fatalf("expected draft id d-42 got %q", got)
	}
}

func TestDraftFetchNotFound(t *testing.T) {
	router := draftRouter(&stubQuoteService{
		get: func(context.Context, string) (*quotesvc.DraftView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "draft not found")
		},
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/drafts/missing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestDraftUpdateDecodesPartialBody(t *testing.T) {
	var got quotesvc.UpdateInput
	router := draftRouter(&stubQuoteService{
		update: func(_ context.Context, draftID string, input quotesvc.UpdateInput) (*quotesvc.DraftView, error) {
			got = input
			return &quotesvc.DraftView{ID: draftID}, nil
		},
	})

	body := `{"cleaning_type":"deep","rooms":{"bathroom":1},"extras":["oven_clean"]}`
	req := httptest.NewRequest(http.MethodPatch, "/drafts/d-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if got.CleaningType == nil || *got.CleaningType != "deep" {
		t.Fatalf("expected cleaning type deep got %v", got.CleaningType)
	}
	if got.Rooms["bathroom"] != 1 {
		t.Fatalf("expected bathroom count 1 got %v", got.Rooms)
	}
	if got.Extras == nil || len(*got.Extras) != 1 {
		t.Fatalf("expected one extra got %v", got.Extras)
	}
	if got.Urgency != nil {
		t.Fatal("expected urgency untouched")
	}
}

func TestDraftUpdateRejectsUnknownFields(t *testing.T) {
	router := draftRouter(&stubQuoteService{})
	req := httptest.NewRequest(http.MethodPatch, "/drafts/d-1", strings.NewReader(`{"discount_code":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field got %d", resp.Code)
	}
}

func TestDraftSubmitConflict(t *testing.T) {
	router := draftRouter(&stubQuoteService{
		submit: func(context.Context, string) (*quotesvc.SubmitView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submission already in progress")
		},
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/drafts/d-1/submit", nil))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestDraftSubmitDependencyFailure(t *testing.T) {
	router := draftRouter(&stubQuoteService{
		submit: func(context.Context, string) (*quotesvc.SubmitView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeDependency, "bookings api unreachable")
		},
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/drafts/d-1/submit", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestDraftHandlersRejectNilService(t *testing.T) {
	router := draftRouter(nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/drafts", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

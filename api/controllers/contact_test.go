package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	contactsvc "github.com/sunstateclean/sunstate-backend/internal/contact"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
)

type stubContactService struct {
	submit func(ctx context.Context, input contactsvc.Input) (*contactsvc.LeadView, error)
}

func (s *stubContactService) SubmitLead(ctx context.Context, input contactsvc.Input) (*contactsvc.LeadView, error) {
	if s.submit != nil {
		return s.submit(ctx, input)
	}
	return &contactsvc.LeadView{LeadID: "l-1"}, nil
}

func TestContactAccepted(t *testing.T) {
	var got contactsvc.Input
	handler := Contact(&stubContactService{
		submit: func(_ context.Context, input contactsvc.Input) (*contactsvc.LeadView, error) {
			got = input
			return &contactsvc.LeadView{LeadID: "l-1"}, nil
		},
	}, nil)

	body := `{"name":"Daniel","email":"daniel@example.com","message":"Need a quote."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202 got %d: %s", resp.Code, resp.Body.String())
	}
	if got.Email != "daniel@example.com" {
		t.Fatalf("expected email forwarded got %q", got.Email)
	}
}

func TestContactRejectsMissingFields(t *testing.T) {
	handler := Contact(&stubContactService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Daniel"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestContactDependencyFailure(t *testing.T) {
	handler := Contact(&stubContactService{
		submit: func(context.Context, contactsvc.Input) (*contactsvc.LeadView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeDependency, "bookings api unreachable")
		},
	}, nil)

	body := `{"name":"Daniel","email":"daniel@example.com","message":"Need a quote."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

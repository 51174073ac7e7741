// Package contact forwards general enquiries from the contact form to
// the bookings platform as leads.
package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sunstateclean/sunstate-backend/pkg/bookings"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/metrics"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^(?:\+?61|0)[2-478]\d{8}$`)
)

// LeadSender hands a lead to the external bookings API.
type LeadSender interface {
	SubmitLead(ctx context.Context, payload bookings.LeadPayload) (string, error)
}

// Input is one contact-form submission.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// LeadView acknowledges an accepted lead.
type LeadView struct {
	LeadID      string    `json:"lead_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Service accepts contact-form submissions.
type Service interface {
	SubmitLead(ctx context.Context, input Input) (*LeadView, error)
}

// ServiceParams bundles the collaborators for NewService.
type ServiceParams struct {
	Sender  LeadSender
	Metrics *metrics.QuoteMetrics
	Now     func() time.Time
}

type service struct {
	sender  LeadSender
	metrics *metrics.QuoteMetrics
	now     func() time.Time
}

// NewService builds the contact service. Metrics are optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Sender == nil {
		return nil, fmt.Errorf("lead sender required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{sender: params.Sender, metrics: params.Metrics, now: now}, nil
}

func (s *service) SubmitLead(ctx context.Context, input Input) (*LeadView, error) {
	if errs := validate(input); len(errs) > 0 {
		s.metrics.IncLeadForward("validation_failed")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "enquiry is incomplete").WithDetails(errs)
	}

	submittedAt := s.now().UTC()
	leadID, err := s.sender.SubmitLead(ctx, bookings.LeadPayload{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       normalizePhone(input.Phone),
		Service:     strings.TrimSpace(input.Service),
		Message:     strings.TrimSpace(input.Message),
		SubmittedAt: submittedAt.Format(time.RFC3339),
	})
	if err != nil {
		s.metrics.IncLeadForward("transport_failed")
		return nil, err
	}

	s.metrics.IncLeadForward("success")
	return &LeadView{LeadID: leadID, SubmittedAt: submittedAt}, nil
}

func validate(input Input) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}

	switch email := strings.TrimSpace(input.Email); {
	case email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "must be a valid email"
	}

	if phone := normalizePhone(input.Phone); phone != "" && !phonePattern.MatchString(phone) {
		errs["phone"] = "must be a valid Australian phone number"
	}

	if strings.TrimSpace(input.Message) == "" {
		errs["message"] = "message is required"
	}

	return errs
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case ' ', '-', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

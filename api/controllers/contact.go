package controllers

import (
	"net/http"

	"github.com/sunstateclean/sunstate-backend/api/responses"
	"github.com/sunstateclean/sunstate-backend/api/validators"
	contactsvc "github.com/sunstateclean/sunstate-backend/internal/contact"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/logger"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Service string `json:"service" validate:"max=100"`
	Message string `json:"message" validate:"required,max=4000"`
}

// Contact forwards a general enquiry to the bookings platform.
func Contact(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SubmitLead(r.Context(), contactsvc.Input{
			Name:    payload.Name,
			Email:   payload.Email,
			Phone:   payload.Phone,
			Service: payload.Service,
			Message: payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, view)
	}
}

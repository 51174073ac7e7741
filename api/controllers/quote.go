package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sunstateclean/sunstate-backend/api/responses"
	"github.com/sunstateclean/sunstate-backend/api/validators"
	quotesvc "github.com/sunstateclean/sunstate-backend/internal/quote"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/logger"
)

type draftUpdateRequest struct {
	CleaningType      *string        `json:"cleaning_type"`
	Rooms             map[string]int `json:"rooms"`
	Extras            *[]string      `json:"extras"`
	Urgency           *string        `json:"urgency"`
	Suburb            *string        `json:"suburb"`
	Postcode          *string        `json:"postcode"`
	Name              *string        `json:"name"`
	Email             *string        `json:"email"`
	Phone             *string        `json:"phone"`
	IsNDISParticipant *bool          `json:"is_ndis_participant"`
	NDISNumber        *string        `json:"ndis_number"`
	SpecialRequests   *string        `json:"special_requests"`
	PreferredDate     *string        `json:"preferred_date"`
	PreferredTime     *string        `json:"preferred_time"`
}

func (req draftUpdateRequest) toInput() quotesvc.UpdateInput {
	return quotesvc.UpdateInput{
		CleaningType:      req.CleaningType,
		Rooms:             req.Rooms,
		Extras:            req.Extras,
		Urgency:           req.Urgency,
		Suburb:            req.Suburb,
		Postcode:          req.Postcode,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		IsNDISParticipant: req.IsNDISParticipant,
		NDISNumber:        req.NDISNumber,
		SpecialRequests:   req.SpecialRequests,
		PreferredDate:     req.PreferredDate,
		PreferredTime:     req.PreferredTime,
	}
}

// DraftCreate starts an empty draft and hands its id to the client.
func DraftCreate(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		view, err := svc.CreateDraft(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// DraftFetch returns the draft and its current breakdown.
func DraftFetch(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		draftID, err := draftIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetDraft(r.Context(), draftID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// DraftUpdate applies a partial update and returns the recomputed view.
func DraftUpdate(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		draftID, err := draftIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload draftUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateDraft(r.Context(), draftID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// DraftSubmit validates the draft and forwards it to the bookings API.
func DraftSubmit(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		draftID, err := draftIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithDraftID(ctx, draftID)
		}

		result, err := svc.SubmitDraft(ctx, draftID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// DraftDiscard deletes the draft outright.
func DraftDiscard(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		draftID, err := draftIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DiscardDraft(r.Context(), draftID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "discarded"})
	}
}

func draftIDFromRequest(r *http.Request) (string, error) {
	draftID := chi.URLParam(r, "draftId")
	if draftID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "draft id is required")
	}
	return draftID, nil
}

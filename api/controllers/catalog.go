package controllers

import (
	"net/http"

	"github.com/sunstateclean/sunstate-backend/api/responses"
	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/logger"
)

type catalogResponse struct {
	Services  []catalog.Service `json:"services"`
	RoomRates map[string]int    `json:"room_rates"`
	Extras    []catalog.Extra   `json:"extras"`
}

// Catalog exposes the service list, per-room rates, and add-ons the
// quote form renders.
func Catalog(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		rates := map[string]int{}
		for category, rate := range cat.RoomRates() {
			rates[category.String()] = rate
		}

		responses.WriteSuccess(w, catalogResponse{
			Services:  cat.Services(),
			RoomRates: rates,
			Extras:    cat.Extras(),
		})
	}
}

package quote

import (
	"github.com/shopspring/decimal"

	"github.com/sunstateclean/sunstate-backend/internal/catalog"
)

// GST is included in quoted totals, never added on top; the field on the
// breakdown is the component shown to the customer.
var (
	gstRate     = decimal.RequireFromString("0.10")
	depositRate = decimal.RequireFromString("0.30")
)

// Breakdown is the price derivation for a draft. It is recomputed from
// the draft after every mutation and never mutated independently.
type Breakdown struct {
	BasePrice         int             `json:"base_price"`
	RoomsTotal        int             `json:"rooms_total"`
	ExtrasTotal       int             `json:"extras_total"`
	Subtotal          int             `json:"subtotal"`
	UrgencyMultiplier decimal.Decimal `json:"urgency_multiplier"`
	Total             int             `json:"total"`
	GST               int             `json:"gst"`
	DepositRequired   bool            `json:"deposit_required"`
	DepositAmount     int             `json:"deposit_amount"`
}

// ComputeBreakdown derives the price breakdown for a draft against a
// catalog. With no cleaning type selected every derived field is zero.
// An unknown cleaning type prices at zero but still accrues room and
// extra charges; validation, not pricing, rejects unknown ids.
func ComputeBreakdown(d Draft, cat *catalog.Catalog) Breakdown {
	if d.CleaningType == "" {
		return Breakdown{}
	}

	var bd Breakdown
	if svc, ok := cat.ServiceByID(d.CleaningType); ok {
		bd.BasePrice = svc.BasePrice
	}

	for category, count := range d.Rooms {
		if count <= 0 {
			continue
		}
		if rate, ok := cat.RoomRate(category); ok {
			bd.RoomsTotal += count * rate
		}
	}

	for _, extra := range d.Extras {
		bd.ExtrasTotal += extra.Price
	}

	bd.Subtotal = bd.BasePrice + bd.RoomsTotal + bd.ExtrasTotal
	bd.UrgencyMultiplier = d.Urgency.Multiplier()
	bd.Total = roundAUD(decimal.NewFromInt(int64(bd.Subtotal)).Mul(bd.UrgencyMultiplier))
	bd.GST = roundAUD(decimal.NewFromInt(int64(bd.Total)).Mul(gstRate))

	if d.Urgency.DepositRequired() {
		bd.DepositRequired = true
		bd.DepositAmount = roundAUD(decimal.NewFromInt(int64(bd.Total)).Mul(depositRate))
	}

	return bd
}

// roundAUD rounds half away from zero to whole dollars.
func roundAUD(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

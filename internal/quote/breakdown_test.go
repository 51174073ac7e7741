package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	"github.com/sunstateclean/sunstate-backend/pkg/enums"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.Service{
			{ID: enums.CleaningTypeGeneral, Name: "General Clean", BasePrice: 120},
			{ID: enums.CleaningTypeEndOfLease, Name: "End of Lease", BasePrice: 350},
		},
		map[enums.RoomCategory]int{
			enums.RoomCategoryBedroom:  25,
			enums.RoomCategoryBathroom: 35,
		},
		[]catalog.Extra{
			{ID: "oven_clean", Name: "Oven Clean", Price: 35},
			{ID: "window_clean", Name: "Window Clean", Price: 60},
		},
	)
	require.NoError(t, err)
	return cat
}

func TestComputeBreakdownStandard(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "general"
	d.Rooms["bedroom"] = 2
	d.Extras = append(d.Extras, ExtraSelection{ID: "oven_clean", Price: 35})
	d.Urgency = enums.UrgencyStandard

	bd := ComputeBreakdown(d, cat)

	assert.Equal(t, 120, bd.BasePrice)
	assert.Equal(t, 50, bd.RoomsTotal)
	assert.Equal(t, 35, bd.ExtrasTotal)
	assert.Equal(t, 205, bd.Subtotal)
	assert.Equal(t, 205, bd.Total)
	assert.Equal(t, 21, bd.GST)
	assert.False(t, bd.DepositRequired)
	assert.Equal(t, 0, bd.DepositAmount)
}

func TestComputeBreakdownSameDay(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "general"
	d.Rooms["bedroom"] = 2
	d.Extras = append(d.Extras, ExtraSelection{ID: "oven_clean", Price: 35})
	d.Urgency = enums.UrgencySameDay

	bd := ComputeBreakdown(d, cat)

	// 205 * 1.5 = 307.5 rounds away from zero to 308.
	assert.Equal(t, 205, bd.Subtotal)
	assert.True(t, decimal.RequireFromString("1.5").Equal(bd.UrgencyMultiplier))
	assert.Equal(t, 308, bd.Total)
	assert.Equal(t, 31, bd.GST)
	assert.True(t, bd.DepositRequired)
	assert.Equal(t, 92, bd.DepositAmount)
}

func TestComputeBreakdownEmptyCleaningType(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.Rooms["bedroom"] = 3
	d.Extras = append(d.Extras, ExtraSelection{ID: "oven_clean", Price: 35})

	assert.Equal(t, Breakdown{}, ComputeBreakdown(d, cat))
}

func TestComputeBreakdownUnknownCleaningType(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "chimney_sweep"
	d.Rooms["bedroom"] = 1
	d.Extras = append(d.Extras, ExtraSelection{ID: "oven_clean", Price: 35})

	bd := ComputeBreakdown(d, cat)
	assert.Equal(t, 0, bd.BasePrice)
	assert.Equal(t, 25, bd.RoomsTotal)
	assert.Equal(t, 35, bd.ExtrasTotal)
	assert.Equal(t, 60, bd.Subtotal)
}

func TestComputeBreakdownSkipsUnknownRoomsAndNonPositiveCounts(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "general"
	d.Rooms["bedroom"] = 1
	d.Rooms["ballroom"] = 4
	d.Rooms["bathroom"] = 0

	bd := ComputeBreakdown(d, cat)
	assert.Equal(t, 25, bd.RoomsTotal)
	assert.Equal(t, 145, bd.Subtotal)
}

func TestComputeBreakdownUsesSnapshotPrices(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "general"
	// Snapshot differs from the live catalog price on purpose.
	d.Extras = append(d.Extras, ExtraSelection{ID: "oven_clean", Price: 29})

	bd := ComputeBreakdown(d, cat)
	assert.Equal(t, 29, bd.ExtrasTotal)
}

func TestComputeBreakdownUrgentDeposit(t *testing.T) {
	cat := testCatalog(t)

	d := NewDraft()
	d.CleaningType = "end_of_lease"
	d.Urgency = enums.UrgencyUrgent

	bd := ComputeBreakdown(d, cat)
	// 350 * 1.25 = 437.50 -> 438; deposit 438 * 0.30 = 131.4 -> 131.
	assert.Equal(t, 438, bd.Total)
	assert.True(t, bd.DepositRequired)
	assert.Equal(t, 131, bd.DepositAmount)
}

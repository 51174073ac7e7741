package enums

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Urgency describes how soon the customer wants the clean.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyUrgent   Urgency = "urgent"
	UrgencySameDay  Urgency = "same_day"
)

var validUrgencies = []Urgency{
	UrgencyStandard,
	UrgencyUrgent,
	UrgencySameDay,
}

// Fixed multiplier table. Expedited levels carry a deposit obligation.
var urgencyMultipliers = map[Urgency]decimal.Decimal{
	UrgencyStandard: decimal.NewFromInt(1),
	UrgencyUrgent:   decimal.RequireFromString("1.25"),
	UrgencySameDay:  decimal.RequireFromString("1.5"),
}

// String implements fmt.Stringer.
func (u Urgency) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Urgency.
func (u Urgency) IsValid() bool {
	for _, candidate := range validUrgencies {
		if candidate == u {
			return true
		}
	}
	return false
}

// Multiplier returns the price multiplier for the urgency level.
// Unknown levels fall back to the standard multiplier.
func (u Urgency) Multiplier() decimal.Decimal {
	if m, ok := urgencyMultipliers[u]; ok {
		return m
	}
	return urgencyMultipliers[UrgencyStandard]
}

// DepositRequired reports whether the level requires an upfront deposit.
func (u Urgency) DepositRequired() bool {
	return u.Multiplier().GreaterThan(decimal.NewFromInt(1))
}

// ParseUrgency converts raw input into an Urgency.
func ParseUrgency(value string) (Urgency, error) {
	for _, candidate := range validUrgencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid urgency %q", value)
}

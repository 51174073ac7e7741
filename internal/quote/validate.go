package quote

import (
	"regexp"
	"strings"

	"github.com/sunstateclean/sunstate-backend/internal/catalog"
)

// Field names used as keys in validation error maps. They match the
// JSON field names the UI binds messages to.
const (
	FieldCleaningType = "cleaning_type"
	FieldRooms        = "rooms"
	FieldSuburb       = "suburb"
	FieldPostcode     = "postcode"
	FieldUrgency      = "urgency"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldNDISNumber   = "ndis_number"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Australian landline or mobile, optionally in +61 form.
	phonePattern    = regexp.MustCompile(`^(?:\+?61|0)[2-478]\d{8}$`)
	postcodePattern = regexp.MustCompile(`^\d{4}$`)
	ndisPattern     = regexp.MustCompile(`^\d{9}$`)
)

// Validate checks a draft for submission readiness and returns a map of
// field name to human-readable message. An empty map means the draft
// may be submitted. Pure: it never mutates the draft.
func Validate(d Draft, cat *catalog.Catalog) map[string]string {
	errs := map[string]string{}

	switch {
	case strings.TrimSpace(d.CleaningType) == "":
		errs[FieldCleaningType] = "select a cleaning service"
	default:
		if _, ok := cat.ServiceByID(d.CleaningType); !ok {
			errs[FieldCleaningType] = "unknown cleaning service"
		}
	}

	if d.roomCount() == 0 {
		errs[FieldRooms] = "add at least one room"
	}

	if strings.TrimSpace(d.Location.Suburb) == "" {
		errs[FieldSuburb] = "suburb is required"
	}
	if postcode := strings.TrimSpace(d.Location.Postcode); postcode != "" && !postcodePattern.MatchString(postcode) {
		errs[FieldPostcode] = "postcode must be 4 digits"
	}

	switch {
	case d.Urgency == "":
		errs[FieldUrgency] = "select how soon you need the clean"
	case !d.Urgency.IsValid():
		errs[FieldUrgency] = "unknown urgency level"
	}

	if strings.TrimSpace(d.Customer.Name) == "" {
		errs[FieldName] = "name is required"
	}

	switch email := strings.TrimSpace(d.Customer.Email); {
	case email == "":
		errs[FieldEmail] = "email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "must be a valid email"
	}

	switch phone := normalizePhone(d.Customer.Phone); {
	case phone == "":
		errs[FieldPhone] = "phone is required"
	case !phonePattern.MatchString(phone):
		errs[FieldPhone] = "must be a valid Australian phone number"
	}

	if d.Customer.IsNDISParticipant && !ndisPattern.MatchString(strings.TrimSpace(d.Customer.NDISNumber)) {
		errs[FieldNDISNumber] = "NDIS number must be 9 digits"
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

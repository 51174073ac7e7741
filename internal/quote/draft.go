package quote

import (
	"github.com/sunstateclean/sunstate-backend/pkg/enums"
)

// ExtraSelection is an add-on chosen by the visitor. The price is a
// snapshot taken from the catalog at selection time; catalog changes
// mid-session never retroactively alter an already-added extra.
type ExtraSelection struct {
	ID    string `json:"id"`
	Price int    `json:"price"`
}

// Location is where the clean happens.
type Location struct {
	Suburb   string `json:"suburb"`
	Postcode string `json:"postcode"`
}

// Customer captures the visitor's contact details.
type Customer struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	IsNDISParticipant bool   `json:"is_ndis_participant"`
	NDISNumber        string `json:"ndis_number"`
}

// Draft is an in-progress, unsubmitted quote request. It is owned
// exclusively by one engine instance per visitor session.
type Draft struct {
	CleaningType    string           `json:"cleaning_type"`
	Rooms           map[string]int   `json:"rooms"`
	Extras          []ExtraSelection `json:"extras"`
	Urgency         enums.Urgency    `json:"urgency"`
	Location        Location         `json:"location"`
	Customer        Customer         `json:"customer"`
	SpecialRequests string           `json:"special_requests,omitempty"`
	PreferredDate   string           `json:"preferred_date,omitempty"`
	PreferredTime   string           `json:"preferred_time,omitempty"`
}

// NewDraft returns an empty draft ready for incremental updates.
func NewDraft() Draft {
	return Draft{Rooms: map[string]int{}}
}

// Clone deep-copies the draft so callers can hold it without racing
// the engine's own copy.
func (d Draft) Clone() Draft {
	out := d
	out.Rooms = make(map[string]int, len(d.Rooms))
	for category, count := range d.Rooms {
		out.Rooms[category] = count
	}
	if d.Extras != nil {
		out.Extras = make([]ExtraSelection, len(d.Extras))
		copy(out.Extras, d.Extras)
	}
	return out
}

func (d Draft) hasExtra(id string) bool {
	for _, extra := range d.Extras {
		if extra.ID == id {
			return true
		}
	}
	return false
}

func (d Draft) roomCount() int {
	var total int
	for _, count := range d.Rooms {
		if count > 0 {
			total += count
		}
	}
	return total
}

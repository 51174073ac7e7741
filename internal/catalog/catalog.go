package catalog

import (
	"fmt"

	"github.com/sunstateclean/sunstate-backend/pkg/enums"
)

// Service is a bookable cleaning service with its flat base price in AUD.
type Service struct {
	ID            enums.CleaningType `json:"id"`
	Name          string             `json:"name"`
	BasePrice     int                `json:"base_price"`
	DurationHours float64            `json:"duration_hours"`
	Includes      []string           `json:"includes"`
}

// Extra is an optional add-on with its own flat price in AUD.
type Extra struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Catalog is the injected read-only lookup for services, per-room unit
// prices, and add-ons. Built once at startup and never mutated.
type Catalog struct {
	services  map[enums.CleaningType]Service
	roomRates map[enums.RoomCategory]int
	extras    map[string]Extra

	serviceOrder []enums.CleaningType
	extraOrder   []string
}

// New builds a catalog and rejects duplicate or negatively priced entries.
func New(services []Service, roomRates map[enums.RoomCategory]int, extras []Extra) (*Catalog, error) {
	c := &Catalog{
		services:  make(map[enums.CleaningType]Service, len(services)),
		roomRates: make(map[enums.RoomCategory]int, len(roomRates)),
		extras:    make(map[string]Extra, len(extras)),
	}

	for _, svc := range services {
		if svc.ID == "" {
			return nil, fmt.Errorf("service id is required")
		}
		if svc.BasePrice < 0 {
			return nil, fmt.Errorf("service %q has negative base price", svc.ID)
		}
		if _, exists := c.services[svc.ID]; exists {
			return nil, fmt.Errorf("duplicate service %q", svc.ID)
		}
		c.services[svc.ID] = svc
		c.serviceOrder = append(c.serviceOrder, svc.ID)
	}

	for category, rate := range roomRates {
		if rate < 0 {
			return nil, fmt.Errorf("room category %q has negative rate", category)
		}
		c.roomRates[category] = rate
	}

	for _, extra := range extras {
		if extra.ID == "" {
			return nil, fmt.Errorf("extra id is required")
		}
		if extra.Price < 0 {
			return nil, fmt.Errorf("extra %q has negative price", extra.ID)
		}
		if _, exists := c.extras[extra.ID]; exists {
			return nil, fmt.Errorf("duplicate extra %q", extra.ID)
		}
		c.extras[extra.ID] = extra
		c.extraOrder = append(c.extraOrder, extra.ID)
	}

	return c, nil
}

// ServiceByID resolves a service identifier, tolerating unknown ids.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	svc, ok := c.services[enums.CleaningType(id)]
	return svc, ok
}

// RoomRate returns the per-room unit price for a category.
func (c *Catalog) RoomRate(category string) (int, bool) {
	rate, ok := c.roomRates[enums.RoomCategory(category)]
	return rate, ok
}

// ExtraByID resolves an add-on identifier, tolerating unknown ids.
func (c *Catalog) ExtraByID(id string) (Extra, bool) {
	extra, ok := c.extras[id]
	return extra, ok
}

// Services lists services in catalog order.
func (c *Catalog) Services() []Service {
	out := make([]Service, 0, len(c.serviceOrder))
	for _, id := range c.serviceOrder {
		out = append(out, c.services[id])
	}
	return out
}

// RoomRates returns a copy of the per-category unit prices.
func (c *Catalog) RoomRates() map[enums.RoomCategory]int {
	out := make(map[enums.RoomCategory]int, len(c.roomRates))
	for category, rate := range c.roomRates {
		out[category] = rate
	}
	return out
}

// Extras lists add-ons in catalog order.
func (c *Catalog) Extras() []Extra {
	out := make([]Extra, 0, len(c.extraOrder))
	for _, id := range c.extraOrder {
		out = append(out, c.extras[id])
	}
	return out
}

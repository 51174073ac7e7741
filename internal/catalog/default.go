package catalog

import "github.com/sunstateclean/sunstate-backend/pkg/enums"

// Default returns the production catalog for the Queensland service area.
// Prices are whole AUD and include GST.
func Default() *Catalog {
	c, err := New(
		[]Service{
			{
				ID:            enums.CleaningTypeGeneral,
				Name:          "General Clean",
				BasePrice:     120,
				DurationHours: 2,
				Includes:      []string{"Dusting and wipe-downs", "Vacuum and mop", "Bathroom refresh", "Kitchen surfaces"},
			},
			{
				ID:            enums.CleaningTypeDeep,
				Name:          "Deep Clean",
				BasePrice:     250,
				DurationHours: 4,
				Includes:      []string{"Everything in a general clean", "Skirting boards and door frames", "Inside cupboards", "Wall spot cleaning"},
			},
			{
				ID:            enums.CleaningTypeEndOfLease,
				Name:          "End of Lease Clean",
				BasePrice:     350,
				DurationHours: 6,
				Includes:      []string{"Full bond-back checklist", "Inside oven and rangehood", "Window tracks and sills", "Exit report photos"},
			},
			{
				ID:            enums.CleaningTypeOffice,
				Name:          "Office & Commercial Clean",
				BasePrice:     180,
				DurationHours: 3,
				Includes:      []string{"Workstations and common areas", "Kitchenette and amenities", "Bins and recycling", "After-hours available"},
			},
		},
		map[enums.RoomCategory]int{
			enums.RoomCategoryBedroom:    25,
			enums.RoomCategoryBathroom:   35,
			enums.RoomCategoryKitchen:    45,
			enums.RoomCategoryLivingRoom: 30,
			enums.RoomCategoryDiningRoom: 20,
		},
		[]Extra{
			{ID: "oven_clean", Name: "Inside Oven Clean", Price: 49},
			{ID: "window_clean", Name: "Interior Window Clean", Price: 60},
			{ID: "fridge_clean", Name: "Inside Fridge Clean", Price: 35},
			{ID: "carpet_steam", Name: "Carpet Steam Clean", Price: 80},
			{ID: "garage_sweep", Name: "Garage Sweep-Out", Price: 45},
			{ID: "balcony_wash", Name: "Balcony Wash-Down", Price: 40},
		},
	)
	if err != nil {
		// Default data is compiled in; a failure here is a programming error.
		panic(err)
	}
	return c
}

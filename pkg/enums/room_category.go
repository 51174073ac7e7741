package enums

import "fmt"

// RoomCategory names a countable room type on a quote draft.
type RoomCategory string

const (
	RoomCategoryBedroom    RoomCategory = "bedroom"
	RoomCategoryBathroom   RoomCategory = "bathroom"
	RoomCategoryKitchen    RoomCategory = "kitchen"
	RoomCategoryLivingRoom RoomCategory = "living_room"
	RoomCategoryDiningRoom RoomCategory = "dining_room"
)

var validRoomCategories = []RoomCategory{
	RoomCategoryBedroom,
	RoomCategoryBathroom,
	RoomCategoryKitchen,
	RoomCategoryLivingRoom,
	RoomCategoryDiningRoom,
}

// String implements fmt.Stringer.
func (r RoomCategory) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RoomCategory.
func (r RoomCategory) IsValid() bool {
	for _, candidate := range validRoomCategories {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRoomCategory converts raw input into a RoomCategory.
func ParseRoomCategory(value string) (RoomCategory, error) {
	for _, candidate := range validRoomCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid room category %q", value)
}

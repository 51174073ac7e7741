package enums

import "fmt"

// CleaningType identifies a service from the cleaning catalog.
type CleaningType string

const (
	CleaningTypeGeneral    CleaningType = "general"
	CleaningTypeDeep       CleaningType = "deep"
	CleaningTypeEndOfLease CleaningType = "end_of_lease"
	CleaningTypeOffice     CleaningType = "office"
)

var validCleaningTypes = []CleaningType{
	CleaningTypeGeneral,
	CleaningTypeDeep,
	CleaningTypeEndOfLease,
	CleaningTypeOffice,
}

// String implements fmt.Stringer.
func (c CleaningType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CleaningType.
func (c CleaningType) IsValid() bool {
	for _, candidate := range validCleaningTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCleaningType converts raw input into a CleaningType.
func ParseCleaningType(value string) (CleaningType, error) {
	for _, candidate := range validCleaningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cleaning type %q", value)
}

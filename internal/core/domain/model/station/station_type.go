package station

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type categorizes a station by the kind of work it handles.
type Type int

const (
	// TypeUnknown represents an invalid or undefined station type.
	TypeUnknown Type = iota

	// TypeGrill handles grilled dishes.
	TypeGrill

	// TypePrep handles cold preparation and mise en place.
	TypePrep

	// TypeFry handles fried dishes.
	TypeFry

	// TypeSalad handles salads and cold plates.
	TypeSalad

	// TypeDessert handles desserts and pastry.
	TypeDessert

	// TypeBeverage handles drinks.
	TypeBeverage
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeGrill:    "Grill",
		TypePrep:     "Prep",
		TypeFry:      "Fry",
		TypeSalad:    "Salad",
		TypeDessert:  "Dessert",
		TypeBeverage: "Beverage",
	}
}

// Validate checks if the Type value is valid.
// TypeUnknown (0) and any other values are invalid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"station type is invalid",
			fmt.Errorf("%d is not a valid station type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the station type.
// Implements the fmt.Stringer interface.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

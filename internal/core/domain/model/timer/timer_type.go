package timer

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type categorizes a timer by the activity it paces.
type Type int

const (
	// TypeUnknown represents an invalid or undefined timer type.
	TypeUnknown Type = iota

	// TypeCooking paces a cooking step.
	TypeCooking

	// TypePrep paces a preparation step.
	TypePrep

	// TypeFoodSafety paces a recurring food-safety check.
	TypeFoodSafety

	// TypeCleaning paces a cleaning task.
	TypeCleaning

	// TypeReminder is a general-purpose reminder.
	TypeReminder
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:    "Unknown",
		TypeCooking:    "Cooking",
		TypePrep:       "Prep",
		TypeFoodSafety: "FoodSafety",
		TypeCleaning:   "Cleaning",
		TypeReminder:   "Reminder",
	}
}

// Validate checks if the Type value is valid.
// TypeUnknown (0) and any other values are invalid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"timer type is invalid",
			fmt.Errorf("%d is not a valid timer type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the timer type.
// Implements the fmt.Stringer interface.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

package station

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the operational state of a station.
//
// Unlike the order state machines, station status has no transition table:
// supervisors move stations between states directly (a station can go into
// maintenance from any state), with two exceptions driven by the active
// flag: activating a station forces Available and deactivating forces
// Offline.
type Status int

const (
	// StatusUnknown represents an invalid or undefined station status.
	StatusUnknown Status = iota

	// Available indicates the station is ready to accept orders.
	Available

	// Busy indicates the station is operating but should not take new orders.
	Busy

	// Maintenance indicates the station is temporarily out of service.
	Maintenance

	// Offline indicates the station is deactivated.
	Offline
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Busy:          "Busy",
		Maintenance:   "Maintenance",
		Offline:       "Offline",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"station status is invalid",
			fmt.Errorf("%d is not a valid station status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

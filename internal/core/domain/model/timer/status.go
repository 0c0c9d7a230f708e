package timer

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of a kitchen timer.
//
// State transitions:
//
//	Created ──> Running ⇄ Paused
//	               │         │
//	               ├──> Completed
//	               ├──> Expired <──┘
//	               └──> Cancelled <┘
//
// Completed, Cancelled, and Expired are terminal. Expired is reached via
// an explicit expiry call from the scheduler, never from user action.
type Status int

const (
	// StatusUnknown represents an invalid or undefined timer status.
	StatusUnknown Status = iota

	// Created is the initial status of a timer that has never started.
	Created

	// Running indicates the timer is counting down.
	Running

	// Paused indicates the countdown is frozen.
	Paused

	// Completed indicates the timer was finished by its user. Terminal.
	Completed

	// Cancelled indicates the timer was abandoned. Terminal.
	Cancelled

	// Expired indicates the scheduler detected the countdown ran out. Terminal.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Created:       "Created",
		Running:       "Running",
		Paused:        "Paused",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
		Expired:       "Expired",
	}
}

// getValidTransitions returns the complete transition table for timer statuses.
// The table is the single source of truth for the machine.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Running},
		Running:   {Paused, Completed, Cancelled, Expired},
		Paused:    {Running, Cancelled, Expired},
		Completed: {},
		Cancelled: {},
		Expired:   {},
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"timer status is invalid",
			fmt.Errorf("%d is not a valid timer status", s),
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

// IsTerminal reports whether no further transition is possible from this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Expired
}

// Start transitions the status to Running. Valid from Created or Paused.
func (s Status) Start() (Status, error) {
	return s.transitionTo(Running, "Start")
}

// Pause transitions the status to Paused. Only valid from Running.
func (s Status) Pause() (Status, error) {
	return s.transitionTo(Paused, "Pause")
}

// Complete transitions the status to Completed. Only valid from Running.
func (s Status) Complete() (Status, error) {
	return s.transitionTo(Completed, "Complete")
}

// Cancel transitions the status to Cancelled. Valid from Running or Paused.
func (s Status) Cancel() (Status, error) {
	return s.transitionTo(Cancelled, "Cancel")
}

// Expire transitions the status to Expired. Valid from Running or Paused.
func (s Status) Expire() (Status, error) {
	return s.transitionTo(Expired, "Expire")
}

// transitionTo resolves the requested transition against the transition table.
func (s Status) transitionTo(target Status, operation string) (Status, error) {
	for _, allowed := range getValidTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return StatusUnknown, errs.NewInvalidStateTransitionError(operation, s.String())
}

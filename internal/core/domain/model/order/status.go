package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal. No transition moves backward, and
// no step of the happy path can be skipped.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders can only be modified (items added, removed, updated) in this status.
	Pending

	// Confirmed indicates the order has been accepted by the kitchen.
	// Item changes are no longer allowed.
	Confirmed

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates all preparation is finished and the order awaits handoff.
	Ready

	// Completed indicates the order has been handed off.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// Reachable from any non-terminal state. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidTransitions returns the complete transition table for order statuses.
// The table is the single source of truth for the state machine: every
// transition method resolves against it, so adding or removing an edge here
// changes the machine everywhere at once.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Unknown or invalid values render as "Unknown".
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible from this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Confirm transitions the status to Confirmed.
// Only valid from Pending.
func (s Status) Confirm() (Status, error) {
	return s.transitionTo(Confirmed, "Confirm")
}

// StartPreparation transitions the status to Preparing.
// Only valid from Confirmed.
func (s Status) StartPreparation() (Status, error) {
	return s.transitionTo(Preparing, "StartPreparation")
}

// MarkReady transitions the status to Ready.
// Only valid from Preparing.
func (s Status) MarkReady() (Status, error) {
	return s.transitionTo(Ready, "MarkReady")
}

// Complete transitions the status to Completed.
// Only valid from Ready. Completed is a terminal state.
func (s Status) Complete() (Status, error) {
	return s.transitionTo(Completed, "Complete")
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status. Cancelled is a terminal state.
func (s Status) Cancel() (Status, error) {
	return s.transitionTo(Cancelled, "Cancel")
}

// transitionTo resolves the requested transition against the transition table.
// Returns an InvalidStateTransitionError carrying the attempted operation and
// the current state when the edge does not exist.
func (s Status) transitionTo(target Status, operation string) (Status, error) {
	for _, allowed := range getValidTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return Unknown, errs.NewInvalidStateTransitionError(operation, s.String())
}

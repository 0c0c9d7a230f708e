package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// ItemStatus represents the lifecycle state of a single order item.
// Items progress in lockstep with their order on the happy path but can be
// cancelled individually at any point before delivery.
//
// State transitions:
//
//	ItemPending ──> ItemPreparing ──> ItemReady ──> ItemDelivered
//	     │                │               │
//	     └────────────────┴───────────────┴──> ItemCancelled
//
// ItemDelivered and ItemCancelled are terminal.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending is the initial status of a newly added item.
	// Quantity and special instructions can only change in this status.
	ItemPending

	// ItemPreparing indicates a cook has started working on the item.
	ItemPreparing

	// ItemReady indicates the item is finished and plated.
	ItemReady

	// ItemDelivered indicates the item reached the customer. Terminal.
	ItemDelivered

	// ItemCancelled indicates the item was cancelled before delivery. Terminal.
	ItemCancelled
)

// getItemStatusStrings returns a map of ItemStatus values to their string representations.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "Unknown",
		ItemPending:       "Pending",
		ItemPreparing:     "Preparing",
		ItemReady:         "Ready",
		ItemDelivered:     "Delivered",
		ItemCancelled:     "Cancelled",
	}
}

// getValidItemTransitions returns the complete transition table for item statuses.
// As with order Status, the table is the single source of truth for the machine.
func getValidItemTransitions() map[ItemStatus][]ItemStatus {
	return map[ItemStatus][]ItemStatus{
		ItemPending:   {ItemPreparing, ItemCancelled},
		ItemPreparing: {ItemReady, ItemCancelled},
		ItemReady:     {ItemDelivered, ItemCancelled},
		ItemDelivered: {},
		ItemCancelled: {},
	}
}

// Validate checks if the ItemStatus value is valid.
// ItemStatusUnknown (0) and any other values are invalid.
func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok || s == ItemStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the item status.
// Implements the fmt.Stringer interface.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible from this status.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemDelivered || s == ItemCancelled
}

// StartPreparation transitions the status to ItemPreparing. Only valid from ItemPending.
func (s ItemStatus) StartPreparation() (ItemStatus, error) {
	return s.transitionTo(ItemPreparing, "StartPreparation")
}

// CompletePreparation transitions the status to ItemReady. Only valid from ItemPreparing.
func (s ItemStatus) CompletePreparation() (ItemStatus, error) {
	return s.transitionTo(ItemReady, "CompletePreparation")
}

// Deliver transitions the status to ItemDelivered. Only valid from ItemReady.
func (s ItemStatus) Deliver() (ItemStatus, error) {
	return s.transitionTo(ItemDelivered, "Deliver")
}

// Cancel transitions the status to ItemCancelled.
// Valid from any non-terminal status.
func (s ItemStatus) Cancel() (ItemStatus, error) {
	return s.transitionTo(ItemCancelled, "Cancel")
}

// transitionTo resolves the requested transition against the transition table.
func (s ItemStatus) transitionTo(target ItemStatus, operation string) (ItemStatus, error) {
	for _, allowed := range getValidItemTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return ItemStatusUnknown, errs.NewInvalidStateTransitionError(operation, s.String())
}

package order

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

const (
	// MinItemQuantity is the smallest quantity a single order item may carry.
	MinItemQuantity = 1
	// MaxItemQuantity is the largest quantity a single order item may carry.
	MaxItemQuantity = 50
	// MaxItemInstructionsLength bounds the special instructions text of an item.
	MaxItemInstructionsLength = 500
)

// Domain errors for order item operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemIsNotModifiable is returned when changing quantity or instructions
	// after preparation has started.
	ErrItemIsNotModifiable = errors.New("item can only be modified while pending")
)

// Item represents a single line item of an order: a priced recipe snapshot,
// a quantity, and its own preparation lifecycle.
//
// An Item is owned exclusively by one Order and is never shared. It progresses
// in lockstep with the order on the happy path but can be cancelled or modified
// individually while its own status permits.
//
// Key business rules:
//   - Quantity must stay within [MinItemQuantity, MaxItemQuantity]
//   - Special instructions are bounded to MaxItemInstructionsLength characters
//   - Quantity and instructions can only change while the item is pending
//   - Total price is always unit price x quantity, recomputed on quantity change
type Item struct {
	// id uniquely identifies the item within the system
	id kernel.UUID
	// recipe is the read-only price and timing snapshot
	recipe Recipe
	// quantity is the number of units ordered
	quantity int
	// specialInstructions carries per-item free-text notes for the kitchen
	specialInstructions string
	// status is the current state in the item lifecycle
	status ItemStatus
	// startedAt is set when preparation starts
	startedAt *time.Time
	// completedAt is set when preparation finishes
	completedAt *time.Time
	// deliveredAt is set when the item reaches the customer
	deliveredAt *time.Time
	// cancellationReason records why the item was cancelled, if it was
	cancellationReason string
	// guard ensures the item was created via NewItem
	guard guard.ConstructorGuard
}

// NewItem creates a new Item in ItemPending status with validation.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - recipe: Price and timing snapshot (must be a constructed Recipe)
//   - quantity: Number of units (must be within [MinItemQuantity, MaxItemQuantity])
//   - specialInstructions: Optional kitchen notes (at most MaxItemInstructionsLength characters)
//
// Returns:
//   - *Item: The created item if all validations pass
//   - error: Aggregated validation errors otherwise
func NewItem(id kernel.UUID, recipe Recipe, quantity int, specialInstructions string) (*Item, error) {
	item := &Item{
		status: ItemPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRecipe(recipe),
		item.setQuantity(quantity),
		item.setSpecialInstructions(specialInstructions),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage.
// Unlike NewItem, which always starts items in ItemPending, this constructor
// restores the persisted status, timestamps, and cancellation reason.
func RestoreItem(
	id kernel.UUID,
	recipe Recipe,
	quantity int,
	specialInstructions string,
	status ItemStatus,
	startedAt *time.Time,
	completedAt *time.Time,
	deliveredAt *time.Time,
	cancellationReason string,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRecipe(recipe),
		item.setQuantity(quantity),
		item.setSpecialInstructions(specialInstructions),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	item.startedAt = startedAt
	item.completedAt = completedAt
	item.deliveredAt = deliveredAt
	item.cancellationReason = cancellationReason

	return item, nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// Validate ensures the Item was properly constructed via NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Recipe returns the read-only recipe snapshot.
func (i *Item) Recipe() Recipe {
	return i.recipe
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the per-item kitchen notes.
func (i *Item) SpecialInstructions() string {
	return i.specialInstructions
}

// Status returns the current status of the item.
func (i *Item) Status() ItemStatus {
	return i.status
}

// StartedAt returns when preparation started, or nil if it has not.
func (i *Item) StartedAt() *time.Time {
	return i.startedAt
}

// CompletedAt returns when preparation finished, or nil if it has not.
func (i *Item) CompletedAt() *time.Time {
	return i.completedAt
}

// DeliveredAt returns when the item was delivered, or nil if it was not.
func (i *Item) DeliveredAt() *time.Time {
	return i.deliveredAt
}

// CancellationReason returns why the item was cancelled, or empty if it was not.
func (i *Item) CancellationReason() string {
	return i.cancellationReason
}

// TotalPrice returns the line total: unit price multiplied by quantity.
func (i *Item) TotalPrice() kernel.Money {
	return i.recipe.Price().Multiply(i.quantity)
}

// EstimatedTime returns the estimated preparation plus cooking time for the item.
// The estimate does not scale with quantity: units cook in parallel.
func (i *Item) EstimatedTime() time.Duration {
	return i.recipe.EstimatedTime()
}

// IsCompleted reports whether the item reached its delivered terminal state.
func (i *Item) IsCompleted() bool {
	return i.status == ItemDelivered
}

// IsOverdue reports whether the item has been in preparation longer than its
// recipe's estimated time.
func (i *Item) IsOverdue() bool {
	if i.status != ItemPreparing || i.startedAt == nil {
		return false
	}
	return time.Since(*i.startedAt) > i.EstimatedTime()
}

// StartPreparation marks the item as being worked on and records the start time.
// Only valid from ItemPending.
func (i *Item) StartPreparation() error {
	newStatus, err := i.status.StartPreparation()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	i.status = newStatus
	i.startedAt = &now
	return nil
}

// CompletePreparation marks the item as ready and records the completion time.
// Only valid from ItemPreparing.
func (i *Item) CompletePreparation() error {
	newStatus, err := i.status.CompletePreparation()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	i.status = newStatus
	i.completedAt = &now
	return nil
}

// Deliver marks the item as delivered and records the delivery time.
// Only valid from ItemReady. Delivered is a terminal state.
func (i *Item) Deliver() error {
	newStatus, err := i.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	i.status = newStatus
	i.deliveredAt = &now
	return nil
}

// Cancel cancels the item and records the reason.
// Valid from any non-terminal status. Cancelled is a terminal state.
func (i *Item) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.cancellationReason = reason
	return nil
}

// UpdateQuantity changes the number of units ordered.
// Only allowed while the item is pending; the line total follows automatically.
func (i *Item) UpdateQuantity(quantity int) error {
	if i.status != ItemPending {
		return ErrItemIsNotModifiable
	}
	return i.setQuantity(quantity)
}

// UpdateSpecialInstructions changes the per-item kitchen notes.
// Only allowed while the item is pending.
func (i *Item) UpdateSpecialInstructions(instructions string) error {
	if i.status != ItemPending {
		return ErrItemIsNotModifiable
	}
	return i.setSpecialInstructions(instructions)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setRecipe(recipe Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}
	i.recipe = recipe
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setSpecialInstructions(instructions string) error {
	if len(instructions) > MaxItemInstructionsLength {
		return errs.NewValueIsOutOfRangeError(
			"specialInstructions length", len(instructions), 0, MaxItemInstructionsLength)
	}
	i.specialInstructions = instructions
	return nil
}

func (i *Item) setStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

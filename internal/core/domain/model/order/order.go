package order

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

const (
	// MinOrderItems is the smallest number of items an order may hold.
	// Removing the sole remaining item is rejected.
	MinOrderItems = 1
	// MaxOrderItems is the largest number of items an order may hold.
	MaxOrderItems = 100
	// MaxOrderInstructionsLength bounds the free-text instructions of an order.
	MaxOrderInstructionsLength = 1000

	// OverdueThreshold is how long an order may stay in Preparing before it
	// counts as overdue.
	OverdueThreshold = 30 * time.Minute
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotModifiable is returned when changing the item list after the
	// order left Pending.
	ErrOrderIsNotModifiable = errors.New("order items can only be modified while pending")

	// ErrItemNotFound is returned when an item id does not belong to the order.
	ErrItemNotFound = errors.New("item does not belong to the order")

	// ErrLastItemCannotBeRemoved is returned when removing the sole remaining item.
	ErrLastItemCannotBeRemoved = errors.New("order must keep at least one item")
)

// Order represents a kitchen order. It is the aggregate root that owns the
// order items and manages the lifecycle from creation through preparation to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Holds between MinOrderItems and MaxOrderItems items at all times
//   - Instructions are bounded to MaxOrderInstructionsLength characters
//   - Status transitions follow the kitchen workflow state machine
//   - Item changes are only allowed while the order is Pending
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Items progress in lockstep with
// the order: a status transition cascades to every item still eligible for
// the matching item transition, while items already ahead or individually
// cancelled are left alone.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// tableID references the table the order belongs to (nil for takeaway)
	tableID *kernel.UUID

	// items holds the order lines in display order
	items []*Item

	// priority drives kitchen attention, defaults to medium
	priority kernel.Priority

	// status represents the current state in the order lifecycle
	status Status

	// instructions carries order-wide free-text notes for the kitchen
	instructions string

	// stationID references the assigned station (nil if unassigned)
	stationID *kernel.UUID

	// createdAt is when the order was placed
	createdAt time.Time

	// confirmedAt, startedAt, readyAt, completedAt record transition times
	confirmedAt *time.Time
	startedAt   *time.Time
	readyAt     *time.Time
	completedAt *time.Time

	// cancellationReason records why the order was cancelled, if it was
	cancellationReason string

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Reference to the ordering customer (must be valid UUID)
//   - tableID: Optional table reference (nil for takeaway)
//   - items: Initial order lines (between MinOrderItems and MaxOrderItems)
//   - instructions: Optional order-wide kitchen notes
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Aggregated validation errors otherwise
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), recipe, 2, "")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, nil, []*order.Item{item}, "no onions")
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and creates the order with Pending
// status, the default medium priority, and no station assigned.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tableID *kernel.UUID,
	items []*Item,
	instructions string,
) (*Order, error) {
	o := &Order{
		priority:  kernel.DefaultPriority(),
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTableID(tableID),
		o.setItems(items),
		o.setInstructions(instructions),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder, which always starts orders in Pending with the default
// priority, this constructor restores the persisted status, priority,
// station reference, timestamps, and cancellation reason.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tableID *kernel.UUID,
	items []*Item,
	priority kernel.Priority,
	status Status,
	instructions string,
	stationID *kernel.UUID,
	createdAt time.Time,
	confirmedAt *time.Time,
	startedAt *time.Time,
	readyAt *time.Time,
	completedAt *time.Time,
	cancellationReason string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTableID(tableID),
		o.setItems(items),
		o.setPriority(priority),
		o.setStatus(status),
		o.setInstructions(instructions),
		o.setStationID(stationID),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.confirmedAt = confirmedAt
	o.startedAt = startedAt
	o.readyAt = readyAt
	o.completedAt = completedAt
	o.cancellationReason = cancellationReason

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the reference to the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TableID returns the table reference, or nil for takeaway orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Items returns the order lines in display order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Priority returns the current priority of the order.
func (o *Order) Priority() kernel.Priority {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Instructions returns the order-wide kitchen notes.
func (o *Order) Instructions() string {
	return o.instructions
}

// Station returns the assigned station's ID.
// Returns nil if no station is assigned.
func (o *Order) Station() *kernel.UUID {
	return o.stationID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was confirmed, or nil if it was not.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// StartedAt returns when preparation started, or nil if it has not.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// ReadyAt returns when the order became ready, or nil if it has not.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order was completed, or nil if it was not.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancellationReason returns why the order was cancelled, or empty if it was not.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// TotalAmount returns the sum of all item line totals.
// Cancelled items still count toward the total; refunds are a billing
// concern outside the kitchen workflow.
func (o *Order) TotalAmount() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// EstimatedTime returns the estimated time for the whole order: the maximum
// of the item estimates, since stations work lines in parallel.
func (o *Order) EstimatedTime() time.Duration {
	var estimate time.Duration
	for _, item := range o.items {
		if t := item.EstimatedTime(); t > estimate {
			estimate = t
		}
	}
	return estimate
}

// ItemCount returns the total number of units across all items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

// CanBeModified reports whether the item list can still change.
// Only Pending orders are modifiable.
func (o *Order) CanBeModified() bool {
	return o.status == Pending
}

// CanBeCancelled reports whether the order can still be cancelled.
func (o *Order) CanBeCancelled() bool {
	return !o.status.IsTerminal()
}

// RequiresImmediateAttention reports whether the order's priority is at
// least urgent and should jump the normal queue.
func (o *Order) RequiresImmediateAttention() bool {
	return o.priority.IsAtLeast(kernel.PriorityUrgent())
}

// IsOverdue reports whether the order has been in preparation longer than
// the overdue threshold.
func (o *Order) IsOverdue() bool {
	if o.status != Preparing || o.startedAt == nil {
		return false
	}
	return time.Since(*o.startedAt) > OverdueThreshold
}

// Confirm accepts the order into the kitchen workflow.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - After confirmation the item list can no longer change
//
// Returns:
//   - nil on successful confirmation
//   - error if the status transition is not allowed
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.confirmedAt = &now
	return nil
}

// StartPreparation marks the order as being worked on and cascades the
// transition to every item still pending. Items already cancelled are
// left alone.
//
// Returns:
//   - nil on success
//   - error if the order is not in Confirmed status
func (o *Order) StartPreparation() error {
	newStatus, err := o.status.StartPreparation()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.startedAt = &now

	for _, item := range o.items {
		if item.Status() == ItemPending {
			if err := item.StartPreparation(); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarkReady marks the order as ready for handoff and cascades the transition
// to every item still preparing.
//
// Returns:
//   - nil on success
//   - error if the order is not in Preparing status
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.readyAt = &now

	for _, item := range o.items {
		if item.Status() == ItemPreparing {
			if err := item.CompletePreparation(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Complete marks the order as handed off and cascades delivery to every item
// still ready. Completed is a terminal state.
//
// Returns:
//   - nil on success
//   - error if the order is not in Ready status
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now

	for _, item := range o.items {
		if item.Status() == ItemReady {
			if err := item.Deliver(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cancel cancels the order with a reason and cascades cancellation to every
// item not yet in a terminal state. Cancelled is a terminal state.
//
// Cancellation does not release any station capacity the order occupies:
// workload release is the caller's responsibility, applied in the same
// transaction as the cancellation.
//
// Returns:
//   - nil on success
//   - error if the reason is empty or the order is already terminal
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason

	for _, item := range o.items {
		if !item.Status().IsTerminal() {
			if err := item.Cancel(reason); err != nil {
				return err
			}
		}
	}
	return nil
}

// EscalatePriority raises the order's priority by one tier, capped at the
// maximum. Escalating an order already at the ceiling is a no-op, not an error.
func (o *Order) EscalatePriority() {
	o.priority = o.priority.Escalate()
}

// AssignToStation sets the station reference on the order.
//
// The assignment is unconditional at the order level: capacity and station
// availability are checked by the assignment coordinator, which is the only
// place both aggregates are cross-checked.
func (o *Order) AssignToStation(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	o.stationID = &stationID
	return nil
}

// UnassignFromStation clears the station reference on the order.
func (o *Order) UnassignFromStation() {
	o.stationID = nil
}

// AddItem appends a new item to the order.
//
// This method enforces the following business rules:
//   - The order must still be Pending
//   - The item must be a constructed Item not already on the order
//   - The item count must stay within MaxOrderItems
func (o *Order) AddItem(item *Item) error {
	if !o.CanBeModified() {
		return ErrOrderIsNotModifiable
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if len(o.items)+1 > MaxOrderItems {
		return errs.NewValueIsOutOfRangeError("items count", len(o.items)+1, MinOrderItems, MaxOrderItems)
	}
	for _, existing := range o.items {
		if existing.IsEqual(item) {
			return errs.NewValueIsInvalidError("item is already part of the order")
		}
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes an item from the order by id.
//
// This method enforces the following business rules:
//   - The order must still be Pending
//   - The item must belong to the order
//   - The sole remaining item cannot be removed
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if !o.CanBeModified() {
		return ErrOrderIsNotModifiable
	}
	if len(o.items) <= MinOrderItems {
		return ErrLastItemCannotBeRemoved
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// UpdateItemQuantity changes the quantity of an item on the order.
// Only allowed while the order is Pending; the order total follows automatically.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	if !o.CanBeModified() {
		return ErrOrderIsNotModifiable
	}

	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}
	return item.UpdateQuantity(quantity)
}

// UpdateItemInstructions changes the special instructions of an item on the order.
// Only allowed while the order is Pending.
func (o *Order) UpdateItemInstructions(itemID kernel.UUID, instructions string) error {
	if !o.CanBeModified() {
		return ErrOrderIsNotModifiable
	}

	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}
	return item.UpdateSpecialInstructions(instructions)
}

// CancelItem cancels a single item on the order without affecting the other
// items or the order status.
func (o *Order) CancelItem(itemID kernel.UUID, reason string) error {
	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}
	return item.Cancel(reason)
}

func (o *Order) findItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		o.tableID = nil
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) < MinOrderItems || len(items) > MaxOrderItems {
		return errs.NewValueIsOutOfRangeError("items count", len(items), MinOrderItems, MaxOrderItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setInstructions(instructions string) error {
	if len(instructions) > MaxOrderInstructionsLength {
		return errs.NewValueIsOutOfRangeError(
			"instructions length", len(instructions), 0, MaxOrderInstructionsLength)
	}
	o.instructions = instructions
	return nil
}

func (o *Order) setStationID(stationID *kernel.UUID) error {
	if stationID == nil {
		o.stationID = nil
		return nil
	}
	if err := stationID.Validate(); err != nil {
		return err
	}
	o.stationID = stationID
	return nil
}

package commands

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemSpec describes one order line in a create request: the recipe snapshot
// taken from the menu at request time plus the requested quantity.
// Field-level bounds are enforced by the domain constructors in the handler.
type ItemSpec struct {
	RecipeID            kernel.UUID
	RecipeName          string
	PriceCents          int64
	PrepTime            time.Duration
	CookTime            time.Duration
	Quantity            int
	SpecialInstructions string
}

// CreateOrderCommand represents a request to create a new kitchen order.
// Encapsulates the customer, the optional table, the order lines, and
// order-wide instructions.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, nil, items, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	tableID      *kernel.UUID
	items        []ItemSpec
	instructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new kitchen order.
// Validates that the order and customer IDs are valid and at least one item
// is requested. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	tableID *kernel.UUID,
	items []ItemSpec,
	instructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		tableID:      tableID,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TableID returns the optional table reference.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

// Instructions returns the order-wide kitchen notes.
func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

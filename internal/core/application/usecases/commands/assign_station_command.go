package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrAssignStationCommandIsNotConstructed = errors.New(
	"AssignStationCommand must be created via NewAssignStationCommand constructor",
)

// AssignStationCommand represents a request to assign an order to a station.
type AssignStationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStationCommand creates a command to assign an order to a station.
func NewAssignStationCommand(orderID, stationID kernel.UUID) (AssignStationCommand, error) {
	cmd := AssignStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStationID(stationID),
	); err != nil {
		return AssignStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStationCommand) Validate() error {
	return c.guard.Validate(ErrAssignStationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignStationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StationID returns the identifier of the target station.
func (c AssignStationCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c *AssignStationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}

package commands

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
	"kitchen/internal/pkg/guard"
)

var ErrCreateTimerCommandIsNotConstructed = errors.New(
	"CreateTimerCommand must be created via NewCreateTimerCommand constructor",
)

// CreateTimerCommand represents a request to create a kitchen timer,
// optionally correlated with an order and a station, and optionally started
// immediately.
type CreateTimerCommand struct { //nolint:recvcheck //using for validation
	timerID       kernel.UUID
	label         string
	timerType     timer.Type
	duration      time.Duration
	priorityLevel int
	orderID       *kernel.UUID
	stationID     *kernel.UUID
	isRepeating   bool
	autoStart     bool

	guard guard.ConstructorGuard
}

// NewCreateTimerCommand creates a command to register a new kitchen timer.
// Field-level bounds (label length, duration range, priority range) are
// enforced by the domain constructors in the handler; the command validates
// identifiers only.
func NewCreateTimerCommand(
	timerID kernel.UUID,
	label string,
	timerType timer.Type,
	duration time.Duration,
	priorityLevel int,
	orderID *kernel.UUID,
	stationID *kernel.UUID,
	isRepeating bool,
	autoStart bool,
) (CreateTimerCommand, error) {
	cmd := CreateTimerCommand{
		label:         label,
		timerType:     timerType,
		duration:      duration,
		priorityLevel: priorityLevel,
		orderID:       orderID,
		stationID:     stationID,
		isRepeating:   isRepeating,
		autoStart:     autoStart,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setTimerID(timerID); err != nil {
		return CreateTimerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTimerCommand) Validate() error {
	return c.guard.Validate(ErrCreateTimerCommandIsNotConstructed)
}

// TimerID returns the unique identifier for the timer.
func (c CreateTimerCommand) TimerID() kernel.UUID {
	return c.timerID
}

// Label returns the display label.
func (c CreateTimerCommand) Label() string {
	return c.label
}

// TimerType returns the activity category.
func (c CreateTimerCommand) TimerType() timer.Type {
	return c.timerType
}

// Duration returns the countdown length.
func (c CreateTimerCommand) Duration() time.Duration {
	return c.duration
}

// PriorityLevel returns the requested alert priority level.
func (c CreateTimerCommand) PriorityLevel() int {
	return c.priorityLevel
}

// OrderID returns the optional correlated order.
func (c CreateTimerCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// StationID returns the optional correlated station.
func (c CreateTimerCommand) StationID() *kernel.UUID {
	return c.stationID
}

// IsRepeating reports whether the timer should restart after finishing.
func (c CreateTimerCommand) IsRepeating() bool {
	return c.isRepeating
}

// AutoStart reports whether the timer should start immediately.
func (c CreateTimerCommand) AutoStart() bool {
	return c.autoStart
}

func (c *CreateTimerCommand) setTimerID(timerID kernel.UUID) error {
	if err := timerID.Validate(); err != nil {
		return err
	}

	c.timerID = timerID
	return nil
}

package commands

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var ErrExpireTimersCommandIsNotConstructed = errors.New(
	"ExpireTimersCommand must be created via NewExpireTimersCommand constructor",
)

// ExpireTimersCommand represents a request to sweep running timers and mark
// the elapsed ones expired. Carries no parameters; the scheduler issues it
// on a fixed tick.
type ExpireTimersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireTimersCommand creates a command to run one expiry sweep.
func NewExpireTimersCommand() ExpireTimersCommand {
	return ExpireTimersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireTimersCommand) Validate() error {
	return c.guard.Validate(ErrExpireTimersCommandIsNotConstructed)
}

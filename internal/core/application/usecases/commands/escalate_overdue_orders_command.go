package commands

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var ErrEscalateOverdueOrdersCommandIsNotConstructed = errors.New(
	"EscalateOverdueOrdersCommand must be created via NewEscalateOverdueOrdersCommand constructor",
)

// EscalateOverdueOrdersCommand represents a request to raise the priority of
// every order stuck in preparation past the overdue threshold. Carries no
// parameters; the scheduler issues it periodically.
type EscalateOverdueOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalateOverdueOrdersCommand creates a command to run one escalation sweep.
func NewEscalateOverdueOrdersCommand() EscalateOverdueOrdersCommand {
	return EscalateOverdueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c EscalateOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueOrdersCommandIsNotConstructed)
}

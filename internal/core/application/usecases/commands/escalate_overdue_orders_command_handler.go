package commands

import (
	"context"
	"errors"
)

// ErrNoOverdueOrdersFound is returned when an escalation sweep finds no
// overdue order. Callers on a fixed tick treat it as an expected, quiet
// outcome.
var ErrNoOverdueOrdersFound = errors.New("no overdue orders found")

// EscalateOverdueOrdersCommandHandler raises the priority of orders that
// have been in preparation past the overdue threshold, one tier per sweep,
// clamped at the maximum.
type EscalateOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEscalateOverdueOrdersCommandHandler creates a handler for the
// escalation sweep.
func NewEscalateOverdueOrdersCommandHandler(uowFactory OrderUoWFactory) EscalateOverdueOrdersCommandHandler {
	return EscalateOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one escalation sweep within a single transaction.
// Returns ErrNoOverdueOrdersFound when nothing is overdue.
func (h EscalateOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd EscalateOverdueOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	preparing, err := orderRepo.GetAllInPreparingStatus(ctx)
	if err != nil {
		return err
	}

	escalated := 0
	for _, aggregate := range preparing {
		if !aggregate.IsOverdue() {
			continue
		}

		aggregate.EscalatePriority()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		escalated++
	}

	if escalated == 0 {
		return ErrNoOverdueOrdersFound
	}

	return uow.Commit(ctx)
}

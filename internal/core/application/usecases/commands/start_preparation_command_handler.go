package commands

import (
	"context"
)

// StartPreparationCommandHandler moves a confirmed order into Preparing
// status, cascading the transition to its pending items. From this point the
// order participates in the overdue escalation sweep.
type StartPreparationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPreparationCommandHandler creates a handler for starting preparation.
func NewStartPreparationCommandHandler(uowFactory OrderUoWFactory) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the StartPreparation transition, and
// persists the result.
func (h StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartPreparation(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
)

// CreateTimerCommandHandler handles the business logic for timer creation.
// Builds the KitchenTimer aggregate, links the optional order/station
// correlation references, optionally starts the countdown, and persists it.
type CreateTimerCommandHandler struct {
	uowFactory TimerUoWFactory
}

// NewCreateTimerCommandHandler creates a handler for timer creation.
func NewCreateTimerCommandHandler(uowFactory TimerUoWFactory) CreateTimerCommandHandler {
	return CreateTimerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the timer creation command.
func (h CreateTimerCommandHandler) Handle(ctx context.Context, cmd CreateTimerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	priority, err := kernel.NewPriority(cmd.PriorityLevel())
	if err != nil {
		return err
	}

	aggregate, err := timer.NewKitchenTimer(
		cmd.TimerID(), cmd.Label(), cmd.TimerType(), cmd.Duration(), priority, cmd.IsRepeating())
	if err != nil {
		return err
	}

	if orderID := cmd.OrderID(); orderID != nil {
		if err = aggregate.LinkOrder(*orderID); err != nil {
			return err
		}
	}
	if stationID := cmd.StationID(); stationID != nil {
		if err = aggregate.LinkStation(*stationID); err != nil {
			return err
		}
	}

	if cmd.AutoStart() {
		if err = aggregate.Start(); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TimerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

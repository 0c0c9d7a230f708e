package commands

import (
	"context"

	"kitchen/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order and, when the order occupies a
// station, releases the station's workload in the same transaction.
//
// The domain deliberately does not auto-release capacity on cancellation;
// this handler is the caller that carries that responsibility.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory spanning orders and stations so the cancellation and
// the capacity release commit together.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, releases its station assignment if one exists,
// applies the Cancel transition, and persists both aggregates atomically.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if stationID := aggregate.Station(); stationID != nil {
		stationRepo := uow.StationRepository()

		assignedStation, err := stationRepo.Get(ctx, *stationID)
		if err != nil {
			return err
		}

		if err = services.NewStationAssigner().Unassign(aggregate, assignedStation); err != nil {
			return err
		}

		if err = stationRepo.Update(ctx, assignedStation); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"kitchen/internal/core/domain/services"
)

// CompleteOrderCommandHandler closes out a ready order and, when the order
// still occupies a station, releases the station's workload in the same
// transaction. Like cancellation, capacity release on completion is a
// handler responsibility, not a domain side effect.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires a UoWFactory spanning orders and stations so the completion and
// the capacity release commit together.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the Complete transition, releases its
// station assignment if one exists, and persists both aggregates atomically.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.Complete(); err != nil {
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

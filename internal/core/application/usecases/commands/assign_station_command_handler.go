package commands

import (
	"context"

	"kitchen/internal/core/domain/services"
)

// AssignStationCommandHandler orchestrates the order-to-station assignment.
// Loads both aggregates, runs the StationAssigner cross-checks, and persists
// both sides within a single transaction.
//
// Example:
//
//	handler := NewAssignStationCommandHandler(uowFactory)
//	cmd, _ := NewAssignStationCommand(orderID, stationID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    log.Println("Station is full")
//	case errors.Is(err, services.ErrStationIsUnavailable):
//	    log.Println("Station is out of service")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignStationCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignStationCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignStationCommandHandler(uowFactory UoWFactory) AssignStationCommandHandler {
	return AssignStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Retrieves the order and the station, runs the StationAssigner, and updates
// both entities within a single transaction so the workload increment and
// the order's station reference commit together.
func (h AssignStationCommandHandler) Handle(ctx context.Context, cmd AssignStationCommand) error {
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
	stationRepo := uow.StationRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	targetStation, err := stationRepo.Get(ctx, cmd.StationID())
	if err != nil {
		return err
	}

	if err = services.NewStationAssigner().Assign(aggregate, targetStation); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = stationRepo.Update(ctx, targetStation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package services

import (
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/pkg/errs"
)

// Domain errors for station assignment.
var (
	// ErrOrderIsFinished is returned when assigning a completed or cancelled order.
	ErrOrderIsFinished = errors.New("order is completed or cancelled")

	// ErrStationIsUnavailable is returned when the station is inactive or offline.
	ErrStationIsUnavailable = errors.New("station is inactive or offline")
)

// StationAssigner is the domain service that establishes the link between an
// order and a station. It is the only place where order state and station
// capacity are cross-checked: the Order and Station aggregates individually
// know nothing about each other's invariants.
//
// Business rules:
//   - A completed or cancelled order cannot be assigned
//   - An inactive or offline station cannot take orders
//   - A station at capacity cannot take orders
//   - On success both sides are updated together: the station takes the
//     order and the order records the station reference
//
// The assigner mutates in-memory aggregates only. Persisting both sides in
// one transaction is the calling use case's responsibility.
type StationAssigner struct{}

// NewStationAssigner creates a new StationAssigner instance.
func NewStationAssigner() StationAssigner {
	return StationAssigner{}
}

// Assign links the order to the station, incrementing the station's workload.
//
// Parameters:
//   - o: The order to assign (must be valid and not terminal)
//   - s: The station to assign to (must be valid, active, and below capacity)
//
// Returns:
//   - nil on success, with both aggregates updated
//   - ErrOrderIsFinished, ErrStationIsUnavailable, or a CapacityExceededError
//     on rejection, with neither aggregate changed
//
// If recording the station reference on the order fails after the station
// already took the order, the station side is compensated by releasing the
// order again.
func (a StationAssigner) Assign(o *order.Order, s *station.Station) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if o.Status().IsTerminal() {
		return ErrOrderIsFinished
	}
	if !s.IsActive() || s.Status() == station.Offline {
		return ErrStationIsUnavailable
	}
	if s.IsAtCapacity() {
		return errs.NewCapacityExceededError(s.Name(), s.CurrentWorkload()+1, s.Capacity())
	}

	if err := s.TakeOrder(o.ID()); err != nil {
		return err
	}

	if err := o.AssignToStation(s.ID()); err != nil {
		if releaseErr := s.ReleaseOrder(o.ID()); releaseErr != nil {
			return errors.Join(err, releaseErr)
		}
		return err
	}

	return nil
}

// Unassign removes the link between the order and the station, releasing the
// station's workload.
//
// Capacity release is an explicit responsibility of the caller orchestrating
// a cancellation or reassignment; nothing releases capacity automatically.
func (a StationAssigner) Unassign(o *order.Order, s *station.Station) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if err := s.ReleaseOrder(o.ID()); err != nil {
		return err
	}

	o.UnassignFromStation()
	return nil
}

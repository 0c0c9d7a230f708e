package station

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// MaxNameLength bounds the display name of a station.
const MaxNameLength = 100

// Domain errors for station operations.
var (
	// ErrStationIsNotConstructed is returned when using an improperly initialized Station.
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

	// ErrStaffAlreadyAssigned is returned when assigning a staff member twice.
	ErrStaffAlreadyAssigned = errors.New("staff member is already assigned to the station")

	// ErrStaffNotAssigned is returned when unassigning a staff member who is not assigned.
	ErrStaffNotAssigned = errors.New("staff member is not assigned to the station")

	// ErrOrderAlreadyTaken is returned when a station takes the same order twice.
	ErrOrderAlreadyTaken = errors.New("order is already taken by the station")

	// ErrOrderNotTaken is returned when releasing an order the station does not hold.
	ErrOrderNotTaken = errors.New("order is not taken by the station")
)

// Station represents a capacity-bounded work center in the kitchen.
// It is an aggregate root that tracks its operational status, the staff
// working it, and the orders currently occupying its capacity.
//
// Station follows these invariants:
//   - Must have a valid unique identifier, non-empty name, and positive capacity
//   - Workload never drops below zero or exceeds capacity
//   - A staff id appears at most once in the assignment set
//   - An order id appears at most once in the occupancy set
//   - Deactivation forces the status to Offline, activation to Available
//
// Station holds order references by id only. It never embeds Order values,
// and the capacity check against an order's state lives in the assignment
// coordinator, not here.
type Station struct {
	// id is the unique identifier for the station
	id kernel.UUID

	// name is the display name of the station
	name string

	// stationType categorizes the work the station handles
	stationType Type

	// capacity is the maximum concurrent workload
	capacity int

	// status is the current operational state
	status Status

	// isActive reports whether the station is in service at all
	isActive bool

	// currentWorkload counts the units currently occupying the station
	currentWorkload int

	// staffIDs holds the assigned staff, each id at most once
	staffIDs []kernel.UUID

	// orderIDs holds the orders currently taken, each id at most once
	orderIDs []kernel.UUID

	// guard ensures the station was created via NewStation
	guard guard.ConstructorGuard
}

// NewStation creates a new Station with validation.
//
// Parameters:
//   - id: Unique identifier for the station (must be valid UUID)
//   - name: Display name (non-empty, at most MaxNameLength characters)
//   - stationType: Kind of work the station handles
//   - capacity: Maximum concurrent workload (must be positive)
//
// Returns:
//   - *Station: The created station if all validations pass
//   - error: Aggregated validation errors otherwise
//
// The constructor creates the station active, Available, with zero workload
// and no staff or orders assigned.
func NewStation(id kernel.UUID, name string, stationType Type, capacity int) (*Station, error) {
	s := &Station{
		status:   Available,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setType(stationType),
		s.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a Station from persistent storage.
// Unlike NewStation, this constructor restores the persisted status, active
// flag, workload, and the staff and order id sets.
func RestoreStation(
	id kernel.UUID,
	name string,
	stationType Type,
	capacity int,
	status Status,
	isActive bool,
	currentWorkload int,
	staffIDs []kernel.UUID,
	orderIDs []kernel.UUID,
) (*Station, error) {
	s := &Station{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setType(stationType),
		s.setCapacity(capacity),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	if currentWorkload < 0 || currentWorkload > s.capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentWorkload", currentWorkload, 0, s.capacity)
	}

	s.isActive = isActive
	s.currentWorkload = currentWorkload
	s.staffIDs = append([]kernel.UUID(nil), staffIDs...)
	s.orderIDs = append([]kernel.UUID(nil), orderIDs...)

	return s, nil
}

// Validate ensures the Station was properly constructed via NewStation or RestoreStation.
func (s *Station) Validate() error {
	if s == nil {
		return ErrStationIsNotConstructed
	}
	return s.guard.Validate(ErrStationIsNotConstructed)
}

// IsEqual compares two stations by their unique identifiers.
func (s *Station) IsEqual(other *Station) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// Name returns the display name of the station.
func (s *Station) Name() string {
	return s.name
}

// Type returns the kind of work the station handles.
func (s *Station) Type() Type {
	return s.stationType
}

// Capacity returns the maximum concurrent workload.
func (s *Station) Capacity() int {
	return s.capacity
}

// Status returns the current operational state of the station.
func (s *Station) Status() Status {
	return s.status
}

// IsActive reports whether the station is in service.
func (s *Station) IsActive() bool {
	return s.isActive
}

// CurrentWorkload returns the units currently occupying the station.
func (s *Station) CurrentWorkload() int {
	return s.currentWorkload
}

// StaffIDs returns the assigned staff ids.
// The returned slice is a copy; mutating it does not affect the station.
func (s *Station) StaffIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), s.staffIDs...)
}

// OrderIDs returns the ids of the orders currently taken.
// The returned slice is a copy; mutating it does not affect the station.
func (s *Station) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), s.orderIDs...)
}

// IsAtCapacity reports whether the workload reached the capacity.
func (s *Station) IsAtCapacity() bool {
	return s.currentWorkload >= s.capacity
}

// HasAvailableCapacity reports whether the station can hold more workload.
func (s *Station) HasAvailableCapacity() bool {
	return !s.IsAtCapacity()
}

// AvailableCapacity returns how much workload the station can still take.
func (s *Station) AvailableCapacity() int {
	return s.capacity - s.currentWorkload
}

// WorkloadPercentage returns the workload as a percentage of capacity.
func (s *Station) WorkloadPercentage() float64 {
	return float64(s.currentWorkload) / float64(s.capacity) * 100
}

// CanAcceptOrder reports whether the station can take a new order:
// it must be active, Available, and below capacity. Busy, Maintenance,
// and Offline stations all reject.
func (s *Station) CanAcceptOrder() bool {
	return s.isActive && s.status == Available && !s.IsAtCapacity()
}

// Activate puts the station in service and forces the status to Available.
func (s *Station) Activate() {
	s.isActive = true
	s.status = Available
}

// Deactivate takes the station out of service and forces the status to Offline.
// Deactivation does not touch the current workload: orders already taken
// stay until released.
func (s *Station) Deactivate() {
	s.isActive = false
	s.status = Offline
}

// SetMaintenance puts the station into maintenance.
// Allowed from any status.
func (s *Station) SetMaintenance() {
	s.status = Maintenance
}

// SetBusy marks the station as busy.
// Allowed from any status.
func (s *Station) SetBusy() {
	s.status = Busy
}

// SetAvailable marks the station as available.
// Allowed from any status.
func (s *Station) SetAvailable() {
	s.status = Available
}

// AssignStaff adds a staff member to the station.
//
// Returns:
//   - nil on success
//   - error if the id is invalid or the staff member is already assigned
func (s *Station) AssignStaff(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	for _, id := range s.staffIDs {
		if id.IsEqual(staffID) {
			return ErrStaffAlreadyAssigned
		}
	}

	s.staffIDs = append(s.staffIDs, staffID)
	return nil
}

// UnassignStaff removes a staff member from the station.
//
// Returns:
//   - nil on success
//   - error if the staff member is not assigned
func (s *Station) UnassignStaff(staffID kernel.UUID) error {
	for i, id := range s.staffIDs {
		if id.IsEqual(staffID) {
			s.staffIDs = append(s.staffIDs[:i], s.staffIDs[i+1:]...)
			return nil
		}
	}
	return ErrStaffNotAssigned
}

// UpdateWorkload sets the current workload directly.
//
// Returns:
//   - nil on success
//   - CapacityExceededError if the workload would exceed the capacity
//   - ValueIsOutOfRangeError if the workload is negative
//
// The state is unchanged on error.
func (s *Station) UpdateWorkload(workload int) error {
	if workload < 0 {
		return errs.NewValueIsOutOfRangeError("workload", workload, 0, s.capacity)
	}
	if workload > s.capacity {
		return errs.NewCapacityExceededError(s.name, workload, s.capacity)
	}

	s.currentWorkload = workload
	return nil
}

// TakeOrder records an order as occupying the station and increments the
// workload.
//
// Returns:
//   - nil on success
//   - CapacityExceededError if the station is already at capacity
//   - ErrOrderAlreadyTaken if the order is already at the station
func (s *Station) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if s.IsAtCapacity() {
		return errs.NewCapacityExceededError(s.name, s.currentWorkload+1, s.capacity)
	}
	for _, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			return ErrOrderAlreadyTaken
		}
	}

	s.orderIDs = append(s.orderIDs, orderID)
	s.currentWorkload++
	return nil
}

// ReleaseOrder removes an order from the station and decrements the workload.
//
// Returns:
//   - nil on success
//   - ErrOrderNotTaken if the order is not at the station
func (s *Station) ReleaseOrder(orderID kernel.UUID) error {
	for i, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			s.orderIDs = append(s.orderIDs[:i], s.orderIDs[i+1:]...)
			s.currentWorkload--
			return nil
		}
	}
	return ErrOrderNotTaken
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("station name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("station name length", len(name), 1, MaxNameLength)
	}
	s.name = name
	return nil
}

func (s *Station) setType(stationType Type) error {
	if err := stationType.Validate(); err != nil {
		return err
	}
	s.stationType = stationType
	return nil
}

func (s *Station) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity is invalid",
			errors.New("capacity must be positive"),
		)
	}
	s.capacity = capacity
	return nil
}

func (s *Station) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetStationLoadQueryIsNotConstructed = errors.New(
		"GetStationLoadQuery must be created via NewGetStationLoadQuery constructor",
	)
)

// GetStationLoadQuery retrieves the current load of every station.
// Returns capacity and workload figures for the expediter's overview board.
type GetStationLoadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStationLoadQuery creates a query to retrieve station load information.
// This is a parameterless query that fetches all stations regardless of status.
func NewGetStationLoadQuery() GetStationLoadQuery {
	return GetStationLoadQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStationLoadQueryIsNotConstructed if validation fails.
func (q GetStationLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetStationLoadQueryIsNotConstructed)
}

// GetStationLoadQueryResponse represents a station's capacity situation.
type GetStationLoadQueryResponse struct {
	ID              kernel.UUID
	Name            string
	StationType     station.Type
	Status          station.Status
	IsActive        bool
	Capacity        int
	CurrentWorkload int
}

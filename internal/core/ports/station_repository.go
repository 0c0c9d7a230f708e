package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station aggregates.
// Provides methods for storing, retrieving, and querying kitchen stations
// together with their staff assignments and order occupancy.
type StationRepository interface {
	// Add persists a new station aggregate to storage.
	Add(ctx context.Context, aggregate *station.Station) error

	// Update persists changes to an existing station aggregate.
	Update(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// GetAllAvailable retrieves all active stations that can accept orders.
	GetAllAvailable(ctx context.Context) ([]*station.Station, error)
}

package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and preparation progress.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and assignment state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPreparingStatus retrieves all orders currently being prepared.
	// Used by the overdue-order escalation sweep.
	GetAllInPreparingStatus(ctx context.Context) ([]*order.Order, error)
}

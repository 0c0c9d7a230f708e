package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
)

// TimerRepository defines the persistence contract for kitchen timers.
type TimerRepository interface {
	// Add persists a new timer aggregate to storage.
	Add(ctx context.Context, aggregate *timer.KitchenTimer) error

	// Update persists changes to an existing timer aggregate.
	Update(ctx context.Context, aggregate *timer.KitchenTimer) error

	// Get retrieves a timer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*timer.KitchenTimer, error)

	// GetAllRunning retrieves all timers currently counting down.
	// Used by the expiry sweep.
	GetAllRunning(ctx context.Context) ([]*timer.KitchenTimer, error)
}

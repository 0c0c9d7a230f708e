package timerrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTimerRepository implements TimerRepository using GORM.
type GormTimerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTimerRepository creates a new GORM timer repository.
func NewGormTimerRepository(db *gorm.DB, tracker aggregateTracker) *GormTimerRepository {
	return &GormTimerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new timer to the database.
func (r *GormTimerRepository) Add(ctx context.Context, aggregate *timer.KitchenTimer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing timer to the database.
func (r *GormTimerRepository) Update(ctx context.Context, aggregate *timer.KitchenTimer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a timer by ID.
func (r *GormTimerRepository) Get(ctx context.Context, id kernel.UUID) (*timer.KitchenTimer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TimerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("timer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRunning retrieves all timers whose countdown is active.
// Used by the expiry sweep to find candidates.
func (r *GormTimerRepository) GetAllRunning(ctx context.Context) ([]*timer.KitchenTimer, error) {
	var dtos []TimerDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(timer.Running)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	timers := make([]*timer.KitchenTimer, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		timers = append(timers, t)
	}

	return timers, nil
}

// Package timerrepo provides data transfer objects and mapping functions for timer persistence.
package timerrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"

	"github.com/google/uuid"
)

// TimerDTO represents the database structure for persisting kitchen timers.
// Durations are stored as nanoseconds so the countdown accounting survives
// a round trip without precision loss.
type TimerDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Label             string     `gorm:"type:varchar(100);not null"`
	TimerType         int        `gorm:"type:int;not null"`
	OriginalDuration  int64      `gorm:"type:bigint;not null"`
	RemainingDuration int64      `gorm:"type:bigint;not null"`
	Status            int        `gorm:"type:int;not null;index"`
	Priority          int        `gorm:"type:int;not null"`
	OrderID           *uuid.UUID `gorm:"type:uuid;index"`
	StationID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"not null"`
	StartedAt         *time.Time
	ResumedAt         *time.Time
	PausedAt          *time.Time
	CompletedAt       *time.Time
	IsRepeating       bool `gorm:"not null"`
	RepeatCount       int  `gorm:"type:int;not null"`
}

// TableName specifies the database table name for timer entities.
func (TimerDTO) TableName() string {
	return "timers"
}

// fromDomain converts a timer domain aggregate to its database representation.
//
// The stored remainder is a snapshot taken at write time. For a running
// timer the resume point must move to the same instant, otherwise the
// restored timer would subtract the already-snapshotted elapsed interval a
// second time.
func fromDomain(aggregate *timer.KitchenTimer) TimerDTO {
	resumedAt := aggregate.ResumedAt()
	if aggregate.Status() == timer.Running {
		now := time.Now().UTC()
		resumedAt = &now
	}

	return TimerDTO{
		ID:                aggregate.ID().Bytes(),
		Label:             aggregate.Label(),
		TimerType:         int(aggregate.Type()),
		OriginalDuration:  int64(aggregate.OriginalDuration()),
		RemainingDuration: int64(aggregate.RemainingDuration()),
		Status:            int(aggregate.Status()),
		Priority:          aggregate.Priority().Level(),
		OrderID:           uuidPtr(aggregate.Order()),
		StationID:         uuidPtr(aggregate.Station()),
		CreatedBy:         uuidPtr(aggregate.CreatedBy()),
		CreatedAt:         aggregate.CreatedAt(),
		StartedAt:         aggregate.StartedAt(),
		ResumedAt:         resumedAt,
		PausedAt:          aggregate.PausedAt(),
		CompletedAt:       aggregate.CompletedAt(),
		IsRepeating:       aggregate.IsRepeating(),
		RepeatCount:       aggregate.RepeatCount(),
	}
}

// toDomain converts a database DTO to a timer domain aggregate.
func toDomain(dto TimerDTO) (*timer.KitchenTimer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	priority, err := kernel.NewPriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	orderID, err := kernelPtr(dto.OrderID)
	if err != nil {
		return nil, err
	}

	stationID, err := kernelPtr(dto.StationID)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernelPtr(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	return timer.RestoreKitchenTimer(
		id, dto.Label, timer.Type(dto.TimerType),
		time.Duration(dto.OriginalDuration), time.Duration(dto.RemainingDuration),
		timer.Status(dto.Status), priority,
		orderID, stationID, createdBy,
		dto.CreatedAt, dto.StartedAt, dto.ResumedAt, dto.PausedAt, dto.CompletedAt,
		dto.IsRepeating, dto.RepeatCount,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

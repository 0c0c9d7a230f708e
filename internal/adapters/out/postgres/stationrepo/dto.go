// Package stationrepo provides data transfer objects and mapping functions for station persistence.
package stationrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StationDTO represents the database structure for persisting station aggregates.
// Staff and order id sets are stored as Postgres text[] columns since they are
// plain membership sets with no fields of their own.
type StationDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"type:varchar(100);not null"`
	StationType     int            `gorm:"type:int;not null"`
	Capacity        int            `gorm:"type:int;not null"`
	Status          int            `gorm:"type:int;not null;index"`
	IsActive        bool           `gorm:"not null;index"`
	CurrentWorkload int            `gorm:"type:int;not null"`
	StaffIDs        pq.StringArray `gorm:"type:text[]"`
	OrderIDs        pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for station entities.
func (StationDTO) TableName() string {
	return "stations"
}

// fromDomain converts a station domain aggregate to its database representation.
func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		StationType:     int(aggregate.Type()),
		Capacity:        aggregate.Capacity(),
		Status:          int(aggregate.Status()),
		IsActive:        aggregate.IsActive(),
		CurrentWorkload: aggregate.CurrentWorkload(),
		StaffIDs:        idsToStrings(aggregate.StaffIDs()),
		OrderIDs:        idsToStrings(aggregate.OrderIDs()),
	}
}

// toDomain converts a database DTO to a station domain aggregate.
func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	staffIDs, err := stringsToIDs(dto.StaffIDs)
	if err != nil {
		return nil, err
	}

	orderIDs, err := stringsToIDs(dto.OrderIDs)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(
		id, dto.Name, station.Type(dto.StationType), dto.Capacity,
		station.Status(dto.Status), dto.IsActive, dto.CurrentWorkload,
		staffIDs, orderIDs,
	)
}

func idsToStrings(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToIDs(raw pq.StringArray) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

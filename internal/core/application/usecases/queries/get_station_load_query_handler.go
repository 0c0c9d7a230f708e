package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationLoadQueryHandler retrieves station load information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetStationLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetStationLoadQueryHandler creates a handler for station load queries.
// Requires a GORM database connection for query execution.
func NewGetStationLoadQueryHandler(db *gorm.DB) GetStationLoadQueryHandler {
	return GetStationLoadQueryHandler{db: db}
}

// Handle executes the query to retrieve all stations with their load figures.
// Returns a slice of station read models sorted by name.
func (h GetStationLoadQueryHandler) Handle(
	ctx context.Context,
	query GetStationLoadQuery,
) ([]GetStationLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations := make([]GetStationLoadQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			station_type,
			status,
			is_active,
			capacity,
			current_workload
		FROM stations
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stationResp GetStationLoadQueryResponse
		var id uuid.UUID
		var stationType, status int

		err = rows.Scan(
			&id,
			&stationResp.Name,
			&stationType,
			&status,
			&stationResp.IsActive,
			&stationResp.Capacity,
			&stationResp.CurrentWorkload,
		)
		if err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stationResp.ID = stationID
		stationResp.StationType = station.Type(stationType)
		stationResp.Status = station.Status(status)

		stations = append(stations, stationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}

package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves active orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern,
// aggregating the billing total from the item rows in the same statement.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders in any non-terminal status, most urgent first and oldest
// first within the same priority.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.priority,
			o.station_id,
			COALESCE(SUM(i.price_cents * i.quantity), 0) AS total_cents
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.customer_id, o.status, o.priority, o.station_id, o.created_at
		ORDER BY o.priority DESC, o.created_at
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var stationID *uuid.UUID
		var status, priority int
		var totalCents int64

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&priority,
			&stationID,
			&totalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = ownerID

		orderResp.Status = order.Status(status)

		orderPriority, prioErr := kernel.NewPriority(priority)
		if prioErr != nil {
			return nil, prioErr
		}
		orderResp.Priority = orderPriority

		total, moneyErr := kernel.NewMoneyFromCents(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.TotalAmount = total

		if stationID != nil {
			assigned, idErr := kernel.UUIDFromBytes((*stationID)[:])
			if idErr != nil {
				return nil, idErr
			}
			orderResp.StationID = &assigned
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

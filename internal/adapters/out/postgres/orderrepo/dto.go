// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with the items as
// a child table linked by foreign key.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	TableID            *uuid.UUID `gorm:"type:uuid"`
	Priority           int        `gorm:"type:int;not null"`
	Status             int        `gorm:"type:int;not null;index"`
	Instructions       string     `gorm:"type:varchar(1000)"`
	StationID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time  `gorm:"not null"`
	ConfirmedAt        *time.Time
	StartedAt          *time.Time
	ReadyAt            *time.Time
	CompletedAt        *time.Time
	CancellationReason string     `gorm:"type:varchar(500)"`
	Items              []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order items.
// Links to the parent order via foreign key and embeds the recipe snapshot
// columns so an order never depends on live menu data.
type ItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID            uuid.UUID `gorm:"type:uuid;not null"`
	RecipeName          string    `gorm:"type:varchar(255);not null"`
	PriceCents          int64     `gorm:"type:bigint;not null"`
	PrepTime            int64     `gorm:"type:bigint;not null"`
	CookTime            int64     `gorm:"type:bigint;not null"`
	Quantity            int       `gorm:"type:int;not null"`
	SpecialInstructions string    `gorm:"type:varchar(500)"`
	Status              int       `gorm:"type:int;not null"`
	StartedAt           *time.Time
	CompletedAt         *time.Time
	DeliveredAt         *time.Time
	CancellationReason  string `gorm:"type:varchar(500)"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the aggregate and all of its items, flattening recipe snapshots into
// item columns. Durations are stored as nanoseconds.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:                  item.ID().Bytes(),
			OrderID:             orderID,
			RecipeID:            item.Recipe().ID().Bytes(),
			RecipeName:          item.Recipe().Name(),
			PriceCents:          item.Recipe().Price().Cents(),
			PrepTime:            int64(item.Recipe().PrepTime()),
			CookTime:            int64(item.Recipe().CookTime()),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Status:              int(item.Status()),
			StartedAt:           item.StartedAt(),
			CompletedAt:         item.CompletedAt(),
			DeliveredAt:         item.DeliveredAt(),
			CancellationReason:  item.CancellationReason(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		CustomerID:         aggregate.CustomerID().Bytes(),
		TableID:            uuidPtr(aggregate.TableID()),
		Priority:           aggregate.Priority().Level(),
		Status:             int(aggregate.Status()),
		Instructions:       aggregate.Instructions(),
		StationID:          uuidPtr(aggregate.Station()),
		CreatedAt:          aggregate.CreatedAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		StartedAt:          aggregate.StartedAt(),
		ReadyAt:            aggregate.ReadyAt(),
		CompletedAt:        aggregate.CompletedAt(),
		CancellationReason: aggregate.CancellationReason(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernelPtr(dto.TableID)
	if err != nil {
		return nil, err
	}

	stationID, err := kernelPtr(dto.StationID)
	if err != nil {
		return nil, err
	}

	priority, err := kernel.NewPriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, tableID, items,
		priority, order.Status(dto.Status), dto.Instructions, stationID,
		dto.CreatedAt, dto.ConfirmedAt, dto.StartedAt, dto.ReadyAt, dto.CompletedAt,
		dto.CancellationReason,
	)
}

// itemToDomain converts an item DTO to a domain entity.
// Rebuilds the recipe snapshot first, then uses RestoreItem to reconstruct
// the entity with its persisted state.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipeID, err := kernel.UUIDFromBytes(dto.RecipeID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	recipe, err := order.NewRecipe(
		recipeID, dto.RecipeName, price,
		time.Duration(dto.PrepTime), time.Duration(dto.CookTime))
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, recipe, dto.Quantity, dto.SpecialInstructions,
		order.ItemStatus(dto.Status),
		dto.StartedAt, dto.CompletedAt, dto.DeliveredAt,
		dto.CancellationReason,
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

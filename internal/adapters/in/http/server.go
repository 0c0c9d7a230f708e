// Package http exposes the kitchen use cases over a REST API.
// Wire models are declared here; conversion to commands and queries happens
// at the handler boundary so the application layer never sees HTTP types.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one order line in a create-order request. The recipe
// snapshot travels with the request so the kitchen never depends on live
// menu data.
type NewOrderItem struct {
	RecipeID            uuid.UUID `json:"recipeId"`
	RecipeName          string    `json:"recipeName"`
	PriceCents          int64     `json:"priceCents"`
	PrepTimeMinutes     int       `json:"prepTimeMinutes"`
	CookTimeMinutes     int       `json:"cookTimeMinutes"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// NewOrder is the create-order request body.
type NewOrder struct {
	CustomerID   uuid.UUID      `json:"customerId"`
	TableID      *uuid.UUID     `json:"tableId,omitempty"`
	Items        []NewOrderItem `json:"items"`
	Instructions string         `json:"instructions,omitempty"`
}

// CancelOrder is the cancel-order request body.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// AssignStation is the assign-station request body.
type AssignStation struct {
	StationID uuid.UUID `json:"stationId"`
}

// NewTimer is the create-timer request body.
type NewTimer struct {
	Label           string     `json:"label"`
	Type            string     `json:"type"`
	DurationSeconds int64      `json:"durationSeconds"`
	Priority        int        `json:"priority"`
	OrderID         *uuid.UUID `json:"orderId,omitempty"`
	StationID       *uuid.UUID `json:"stationId,omitempty"`
	Repeating       bool       `json:"repeating"`
	AutoStart       bool       `json:"autoStart"`
}

// ActiveOrder is one row of the active-orders board.
type ActiveOrder struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  uuid.UUID  `json:"customerId"`
	Status      string     `json:"status"`
	Priority    int        `json:"priority"`
	TotalCents  int64      `json:"totalCents"`
	TotalAmount string     `json:"totalAmount"`
	StationID   *uuid.UUID `json:"stationId,omitempty"`
}

// StationLoad is one row of the station overview board.
type StationLoad struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Active          bool      `json:"active"`
	Capacity        int       `json:"capacity"`
	CurrentWorkload int       `json:"currentWorkload"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	startPreparationHandler commands.StartPreparationCommandHandler
	markOrderReadyHandler   commands.MarkOrderReadyCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	assignStationHandler    commands.AssignStationCommandHandler
	createTimerHandler      commands.CreateTimerCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getStationLoadHandler  queries.GetStationLoadQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	startPreparationHandler commands.StartPreparationCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignStationHandler commands.AssignStationCommandHandler,
	createTimerHandler commands.CreateTimerCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStationLoadHandler queries.GetStationLoadQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		confirmOrderHandler:     confirmOrderHandler,
		startPreparationHandler: startPreparationHandler,
		markOrderReadyHandler:   markOrderReadyHandler,
		completeOrderHandler:    completeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		assignStationHandler:    assignStationHandler,
		createTimerHandler:      createTimerHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getStationLoadHandler:   getStationLoadHandler,
	}
}

// RegisterRoutes mounts all kitchen endpoints under /api/v1.
func RegisterRoutes(e *echo.Echo, s *Server) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/start", s.StartPreparation)
	api.POST("/orders/:orderId/ready", s.MarkOrderReady)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/station", s.AssignStation)
	api.GET("/orders/active", s.GetActiveOrders)

	api.POST("/timers", s.CreateTimer)
	api.GET("/stations/load", s.GetStationLoad)
}

// CreateOrder handles POST /api/v1/orders - registers a new kitchen order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	var tableID *kernel.UUID
	if newOrder.TableID != nil {
		converted, idErr := kernel.UUIDFromBytes((*newOrder.TableID)[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid table id: "+idErr.Error())
		}
		tableID = &converted
	}

	items := make([]commands.ItemSpec, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		recipeID, idErr := kernel.UUIDFromBytes(item.RecipeID[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid recipe id: "+idErr.Error())
		}
		items = append(items, commands.ItemSpec{
			RecipeID:            recipeID,
			RecipeName:          item.RecipeName,
			PriceCents:          item.PriceCents,
			PrepTime:            time.Duration(item.PrepTimeMinutes) * time.Minute,
			CookTime:            time.Duration(item.CookTimeMinutes) * time.Minute,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, tableID, items, newOrder.Instructions)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]uuid.UUID{"id": orderID.Bytes()})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPreparation handles POST /api/v1/orders/{orderId}/start.
func (s *Server) StartPreparation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartPreparationCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.startPreparationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to start preparation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to mark order ready")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignStation handles POST /api/v1/orders/{orderId}/station.
func (s *Server) AssignStation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AssignStation
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stationID, err := kernel.UUIDFromBytes(body.StationID[:])
	if err != nil {
		return badRequest(ctx, "Invalid station id: "+err.Error())
	}

	cmd, err := commands.NewAssignStationCommand(orderID, stationID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to assign station")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTimer handles POST /api/v1/timers - registers a new kitchen timer.
func (s *Server) CreateTimer(ctx echo.Context) error {
	var newTimer NewTimer
	if err := ctx.Bind(&newTimer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	timerType := parseTimerType(newTimer.Type)

	var orderID *kernel.UUID
	if newTimer.OrderID != nil {
		converted, idErr := kernel.UUIDFromBytes((*newTimer.OrderID)[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+idErr.Error())
		}
		orderID = &converted
	}

	var stationID *kernel.UUID
	if newTimer.StationID != nil {
		converted, idErr := kernel.UUIDFromBytes((*newTimer.StationID)[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid station id: "+idErr.Error())
		}
		stationID = &converted
	}

	priorityLevel := newTimer.Priority
	if priorityLevel == 0 {
		priorityLevel = kernel.DefaultPriority().Level()
	}

	timerID := kernel.NewUUID()
	cmd, err := commands.NewCreateTimerCommand(
		timerID, newTimer.Label, timerType,
		time.Duration(newTimer.DurationSeconds)*time.Second,
		priorityLevel, orderID, stationID,
		newTimer.Repeating, newTimer.AutoStart)
	if err != nil {
		return badRequest(ctx, "Invalid timer data: "+err.Error())
	}

	if handleErr := s.createTimerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to create timer")
	}

	return ctx.JSON(http.StatusCreated, map[string]uuid.UUID{"id": timerID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves the display board.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, activeOrder := range orders {
		response[i] = ActiveOrder{
			ID:          activeOrder.ID.Bytes(),
			CustomerID:  activeOrder.CustomerID.Bytes(),
			Status:      activeOrder.Status.String(),
			Priority:    activeOrder.Priority.Level(),
			TotalCents:  activeOrder.TotalAmount.Cents(),
			TotalAmount: activeOrder.TotalAmount.String(),
		}
		if activeOrder.StationID != nil {
			stationID := activeOrder.StationID.Bytes()
			response[i].StationID = &stationID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStationLoad handles GET /api/v1/stations/load - retrieves the station overview.
func (s *Server) GetStationLoad(ctx echo.Context) error {
	query := queries.NewGetStationLoadQuery()

	stations, err := s.getStationLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve stations",
		})
	}

	response := make([]StationLoad, len(stations))
	for i, load := range stations {
		response[i] = StationLoad{
			ID:              load.ID.Bytes(),
			Name:            load.Name,
			Type:            load.StationType.String(),
			Status:          load.Status.String(),
			Active:          load.IsActive,
			Capacity:        load.Capacity,
			CurrentWorkload: load.CurrentWorkload,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseTimerType maps a wire string to a timer type.
// Unknown strings map to TypeUnknown and fail domain validation downstream.
func parseTimerType(raw string) timer.Type {
	switch strings.ToLower(raw) {
	case "cooking":
		return timer.TypeCooking
	case "prep":
		return timer.TypePrep
	case "foodsafety", "food_safety":
		return timer.TypeFoodSafety
	case "cleaning":
		return timer.TypeCleaning
	case "reminder":
		return timer.TypeReminder
	default:
		return timer.TypeUnknown
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP statuses: missing aggregates to
// 404, domain conflicts to 409, validation failures to 400, the rest to 500.
func writeError(ctx echo.Context, err error, fallback string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, services.ErrOrderIsFinished),
		errors.Is(err, services.ErrStationIsUnavailable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: fallback + ": " + err.Error(),
	})
}

package order_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, items, "")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		tableID := kernel.NewUUID()
		item := mustItem(t, recipe, 2)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), &tableID, []*order.Item{item}, "no onions")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, kernel.PriorityLevelMedium, o.Priority().Level())
		assert.Equal(t, "no onions", o.Instructions())
		assert.Equal(t, &tableID, o.TableID())
		assert.Nil(t, o.Station())
		assert.Len(t, o.Items(), 1)
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with oversized instructions", func(t *testing.T) {
		instructions := make([]byte, order.MaxOrderInstructionsLength+1)
		for i := range instructions {
			instructions[i] = 'x'
		}

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			[]*order.Item{mustItem(t, recipe, 1)}, string(instructions))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail validation for directly instantiated order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_DerivedValues(t *testing.T) {
	t.Run("should sum item totals and take max estimate", func(t *testing.T) {
		pizza := mustItem(t, mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute), 1)
		salad := mustItem(t, mustRecipe(t, "Side Salad", 499, 5*time.Minute, 8*time.Minute), 1)

		o := mustOrder(t, pizza, salad)

		assert.Equal(t, int64(1798), o.TotalAmount().Cents())
		assert.Equal(t, "$17.98", o.TotalAmount().String())
		assert.Equal(t, 25*time.Minute, o.EstimatedTime())
	})

	t.Run("should count units across items", func(t *testing.T) {
		recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

		o := mustOrder(t, mustItem(t, recipe, 3), mustItem(t, recipe, 2))

		assert.Equal(t, 5, o.ItemCount())
	})

	t.Run("should recompute total after item changes", func(t *testing.T) {
		recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)
		item := mustItem(t, recipe, 1)
		o := mustOrder(t, item)

		require.NoError(t, o.UpdateItemQuantity(item.ID(), 2))
		assert.Equal(t, int64(2598), o.TotalAmount().Cents())

		extra := mustItem(t, recipe, 1)
		require.NoError(t, o.AddItem(extra))
		assert.Equal(t, int64(3897), o.TotalAmount().Cents())

		require.NoError(t, o.RemoveItem(extra.ID()))
		assert.Equal(t, int64(2598), o.TotalAmount().Cents())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should progress through the full lifecycle cascading to items", func(t *testing.T) {
		item := mustItem(t, recipe, 1)
		o := mustOrder(t, item)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, order.ItemPending, o.Items()[0].Status())

		require.NoError(t, o.StartPreparation())
		assert.Equal(t, order.Preparing, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, order.ItemPreparing, o.Items()[0].Status())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, order.ItemReady, o.Items()[0].Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, order.ItemDelivered, o.Items()[0].Status())
	})

	t.Run("should leave individually cancelled items alone during cascade", func(t *testing.T) {
		kept := mustItem(t, recipe, 1)
		dropped := mustItem(t, recipe, 1)
		o := mustOrder(t, kept, dropped)

		require.NoError(t, o.CancelItem(dropped.ID(), "out of stock"))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparation())

		items := o.Items()
		assert.Equal(t, order.ItemPreparing, items[0].Status())
		assert.Equal(t, order.ItemCancelled, items[1].Status())
	})

	t.Run("should not skip lifecycle steps", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))

		err := o.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should cancel preparing order with reason", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparation())

		require.NoError(t, o.Cancel("customer request"))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "customer request", o.CancellationReason())
		assert.False(t, o.CanBeCancelled())
		assert.Equal(t, order.ItemCancelled, o.Items()[0].Status())
	})

	t.Run("should require cancellation reason", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))

		err := o.Cancel("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject cancelling a completed order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparation())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Complete())

		err := o.Cancel("too late")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_ItemManagement(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should reject removing the sole remaining item", func(t *testing.T) {
		item := mustItem(t, recipe, 1)
		o := mustOrder(t, item)

		err := o.RemoveItem(item.ID())

		require.ErrorIs(t, err, order.ErrLastItemCannotBeRemoved)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reject removing an unknown item", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1), mustItem(t, recipe, 1))

		err := o.RemoveItem(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrItemNotFound)
	})

	t.Run("should reject adding a duplicate item", func(t *testing.T) {
		item := mustItem(t, recipe, 1)
		o := mustOrder(t, item)

		err := o.AddItem(item)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject item changes after confirmation", func(t *testing.T) {
		item := mustItem(t, recipe, 1)
		o := mustOrder(t, item)
		require.NoError(t, o.Confirm())

		assert.False(t, o.CanBeModified())
		require.ErrorIs(t, o.AddItem(mustItem(t, recipe, 1)), order.ErrOrderIsNotModifiable)
		require.ErrorIs(t, o.RemoveItem(item.ID()), order.ErrOrderIsNotModifiable)
		require.ErrorIs(t, o.UpdateItemQuantity(item.ID(), 2), order.ErrOrderIsNotModifiable)
		require.ErrorIs(t, o.UpdateItemInstructions(item.ID(), "rush"), order.ErrOrderIsNotModifiable)
	})
}

func TestOrder_Priority(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should escalate one tier at a time and clamp at critical", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))

		assert.False(t, o.RequiresImmediateAttention())

		o.EscalatePriority()
		assert.Equal(t, kernel.PriorityLevelHigh, o.Priority().Level())

		o.EscalatePriority()
		assert.Equal(t, kernel.PriorityLevelUrgent, o.Priority().Level())
		assert.True(t, o.RequiresImmediateAttention())

		o.EscalatePriority()
		o.EscalatePriority()
		assert.Equal(t, kernel.PriorityLevelCritical, o.Priority().Level())
	})
}

func TestOrder_StationAssignment(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should set and clear the station reference", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))
		stationID := kernel.NewUUID()

		require.NoError(t, o.AssignToStation(stationID))
		require.NotNil(t, o.Station())
		assert.True(t, o.Station().IsEqual(stationID))

		o.UnassignFromStation()
		assert.Nil(t, o.Station())
	})

	t.Run("should reject an invalid station id", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))

		err := o.AssignToStation(kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, o.Station())
	})
}

func TestOrder_IsOverdue(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should report overdue when preparing past the threshold", func(t *testing.T) {
		startedAt := time.Now().UTC().Add(-45 * time.Minute)
		confirmedAt := startedAt.Add(-time.Minute)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			[]*order.Item{mustItem(t, recipe, 1)},
			kernel.DefaultPriority(), order.Preparing, "", nil,
			confirmedAt.Add(-time.Minute), &confirmedAt, &startedAt, nil, nil, "")
		require.NoError(t, err)

		assert.True(t, o.IsOverdue())
	})

	t.Run("should not report overdue outside preparing", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, recipe, 1))

		assert.False(t, o.IsOverdue())
	})
}

func TestRestoreOrder(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should restore order with persisted state", func(t *testing.T) {
		stationID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		confirmedAt := createdAt.Add(time.Minute)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			[]*order.Item{mustItem(t, recipe, 2)},
			kernel.PriorityHigh(), order.Confirmed, "rush", &stationID,
			createdAt, &confirmedAt, nil, nil, nil, "")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, kernel.PriorityLevelHigh, o.Priority().Level())
		assert.Equal(t, &stationID, o.Station())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should fail with invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			[]*order.Item{mustItem(t, recipe, 1)},
			kernel.DefaultPriority(), order.Unknown, "", nil,
			time.Now().UTC(), nil, nil, nil, nil, "")

		require.Error(t, err)
	})
}

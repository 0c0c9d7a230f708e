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

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	money, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return money
}

func mustRecipe(t *testing.T, name string, cents int64, prepTime, cookTime time.Duration) order.Recipe {
	t.Helper()

	recipe, err := order.NewRecipe(kernel.NewUUID(), name, mustMoney(t, cents), prepTime, cookTime)
	require.NoError(t, err)
	return recipe
}

func mustItem(t *testing.T, recipe order.Recipe, quantity int) *order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), recipe, quantity, "")
	require.NoError(t, err)
	return item
}

func TestNewRecipe(t *testing.T) {
	t.Run("should create recipe with valid parameters", func(t *testing.T) {
		recipe, err := order.NewRecipe(
			kernel.NewUUID(), "Margherita", mustMoney(t, 1299), 10*time.Minute, 15*time.Minute)

		require.NoError(t, err)
		require.NoError(t, recipe.Validate())
		assert.Equal(t, "Margherita", recipe.Name())
		assert.Equal(t, int64(1299), recipe.Price().Cents())
		assert.Equal(t, 25*time.Minute, recipe.EstimatedTime())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewRecipe(
			kernel.NewUUID(), "", mustMoney(t, 1299), 10*time.Minute, 15*time.Minute)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative times", func(t *testing.T) {
		_, err := order.NewRecipe(
			kernel.NewUUID(), "Margherita", mustMoney(t, 1299), -time.Minute, 15*time.Minute)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero combined time", func(t *testing.T) {
		_, err := order.NewRecipe(kernel.NewUUID(), "Margherita", mustMoney(t, 1299), 0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var recipe order.Recipe

		require.ErrorIs(t, recipe.Validate(), order.ErrRecipeIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	recipe := mustRecipe(t, "Caesar Salad", 899, 5*time.Minute, 0)

	t.Run("should create item with valid parameters", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), recipe, 2, "extra dressing")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, order.ItemPending, item.Status())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "extra dressing", item.SpecialInstructions())
		assert.Nil(t, item.StartedAt())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), recipe, 0, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with quantity above maximum", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), recipe, order.MaxItemQuantity+1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with oversized special instructions", func(t *testing.T) {
		instructions := make([]byte, order.MaxItemInstructionsLength+1)
		for i := range instructions {
			instructions[i] = 'x'
		}

		_, err := order.NewItem(kernel.NewUUID(), recipe, 1, string(instructions))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with unconstructed recipe", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), order.Recipe{}, 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrRecipeIsNotConstructed)
	})
}

func TestItem_TotalPrice(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)
		item := mustItem(t, recipe, 3)

		assert.Equal(t, int64(3897), item.TotalPrice().Cents())
	})

	t.Run("should recompute after quantity update", func(t *testing.T) {
		recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)
		item := mustItem(t, recipe, 1)

		require.NoError(t, item.UpdateQuantity(2))

		assert.Equal(t, int64(2598), item.TotalPrice().Cents())
	})
}

func TestItem_Lifecycle(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should progress through the full lifecycle with timestamps", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		require.NoError(t, item.StartPreparation())
		assert.Equal(t, order.ItemPreparing, item.Status())
		require.NotNil(t, item.StartedAt())

		require.NoError(t, item.CompletePreparation())
		assert.Equal(t, order.ItemReady, item.Status())
		require.NotNil(t, item.CompletedAt())

		require.NoError(t, item.Deliver())
		assert.Equal(t, order.ItemDelivered, item.Status())
		require.NotNil(t, item.DeliveredAt())
		assert.True(t, item.IsCompleted())
	})

	t.Run("should cancel with reason", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		require.NoError(t, item.Cancel("out of stock"))

		assert.Equal(t, order.ItemCancelled, item.Status())
		assert.Equal(t, "out of stock", item.CancellationReason())
	})

	t.Run("should require cancellation reason", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		err := item.Cancel("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.ItemPending, item.Status())
	})

	t.Run("should reject delivery before preparation", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		err := item.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestItem_Modification(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should update quantity and instructions while pending", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		require.NoError(t, item.UpdateQuantity(5))
		require.NoError(t, item.UpdateSpecialInstructions("well done"))

		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "well done", item.SpecialInstructions())
	})

	t.Run("should reject modification after preparation starts", func(t *testing.T) {
		item := mustItem(t, recipe, 1)
		require.NoError(t, item.StartPreparation())

		require.ErrorIs(t, item.UpdateQuantity(5), order.ErrItemIsNotModifiable)
		require.ErrorIs(t, item.UpdateSpecialInstructions("well done"), order.ErrItemIsNotModifiable)
		assert.Equal(t, 1, item.Quantity())
	})

	t.Run("should reject out of range quantity while pending", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		err := item.UpdateQuantity(order.MaxItemQuantity + 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 1, item.Quantity())
	})
}

func TestRestoreItem(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should restore item with persisted state", func(t *testing.T) {
		startedAt := time.Now().UTC().Add(-20 * time.Minute)

		item, err := order.RestoreItem(
			kernel.NewUUID(), recipe, 2, "", order.ItemPreparing, &startedAt, nil, nil, "")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, order.ItemPreparing, item.Status())
		assert.Equal(t, &startedAt, item.StartedAt())
	})

	t.Run("should fail with invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreItem(
			kernel.NewUUID(), recipe, 2, "", order.ItemStatusUnknown, nil, nil, nil, "")

		require.Error(t, err)
	})
}

func TestItem_IsOverdue(t *testing.T) {
	recipe := mustRecipe(t, "Margherita", 1299, 10*time.Minute, 15*time.Minute)

	t.Run("should report overdue when preparing longer than the estimate", func(t *testing.T) {
		startedAt := time.Now().UTC().Add(-30 * time.Minute)
		item, err := order.RestoreItem(
			kernel.NewUUID(), recipe, 1, "", order.ItemPreparing, &startedAt, nil, nil, "")
		require.NoError(t, err)

		assert.True(t, item.IsOverdue())
	})

	t.Run("should not report overdue while pending", func(t *testing.T) {
		item := mustItem(t, recipe, 1)

		assert.False(t, item.IsOverdue())
	})

	t.Run("should not report overdue within the estimate", func(t *testing.T) {
		startedAt := time.Now().UTC().Add(-5 * time.Minute)
		item, err := order.RestoreItem(
			kernel.NewUUID(), recipe, 1, "", order.ItemPreparing, &startedAt, nil, nil, "")
		require.NoError(t, err)

		assert.False(t, item.IsOverdue())
	})
}

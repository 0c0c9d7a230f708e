package kernel_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	t.Run("should create priority for each valid level", func(t *testing.T) {
		for level := 1; level <= 5; level++ {
			p, err := kernel.NewPriority(level)

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, level, p.Level())
		}
	})

	t.Run("should fail with level below range", func(t *testing.T) {
		_, err := kernel.NewPriority(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with level above range", func(t *testing.T) {
		_, err := kernel.NewPriority(6)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDefaultPriority(t *testing.T) {
	t.Run("should default to medium", func(t *testing.T) {
		p := kernel.DefaultPriority()

		assert.Equal(t, kernel.PriorityLevelMedium, p.Level())
		assert.True(t, p.IsEqual(kernel.PriorityMedium()))
	})
}

func TestPriority_Escalate(t *testing.T) {
	t.Run("should raise one tier per escalation", func(t *testing.T) {
		p := kernel.PriorityLow()

		p = p.Escalate()

		assert.Equal(t, kernel.PriorityLevelMedium, p.Level())
	})

	t.Run("should reach critical after four escalations from low", func(t *testing.T) {
		p := kernel.PriorityLow()

		for range 4 {
			p = p.Escalate()
		}

		assert.Equal(t, kernel.PriorityLevelCritical, p.Level())
	})

	t.Run("should be idempotent at ceiling", func(t *testing.T) {
		p := kernel.PriorityCritical()

		escalated := p.Escalate()

		assert.True(t, escalated.IsEqual(p))
		assert.Equal(t, kernel.PriorityLevelCritical, escalated.Level())
	})

	t.Run("should not mutate the original value", func(t *testing.T) {
		p := kernel.PriorityLow()

		_ = p.Escalate()

		assert.Equal(t, kernel.PriorityLevelLow, p.Level())
	})
}

func TestPriority_IsAtLeast(t *testing.T) {
	t.Run("should compare tiers", func(t *testing.T) {
		assert.True(t, kernel.PriorityUrgent().IsAtLeast(kernel.PriorityUrgent()))
		assert.True(t, kernel.PriorityCritical().IsAtLeast(kernel.PriorityUrgent()))
		assert.False(t, kernel.PriorityHigh().IsAtLeast(kernel.PriorityUrgent()))
	})
}

func TestPriority_String(t *testing.T) {
	t.Run("should return tier names", func(t *testing.T) {
		assert.Equal(t, "Low", kernel.PriorityLow().String())
		assert.Equal(t, "Medium", kernel.PriorityMedium().String())
		assert.Equal(t, "High", kernel.PriorityHigh().String())
		assert.Equal(t, "Urgent", kernel.PriorityUrgent().String())
		assert.Equal(t, "Critical", kernel.PriorityCritical().String())
	})

	t.Run("should return Unknown for zero value", func(t *testing.T) {
		var p kernel.Priority

		assert.Equal(t, "Unknown", p.String())
	})
}

func TestPriority_Validate(t *testing.T) {
	t.Run("should fail validation for zero value", func(t *testing.T) {
		var p kernel.Priority

		require.Error(t, p.Validate())
	})
}

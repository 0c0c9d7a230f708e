package timerrepo

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midCountdownTimer builds a running timer that started elapsed ago on a
// countdown of duration.
func midCountdownTimer(t *testing.T, duration, elapsed time.Duration) *timer.KitchenTimer {
	t.Helper()

	startedAt := time.Now().UTC().Add(-elapsed)
	kt, err := timer.RestoreKitchenTimer(
		kernel.NewUUID(), "braise", timer.TypeCooking,
		duration, duration, timer.Running, kernel.DefaultPriority(),
		nil, nil, nil, startedAt, &startedAt, &startedAt, nil, nil, false, 0)
	require.NoError(t, err)
	return kt
}

func TestTimerDTO_RunningRoundTripKeepsRemainder(t *testing.T) {
	kt := midCountdownTimer(t, 10*time.Minute, 4*time.Minute)
	liveRemaining := kt.RemainingDuration()
	require.InDelta(t, (6 * time.Minute).Seconds(), liveRemaining.Seconds(), 1)

	dto := fromDomain(kt)
	restored, err := toDomain(dto)

	require.NoError(t, err)
	assert.Equal(t, timer.Running, restored.Status())
	// The restored countdown continues from the snapshot, not from the
	// original resume point: the elapsed 4 minutes must not be subtracted
	// again.
	assert.InDelta(t, liveRemaining.Seconds(), restored.RemainingDuration().Seconds(), 1)
}

func TestTimerDTO_RunningSnapshotMovesResumePoint(t *testing.T) {
	kt := midCountdownTimer(t, 10*time.Minute, 4*time.Minute)

	dto := fromDomain(kt)

	require.NotNil(t, dto.ResumedAt)
	assert.WithinDuration(t, time.Now().UTC(), *dto.ResumedAt, time.Second)
	assert.InDelta(t,
		kt.RemainingDuration().Seconds(),
		time.Duration(dto.RemainingDuration).Seconds(), 1)
}

func TestTimerDTO_PausedRoundTripKeepsFrozenRemainder(t *testing.T) {
	kt, err := timer.NewKitchenTimer(
		kernel.NewUUID(), "proof", timer.TypePrep, 20*time.Minute, kernel.DefaultPriority(), false)
	require.NoError(t, err)
	require.NoError(t, kt.Start())
	require.NoError(t, kt.Pause())
	frozen := kt.RemainingDuration()

	dto := fromDomain(kt)
	restored, err := toDomain(dto)

	require.NoError(t, err)
	assert.Equal(t, timer.Paused, restored.Status())
	assert.Equal(t, frozen, restored.RemainingDuration())
	// Paused timers keep their historical resume point untouched.
	require.NotNil(t, kt.ResumedAt())
	require.NotNil(t, dto.ResumedAt)
	assert.Equal(t, *kt.ResumedAt(), *dto.ResumedAt)
}

package timer

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

const (
	// MaxLabelLength bounds the display label of a timer.
	MaxLabelLength = 100

	// MinDuration is the shortest duration a timer may be created with.
	MinDuration = time.Second
	// MaxDuration is the longest duration a timer may hold, including extensions.
	MaxDuration = 10 * time.Hour
)

// Domain errors for timer operations.
var (
	// ErrTimerIsNotConstructed is returned when using an improperly initialized KitchenTimer.
	ErrTimerIsNotConstructed = errors.New("KitchenTimer must be created via NewKitchenTimer constructor")

	// ErrTimerIsNotRepeatable is returned when repeating a timer that is not
	// marked repeating or has not reached a terminal state yet.
	ErrTimerIsNotRepeatable = errors.New("timer must be repeating and finished to repeat")
)

// KitchenTimer represents a countdown tied to a kitchen activity: a cooking
// step, a prep task, a recurring food-safety check.
//
// The timer is an independent state machine. It may carry weak references to
// an order and a station for correlation, but nothing in its lifecycle
// depends on their state.
//
// Countdown accounting works against the wall clock: while the timer runs,
// the remaining duration decreases with elapsed time since the last resume;
// pausing freezes the remainder. The timer itself never fires: an external
// scheduler sweeps running timers and calls MarkExpired when the countdown
// runs out without an explicit Complete.
type KitchenTimer struct {
	// id is the unique identifier for the timer
	id kernel.UUID

	// label is the display label of the timer
	label string

	// timerType categorizes the activity the timer paces
	timerType Type

	// originalDuration is the full countdown length, including extensions
	originalDuration time.Duration

	// remainingDuration is the frozen remainder as of the last transition
	remainingDuration time.Duration

	// status is the current state in the timer lifecycle
	status Status

	// priority drives alert ordering on the kitchen display
	priority kernel.Priority

	// orderID, stationID, createdBy are weak correlation references
	orderID   *kernel.UUID
	stationID *kernel.UUID
	createdBy *kernel.UUID

	// createdAt is when the timer was created
	createdAt time.Time

	// startedAt is when the timer first started
	startedAt *time.Time

	// resumedAt is when the timer last entered Running
	resumedAt *time.Time

	// pausedAt is when the timer last entered Paused
	pausedAt *time.Time

	// completedAt is when the timer reached a terminal state
	completedAt *time.Time

	// isRepeating marks the timer as restartable after it finishes
	isRepeating bool

	// repeatCount counts how many times the timer has been repeated
	repeatCount int

	// guard ensures the timer was created via NewKitchenTimer
	guard guard.ConstructorGuard
}

// NewKitchenTimer creates a new KitchenTimer in Created status with validation.
//
// Parameters:
//   - id: Unique identifier for the timer (must be valid UUID)
//   - label: Display label (non-empty, at most MaxLabelLength characters)
//   - timerType: Activity category
//   - duration: Countdown length (within [MinDuration, MaxDuration])
//   - priority: Alert priority (must be a constructed Priority)
//   - isRepeating: Whether the timer can be repeated after it finishes
//
// Returns:
//   - *KitchenTimer: The created timer if all validations pass
//   - error: Aggregated validation errors otherwise
func NewKitchenTimer(
	id kernel.UUID,
	label string,
	timerType Type,
	duration time.Duration,
	priority kernel.Priority,
	isRepeating bool,
) (*KitchenTimer, error) {
	t := &KitchenTimer{
		status:      Created,
		isRepeating: isRepeating,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLabel(label),
		t.setType(timerType),
		t.setDuration(duration),
		t.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreKitchenTimer reconstructs a KitchenTimer from persistent storage.
func RestoreKitchenTimer(
	id kernel.UUID,
	label string,
	timerType Type,
	originalDuration time.Duration,
	remainingDuration time.Duration,
	status Status,
	priority kernel.Priority,
	orderID *kernel.UUID,
	stationID *kernel.UUID,
	createdBy *kernel.UUID,
	createdAt time.Time,
	startedAt *time.Time,
	resumedAt *time.Time,
	pausedAt *time.Time,
	completedAt *time.Time,
	isRepeating bool,
	repeatCount int,
) (*KitchenTimer, error) {
	t := &KitchenTimer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLabel(label),
		t.setType(timerType),
		t.setDuration(originalDuration),
		t.setPriority(priority),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	if remainingDuration < 0 || remainingDuration > originalDuration {
		return nil, errs.NewValueIsOutOfRangeError(
			"remainingDuration", remainingDuration, time.Duration(0), originalDuration)
	}
	if repeatCount < 0 {
		return nil, errs.NewValueIsInvalidError("repeatCount is negative")
	}

	t.remainingDuration = remainingDuration
	t.orderID = orderID
	t.stationID = stationID
	t.createdBy = createdBy
	t.createdAt = createdAt
	t.startedAt = startedAt
	t.resumedAt = resumedAt
	t.pausedAt = pausedAt
	t.completedAt = completedAt
	t.isRepeating = isRepeating
	t.repeatCount = repeatCount

	return t, nil
}

// Validate ensures the KitchenTimer was properly constructed.
func (t *KitchenTimer) Validate() error {
	if t == nil {
		return ErrTimerIsNotConstructed
	}
	return t.guard.Validate(ErrTimerIsNotConstructed)
}

// IsEqual compares two timers by their unique identifiers.
func (t *KitchenTimer) IsEqual(other *KitchenTimer) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the timer's unique identifier.
func (t *KitchenTimer) ID() kernel.UUID {
	return t.id
}

// Label returns the display label of the timer.
func (t *KitchenTimer) Label() string {
	return t.label
}

// Type returns the activity category of the timer.
func (t *KitchenTimer) Type() Type {
	return t.timerType
}

// OriginalDuration returns the full countdown length, including extensions.
func (t *KitchenTimer) OriginalDuration() time.Duration {
	return t.originalDuration
}

// Status returns the current status of the timer.
func (t *KitchenTimer) Status() Status {
	return t.status
}

// Priority returns the alert priority of the timer.
func (t *KitchenTimer) Priority() kernel.Priority {
	return t.priority
}

// Order returns the correlated order's ID, or nil.
func (t *KitchenTimer) Order() *kernel.UUID {
	return t.orderID
}

// Station returns the correlated station's ID, or nil.
func (t *KitchenTimer) Station() *kernel.UUID {
	return t.stationID
}

// CreatedBy returns the ID of the staff member who created the timer, or nil.
func (t *KitchenTimer) CreatedBy() *kernel.UUID {
	return t.createdBy
}

// CreatedAt returns when the timer was created.
func (t *KitchenTimer) CreatedAt() time.Time {
	return t.createdAt
}

// StartedAt returns when the timer first started, or nil if it never has.
func (t *KitchenTimer) StartedAt() *time.Time {
	return t.startedAt
}

// ResumedAt returns when the timer last entered Running, or nil.
func (t *KitchenTimer) ResumedAt() *time.Time {
	return t.resumedAt
}

// PausedAt returns when the timer last paused, or nil.
func (t *KitchenTimer) PausedAt() *time.Time {
	return t.pausedAt
}

// CompletedAt returns when the timer reached a terminal state, or nil.
func (t *KitchenTimer) CompletedAt() *time.Time {
	return t.completedAt
}

// IsRepeating reports whether the timer can be repeated after it finishes.
func (t *KitchenTimer) IsRepeating() bool {
	return t.isRepeating
}

// RepeatCount returns how many times the timer has been repeated.
func (t *KitchenTimer) RepeatCount() int {
	return t.repeatCount
}

// RemainingDuration returns the time left on the countdown.
//
// While running, the remainder decreases with the wall clock and is clamped
// at zero. While paused or created, the remainder is frozen. Terminal timers
// report whatever remainder they stopped with (zero for Completed and Expired).
func (t *KitchenTimer) RemainingDuration() time.Duration {
	if t.status != Running || t.resumedAt == nil {
		return t.remainingDuration
	}

	remaining := t.remainingDuration - time.Since(*t.resumedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PercentComplete returns the elapsed share of the original duration as a
// percentage, computed from wall-clock time since the first start and
// clamped to [0,100]. A timer that has never started reports 0.
func (t *KitchenTimer) PercentComplete() float64 {
	if t.startedAt == nil {
		return 0
	}

	percent := float64(time.Since(*t.startedAt)) / float64(t.originalDuration) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ShouldExpire reports whether the scheduler should mark the timer expired:
// it is running and the countdown has reached zero.
func (t *KitchenTimer) ShouldExpire() bool {
	return t.status == Running && t.RemainingDuration() == 0
}

// Start begins or resumes the countdown. Valid from Created or Paused.
func (t *KitchenTimer) Start() error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if t.startedAt == nil {
		t.startedAt = &now
		t.remainingDuration = t.originalDuration
	}
	t.status = newStatus
	t.resumedAt = &now
	return nil
}

// Pause freezes the countdown, storing the remainder. Only valid from Running.
func (t *KitchenTimer) Pause() error {
	remaining := t.RemainingDuration()

	newStatus, err := t.status.Pause()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.remainingDuration = remaining
	t.pausedAt = &now
	return nil
}

// Complete finishes the timer, dropping the remainder to zero.
// Only valid from Running. Completed is a terminal state.
func (t *KitchenTimer) Complete() error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.remainingDuration = 0
	t.completedAt = &now
	return nil
}

// Cancel abandons the timer. Valid from Running or Paused.
// Cancelled is a terminal state.
func (t *KitchenTimer) Cancel() error {
	remaining := t.RemainingDuration()

	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.remainingDuration = remaining
	t.completedAt = &now
	return nil
}

// MarkExpired records that the scheduler detected the countdown ran out
// without an explicit completion, dropping the remainder to zero.
//
// Expiring an already-terminal timer is a no-op, not an error: an expiry
// sweep racing a user's Complete or Cancel must never resurrect a finished
// timer.
func (t *KitchenTimer) MarkExpired() error {
	if t.status.IsTerminal() {
		return nil
	}

	newStatus, err := t.status.Expire()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.remainingDuration = 0
	t.completedAt = &now
	return nil
}

// Extend lengthens the countdown by delta, adding to both the original and
// the remaining duration.
//
// Returns:
//   - nil on success
//   - error if delta is negative, the timer is terminal, or the extended
//     duration would exceed MaxDuration
func (t *KitchenTimer) Extend(delta time.Duration) error {
	if delta < 0 {
		return errs.NewValueIsInvalidError("extension delta is negative")
	}
	if t.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("Extend", t.status.String())
	}
	if t.originalDuration+delta > MaxDuration {
		return errs.NewValueIsOutOfRangeError(
			"duration", t.originalDuration+delta, MinDuration, MaxDuration)
	}

	remaining := t.RemainingDuration()
	t.originalDuration += delta
	t.remainingDuration = remaining + delta
	if t.status == Running {
		now := time.Now().UTC()
		t.resumedAt = &now
	}
	return nil
}

// Repeat produces a fresh timer instance from a finished repeating timer.
//
// The new timer gets a new id, Created status, the full (possibly extended)
// original duration as its remainder, and an incremented repeat counter.
// The old instance is untouched and remains a historical record.
//
// Only Completed and Expired timers repeat. Cancelling a repeating timer
// ends the cycle.
//
// Returns:
//   - *KitchenTimer: The fresh instance
//   - ErrTimerIsNotRepeatable if the timer is not repeating, still live, or
//     cancelled
func (t *KitchenTimer) Repeat() (*KitchenTimer, error) {
	if !t.isRepeating || (t.status != Completed && t.status != Expired) {
		return nil, ErrTimerIsNotRepeatable
	}

	next := &KitchenTimer{
		id:                kernel.NewUUID(),
		label:             t.label,
		timerType:         t.timerType,
		originalDuration:  t.originalDuration,
		remainingDuration: t.originalDuration,
		status:            Created,
		priority:          t.priority,
		orderID:           t.orderID,
		stationID:         t.stationID,
		createdBy:         t.createdBy,
		createdAt:         time.Now().UTC(),
		isRepeating:       true,
		repeatCount:       t.repeatCount + 1,
		guard:             guard.NewConstructorGuard(),
	}

	return next, nil
}

// LinkOrder sets the weak order reference for correlation.
func (t *KitchenTimer) LinkOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = &orderID
	return nil
}

// LinkStation sets the weak station reference for correlation.
func (t *KitchenTimer) LinkStation(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	t.stationID = &stationID
	return nil
}

// SetCreatedBy records which staff member created the timer.
func (t *KitchenTimer) SetCreatedBy(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	t.createdBy = &staffID
	return nil
}

func (t *KitchenTimer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *KitchenTimer) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("timer label")
	}
	if len(label) > MaxLabelLength {
		return errs.NewValueIsOutOfRangeError("timer label length", len(label), 1, MaxLabelLength)
	}
	t.label = label
	return nil
}

func (t *KitchenTimer) setType(timerType Type) error {
	if err := timerType.Validate(); err != nil {
		return err
	}
	t.timerType = timerType
	return nil
}

func (t *KitchenTimer) setDuration(duration time.Duration) error {
	if duration < MinDuration || duration > MaxDuration {
		return errs.NewValueIsOutOfRangeError("duration", duration, MinDuration, MaxDuration)
	}
	t.originalDuration = duration
	t.remainingDuration = duration
	return nil
}

func (t *KitchenTimer) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *KitchenTimer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

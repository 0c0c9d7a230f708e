package kernel

import (
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// Priority levels on the 1-5 escalation scale.
const (
	// PriorityLevelLow is the lowest priority tier.
	PriorityLevelLow = 1
	// PriorityLevelMedium is the default priority tier for new orders.
	PriorityLevelMedium = 2
	// PriorityLevelHigh marks orders that should be worked ahead of the default tier.
	PriorityLevelHigh = 3
	// PriorityLevelUrgent marks orders that require immediate attention.
	PriorityLevelUrgent = 4
	// PriorityLevelCritical is the highest priority tier. Escalation stops here.
	PriorityLevelCritical = 5
)

// ErrPriorityIsNotConstructed is returned when attempting to use an improperly initialized Priority.
// Priority must be created via NewPriority or one of the named tier constructors.
var ErrPriorityIsNotConstructed = errs.NewValueIsRequiredError(
	"priority must be created via NewPriority or a named tier constructor")

// Priority is an immutable value object wrapping an ordinal urgency level in [1,5]
// with named tiers (Low=1, Medium=2, High=3, Urgent=4, Critical=5).
//
// Escalation never mutates a Priority: Escalate returns a new value one tier higher,
// clamped at Critical. Escalating an already-critical Priority yields an equal value,
// never an error.
//
// Example:
//
//	p := kernel.DefaultPriority()          // Medium
//	p = p.Escalate()                       // High
//	fmt.Println(p.Level(), p)              // Output: 3 High
type Priority struct { //nolint:recvcheck //using for validation
	level int
	guard guard.ConstructorGuard
}

// NewPriority creates a Priority from a raw integer level.
// Returns an error if level is outside [PriorityLevelLow, PriorityLevelCritical].
func NewPriority(level int) (Priority, error) {
	priority := Priority{
		guard: guard.NewConstructorGuard(),
	}

	if err := priority.setLevel(level); err != nil {
		return Priority{}, err
	}

	return priority, nil
}

// DefaultPriority returns the Medium tier, the default for new orders.
func DefaultPriority() Priority {
	return mustTier(PriorityLevelMedium)
}

// PriorityLow returns the Low tier.
func PriorityLow() Priority {
	return mustTier(PriorityLevelLow)
}

// PriorityMedium returns the Medium tier.
func PriorityMedium() Priority {
	return mustTier(PriorityLevelMedium)
}

// PriorityHigh returns the High tier.
func PriorityHigh() Priority {
	return mustTier(PriorityLevelHigh)
}

// PriorityUrgent returns the Urgent tier.
func PriorityUrgent() Priority {
	return mustTier(PriorityLevelUrgent)
}

// PriorityCritical returns the Critical tier, the escalation ceiling.
func PriorityCritical() Priority {
	return mustTier(PriorityLevelCritical)
}

// mustTier builds a Priority for a known-valid tier constant.
func mustTier(level int) Priority {
	return Priority{
		level: level,
		guard: guard.NewConstructorGuard(),
	}
}

// Level returns the numeric priority level in [1,5].
func (p Priority) Level() int {
	return p.level
}

// Escalate returns a new Priority one tier higher, clamped at Critical.
// Escalating a Critical priority is a no-op returning an equal value.
func (p Priority) Escalate() Priority {
	if p.level >= PriorityLevelCritical {
		return p
	}
	return mustTier(p.level + 1)
}

// IsAtLeast reports whether this priority is at or above the given tier.
func (p Priority) IsAtLeast(other Priority) bool {
	return p.level >= other.level
}

// IsEqual compares two priorities by level.
func (p Priority) IsEqual(other Priority) bool {
	return p.level == other.level
}

// String returns the tier name for the priority level.
// Implements the fmt.Stringer interface.
func (p Priority) String() string {
	switch p.level {
	case PriorityLevelLow:
		return "Low"
	case PriorityLevelMedium:
		return "Medium"
	case PriorityLevelHigh:
		return "High"
	case PriorityLevelUrgent:
		return "Urgent"
	case PriorityLevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Validate checks if the Priority was properly constructed.
// Returns ErrPriorityIsNotConstructed for zero-value instances.
func (p Priority) Validate() error {
	return p.guard.Validate(ErrPriorityIsNotConstructed)
}

func (p *Priority) setLevel(level int) error {
	if level < PriorityLevelLow || level > PriorityLevelCritical {
		return errs.NewValueIsOutOfRangeError("priority level", level, PriorityLevelLow, PriorityLevelCritical)
	}

	p.level = level
	return nil
}

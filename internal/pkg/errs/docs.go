// Package errs provides standardized error types for the kitchen orchestration core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails business validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: an entity lookup missed at the repository boundary
//   - InvalidStateTransitionError: an operation was attempted from a state that does not permit it
//   - CapacityExceededError: a station workload change would overshoot its capacity
//   - VersionIsInvalidError: an aggregate version conflict during persistence
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification works
//
// Because every core operation returns one of these typed errors instead of a raw
// message, callers can pattern-match on failure kind (validation, state transition,
// capacity, not-found) and decide whether the failure is recoverable.
package errs

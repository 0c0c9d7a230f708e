// Package timer provides the KitchenTimer aggregate: a countdown state
// machine paced against the wall clock, used to time cooking steps, prep
// tasks, and recurring food-safety checks.
//
// The package includes:
//   - KitchenTimer: The aggregate root with countdown accounting
//   - Status: A state machine (Created -> Running <-> Paused, terminal
//     Completed/Cancelled/Expired)
//   - Type: The activity category a timer paces
//
// Key business rules:
//   - Duration is bounded to [1 second, 10 hours], including extensions
//   - The remainder decreases while running, freezes while paused, and is
//     exactly zero once completed or expired
//   - Expiry comes from an external scheduler sweep; expiring an already
//     finished timer is a no-op so a sweep can race user actions safely
//   - A repeating timer that finished can produce a fresh instance with a
//     new id and an incremented repeat counter
//
// Timers hold weak order/station references for correlation only; their
// lifecycle never depends on order or station state.
package timer

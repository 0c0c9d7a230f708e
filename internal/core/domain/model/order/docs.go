// Package order provides domain entities and business logic for order management
// in the kitchen system. It implements the Order aggregate root with lifecycle
// management, item ownership, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the items and manages the order lifecycle
//   - Item: A per-line entity with its own preparation lifecycle
//   - Recipe: An immutable price and timing snapshot for an item
//   - Status: A state machine that enforces valid order status transitions
//   - ItemStatus: A state machine that enforces valid item status transitions
//
// Key business rules:
//   - Orders hold between 1 and 100 items at all times
//   - Order status follows the kitchen workflow:
//     Pending -> Confirmed -> Preparing -> Ready -> Completed,
//     with Cancelled reachable from any non-terminal state
//   - Item changes (add, remove, quantity, instructions) are only allowed
//     while the order is Pending
//   - Order transitions cascade to items still eligible for the matching
//     item transition; items cancelled individually are left alone
//   - The order total is the sum of item line totals; the time estimate is
//     the maximum of the item estimates
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package station provides domain entities and business logic for kitchen
// work centers. It implements the Station aggregate root with capacity
// tracking, staff assignment, and order occupancy.
//
// The package includes:
//   - Station: The aggregate root tracking capacity, workload, staff, and orders
//   - Status: The operational state (Available, Busy, Maintenance, Offline)
//   - Type: The kind of work the station handles (Grill, Prep, ...)
//
// Key business rules:
//   - Workload never drops below zero or exceeds capacity
//   - A staff id or order id appears at most once in its set
//   - Activation forces Available, deactivation forces Offline
//   - A station accepts orders only while active, Available, and below capacity
//
// Station status has no transition table: supervisors set it directly.
// Cross-aggregate checks against order state live in the assignment
// coordinator in the services package.
package station

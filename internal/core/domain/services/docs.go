// Package services contains domain services that coordinate operations
// across multiple aggregates.
//
// StationAssigner establishes the order-to-station link: it validates the
// order is still in flight and the station is active, available, and below
// capacity before updating both sides together. It exists because neither
// the Order nor the Station aggregate is allowed to know the other's
// invariants.
package services

// Package services provides domain services that span more than one aggregate
// of the back office.
//
// The package includes:
//   - Lifecycle: the kind-agnostic entry point for transition checks, copy-on-write
//     transitions and display projections
//   - RiderDispatcher: keeps a delivery and its rider consistent when a rider is
//     assigned, unassigned, released or completes a delivery
//
// Services hold no state and perform no I/O; callers pass the current
// aggregates and the transition time.
package services

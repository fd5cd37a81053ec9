// Package rider contains the Rider aggregate: a delivery courier with an
// availability status, a rating and a completed-delivery counter.
//
// Availability follows a small table:
//
//	Available ──> Busy ──> Available
//	Available ──> Offline ──> Available
//
// Only an Available rider may take a delivery. A Busy rider cannot go offline
// until the delivery is finished or released.
package rider

// Package delivery contains the Delivery aggregate: the physical hand-over of
// a sales order by a rider.
//
// Transition table:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	               │             │
//	               └─────────────┴──> Failed | Cancelled
//
// Leaving Pending requires a rider. Entering Completed stamps the actual
// delivery date with the transition time; it is not compared with the
// scheduled date, so early and late deliveries are both valid.
//
// A Delivery only references its Order. Completing a delivery does not touch
// the order's status, and delivering an order does not complete its delivery.
package delivery

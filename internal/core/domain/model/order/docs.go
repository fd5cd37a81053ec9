// Package order contains the sales order aggregate of the back office.
//
// An Order is created in Pending status and moves only through TransitionTo,
// which consults the order transition table:
//
//	Pending ──> Processing ──> ReadyForDelivery ──> OutForDelivery ──> Delivered ──> Returned
//	   │             │
//	   └─────────────┴──> Cancelled
//
// Cancelled and Returned are terminal. Delivered is not: a delivered order can
// still be returned. Delivering an order has no effect on its Delivery entity;
// the two are tracked independently.
//
// The grand total is never stored. Total recomputes it from the line items,
// shipping cost, header tax and header discount every time it is asked.
//
// Payment status is informational and carries no transition rules; it is
// projected for display only.
package order

// Package purchase contains the purchase order aggregate: goods ordered from
// a vendor and received into stock, possibly in several receipts.
//
// Transition table:
//
//	Draft ──> Sent ──> Confirmed ──────────────> Received
//	  │         │          └──> Partial ──────────┘
//	  └─────────┴──> Cancelled
//
// Two guards apply on top of the table. Partial is entered only when some
// goods have arrived and some are still outstanding. Received requires every
// item to be fully received, unless MarkFullyReceived is used, which first
// sets every item's received quantity to its ordered quantity.
//
// Receipts never push an item's received quantity above its ordered quantity.
package purchase

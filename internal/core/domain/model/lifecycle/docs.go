// Package lifecycle holds the vocabulary shared by every status machine of the
// back office: entity kinds, display tiers and projections, the generic
// transition table, status-change events and the lifecycle error taxonomy.
//
// The package is deliberately free of aggregate types so that the order,
// purchase, delivery and rider packages can all depend on it.
package lifecycle

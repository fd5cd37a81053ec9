// Package kernel provides the value objects shared by every aggregate of the
// back-office domain.
//
// The package includes:
//   - UUID: identifier value object over github.com/google/uuid
//   - Money: exact monetary amounts over github.com/shopspring/decimal
//   - GeoLocation: a rider's last reported position
//   - Clock: the source of "now" handed to lifecycle transitions
//
// All value objects are immutable and safe for concurrent use. Zero values of
// UUID and GeoLocation are invalid and fail Validate.
package kernel

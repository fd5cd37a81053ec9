package rider

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// Rating bounds. A new rider starts at MinRating.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired       = errs.NewValueIsRequiredError("phone")
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")
)

// Contact groups the descriptive fields of a rider.
type Contact struct {
	Name          string
	Phone         string
	Email         string
	VehicleType   string
	VehicleNumber string
}

// Rider is a delivery courier.
//
// Invariants:
//   - rating stays within [MinRating, MaxRating]
//   - totalDeliveries is never negative and only grows
//   - status changes only along the availability table
type Rider struct {
	// id is the unique identifier for the rider
	id kernel.UUID

	name  string
	phone string

	// email is optional and only loosely checked
	email string

	// vehicleType is free text such as "bicycle" or "motorcycle"
	vehicleType string

	// vehicleNumber is the plate, empty for bicycles
	vehicleNumber string

	// status is the rider's availability
	status Status

	rating float64

	// totalDeliveries counts completed deliveries
	totalDeliveries int

	// location is the last reported position, nil until the first report
	location *kernel.GeoLocation

	// events holds availability changes not yet published
	events lifecycle.Events

	guard guard.ConstructorGuard
}

// NewRider registers an available rider with no rating and no deliveries.
//
// Parameters:
//   - id: unique identifier for the rider (must be a valid UUID)
//   - contact: Name, Phone and VehicleType are required
//
// Returns:
//   - *Rider: the rider, Available with rating MinRating
//   - error: every validation failure joined with errors.Join
//
// Example:
//
//	r, err := rider.NewRider(kernel.NewUUID(), rider.Contact{
//	    Name:        "Asha Rao",
//	    Phone:       "+91 98450 00000",
//	    VehicleType: "motorcycle",
//	})
func NewRider(id kernel.UUID, contact Contact) (*Rider, error) {
	return RestoreRider(id, contact, Available, MinRating, 0, nil)
}

// RestoreRider rebuilds a rider read from storage.
//
// Parameters:
//   - status: persisted availability
//   - rating: must lie within [MinRating, MaxRating]
//   - totalDeliveries: must not be negative
//   - location: nil when the rider never reported a position
//
// Returns:
//   - *Rider: the rebuilt rider with no recorded events
//   - error: validation errors joined with errors.Join
func RestoreRider(
	id kernel.UUID,
	contact Contact,
	status Status,
	rating float64,
	totalDeliveries int,
	location *kernel.GeoLocation,
) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setContact(contact),
		r.setStatus(status),
		r.setRating(rating),
		r.setTotalDeliveries(totalDeliveries),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the rider was created through a constructor.
//
// Returns:
//   - nil if the rider is valid
//   - ErrRiderIsNotConstructed for a nil or zero-value rider
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID { return r.id }

// Name returns the rider's name.
func (r *Rider) Name() string { return r.name }

// Phone returns the rider's phone.
func (r *Rider) Phone() string { return r.phone }

// Email returns the rider's email.
func (r *Rider) Email() string { return r.email }

// VehicleType returns the rider's vehicle type.
func (r *Rider) VehicleType() string { return r.vehicleType }

// VehicleNumber returns the rider's vehicle number.
func (r *Rider) VehicleNumber() string { return r.vehicleNumber }

// Status returns the rider's status.
func (r *Rider) Status() Status { return r.status }

// Rating returns the rider's rating.
func (r *Rider) Rating() float64 { return r.rating }

// TotalDeliveries returns the rider's total deliveries.
func (r *Rider) TotalDeliveries() int { return r.totalDeliveries }

// Location returns a copy of the last reported position, or nil.
func (r *Rider) Location() *kernel.GeoLocation {
	if r.location == nil {
		return nil
	}
	loc := *r.location
	return &loc
}

// IsAvailable reports whether the rider can take a delivery.
func (r *Rider) IsAvailable() bool {
	return r.status == Available
}

func (r *Rider) DomainEvents() []lifecycle.StatusChanged {
	return r.events.DomainEvents()
}

func (r *Rider) ClearDomainEvents() {
	r.events.ClearDomainEvents()
}

// Occupy marks the rider busy with a delivery.
// It fails with ErrRiderUnavailable unless the rider is available.
func (r *Rider) Occupy(now time.Time) error {
	if !r.IsAvailable() {
		return fmt.Errorf("%w: rider %s is %s", lifecycle.ErrRiderUnavailable, r.id, r.status)
	}
	r.moveTo(Busy, now)
	return nil
}

// Free makes a busy rider available again.
func (r *Rider) Free(now time.Time) error {
	return r.transitionTo(Available, Busy, now)
}

// GoOffline takes an available rider off shift.
func (r *Rider) GoOffline(now time.Time) error {
	return r.transitionTo(Offline, Available, now)
}

// GoOnline brings an offline rider back on shift.
func (r *Rider) GoOnline(now time.Time) error {
	return r.transitionTo(Available, Offline, now)
}

// RecordCompletedDelivery increments the completed-delivery counter.
func (r *Rider) RecordCompletedDelivery() {
	r.totalDeliveries++
}

// Rate replaces the rider's rating.
//
// Returns:
//   - nil when rating lies within [MinRating, MaxRating]
//   - *errs.ValueIsOutOfRangeError otherwise; the old rating is kept
func (r *Rider) Rate(rating float64) error {
	return r.setRating(rating)
}

// UpdateLocation stores the last reported position.
func (r *Rider) UpdateLocation(location kernel.GeoLocation) error {
	return r.setLocation(&location)
}

// Clone returns a deep copy that shares no mutable state with r.
func (r *Rider) Clone() *Rider {
	c := *r
	c.location = r.Location()
	c.events = r.events.Clone()
	return &c
}

func (r *Rider) transitionTo(target, required Status, now time.Time) error {
	if r.status != required || !r.status.CanTransitionTo(target) {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindRider, r.status, target)
	}
	r.moveTo(target, now)
	return nil
}

func (r *Rider) moveTo(target Status, now time.Time) {
	r.events.Record(lifecycle.StatusChanged{
		Kind:       lifecycle.KindRider,
		ID:         r.id,
		From:       r.status.String(),
		To:         target.String(),
		OccurredAt: now,
	})
	r.status = target
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setContact(c Contact) error {
	name := strings.TrimSpace(c.Name)
	phone := strings.TrimSpace(c.Phone)
	vehicleType := strings.ToLower(strings.TrimSpace(c.VehicleType))
	email := strings.TrimSpace(c.Email)

	var problems []error
	if name == "" {
		problems = append(problems, ErrNameIsRequired)
	}
	if phone == "" {
		problems = append(problems, ErrPhoneIsRequired)
	}
	if vehicleType == "" {
		problems = append(problems, ErrVehicleTypeIsRequired)
	}
	if email != "" && !strings.Contains(email, "@") {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", email)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	r.name = name
	r.phone = phone
	r.email = email
	r.vehicleType = vehicleType
	r.vehicleNumber = strings.TrimSpace(c.VehicleNumber)
	return nil
}

func (r *Rider) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Rider) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Rider) setTotalDeliveries(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalDeliveries", fmt.Errorf("%d is negative", total))
	}
	r.totalDeliveries = total
	return nil
}

func (r *Rider) setLocation(location *kernel.GeoLocation) error {
	if location == nil {
		r.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	r.location = &loc
	return nil
}

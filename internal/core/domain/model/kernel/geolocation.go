package kernel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	// MinLatitude and MaxLatitude bound a valid latitude in degrees.
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoLocationIsNotConstructed is returned for a zero-value GeoLocation.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geolocation must be created via NewGeoLocation")

// GeoLocation is the last reported position of a rider.
// It is informational only: no tracking or routing is derived from it.
type GeoLocation struct { //nolint:recvcheck //using for validation
	latitude    float64
	longitude   float64
	lastUpdated time.Time
	guard       guard.ConstructorGuard
}

// NewGeoLocation validates the coordinates and stamps the report time.
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(12.9716, 77.5946, clock.Now())
//	if err != nil {
//	    return err
//	}
func NewGeoLocation(latitude, longitude float64, lastUpdated time.Time) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
		loc.setLastUpdated(lastUpdated),
	); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate reports whether the location was built by NewGeoLocation.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l GeoLocation) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l GeoLocation) Longitude() float64 {
	return l.longitude
}

// LastUpdated returns when the position was reported.
func (l GeoLocation) LastUpdated() time.Time {
	return l.lastUpdated
}

func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%.5f,%.5f)", l.latitude, l.longitude)
}

func (l *GeoLocation) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *GeoLocation) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	l.longitude = longitude
	return nil
}

func (l *GeoLocation) setLastUpdated(lastUpdated time.Time) error {
	if lastUpdated.IsZero() {
		return errs.NewValueIsRequiredError("lastUpdated")
	}
	l.lastUpdated = lastUpdated
	return nil
}

// Package location models the observer whose position local solar time is
// computed for.
package location

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned (wrapped) when a coordinate is outside its
// domain.
var ErrOutOfRange = errors.New("coordinate out of range")

// An Observer is a position on earth, optionally with a human-readable name.
type Observer struct {
	Name      string
	Region    string
	Latitude  float64 // degrees, [-90,90]
	Longitude float64 // degrees, [-180,180], positive east
	Altitude  float64 // meters AMSL
}

// String returns "Region/Name" for named observers and the coordinates
// otherwise.
func (o Observer) String() string {
	if o.Name != "" {
		return o.Region + "/" + o.Name
	}
	return fmt.Sprintf("%.4f,%.4f", o.Latitude, o.Longitude)
}

// Normalized returns a copy of the observer with the longitude wrapped into
// [-180,180].
func (o Observer) Normalized() Observer {
	o.Longitude = NormalizeLongitude(o.Longitude)
	return o
}

// Validate checks the coordinates against their domains.
func (o Observer) Validate() error {
	if math.IsNaN(o.Latitude) || o.Latitude < -90.0 || o.Latitude > 90.0 {
		return fmt.Errorf("latitude %v: %w", o.Latitude, ErrOutOfRange)
	}
	if math.IsNaN(o.Longitude) || o.Longitude < -180.0 || o.Longitude > 180.0 {
		return fmt.Errorf("longitude %v: %w", o.Longitude, ErrOutOfRange)
	}
	return nil
}

// NormalizeLongitude wraps a longitude in degrees into [-180,180].
func NormalizeLongitude(longitude float64) float64 {
	l := math.Mod(longitude+180.0, 360.0)
	if l < 0 {
		l += 360.0
	}
	return l - 180.0
}

// A Provider yields the current observer position, e.g. from a GPS receiver.
type Provider func() (Observer, error)

// Fixed returns a Provider that always yields the given observer.
func Fixed(o Observer) Provider {
	return func() (Observer, error) { return o, nil }
}

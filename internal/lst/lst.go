// Package lst implements local solar time: a timezone whose UTC offset is
// chosen per instant so that the sun is at its zenith over the observer's
// meridian at 12:00.
//
// The offset is the nominal longitude offset (longitude / 15 hours) plus the
// equation of time, so it drifts by a few minutes over the year. A Zone
// therefore never caches the offset; it derives it on every query.
package lst

import (
	"fmt"
	"sync"
	"time"

	"github.com/ja-he/soltime/internal/astro"
	"github.com/ja-he/soltime/internal/location"
)

// Timezone is the capability set of a timezone object: offset query and
// conversion between UTC and local time. Zone implements it; anything
// expecting a conventional fixed-offset zone can be handed an implementation
// of this instead.
type Timezone interface {
	OffsetAt(t time.Time) time.Duration
	ToUTC(local time.Time) time.Time
	ToLocal(utc time.Time) time.Time
}

// Key is the short zone name, used where a conventional timezone would show
// its abbreviation. There is deliberately no region prefix since that would
// collide with the standard zone key namespace.
const Key = "LST"

// Zone is a local-solar-time timezone for an observer position.
//
// A Zone built from a fixed position is locked: its position can never
// change. A Zone built from a location.Provider can be re-positioned with
// Update until it is locked.
type Zone struct {
	mtx      sync.Mutex
	obs      location.Observer
	provider location.Provider
	locked   bool
}

var _ Timezone = (*Zone)(nil)

// NewZone returns a locked zone for an unnamed observer on the given
// longitude (degrees, positive east).
func NewZone(longitude float64) (*Zone, error) {
	return NewZoneAt(location.Observer{Longitude: longitude})
}

// NewZoneAt returns a locked zone for the given observer.
func NewZoneAt(obs location.Observer) (*Zone, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return &Zone{obs: obs, locked: true}, nil
}

// NewZoneFromProvider returns a zone positioned by the given provider. The
// provider is read once immediately; later position changes are picked up by
// calling Update.
func NewZoneFromProvider(p location.Provider) (*Zone, error) {
	z := &Zone{provider: p}
	if err := z.Update(); err != nil {
		return nil, err
	}
	return z, nil
}

// Observer returns the current observer position.
func (z *Zone) Observer() location.Observer {
	z.mtx.Lock()
	defer z.mtx.Unlock()
	return z.obs
}

// Locked reports whether the zone's position is frozen.
func (z *Zone) Locked() bool {
	z.mtx.Lock()
	defer z.mtx.Unlock()
	return z.locked
}

// Lock freezes the zone's position. Locking an already locked zone returns
// ErrRedundant.
func (z *Zone) Lock() error {
	z.mtx.Lock()
	defer z.mtx.Unlock()
	if z.locked {
		return ErrRedundant
	}
	z.locked = true
	return nil
}

// Update re-reads the zone's position from its provider.
func (z *Zone) Update() error {
	z.mtx.Lock()
	defer z.mtx.Unlock()
	if z.locked {
		return ErrZoneLocked
	}
	obs, err := z.provider()
	if err != nil {
		return fmt.Errorf("could not get position (%w)", err)
	}
	obs = obs.Normalized()
	if err := obs.Validate(); err != nil {
		return err
	}
	z.obs = obs
	return nil
}

// SetObserver re-positions the zone explicitly, e.g. from an external
// position fix.
func (z *Zone) SetObserver(obs location.Observer) error {
	z.mtx.Lock()
	defer z.mtx.Unlock()
	if z.locked {
		return ErrZoneLocked
	}
	obs = obs.Normalized()
	if err := obs.Validate(); err != nil {
		return err
	}
	z.obs = obs
	return nil
}

// OffsetAt returns the UTC offset of local solar time at the given instant:
// the nominal longitude offset plus the equation of time.
func (z *Zone) OffsetAt(t time.Time) time.Duration {
	obs := z.Observer()
	nominal := time.Duration(obs.Longitude * astro.MinutesPerDegree * float64(time.Minute))
	return nominal + astro.EquationOfTime(t)
}

// Location returns a fixed-offset *time.Location snapshot of the zone at the
// given instant, for interoperation with the standard library. The snapshot
// is only valid around t; the offset drifts over the year.
func (z *Zone) Location(t time.Time) *time.Location {
	return time.FixedZone(Key, int(z.OffsetAt(t)/time.Second))
}

// ToLocal returns the given instant as local solar time.
func (z *Zone) ToLocal(utc time.Time) time.Time {
	return utc.In(z.Location(utc))
}

// ToUTC interprets the wall-clock reading of local as local solar time and
// returns the corresponding UTC instant. Since the offset is a function of
// the instant being solved for, the conversion iterates; it converges well
// below a second after the first refinement.
func (z *Zone) ToUTC(local time.Time) time.Time {
	wall := time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC)

	utc := wall.Add(-z.OffsetAt(wall))
	for i := 0; i < 2; i++ {
		utc = wall.Add(-z.OffsetAt(utc))
	}
	return utc
}

// Now returns the current local solar time.
func (z *Zone) Now() time.Time {
	return z.ToLocal(time.Now())
}

// Name returns "Region/Name" for the zone's observer. The key "LST" is
// reserved for the short zone abbreviation.
func (z *Zone) Name() string {
	return z.Observer().String()
}

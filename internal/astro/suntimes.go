package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// civilDepression is the sun altitude (in degrees below the horizon) that
// bounds civil twilight.
const civilDepression = 6.0

// SunTimes holds the principal sun events of a date, all in UTC.
// Any of the times may be zero near the poles; check with IsZero.
type SunTimes struct {
	Dawn    time.Time
	Sunrise time.Time
	Noon    time.Time
	Sunset  time.Time
	Dusk    time.Time
}

// Sun returns the sun events for the (UTC) date of t at the given position.
func Sun(t time.Time, latitude, longitude float64) SunTimes {
	u := t.UTC()

	// sunrise and sunset (UTC); zero times on polar day/night
	rise, set := sunrise.SunriseSunset(latitude, longitude, u.Year(), u.Month(), u.Day())

	st := SunTimes{
		Sunrise: rise,
		Noon:    SolarNoon(u, longitude),
		Sunset:  set,
	}

	if dawn, dusk, ok := TimesAtAltitude(u, latitude, longitude, -civilDepression); ok {
		st.Dawn = dawn
		st.Dusk = dusk
	}

	return st
}

package astro

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// jdeToTime converts a julian ephemeris day to a UTC time.
func jdeToTime(jde float64) time.Time {
	y, m, d := julian.JDToCalendar(jde)
	day, frac := math.Modf(d)
	return time.Date(y, time.Month(m), int(day), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(frac * 24.0 * float64(time.Hour)))
}

// MarchEquinox returns the instant of the vernal/spring equinox of the year.
func MarchEquinox(year int) time.Time {
	return jdeToTime(solstice.March(year))
}

// JuneSolstice returns the instant of the summer solstice of the year.
func JuneSolstice(year int) time.Time {
	return jdeToTime(solstice.June(year))
}

// SeptemberEquinox returns the instant of the autumnal equinox of the year.
func SeptemberEquinox(year int) time.Time {
	return jdeToTime(solstice.September(year))
}

// DecemberSolstice returns the instant of the winter solstice of the year.
func DecemberSolstice(year int) time.Time {
	return jdeToTime(solstice.December(year))
}

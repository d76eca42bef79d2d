// Package astro implements the low-precision solar position math the rest of
// the program builds on: the equation of time, the solar declination, and the
// instant of apparent solar noon.
//
// The series used here is the Spencer/NOAA harmonic expansion in the
// fractional year. Its error stays well under a minute, which is plenty for
// a civil clock.
package astro

import (
	"math"
	"time"
)

const degToRad = math.Pi / 180.0

// MinutesPerDegree is the rotation of the earth expressed as minutes of time
// per degree of longitude (24h * 60min / 360deg).
const MinutesPerDegree = 4.0

// fractionalYear returns the fractional year in radians for the given
// instant.
func fractionalYear(t time.Time) float64 {
	u := t.UTC()
	daysInYear := 365.0
	if isLeapYear(u.Year()) {
		daysInYear = 366.0
	}
	hours := float64(u.Hour()) + float64(u.Minute())/60.0 + float64(u.Second())/3600.0
	return (2.0 * math.Pi / daysInYear) * (float64(u.YearDay()) - 1.0 + (hours-12.0)/24.0)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// EquationOfTime returns the difference between apparent and mean solar time
// at the given instant, positive when the sundial runs ahead of the clock.
// The result stays within roughly +/- 17 minutes over a year.
func EquationOfTime(t time.Time) time.Duration {
	g := fractionalYear(t)
	minutes := 229.18 * (0.000075 +
		0.001868*math.Cos(g) - 0.032077*math.Sin(g) -
		0.014615*math.Cos(2.0*g) - 0.040849*math.Sin(2.0*g))
	return time.Duration(minutes * float64(time.Minute))
}

// Declination returns the solar declination in degrees at the given instant.
func Declination(t time.Time) float64 {
	g := fractionalYear(t)
	rad := 0.006918 - 0.399912*math.Cos(g) + 0.070257*math.Sin(g) -
		0.006758*math.Cos(2.0*g) + 0.000907*math.Sin(2.0*g) -
		0.002697*math.Cos(3.0*g) + 0.00148*math.Sin(3.0*g)
	return rad / degToRad
}

// SolarNoon returns the UTC instant at which the sun crosses the meridian of
// the given longitude on the (UTC) date of t.
func SolarNoon(t time.Time, longitude float64) time.Time {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	approx := midnight.Add(12 * time.Hour)
	minutes := 720.0 - MinutesPerDegree*longitude - EquationOfTime(approx).Minutes()
	return midnight.Add(time.Duration(minutes * float64(time.Minute)))
}

// TimesAtAltitude returns the UTC instants before and after solar noon at
// which the sun's center reaches the given altitude in degrees (negative
// values are below the horizon). The boolean is false when the sun never
// reaches that altitude on the given date (polar day or night).
func TimesAtAltitude(date time.Time, latitude, longitude, altitude float64) (morning, evening time.Time, ok bool) {
	noon := SolarNoon(date, longitude)
	decl := Declination(noon) * degToRad
	lat := latitude * degToRad
	alt := altitude * degToRad

	cosH := (math.Sin(alt) - math.Sin(lat)*math.Sin(decl)) / (math.Cos(lat) * math.Cos(decl))
	if cosH < -1.0 || cosH > 1.0 {
		return time.Time{}, time.Time{}, false
	}

	hourAngle := math.Acos(cosH)
	offset := time.Duration(hourAngle / (2.0 * math.Pi) * 24.0 * float64(time.Hour))
	return noon.Add(-offset), noon.Add(offset), true
}

// Altitude returns the sun's altitude above the horizon in degrees at the
// given instant and position.
func Altitude(t time.Time, latitude, longitude float64) float64 {
	u := t.UTC()
	decl := Declination(u) * degToRad
	lat := latitude * degToRad

	// apparent solar time, as minutes from solar midnight
	minutes := float64(u.Hour())*60.0 + float64(u.Minute()) + float64(u.Second())/60.0 +
		MinutesPerDegree*longitude + EquationOfTime(u).Minutes()
	hourAngle := (minutes/MinutesPerDegree - 180.0) * degToRad

	sinAlt := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(hourAngle)
	return math.Asin(sinAlt) / degToRad
}

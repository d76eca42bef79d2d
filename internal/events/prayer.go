package events

import (
	"math"
	"time"

	"github.com/ja-he/soltime/internal/astro"
	"github.com/ja-he/soltime/internal/location"
)

// Muslim World League twilight parameters.
const (
	fajrDepression = 18.0
	ishaDepression = 17.0
)

// asrShadowFactor is the Shafi'i convention: Asr begins when an object's
// shadow equals its length (plus the noon shadow).
const asrShadowFactor = 1.0

// PrayerTimes is an event source for the five daily prayers, computed from
// sun geometry with Muslim World League parameters.
type PrayerTimes struct{}

// Name returns the source name.
func (PrayerTimes) Name() string { return "prayer-times" }

// Times returns the prayer times covering the day from ref, preferring the
// occurrence on ref's date and falling back to the next day for prayers
// already past.
func (PrayerTimes) Times(ref time.Time, obs location.Observer) (map[string]time.Time, error) {
	result := dailyPrayers(ref.AddDate(0, 0, 1), obs)
	for name, at := range dailyPrayers(ref, obs) {
		if at.Before(ref) {
			continue
		}
		result[name] = at
	}
	return result, nil
}

// dailyPrayers computes the prayers of the (UTC) date of t. Prayers whose
// defining sun altitude is not reached on that date (high latitudes) are
// omitted.
func dailyPrayers(t time.Time, obs location.Observer) map[string]time.Time {
	result := map[string]time.Time{}

	noon := astro.SolarNoon(t, obs.Longitude)
	result["Dhuhr"] = noon

	if fajr, _, ok := astro.TimesAtAltitude(t, obs.Latitude, obs.Longitude, -fajrDepression); ok {
		result["Fajr"] = fajr
	}
	if _, isha, ok := astro.TimesAtAltitude(t, obs.Latitude, obs.Longitude, -ishaDepression); ok {
		result["Isha"] = isha
	}
	if _, maghrib, ok := astro.TimesAtAltitude(t, obs.Latitude, obs.Longitude, 0); ok {
		result["Maghrib"] = maghrib
	}
	if asr, ok := asrTime(t, obs); ok {
		result["Asr"] = asr
	}

	return result
}

// asrTime returns the afternoon instant at which an object's shadow reaches
// asrShadowFactor times its length beyond its noon shadow.
func asrTime(t time.Time, obs location.Observer) (time.Time, bool) {
	decl := astro.Declination(astro.SolarNoon(t, obs.Longitude))
	// the shadow geometry only makes sense while the sun crosses the horizon
	if math.Abs(obs.Latitude-decl) >= 90.0 {
		return time.Time{}, false
	}
	// altitude with cot(alt) = factor + tan(|lat - decl|)
	altitude := math.Atan(1.0/(asrShadowFactor+math.Tan(math.Abs(obs.Latitude-decl)*math.Pi/180.0))) * 180.0 / math.Pi
	if altitude <= 0.0 {
		return time.Time{}, false
	}
	_, asr, ok := astro.TimesAtAltitude(t, obs.Latitude, obs.Longitude, altitude)
	return asr, ok
}

package astro_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/soltime/internal/astro"
)

func TestEquationOfTimeEnvelope(t *testing.T) {
	day := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for day.Year() == 2026 {
		eot := astro.EquationOfTime(day).Minutes()
		assert.Less(t, math.Abs(eot), 17.5, "equation of time out of envelope on %s", day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
}

func TestEquationOfTimeSeasonalExtremes(t *testing.T) {
	// sundial runs ~16 minutes fast in early November ...
	november := astro.EquationOfTime(time.Date(2026, 11, 3, 12, 0, 0, 0, time.UTC)).Minutes()
	assert.Greater(t, november, 15.0)

	// ... and ~14 minutes slow in mid-February
	february := astro.EquationOfTime(time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)).Minutes()
	assert.Less(t, february, -13.0)
}

func TestEquationOfTimeZeroCrossings(t *testing.T) {
	// the four dates on which apparent and mean solar time agree
	for _, date := range []time.Time{
		time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 14, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC),
	} {
		eot := astro.EquationOfTime(date).Minutes()
		assert.Less(t, math.Abs(eot), 2.0, "expected near-zero equation of time on %s", date.Format("2006-01-02"))
	}
}

func TestEquationOfTimeIsContinuous(t *testing.T) {
	step := time.Minute
	prev := astro.EquationOfTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	for at := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC); at.Month() < 3; at = at.Add(step) {
		current := astro.EquationOfTime(at)
		diff := (current - prev).Seconds()
		assert.Less(t, math.Abs(diff), 1.0, "offset jumped at %s", at)
		prev = current
	}
}

func TestDeclinationAtSolsticesAndEquinoxes(t *testing.T) {
	june := astro.Declination(astro.JuneSolstice(2026))
	assert.InDelta(t, 23.44, june, 1.0)

	december := astro.Declination(astro.DecemberSolstice(2026))
	assert.InDelta(t, -23.44, december, 1.0)

	march := astro.Declination(astro.MarchEquinox(2026))
	assert.Less(t, math.Abs(march), 1.0)

	september := astro.Declination(astro.SeptemberEquinox(2026))
	assert.Less(t, math.Abs(september), 1.0)
}

func TestSolarNoon(t *testing.T) {
	date := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	// on a zero crossing of the equation of time, solar noon on the prime
	// meridian is mean noon
	greenwich := astro.SolarNoon(date, 0)
	assert.WithinDuration(t, time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC), greenwich, 2*time.Minute)

	// 15 degrees of longitude are one hour of rotation
	east := astro.SolarNoon(date, 15)
	assert.WithinDuration(t, greenwich.Add(-time.Hour), east, time.Second)

	// example longitude of a UTC-5 nominal zone
	west := astro.SolarNoon(date, -75)
	assert.WithinDuration(t, time.Date(2026, 4, 15, 17, 0, 0, 0, time.UTC), west, 2*time.Minute)
}

func TestTimesAtAltitude(t *testing.T) {
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	morning, evening, ok := astro.TimesAtAltitude(date, 47.1, 6.83, 0)
	require.True(t, ok)

	noon := astro.SolarNoon(date, 6.83)
	assert.True(t, morning.Before(noon))
	assert.True(t, evening.After(noon))
	assert.InDelta(t, noon.Sub(morning).Seconds(), evening.Sub(noon).Seconds(), 1.0, "sunrise and sunset should be symmetric around solar noon")
}

func TestTimesAtAltitudePolarNight(t *testing.T) {
	// deep in the arctic winter the sun stays below the horizon
	_, _, ok := astro.TimesAtAltitude(time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC), 80, 0, 0)
	assert.False(t, ok)
}

func TestAltitudeAtSolarNoon(t *testing.T) {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	lat, long := 29.98, 31.13

	noon := astro.SolarNoon(date, long)
	altitude := astro.Altitude(noon, lat, long)

	// at solar noon the altitude is 90 - |latitude - declination|
	expected := 90.0 - math.Abs(lat-astro.Declination(noon))
	assert.InDelta(t, expected, altitude, 0.5)
}

func TestSunEventOrdering(t *testing.T) {
	st := astro.Sun(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), 47.1, 6.83)

	require.False(t, st.Dawn.IsZero())
	require.False(t, st.Sunrise.IsZero())
	require.False(t, st.Sunset.IsZero())
	require.False(t, st.Dusk.IsZero())

	assert.True(t, st.Dawn.Before(st.Sunrise))
	assert.True(t, st.Sunrise.Before(st.Noon))
	assert.True(t, st.Noon.Before(st.Sunset))
	assert.True(t, st.Sunset.Before(st.Dusk))
}

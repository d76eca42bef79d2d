package lst_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ja-he/soltime/internal/astro"
	"github.com/ja-he/soltime/internal/location"
	"github.com/ja-he/soltime/internal/lst"
)

func TestOffsetAt(t *testing.T) {
	{
		testcase := "prime meridian offset is exactly the equation of time"

		zone, err := lst.NewZone(0)
		if err != nil {
			t.Fatalf("test case '%s': unexpected error: %s", testcase, err)
		}
		at := time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)
		if zone.OffsetAt(at) != astro.EquationOfTime(at) {
			t.Errorf("test case '%s' failed", testcase)
		}
	}
	{
		testcase := "nominal UTC-5 longitude"

		zone, err := lst.NewZone(-75)
		if err != nil {
			t.Fatalf("test case '%s': unexpected error: %s", testcase, err)
		}
		at := time.Date(2026, 4, 15, 17, 0, 0, 0, time.UTC)
		expected := -5*time.Hour + astro.EquationOfTime(at)
		if zone.OffsetAt(at) != expected {
			t.Errorf("test case '%s' failed: got %s, want %s", testcase, zone.OffsetAt(at), expected)
		}
	}
}

func TestOffsetIsContinuous(t *testing.T) {
	zone, err := lst.NewZone(131.03)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := zone.OffsetAt(at)
	for i := 0; i < 24*60; i++ {
		at = at.Add(time.Minute)
		current := zone.OffsetAt(at)
		if math.Abs((current - prev).Seconds()) >= 1.0 {
			t.Fatalf("offset jumped by %s between adjacent minutes at %s", current-prev, at)
		}
		prev = current
	}
}

func TestRoundTrip(t *testing.T) {
	longitudes := []float64{-179.5, -109.28, -75, 0, 6.83, 76.47, 131.03, 179.5}
	for _, longitude := range longitudes {
		zone, err := lst.NewZone(longitude)
		if err != nil {
			t.Fatalf("unexpected error for longitude %v: %s", longitude, err)
		}

		for month := time.January; month <= time.December; month++ {
			x := time.Date(2026, month, 7, 9, 30, 21, 0, time.UTC)

			local := zone.ToLocal(x)
			back := zone.ToUTC(local)
			if math.Abs(back.Sub(x).Seconds()) > 1.0 {
				t.Errorf("round trip off by %s for longitude %v at %s", back.Sub(x), longitude, x)
			}

			again := zone.ToLocal(zone.ToUTC(local))
			if math.Abs(again.Sub(local).Seconds()) > 1.0 {
				t.Errorf("local round trip off by %s for longitude %v at %s", again.Sub(local), longitude, x)
			}
		}
	}
}

func TestToLocalNearSeasonalExtreme(t *testing.T) {
	// at longitude -75 (UTC-5 nominal), 17:00 UTC is nominal local noon; in
	// early November the sundial runs roughly a quarter hour fast
	zone, err := lst.NewZone(-75)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	local := zone.ToLocal(time.Date(2026, 11, 3, 17, 0, 0, 0, time.UTC))
	if local.Hour() != 12 {
		t.Fatalf("expected an hour of 12, got %d (%s)", local.Hour(), local)
	}
	if local.Minute() < 10 || local.Minute() > 22 {
		t.Errorf("expected a seasonal correction of roughly +16 minutes, got %s", local.Format("15:04:05"))
	}
}

func TestLocalZoneName(t *testing.T) {
	zone, err := lst.NewZone(6.83)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	local := zone.ToLocal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	if local.Format("MST") != lst.Key {
		t.Errorf("expected zone abbreviation '%s', got '%s'", lst.Key, local.Format("MST"))
	}
}

func TestNewZoneRejectsOutOfRangeLongitude(t *testing.T) {
	for _, longitude := range []float64{200, -180.5, 361} {
		_, err := lst.NewZone(longitude)
		if err == nil {
			t.Fatalf("expected an error for longitude %v", longitude)
		}
		if !errors.Is(err, location.ErrOutOfRange) {
			t.Errorf("expected an out-of-range error for longitude %v, got: %s", longitude, err)
		}
	}
}

func TestParseInstant(t *testing.T) {
	{
		testcase := "RFC3339"
		parsed, err := lst.ParseInstant("2026-08-29T12:00:00Z")
		if err != nil {
			t.Fatalf("test case '%s': unexpected error: %s", testcase, err)
		}
		if !parsed.Equal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("test case '%s' failed: got %s", testcase, parsed)
		}
	}
	{
		testcase := "space-separated datetime"
		parsed, err := lst.ParseInstant("2026-08-29 12:00:00")
		if err != nil {
			t.Fatalf("test case '%s': unexpected error: %s", testcase, err)
		}
		if !parsed.Equal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("test case '%s' failed: got %s", testcase, parsed)
		}
	}
	{
		testcase := "date only"
		parsed, err := lst.ParseInstant("2026-08-29")
		if err != nil {
			t.Fatalf("test case '%s': unexpected error: %s", testcase, err)
		}
		if !parsed.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("test case '%s' failed: got %s", testcase, parsed)
		}
	}
	{
		testcase := "garbage input"
		_, err := lst.ParseInstant("when the cows come home")
		if err == nil {
			t.Fatalf("test case '%s': expected an error", testcase)
		}
		var invalidInput *lst.InvalidInputError
		if !errors.As(err, &invalidInput) {
			t.Errorf("test case '%s': expected an InvalidInputError, got: %s", testcase, err)
		}
	}
}

func TestLockedZone(t *testing.T) {
	zone, err := lst.NewZoneAt(location.Observer{Latitude: 47.1, Longitude: 6.83})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !zone.Locked() {
		t.Fatal("a zone built from a fixed position should be locked")
	}
	if err := zone.Update(); !errors.Is(err, lst.ErrZoneLocked) {
		t.Errorf("expected ErrZoneLocked from Update, got: %v", err)
	}
	if err := zone.SetObserver(location.Observer{}); !errors.Is(err, lst.ErrZoneLocked) {
		t.Errorf("expected ErrZoneLocked from SetObserver, got: %v", err)
	}
	if err := zone.Lock(); !errors.Is(err, lst.ErrRedundant) {
		t.Errorf("expected ErrRedundant from a second Lock, got: %v", err)
	}
}

func TestZoneFromProvider(t *testing.T) {
	positions := []location.Observer{
		{Name: "first", Longitude: 0},
		{Name: "second", Longitude: 90},
	}
	i := 0
	provider := func() (location.Observer, error) {
		obs := positions[i%len(positions)]
		i++
		return obs, nil
	}

	zone, err := lst.NewZoneFromProvider(provider)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if zone.Observer().Name != "first" {
		t.Fatalf("expected the provider to be read on construction, observer is '%s'", zone.Observer().Name)
	}
	if zone.Locked() {
		t.Fatal("a provider-backed zone should not be locked")
	}

	if err := zone.Update(); err != nil {
		t.Fatalf("unexpected error on update: %s", err)
	}
	if zone.Observer().Name != "second" {
		t.Errorf("expected the provider to be re-read on update, observer is '%s'", zone.Observer().Name)
	}

	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	expected := 6*time.Hour + astro.EquationOfTime(at)
	if zone.OffsetAt(at) != expected {
		t.Errorf("expected the offset to follow the updated position, got %s", zone.OffsetAt(at))
	}

	if err := zone.Lock(); err != nil {
		t.Fatalf("unexpected error on first lock: %s", err)
	}
	if err := zone.Update(); !errors.Is(err, lst.ErrZoneLocked) {
		t.Errorf("expected ErrZoneLocked after locking, got: %v", err)
	}
}

func TestZoneFromProviderError(t *testing.T) {
	providerErr := fmt.Errorf("no GPS fix")
	_, err := lst.NewZoneFromProvider(func() (location.Observer, error) {
		return location.Observer{}, providerErr
	})
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}
	if !errors.Is(err, providerErr) {
		t.Errorf("expected the provider error to be wrapped, got: %s", err)
	}
}

func TestProviderPositionIsNormalized(t *testing.T) {
	zone, err := lst.NewZoneFromProvider(location.Fixed(location.Observer{Longitude: 190}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if zone.Observer().Longitude != -170 {
		t.Errorf("expected longitude 190 to normalize to -170, got %v", zone.Observer().Longitude)
	}
}

func TestFormatOffset(t *testing.T) {
	testcases := []struct {
		offset   time.Duration
		expected string
	}{
		{0, "+00:00:00"},
		{5*time.Hour + 6*time.Minute + 7*time.Second, "+05:06:07"},
		{-(4*time.Hour + 56*time.Minute + 2*time.Second), "-04:56:02"},
	}
	for _, testcase := range testcases {
		result := lst.FormatOffset(testcase.offset)
		if result != testcase.expected {
			t.Errorf("expected '%s' for %s, got '%s'", testcase.expected, testcase.offset, result)
		}
	}
}

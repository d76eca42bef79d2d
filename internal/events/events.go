// Package events maintains the table of astronomical events (sun events plus
// any registered sources) for an observer position, recomputing it as the
// position or the date changes.
package events

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/soltime/internal/astro"
	"github.com/ja-he/soltime/internal/location"
)

// StaleAfter is how long after its instant an event is kept in the table
// before an update evicts it.
const StaleAfter = 3 * time.Hour

// An Event is a named instant.
type Event struct {
	Name string
	At   time.Time
}

// A Source contributes named events for the day around a reference instant.
// Times is expected to cover roughly the 24 hours following ref; entries need
// not be sorted.
type Source interface {
	Name() string
	Times(ref time.Time, obs location.Observer) (map[string]time.Time, error)
}

// Table is the merged event set for one observer. It is safe for concurrent
// use; a scheduler may call Update while a view reads Sorted.
type Table struct {
	mtx        sync.Mutex
	sources    []Source
	times      map[string]time.Time
	duplicates []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{times: map[string]time.Time{}}
}

// AddSource registers an event source. It contributes on the next Update.
func (t *Table) AddSource(s Source) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.sources = append(t.sources, s)
}

// RemoveSource unregisters the source with the given name.
func (t *Table) RemoveSource(name string) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	for i, s := range t.sources {
		if s.Name() == name {
			t.sources = append(t.sources[:i], t.sources[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no source named '%s'", name)
}

// Update recomputes the table for the given reference instant and position.
//
// Sun events are computed for the reference date and the following day;
// where a name occurs on both days, the reference day wins unless its
// occurrence is staler than StaleAfter, so each name resolves to the nearest
// relevant occurrence. Source errors are logged and skipped; they do not
// fail the update.
func (t *Table) Update(ref time.Time, obs location.Observer) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	cutoff := ref.Add(-StaleAfter)

	merged := map[string]time.Time{}
	for name, at := range sunEvents(ref.AddDate(0, 0, 1), obs) {
		merged[name] = at
	}
	for name, at := range sunEvents(ref, obs) {
		if at.Before(cutoff) {
			continue
		}
		merged[name] = at
	}

	var duplicates []string
	for _, source := range t.sources {
		times, err := source.Times(cutoff, obs)
		if err != nil {
			log.Warn().Err(err).Str("source", source.Name()).Msg("event source failed, skipping")
			continue
		}
		for name, at := range times {
			if _, exists := merged[name]; exists {
				duplicates = append(duplicates, name)
			}
			merged[name] = at
		}
	}

	t.times = merged
	t.duplicates = duplicates
}

// Sorted returns the events in chronological order.
func (t *Table) Sorted() []Event {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	result := make([]Event, 0, len(t.times))
	for name, at := range t.times {
		result = append(result, Event{Name: name, At: at})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].At.Before(result[j].At) })
	return result
}

// Duplicates returns the event names that more than one contributor claimed
// during the last update.
func (t *Table) Duplicates() []string {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return append([]string(nil), t.duplicates...)
}

// sunEvents maps the sun events of the date of t to their conventional names,
// dropping the ones that do not occur (polar day/night).
func sunEvents(t time.Time, obs location.Observer) map[string]time.Time {
	st := astro.Sun(t, obs.Latitude, obs.Longitude)
	result := map[string]time.Time{}
	for name, at := range map[string]time.Time{
		"Dawn":    st.Dawn,
		"Sunrise": st.Sunrise,
		"Noon":    st.Noon,
		"Sunset":  st.Sunset,
		"Dusk":    st.Dusk,
	} {
		if !at.IsZero() {
			result[name] = at
		}
	}
	return result
}

package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/soltime/internal/events"
)

// Flags for the `events` command line command, for `go-flags` to parse
// command line args into.
type EventsCommand struct {
	PositionFlags

	PrayerTimes bool `short:"p" long:"prayer-times" description:"include prayer times (also enabled via config)"`
	UTC         bool `long:"utc" description:"print event times in UTC instead of local solar time"`
}

// Executes the events command.
// (This gets called by `go-flags` when `events` is provided on the command
// line)
func (command *EventsCommand) Execute(args []string) error {
	zone, configData, err := zoneFromConfigAndFlags(command.PositionFlags)
	if err != nil {
		return err
	}

	table := events.NewTable()
	if command.PrayerTimes || configData.Events.PrayerTimes {
		table.AddSource(events.PrayerTimes{})
	}

	now := time.Now()
	table.Update(now, zone.Observer())

	for _, name := range table.Duplicates() {
		log.Warn().Str("event", name).Msg("event name claimed by more than one source")
	}

	obs := zone.Observer()
	fmt.Printf("You are here: %s (%s)\n", obs.Name, obs.Region)

	printed := false
	for _, event := range table.Sorted() {
		if !printed && event.At.After(now) {
			fmt.Printf("->\t%-10s%s\n", "Now", stringify(command.UTC, zone.ToLocal, now))
			printed = true
		}
		fmt.Printf("\t%-10s%s\n", event.Name, stringify(command.UTC, zone.ToLocal, event.At))
	}
	if !printed {
		fmt.Printf("->\t%-10s%s\n", "Now", stringify(command.UTC, zone.ToLocal, now))
	}

	return nil
}

func stringify(utc bool, toLocal func(time.Time) time.Time, t time.Time) string {
	if utc {
		return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
	}
	return toLocal(t).Format("2006-01-02 15:04:05")
}

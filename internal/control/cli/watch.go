package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/soltime/internal/config"
	"github.com/ja-he/soltime/internal/events"
	"github.com/ja-he/soltime/internal/location"
	"github.com/ja-he/soltime/internal/lst"
	"github.com/ja-he/soltime/internal/schedule"
	"github.com/ja-he/soltime/internal/tui"
)

// Flags for the `watch` command line command, for `go-flags` to parse
// command line args into.
type WatchCommand struct {
	PositionFlags

	UpdateInterval string `short:"n" long:"update-interval" description:"position/event update interval: s, m, h, d, or empty for manual" value-name:"<interval>"`
	PrayerTimes    bool   `short:"p" long:"prayer-times" description:"include prayer times (also enabled via config)"`
	LogOutputFile  string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped while the view is up)"`
}

// Executes the watch command.
// (This gets called by `go-flags` when `watch` is provided on the command
// line)
func (command *WatchCommand) Execute(args []string) error {
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// while the view owns the terminal, logs go to a file or nowhere
	var logWriter io.Writer = io.Discard
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		logWriter = file
	}
	log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()

	configData, err := config.Load()
	if err != nil {
		return err
	}

	obs := observerFromConfigAndFlags(configData, command.PositionFlags)
	zone, err := lst.NewZoneFromProvider(location.Fixed(obs))
	if err != nil {
		return err
	}

	table := events.NewTable()
	if command.PrayerTimes || configData.Events.PrayerTimes {
		table.AddSource(events.PrayerTimes{})
	}
	table.Update(time.Now(), zone.Observer())

	intervalSpec := configData.UpdateInterval
	if command.UpdateInterval != "" {
		intervalSpec = command.UpdateInterval
	}
	interval, err := schedule.ParseInterval(intervalSpec)
	if err != nil {
		return err
	}

	updater := schedule.New(interval, func() {
		if err := zone.Update(); err != nil {
			log.Warn().Err(err).Msg("position update failed")
		}
		table.Update(time.Now(), zone.Observer())
	})
	if err := updater.Start(); err != nil {
		return fmt.Errorf("could not start updates (%w)", err)
	}
	defer updater.Stop()

	style, err := tui.StyleFromConfig(configData.Clock)
	if err != nil {
		return err
	}
	view, err := tui.NewClockView(zone, table, style)
	if err != nil {
		return err
	}
	view.Run()

	log.Logger = stderrLogger
	return nil
}

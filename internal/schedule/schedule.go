// Package schedule runs the periodic position and event-table updates.
package schedule

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

// An Interval is how often updates run.
type Interval int

const (
	// Manual means updates are only triggered explicitly.
	Manual Interval = iota
	// Locked means the zone's position is frozen; scheduling is an error.
	Locked
	EverySecond
	EveryMinute
	EveryHour
	EveryDay
)

// ParseInterval parses the single-letter interval grammar: "s", "m", "h",
// "d", "" (manual), or "locked".
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "s":
		return EverySecond, nil
	case "m":
		return EveryMinute, nil
	case "h":
		return EveryHour, nil
	case "d":
		return EveryDay, nil
	case "":
		return Manual, nil
	case "locked":
		return Locked, nil
	default:
		return Manual, fmt.Errorf("unknown update interval '%s' (want s, m, h, d, empty, or locked)", s)
	}
}

// String returns the configuration spelling of the interval.
func (i Interval) String() string {
	switch i {
	case EverySecond:
		return "s"
	case EveryMinute:
		return "m"
	case EveryHour:
		return "h"
	case EveryDay:
		return "d"
	case Locked:
		return "locked"
	default:
		return ""
	}
}

// A Scheduler periodically runs an update job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	interval  Interval
	job       func()
}

// New creates a Scheduler running job at the given interval.
func New(interval Interval, job func()) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
		job:       job,
	}
}

// Start schedules the job and starts the underlying scheduler (async). For
// Manual nothing is scheduled; for Locked an error is returned.
func (s *Scheduler) Start() error {
	switch s.interval {
	case Manual:
		log.Debug().Msg("manual update interval, nothing to schedule")
		return nil
	case Locked:
		return fmt.Errorf("cannot schedule updates for a locked zone")
	}

	unit := s.scheduler.Every(1)
	switch s.interval {
	case EverySecond:
		unit = unit.Second()
	case EveryMinute:
		unit = unit.Minute()
	case EveryHour:
		unit = unit.Hour()
	case EveryDay:
		unit = unit.Day()
	}

	if _, err := unit.Do(s.job); err != nil {
		return fmt.Errorf("could not schedule update job (%w)", err)
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

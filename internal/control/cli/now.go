package cli

import (
	"fmt"
	"time"

	"github.com/ja-he/soltime/internal/lst"
)

// Flags for the `now` command line command, for `go-flags` to parse command
// line args into.
type NowCommand struct {
	PositionFlags

	OffsetOnly bool `short:"o" long:"offset-only" description:"only print the current UTC offset"`
}

// Executes the now command.
// (This gets called by `go-flags` when `now` is provided on the command
// line)
func (command *NowCommand) Execute(args []string) error {
	zone, _, err := zoneFromConfigAndFlags(command.PositionFlags)
	if err != nil {
		return err
	}

	now := time.Now()
	offset := zone.OffsetAt(now)

	if command.OffsetOnly {
		fmt.Println(lst.FormatOffset(offset))
		return nil
	}

	obs := zone.Observer()
	fmt.Printf("You are here: %s (%s)\n", obs.Name, obs.Region)
	fmt.Printf("%s %s (UTC offset %s)\n",
		zone.ToLocal(now).Format("2006-01-02 15:04:05"),
		lst.Key,
		lst.FormatOffset(offset),
	)

	return nil
}

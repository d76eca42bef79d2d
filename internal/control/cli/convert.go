package cli

import (
	"fmt"

	"github.com/ja-he/soltime/internal/lst"
)

// Flags for the `convert` command line command, for `go-flags` to parse
// command line args into.
type ConvertCommand struct {
	PositionFlags

	Instant string `short:"i" long:"instant" description:"the instant to convert (e.g. '2026-08-29 12:00:00')" value-name:"<datetime>" required:"true"`
	ToUTC   bool   `short:"u" long:"to-utc" description:"read the instant as local solar time and convert to UTC (default is UTC to local)"`
}

// Executes the convert command.
// (This gets called by `go-flags` when `convert` is provided on the command
// line)
func (command *ConvertCommand) Execute(args []string) error {
	zone, _, err := zoneFromConfigAndFlags(command.PositionFlags)
	if err != nil {
		return err
	}

	parsed, err := lst.ParseInstant(command.Instant)
	if err != nil {
		return err
	}

	if command.ToUTC {
		fmt.Println(zone.ToUTC(parsed).Format("2006-01-02 15:04:05") + " UTC")
	} else {
		fmt.Println(zone.ToLocal(parsed).Format("2006-01-02 15:04:05") + " " + lst.Key)
	}

	return nil
}

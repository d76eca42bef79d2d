// Package cli provides the command-line interface for soltime.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	NowCommand     NowCommand     `command:"now" subcommands-optional:"true"`
	ConvertCommand ConvertCommand `command:"convert" subcommands-optional:"true"`
	EventsCommand  EventsCommand  `command:"events" subcommands-optional:"true"`
	WatchCommand   WatchCommand   `command:"watch" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

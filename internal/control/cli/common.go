package cli

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/soltime/internal/config"
	"github.com/ja-he/soltime/internal/location"
	"github.com/ja-he/soltime/internal/lst"
)

// PositionFlags are the position options shared by the position-taking
// subcommands. Unset flags fall back to config, environment, and finally a
// built-in example position.
type PositionFlags struct {
	Latitude  *float64 `long:"latitude" description:"observer latitude in degrees (north positive)" value-name:"<degrees>"`
	Longitude *float64 `long:"longitude" description:"observer longitude in degrees (east positive)" value-name:"<degrees>"`
	Altitude  *float64 `long:"altitude" description:"observer altitude in meters AMSL" value-name:"<meters>"`
}

// observerFromConfigAndFlags resolves the observer position from (in
// ascending precedence) the built-in fixtures, the config file, environment
// overrides, and command-line flags.
func observerFromConfigAndFlags(configData config.Config, flags PositionFlags) location.Observer {
	obsConfig := configData.Observer
	if flags.Latitude != nil {
		obsConfig.Latitude = flags.Latitude
	}
	if flags.Longitude != nil {
		obsConfig.Longitude = flags.Longitude
	}
	if flags.Altitude != nil {
		obsConfig.Altitude = flags.Altitude
	}

	if obsConfig.Latitude == nil || obsConfig.Longitude == nil {
		obs := location.RandomFixture()
		log.Info().Str("position", obs.String()).Msg("no position configured, using a built-in example position")
		return obs
	}

	obs := location.Observer{
		Name:      obsConfig.Name,
		Region:    obsConfig.Region,
		Latitude:  *obsConfig.Latitude,
		Longitude: *obsConfig.Longitude,
	}
	if obsConfig.Altitude != nil {
		obs.Altitude = *obsConfig.Altitude
	}
	return obs
}

// zoneFromConfigAndFlags loads the config and builds a locked zone for the
// resolved position.
func zoneFromConfigAndFlags(flags PositionFlags) (*lst.Zone, config.Config, error) {
	configData, err := config.Load()
	if err != nil {
		return nil, configData, err
	}
	zone, err := lst.NewZoneAt(observerFromConfigAndFlags(configData, flags))
	return zone, configData, err
}

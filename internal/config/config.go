package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${SOLTIME_HOME}/config.yaml'.
type Config struct {
	Observer       ObserverConfig `yaml:"observer"`
	UpdateInterval string         `yaml:"update-interval"`
	Events         Events         `yaml:"events"`
	Clock          Clock          `yaml:"clock"`
}

// ObserverConfig is the observer position as defined in a config file.
// Coordinates are pointers so that an absent value can be told apart from a
// legitimate zero (the Greenwich meridian, the equator).
type ObserverConfig struct {
	Name      string   `yaml:"name,omitempty"`
	Region    string   `yaml:"region,omitempty"`
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	Altitude  *float64 `yaml:"altitude,omitempty"`
}

// Events toggles the optional event sources.
type Events struct {
	PrayerTimes bool `yaml:"prayer-times"`
}

// Clock is the styling of the watch view. Colors are hex strings ("#rrggbb")
// for the sky tint at the named sun altitudes.
type Clock struct {
	DayColor     string `yaml:"day-color"`
	HorizonColor string `yaml:"horizon-color"`
	NightColor   string `yaml:"night-color"`
	TextColor    string `yaml:"text-color"`
}

// BaseDirPath returns the configuration directory, honoring SOLTIME_HOME.
func BaseDirPath() string {
	soltimeHome := os.Getenv("SOLTIME_HOME")
	if soltimeHome == "" {
		return os.Getenv("HOME") + "/.config/soltime"
	}
	return strings.TrimRight(soltimeHome, "/")
}

// Load reads the config file under the base dir (missing file falls back to
// defaults), augments the defaults with it, and applies any environment
// overrides. A '.env' file in the working directory is honored.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var yamlData []byte
	path := BaseDirPath() + "/config.yaml"
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}

	configData, err := ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return configData, err
	}

	applyEnvOverrides(&configData)
	return configData, nil
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Observer = base.Observer.augmentWith(augment.Observer)
	if augment.UpdateInterval != "" {
		result.UpdateInterval = augment.UpdateInterval
	}
	result.Events = augment.Events
	result.Clock = base.Clock.augmentWith(augment.Clock)

	return result
}

func (base ObserverConfig) augmentWith(augment ObserverConfig) ObserverConfig {
	result := base
	if augment.Name != "" {
		result.Name = augment.Name
	}
	if augment.Region != "" {
		result.Region = augment.Region
	}
	if augment.Latitude != nil {
		result.Latitude = augment.Latitude
	}
	if augment.Longitude != nil {
		result.Longitude = augment.Longitude
	}
	if augment.Altitude != nil {
		result.Altitude = augment.Altitude
	}
	return result
}

func (base Clock) augmentWith(augment Clock) Clock {
	result := base
	if augment.DayColor != "" {
		result.DayColor = augment.DayColor
	}
	if augment.HorizonColor != "" {
		result.HorizonColor = augment.HorizonColor
	}
	if augment.NightColor != "" {
		result.NightColor = augment.NightColor
	}
	if augment.TextColor != "" {
		result.TextColor = augment.TextColor
	}
	return result
}

// applyEnvOverrides lets SOLTIME_{LATITUDE,LONGITUDE,ALTITUDE} (and _NAME,
// _REGION) take precedence over file values, e.g. for a position piped in
// from an external fix.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("SOLTIME_NAME"); v != "" {
		c.Observer.Name = v
	}
	if v := os.Getenv("SOLTIME_REGION"); v != "" {
		c.Observer.Region = v
	}
	for env, target := range map[string]**float64{
		"SOLTIME_LATITUDE":  &c.Observer.Latitude,
		"SOLTIME_LONGITUDE": &c.Observer.Longitude,
		"SOLTIME_ALTITUDE":  &c.Observer.Altitude,
	} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Warn().Str("var", env).Str("value", v).Msg("ignoring unparseable coordinate override")
			continue
		}
		*target = &f
	}
}

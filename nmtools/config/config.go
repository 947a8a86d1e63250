package config

import (
	"fmt"
	"io/ioutil"

	"github.com/github/go-config"
	"gopkg.in/yaml.v3"
)

// Distance units
const (
	Kilometers    = "km"
	Miles         = "mi"
	NauticalMiles = "nm"
)

// Config holds application configuration. Defaults and environment overrides
// come from the struct tags, a YAML file may then override them.
type Config struct {
	// NearKm is the maximum distance in km for a fix to match a route point.
	NearKm float64 `config:"0.1,env=NMEA_NEAR_KM" yaml:"near_km"`
	// MinSegmentKm is the minimum length in km of a segment counted in route distances.
	MinSegmentKm float64 `config:"0.005,env=NMEA_MIN_SEGMENT_KM" yaml:"min_segment_km"`
	// Unit is the distance unit used for display (km, mi or nm).
	Unit string `config:"km,env=NMEA_UNIT" yaml:"unit"`
	// BaudRate is the baud rate of serial GPS receivers.
	BaudRate int `config:"4800,env=NMEA_BAUD_RATE" yaml:"baud_rate"`
	// Format is the default output format of decoded records.
	Format string `config:"text,env=NMEA_FORMAT" yaml:"format"`
}

// Load loads the configuration from the environment then, if path is not
// empty, from the given YAML file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.Unit {
	case Kilometers, Miles, NauticalMiles:
	default:
		return fmt.Errorf("invalid unit '%s'", c.Unit)
	}
	if c.NearKm < 0 {
		return fmt.Errorf("near_km must not be negative, got %v", c.NearKm)
	}
	if c.MinSegmentKm < 0 {
		return fmt.Errorf("min_segment_km must not be negative, got %v", c.MinSegmentKm)
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud_rate must be positive, got %d", c.BaudRate)
	}
	return nil
}

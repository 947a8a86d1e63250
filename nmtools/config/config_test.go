package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nmea-tools/nmtools/config"
)

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := config.Load("")

	require.NoError(err)
	require.Equal(0.1, cfg.NearKm)
	require.Equal(0.005, cfg.MinSegmentKm)
	require.Equal(config.Kilometers, cfg.Unit)
	require.Equal(4800, cfg.BaudRate)
	require.Equal("text", cfg.Format)
}

func TestLoadEnvironment(t *testing.T) {
	require := require.New(t)

	t.Setenv("NMEA_UNIT", config.NauticalMiles)
	t.Setenv("NMEA_BAUD_RATE", "9600")

	cfg, err := config.Load("")

	require.NoError(err)
	require.Equal(config.NauticalMiles, cfg.Unit)
	require.Equal(9600, cfg.BaudRate)
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, `
near_km: 0.25
min_segment_km: 0.01
unit: mi
baud_rate: 38400
format: json
`)

	cfg, err := config.Load(path)

	require.NoError(err)
	require.Equal(0.25, cfg.NearKm)
	require.Equal(0.01, cfg.MinSegmentKm)
	require.Equal(config.Miles, cfg.Unit)
	require.Equal(38400, cfg.BaudRate)
	require.Equal("json", cfg.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := config.Load(writeFile(t, "unit: nm\n"))

	require.NoError(err)
	require.Equal(config.NauticalMiles, cfg.Unit)
	require.Equal(0.1, cfg.NearKm)
	require.Equal(4800, cfg.BaudRate)
}

func TestLoadErrors(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
	}{
		"invalid_yaml":  {input: "near_km: [\n"},
		"invalid_unit":  {input: "unit: furlong\n"},
		"negative_near": {input: "near_km: -1\n"},
		"zero_baud":     {input: "baud_rate: 0\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.input))
			require.Error(err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(err)
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	valid := config.Config{NearKm: 0.1, MinSegmentKm: 0, Unit: config.Kilometers, BaudRate: 4800}

	tests := map[string]struct {
		mutate func(*config.Config)
		valid  bool
	}{
		"valid":            {mutate: func(*config.Config) {}, valid: true},
		"miles":            {mutate: func(c *config.Config) { c.Unit = config.Miles }, valid: true},
		"empty_unit":       {mutate: func(c *config.Config) { c.Unit = "" }, valid: false},
		"negative_segment": {mutate: func(c *config.Config) { c.MinSegmentKm = -0.1 }, valid: false},
		"negative_baud":    {mutate: func(c *config.Config) { c.BaudRate = -1 }, valid: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			if tc.valid {
				require.NoError(c.Validate())
			} else {
				require.Error(c.Validate())
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

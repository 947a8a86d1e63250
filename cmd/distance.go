package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/opentracing/opentracing-go"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/convert"
	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/terminal"
)

type distanceCmd struct {
	input        string
	minSegmentKm float64
	unit         string
}

func (*distanceCmd) Name() string     { return "distance" }
func (*distanceCmd) Synopsis() string { return "Compute the distance travelled along decoded fixes." }
func (*distanceCmd) Usage() string {
	return `distance [-input <file>] [-min <km>] [-unit km|mi|nm]
	Sum the great-circle distance between consecutive fixes ordered by time,
	ignoring segments shorter than the minimum segment distance.
  `
}

func (c *distanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", source.Stdin, "file, serial device or - for stdin")
	f.Float64Var(&c.minSegmentKm, "min", -1, "minimum segment distance in km (defaults to the configured value)")
	f.StringVar(&c.unit, "unit", "", "distance unit (km, mi, nm)")
}

func (c *distanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	span, ctx := opentracing.StartSpanFromContext(ctx, "distance")
	defer span.Finish()

	minSegmentKm := c.minSegmentKm
	if minSegmentKm < 0 {
		minSegmentKm = cfg.MinSegmentKm
	}
	unit := c.unit
	if unit == "" {
		unit = cfg.Unit
	}
	if _, err := toUnit(0, unit); err != nil {
		terminal.Error(err, "Invalid unit")
		return subcommands.ExitUsageError
	}

	t, rejected, err := readTrack(ctx, c.input, cfg.BaudRate)
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", c.input)
		return subcommands.ExitFailure
	}
	if rejected > 0 {
		terminal.Warn("Skipped %d invalid sentence(s)", rejected)
	}
	if len(t.Points) == 0 {
		terminal.Error(nil, "No valid sentence found in '%s'", c.input)
		return subcommands.ExitFailure
	}

	stats := t.Stats(minSegmentKm)
	raw := geo.RouteDistance(t.Route())
	b := t.Bounds()

	d, _ := toUnit(stats.Distance, unit)
	rd, _ := toUnit(raw, unit)
	fmt.Printf("fixes:     %d\n", len(t.Points))
	fmt.Printf("start:     %s\n", stats.Start.Format(timeFormat))
	fmt.Printf("duration:  %s\n", stats.Duration)
	fmt.Printf("distance:  %.3f %s (unfiltered %.3f %s)\n", d, unit, rd, unit)
	fmt.Printf("max speed: %.2f km/h\n", stats.MaxSpeedKmh)
	fmt.Printf("avg speed: %.2f km/h\n", stats.AvgSpeedKmh)
	fmt.Printf("bounds:    %.6f,%.6f %.6f,%.6f\n", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)

	return subcommands.ExitSuccess
}

// toUnit converts a distance in km to the given unit
func toUnit(km float64, unit string) (float64, error) {
	switch unit {
	case config.Kilometers:
		return km, nil
	case config.Miles:
		return convert.ToMiles(km), nil
	case config.NauticalMiles:
		return convert.ToNauticalMiles(km), nil
	}
	return 0, fmt.Errorf("unknown unit '%s'", unit)
}

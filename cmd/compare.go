package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/opentracing/opentracing-go"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/terminal"
)

type compareCmd struct {
	route string
	input string
	maxKm float64
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "Compare decoded fixes with a reference route." }
func (*compareCmd) Usage() string {
	return `compare -route <file.gpx|file.nmea> [-input <file>] [-max <km>]
	Print the percentage of input fixes lying within the maximum distance
	of a point of the reference route.
  `
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.route, "route", "", "reference route, GPX file or NMEA sentences")
	f.StringVar(&c.input, "input", source.Stdin, "file, serial device or - for stdin")
	f.Float64Var(&c.maxKm, "max", -1, "maximum matching distance in km (defaults to the configured value)")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	span, ctx := opentracing.StartSpanFromContext(ctx, "compare")
	defer span.Finish()

	if c.route == "" {
		terminal.Error(nil, "A reference route is required")
		return subcommands.ExitUsageError
	}
	maxKm := c.maxKm
	if maxKm < 0 {
		maxKm = cfg.NearKm
	}

	o := terminal.NewOperation("Loading reference route '%s'", c.route)
	reference, err := readRoute(ctx, c.route, cfg.BaudRate)
	if err != nil {
		o.Error(err, "Failed to load reference route '%s'", c.route)
		return subcommands.ExitFailure
	}
	o.Success("Reference route loaded (%d points)", len(reference))

	t, rejected, err := readTrack(ctx, c.input, cfg.BaudRate)
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", c.input)
		return subcommands.ExitFailure
	}
	if rejected > 0 {
		terminal.Warn("Skipped %d invalid sentence(s)", rejected)
	}

	similarity := geo.RouteSimilarity(reference, t.Route(), maxKm)
	span.SetTag("similarity", similarity)
	fmt.Printf("%.2f%% of %d fixes within %.3f km of the reference route\n", similarity, len(t.Points), maxKm)

	return subcommands.ExitSuccess
}

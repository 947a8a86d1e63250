package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/opentracing/opentracing-go"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/gpxutils"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/terminal"
)

type exportCmd struct {
	input      string
	outputFile string
	name       string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "Export decoded fixes as a GPX track." }
func (*exportCmd) Usage() string {
	return `export [-input <file>] -output <file.gpx> [-name <name>]
	Write the decoded fixes, ordered by time, as a GPX 1.1 track.
  `
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", source.Stdin, "file, serial device or - for stdin")
	f.StringVar(&c.outputFile, "output", "", "output GPX file")
	f.StringVar(&c.name, "name", "nmea track", "track name")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	span, ctx := opentracing.StartSpanFromContext(ctx, "export")
	defer span.Finish()

	if c.outputFile == "" {
		terminal.Error(nil, "An output file is required")
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

	o := terminal.NewOperation("Exporting %d fixes to '%s'", len(t.Points), c.outputFile)
	if err := gpxutils.WriteFile(c.outputFile, c.name, t); err != nil {
		o.Error(err, "Failed to export GPX")
		return subcommands.ExitFailure
	}
	o.Success("GPX exported to %s", c.outputFile)

	return subcommands.ExitSuccess
}

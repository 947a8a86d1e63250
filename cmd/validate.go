package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/opentracing/opentracing-go"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/nmea"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/terminal"
)

type validateCmd struct {
	input string
	quiet bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "Validate GPRMC sentences." }
func (*validateCmd) Usage() string {
	return `validate [-input <file>] [-q]
	Check every sentence of the input and print whether it is valid.
	Exits with status 1 when at least one sentence is invalid.
  `
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", source.Stdin, "file, serial device or - for stdin")
	f.BoolVar(&c.quiet, "q", false, "only print invalid sentences")
}

func (c *validateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	span, _ := opentracing.StartSpanFromContext(ctx, "validate")
	defer span.Finish()

	r, err := source.Open(c.input, cfg.BaudRate)
	if err != nil {
		terminal.Error(err, "Could not open '%s'", c.input)
		return subcommands.ExitFailure
	}
	defer r.Close()

	var p nmea.Parser = nmea.RMCParser{}
	valid, invalid := 0, 0
	err = source.Scan(r, func(lineNo int, line string) error {
		if p.Validate(line) {
			valid++
			if !c.quiet {
				fmt.Fprintf(os.Stdout, "%d\tvalid\t%s\n", lineNo, line)
			}
			return nil
		}
		invalid++
		fmt.Fprintf(os.Stdout, "%d\tinvalid\t%s\n", lineNo, line)
		return nil
	})
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", c.input)
		return subcommands.ExitFailure
	}

	span.SetTag("valid", valid)
	span.SetTag("invalid", invalid)
	if invalid > 0 {
		terminal.Warn("%d valid, %d invalid sentence(s)", valid, invalid)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/subcommands"
	"github.com/opentracing/opentracing-go"
	"gopkg.in/yaml.v3"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/nmea"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/terminal"
)

type decodeCmd struct {
	input      string
	format     string
	outputFile string
}

const (
	jsonF = "json"
	textF = "text"
	csvF  = "csv"
	yamlF = "yaml"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

type recordView struct {
	Time       string  `json:"time" yaml:"time"`
	Latitude   float64 `json:"lat" yaml:"lat"`
	Longitude  float64 `json:"lon" yaml:"lon"`
	SpeedKnots float64 `json:"speed_knots" yaml:"speed_knots"`
	SpeedKmh   float64 `json:"speed_kmh" yaml:"speed_kmh"`
	Bearing    float64 `json:"bearing" yaml:"bearing"`
	MagVar     float64 `json:"mag_var" yaml:"mag_var"`
	Status     string  `json:"status" yaml:"status"`
}

func newRecordView(r *nmea.Record) recordView {
	return recordView{
		Time:       r.Timestamp().Format(timeFormat),
		Latitude:   r.Position().Latitude,
		Longitude:  r.Position().Longitude,
		SpeedKnots: r.SpeedKnots(),
		SpeedKmh:   r.SpeedKmh(),
		Bearing:    r.Bearing(),
		MagVar:     r.MagVar(),
		Status:     r.Status(),
	}
}

func (*decodeCmd) Name() string     { return "decode" }
func (*decodeCmd) Synopsis() string { return "Decode GPRMC sentences." }
func (*decodeCmd) Usage() string {
	return `decode [-input <file>] [-format text|json|csv|yaml] [-output <file>]
	Decode the GPRMC sentences of the input, skipping invalid ones.
  `
}

func (c *decodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", source.Stdin, "file, serial device or - for stdin")
	f.StringVar(&c.format, "format", "", "format to display records (json, text, csv, yaml)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *decodeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	span, ctx := opentracing.StartSpanFromContext(ctx, "decode")
	defer span.Finish()

	format := c.format
	if format == "" {
		format = cfg.Format
	}

	// validate parameters
	switch format {
	case jsonF, textF, csvF, yamlF:
	default:
		terminal.Error(nil, "Invalid format '%s'", format)
		return subcommands.ExitUsageError
	}

	records, rejected, err := readRecords(ctx, c.input, cfg.BaudRate)
	if err != nil {
		terminal.Error(err, "Failed to read '%s'", c.input)
		return subcommands.ExitFailure
	}
	if rejected > 0 {
		terminal.Warn("Skipped %d invalid sentence(s)", rejected)
	}

	// get a file writer if needed
	var w io.Writer = os.Stdout
	var op *terminal.Operation
	if c.outputFile != "" {
		out, err := os.Create(c.outputFile)
		if err != nil {
			terminal.Error(err, "Could not open file '%s'", c.outputFile)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out

		op = terminal.NewOperation("Exporting %d records to '%s' in %s format", len(records), c.outputFile, format)
	}

	if err := writeRecords(w, format, records); err != nil {
		if op != nil {
			op.Error(err, "Failed to export records")
		} else {
			terminal.Error(err, "Failed to print records")
		}
		return subcommands.ExitFailure
	}

	if op != nil {
		op.Success("Records exported to %s", c.outputFile)
	}

	return subcommands.ExitSuccess
}

func writeRecords(w io.Writer, format string, records []*nmea.Record) error {
	views := make([]recordView, len(records))
	for i, r := range records {
		views[i] = newRecordView(r)
	}

	switch format {
	case textF:
		for _, v := range views {
			if _, err := fmt.Fprintf(w, "%s %.6f,%.6f %.2fkn (%.2fkm/h) %.2f° magvar %.1f %s\n",
				v.Time, v.Latitude, v.Longitude, v.SpeedKnots, v.SpeedKmh, v.Bearing, v.MagVar, v.Status); err != nil {
				return err
			}
		}
	case jsonF:
		b, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case yamlF:
		return yaml.NewEncoder(w).Encode(views)
	case csvF:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"time", "latitude", "longitude", "speed(knots)", "speed(km/h)", "bearing", "magvar", "status"})
		for _, v := range views {
			csvW.Write([]string{v.Time, ftoa(v.Latitude), ftoa(v.Longitude), ftoa(v.SpeedKnots), ftoa(v.SpeedKmh), ftoa(v.Bearing), ftoa(v.MagVar), v.Status})
		}
		csvW.Flush()
		return csvW.Error()
	}
	return nil
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}


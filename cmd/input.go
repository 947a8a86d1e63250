package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/gpxutils"
	"nmea-tools/nmtools/log"
	"nmea-tools/nmtools/nmea"
	"nmea-tools/nmtools/source"
	"nmea-tools/nmtools/track"
)

// readRecords decodes every GPRMC sentence of the named source. Lines that
// are not GPRMC sentences or fail to decode are counted as rejected.
func readRecords(ctx context.Context, name string, baud int) ([]*nmea.Record, int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "read_records")
	defer span.Finish()
	span.SetTag("source", name)

	r, err := source.Open(name, baud)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, 0, err
	}
	defer r.Close()

	var records []*nmea.Record
	rejected := 0
	err = source.Scan(r, func(lineNo int, line string) error {
		p, ok := nmea.Lookup(line)
		if !ok {
			rejected++
			log.Debug(ctx, "unsupported sentence", slog.Int("line", lineNo), slog.String("sentence", line))
			return nil
		}

		s, err := p.Decode(line)
		if err != nil {
			rejected++
			log.Debug(ctx, "rejected sentence", slog.Int("line", lineNo), slog.String("sentence", line), log.Err(err))
			return nil
		}
		if rec, ok := s.(*nmea.Record); ok {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		ext.Error.Set(span, true)
		return nil, rejected, err
	}

	span.SetTag("records", len(records))
	span.SetTag("rejected", rejected)
	return records, rejected, nil
}

// readTrack reads the named source as a track ordered by timestamp.
func readTrack(ctx context.Context, name string, baud int) (*track.Track, int, error) {
	records, rejected, err := readRecords(ctx, name, baud)
	if err != nil {
		return nil, rejected, err
	}
	return track.FromRecords(records), rejected, nil
}

// readRoute reads a route from a GPX file or from a file of NMEA sentences.
func readRoute(ctx context.Context, name string, baud int) ([]geo.Coordinate, error) {
	if strings.EqualFold(filepath.Ext(name), ".gpx") {
		return gpxutils.ReadRoute(name)
	}

	t, _, err := readTrack(ctx, name, baud)
	if err != nil {
		return nil, err
	}
	if len(t.Points) == 0 {
		return nil, errors.New("no valid sentence found")
	}
	return t.Route(), nil
}

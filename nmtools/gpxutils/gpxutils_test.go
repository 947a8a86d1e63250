package gpxutils_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"

	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/gpxutils"
	"nmea-tools/nmtools/track"
)

func TestWriteThenReadRoute(t *testing.T) {
	require := require.New(t)

	start := time.Date(2010, time.November, 23, 8, 47, 52, 0, time.UTC)
	tr := track.New([]track.Point{
		{Coordinate: geo.Coordinate{Latitude: 51.873625, Longitude: -8.541805}, Time: start},
		{Coordinate: geo.Coordinate{Latitude: 51.87375, Longitude: -8.542167}, Time: start.Add(time.Second)},
		{Coordinate: geo.Coordinate{Latitude: 53.349805, Longitude: -6.26031}, Time: start.Add(time.Hour)},
	})

	path := filepath.Join(t.TempDir(), "track.gpx")
	require.NoError(gpxutils.WriteFile(path, "cork", tr))

	route, err := gpxutils.ReadRoute(path)
	require.NoError(err)
	require.Len(route, 3)
	for i, p := range tr.Route() {
		require.InDelta(p.Latitude, route[i].Latitude, 1e-6)
		require.InDelta(p.Longitude, route[i].Longitude, 1e-6)
	}

	g, err := gpx.ParseFile(path)
	require.NoError(err)
	require.Len(g.Tracks, 1)
	require.Equal("cork", g.Tracks[0].Name)
	require.Equal(start, g.Tracks[0].Segments[0].Points[0].Timestamp.UTC())
}

func TestReadRouteMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := gpxutils.ReadRoute(filepath.Join(t.TempDir(), "missing.gpx"))
	require.Error(err)
}

func TestFromTrack(t *testing.T) {
	require := require.New(t)

	start := time.Date(2010, time.November, 23, 8, 47, 52, 0, time.UTC)
	tr := track.New([]track.Point{
		{Coordinate: geo.Coordinate{Latitude: 51.873625, Longitude: -8.541805}, Time: start},
	})

	g := gpxutils.FromTrack("cork", tr)

	require.Equal(gpxutils.GpxVersion, g.Version)
	require.Equal("cork", g.Name)
	require.NotNil(g.Time)
	require.Equal(start, *g.Time)
	require.Len(g.Tracks, 1)
	require.Len(g.Tracks[0].Segments[0].Points, 1)

	require.Nil(gpxutils.FromTrack("empty", track.New(nil)).Time)
}

func TestRouteFlattensDocument(t *testing.T) {
	require := require.New(t)

	pt := func(lat, lng float64) gpx.GPXPoint {
		return gpx.GPXPoint{Point: gpx.Point{Latitude: lat, Longitude: lng}}
	}
	g := &gpx.GPX{
		Tracks: []gpx.GPXTrack{{
			Segments: []gpx.GPXTrackSegment{
				{Points: []gpx.GPXPoint{pt(1, 1), pt(2, 2)}},
				{Points: []gpx.GPXPoint{pt(3, 3)}},
			},
		}},
		Routes:    []gpx.GPXRoute{{Points: []gpx.GPXPoint{pt(4, 4)}}},
		Waypoints: []gpx.GPXPoint{pt(5, 5)},
	}

	route := gpxutils.Route(g)

	require.Len(route, 5)
	for i, p := range route {
		require.Equal(float64(i+1), p.Latitude)
		require.Equal(float64(i+1), p.Longitude)
	}

	require.Empty(gpxutils.Route(&gpx.GPX{}))
}

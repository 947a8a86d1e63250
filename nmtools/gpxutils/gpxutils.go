package gpxutils

import (
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/track"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpsXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// FromTrack builds a single segment GPX document from the given track
func FromTrack(name string, t *track.Track) *gpx.GPX {
	segment := t.Segment()

	g := gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpsXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: "nmea-tools",
		Name:    name,
		Tracks: []gpx.GPXTrack{{
			Name:     name,
			Segments: []gpx.GPXTrackSegment{segment},
		}},
	}
	if len(t.Points) > 0 {
		start := t.Points[0].Time
		g.Time = &start
	}

	return &g
}

// WriteFile writes the track as a GPX file
func WriteFile(path, name string, t *track.Track) error {
	b, err := FromTrack(name, t).ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: true})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// ReadRoute reads every track, route and waypoint of a GPX file as a single
// route, in document order.
func ReadRoute(path string) ([]geo.Coordinate, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Route(g), nil
}

// Route flattens the points of a GPX document
func Route(g *gpx.GPX) []geo.Coordinate {
	var route []geo.Coordinate
	add := func(pts []gpx.GPXPoint) {
		for _, p := range pts {
			route = append(route, geo.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude})
		}
	}

	for _, t := range g.Tracks {
		for _, s := range t.Segments {
			add(s.Points)
		}
	}
	for _, r := range g.Routes {
		add(r.Points)
	}
	add(g.Waypoints)

	return route
}

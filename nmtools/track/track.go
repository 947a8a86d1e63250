package track

import (
	"math"
	"sort"
	"time"

	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"

	"nmea-tools/nmtools/convert"
	"nmea-tools/nmtools/geo"
	"nmea-tools/nmtools/nmea"
)

// Track represents a gps track made of a serie of fixes ordered in time.
type Track struct {
	Points []Point

	polyline *s2.Polyline
	segment  gpx.GPXTrackSegment
}

// Stats track statistics
type Stats struct {
	Start       time.Time
	Duration    time.Duration
	Distance    float64 // km
	MaxSpeedKmh float64
	AvgSpeedKmh float64
}

// New creates a track from the given points, kept in the given order.
func New(pts []Point) *Track {
	sPts := make([]s2.LatLng, len(pts))
	gPts := make([]gpx.GPXPoint, len(pts))
	for i, p := range pts {
		sPts[i] = geo.ToS2LatLng(p)
		gPts[i] = gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
			},
			Timestamp: p.Time,
		}
	}

	return &Track{
		Points:   pts,
		polyline: s2.PolylineFromLatLngs(sPts),
		segment:  gpx.GPXTrackSegment{Points: gPts},
	}
}

// FromRecords creates a track from decoded RMC records ordered by timestamp.
// Records sharing a timestamp keep their relative order.
func FromRecords(records []*nmea.Record) *Track {
	pts := make([]Point, len(records))
	for i, r := range records {
		pts[i] = Point{
			Coordinate: r.Position(),
			Time:       r.Timestamp(),
			SpeedKnots: r.SpeedKnots(),
			Bearing:    r.Bearing(),
		}
	}
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Time.Before(pts[j].Time)
	})

	return New(pts)
}

// Route returns the coordinates of the track
func (t *Track) Route() []geo.Coordinate {
	route := make([]geo.Coordinate, len(t.Points))
	for i, p := range t.Points {
		route[i] = p.Coordinate
	}
	return route
}

// Segment returns the track as a gpx track segment
func (t *Track) Segment() gpx.GPXTrackSegment {
	return t.segment
}

// GetClosestPoint returns the closest point (along with its position on the track) on the track
func (t *Track) GetClosestPoint(pt geo.LatLng) (Point, int) {
	l := len(t.Points)
	switch l {
	case 0:
		return Point{}, -1
	case 1:
		return t.Points[0], 0
	}

	p := s2.PointFromLatLng(geo.ToS2LatLng(pt))
	projectedPt, index := t.polyline.Project(p)
	if index >= l {
		return t.Points[l-1], l - 1
	}

	var closestPtIndex = index - 1
	pts := *t.polyline
	if projectedPt.Distance(pts[index]) < projectedPt.Distance(pts[index-1]) {
		closestPtIndex = index
	}

	return t.Points[closestPtIndex], closestPtIndex
}

// GetShortestDistanceFromPoint returns the shortest distance in km from the given point to the track
func (t *Track) GetShortestDistanceFromPoint(pt geo.LatLng) float64 {
	switch len(t.Points) {
	case 0:
		return math.Inf(1)
	case 1:
		return geo.Distance(t.Points[0], pt)
	}

	ptLatLng := geo.ToS2LatLng(pt)
	projectedPoint, _ := t.polyline.Project(s2.PointFromLatLng(ptLatLng))

	return ptLatLng.Distance(s2.LatLngFromPoint(projectedPoint)).Radians() * geo.EarthRadiusKm
}

// Stats retrieves statistics from the track, segments shorter than
// minSegmentKm being left out of the distance.
func (t *Track) Stats(minSegmentKm float64) Stats {
	if len(t.Points) == 0 {
		return Stats{}
	}

	tb := t.segment.TimeBounds()
	s := Stats{
		Start:    t.Points[0].Time,
		Duration: tb.EndTime.Sub(tb.StartTime),
		Distance: geo.RouteDistanceAbove(t.Route(), minSegmentKm),
	}
	for _, p := range t.Points {
		s.MaxSpeedKmh = math.Max(s.MaxSpeedKmh, convert.KnotsToKmh(p.SpeedKnots))
	}
	if hours := s.Duration.Hours(); hours > 0 {
		s.AvgSpeedKmh = s.Distance / hours
	}

	return s
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := t.segment.Bounds()
	return Bounds{
		MinLat: b.MinLatitude,
		MinLng: b.MinLongitude,
		MaxLat: b.MaxLatitude,
		MaxLng: b.MaxLongitude,
	}
}

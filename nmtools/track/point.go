package track

import (
	"time"

	"nmea-tools/nmtools/geo"
)

// Point is a time-stamped fix on a track
type Point struct {
	geo.Coordinate
	Time       time.Time
	SpeedKnots float64
	Bearing    float64
}

// Package geo computes great-circle distances and route comparisons on a
// spherical Earth.
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371

// LatLng is anything located by a latitude and a longitude in degrees.
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Coordinate is a location in signed decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// Lat returns the latitude in degrees
func (c Coordinate) Lat() float64 {
	return c.Latitude
}

// Lng returns the longitude in degrees
func (c Coordinate) Lng() float64 {
	return c.Longitude
}

// Distance returns the great-circle distance in km between a and b.
func Distance(a, b LatLng) float64 {
	return ToS2LatLng(a).Distance(ToS2LatLng(b)).Radians() * EarthRadiusKm
}

// RouteDistance returns the length in km of the route, summing the distance
// between consecutive points.
func RouteDistance(route []Coordinate) float64 {
	return RouteDistanceAbove(route, 0)
}

// RouteDistanceAbove is like RouteDistance but skips segments shorter than
// minSegmentKm, which filters out GPS jitter between near identical fixes.
func RouteDistanceAbove(route []Coordinate, minSegmentKm float64) float64 {
	var distance float64
	for i := 1; i < len(route); i++ {
		if d := Distance(route[i-1], route[i]); d >= minSegmentKm {
			distance += d
		}
	}
	return distance
}

// NearRoute reports whether any point of the route is within maxKm of p.
func NearRoute(route []Coordinate, p LatLng, maxKm float64) bool {
	for _, r := range route {
		if Distance(r, p) <= maxKm {
			return true
		}
	}
	return false
}

// RouteSimilarity returns the percentage of the points of b lying within
// maxKm of a point of a. It is 0 when either route is empty and is not
// symmetric.
func RouteSimilarity(a, b []Coordinate, maxKm float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	matched := 0
	for _, p := range b {
		if NearRoute(a, p, maxKm) {
			matched++
		}
	}
	return float64(matched) / float64(len(b)) * 100
}

// ToS2LatLng converts p to an s2.LatLng.
func ToS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}

package convert

const (
	knotToKmh        = 1.852
	kmToMile         = 0.621371
	kmToNauticalMile = 1 / knotToKmh
)

// KnotsToKmh returns the given speed in knots to km/h
func KnotsToKmh(knots float64) float64 {
	return knots * knotToKmh
}

// ToMiles returns the given distance in km to statute miles
func ToMiles(km float64) float64 {
	return km * kmToMile
}

// ToNauticalMiles returns the given distance in km to nautical miles,
// a nautical mile being what a knot covers in an hour.
func ToNauticalMiles(km float64) float64 {
	return km * kmToNauticalMile
}

package geo

import "math"

// Direction is the direction from a base Point toward a remote one.
// Bearing is degrees clockwise from true north in [0,360), Elevation
// is degrees above (positive) or below (negative) the horizontal
// plane, Distance is the great circle surface distance in meters.
type Direction struct {
	Bearing   float64 `json:"bearing"`
	Elevation float64 `json:"elevation"`
	Distance  float64 `json:"distance"`
}

// Calculate returns the Direction from base to remote, every field
// rounded to precision decimals.
//
// Distance is the haversine great circle distance and ignores the
// altitude difference. Elevation treats that distance and the
// altitude difference as the two legs of a right triangle. Bearing is
// the initial great circle bearing. When base and remote share lat
// and lon every atan2 collapses to 0 and the result is {0, 0, 0} by
// convention, not an error.
func Calculate(base, remote Point, precision int) Direction {
	φ1 := base.Lat
	φ2 := remote.Lat
	Δφ := φ2 - φ1
	Δλ := remote.Lon - base.Lon

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := R * δ

	ε := math.Atan2(remote.Alt-base.Alt, d)

	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	// degrees first, then the wrap into [0,360)
	b := wrap360(Degrees(θ))

	return Direction{
		Bearing:   round(b, precision),
		Elevation: round(Degrees(ε), precision),
		Distance:  round(d, precision),
	}
}

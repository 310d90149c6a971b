package geo

import "math"

const π = math.Pi

// R is the mean Earth radius in meters (spherical approximation).
const R = 6371000.0

// DefaultPrecision is the number of decimals Calculate rounds to when
// the caller has no preference.
const DefaultPrecision = 2

// Point is a single geographic location. Lat and Lon are radians, Alt
// is meters above the reference level. Values are never validated:
// out of range input flows through the math unchanged.
type Point struct {
	Lat float64
	Lon float64
	Alt float64
}

// NewPoint builds a Point from degree valued latitude and longitude
// and an altitude in meters. Only lat and lon are converted.
func NewPoint(latDeg, lonDeg, altM float64) Point {
	return Point{Lat: Radians(latDeg), Lon: Radians(lonDeg), Alt: altM}
}

func Radians(a float64) float64 {
	return a * π / 180.0
}

func Degrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d1 := d + 360.0
	d2 := d1 - float64(int(d1/360.0)*360)
	return d2
}

func round(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

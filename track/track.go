package track

import (
	"fmt"

	"github.com/a-bouts/aim-server/geo"
)

// InvalidUpdateError reports an Update whose field set is empty or
// covers all three coordinates.
type InvalidUpdateError struct {
	Fields []string
}

func (e *InvalidUpdateError) Error() string {
	return fmt.Sprintf("invalid update %v: want one or two of lat, lon, alt", e.Fields)
}

// Update names the coordinate fields to replace on a Location. Nil
// fields are left untouched. Values are written as-is into the Point,
// so Lat and Lon are radians here even though geo.NewPoint takes
// degrees. Callers working in degrees convert at their own boundary.
type Update struct {
	Lat *float64
	Lon *float64
	Alt *float64
}

// Location holds the current Point of one station and the rounding
// precision used for directions computed from it. It does no locking
// of its own: callers sharing a Location serialize access themselves.
type Location struct {
	point     geo.Point
	precision int
}

func New(p geo.Point, precision int) *Location {
	return &Location{point: p, precision: precision}
}

// Point returns the current point.
func (l *Location) Point() geo.Point {
	return l.point
}

// Set replaces the current point wholesale.
func (l *Location) Set(p geo.Point) {
	l.point = p
}

// Update replaces the named subset of coordinate fields, carrying the
// rest over from the current point. The set must name one or two
// fields: an empty set is a no-op bug on the caller's side, and
// naming all three means Set should have been used instead. Both fail
// with *InvalidUpdateError.
func (l *Location) Update(u Update) error {
	var fields []string
	if u.Lat != nil {
		fields = append(fields, "lat")
	}
	if u.Lon != nil {
		fields = append(fields, "lon")
	}
	if u.Alt != nil {
		fields = append(fields, "alt")
	}

	if len(fields) == 0 || len(fields) == 3 {
		return &InvalidUpdateError{Fields: fields}
	}

	p := l.point
	if u.Lat != nil {
		p.Lat = *u.Lat
	}
	if u.Lon != nil {
		p.Lon = *u.Lon
	}
	if u.Alt != nil {
		p.Alt = *u.Alt
	}
	l.point = p

	return nil
}

// Direction computes the direction from the held point to remote at
// the held precision.
func (l *Location) Direction(remote geo.Point) geo.Direction {
	return geo.Calculate(l.point, remote, l.precision)
}

package geo

import (
	"math"
	"testing"
)

func TestNewPoint(t *testing.T) {
	p := NewPoint(180.0, -90.0, 12.5)
	if math.Abs(p.Lat-π) > 1e-12 {
		t.Errorf("NewPoint(180, -90, 12.5).Lat = %f; want π", p.Lat)
	}
	if math.Abs(p.Lon+π/2) > 1e-12 {
		t.Errorf("NewPoint(180, -90, 12.5).Lon = %f; want -π/2", p.Lon)
	}
	if p.Alt != 12.5 {
		t.Errorf("NewPoint(180, -90, 12.5).Alt = %f; want 12.5", p.Alt)
	}
}

func TestDegreesRadians(t *testing.T) {
	if d := Degrees(Radians(137.25)); math.Abs(d-137.25) > 1e-12 {
		t.Errorf("Degrees(Radians(137.25)) = %f; want 137.25", d)
	}
}

func TestWrap360(t *testing.T) {
	a := wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("wrap360(-1) = %f; want 359.0", a)
	}
	b := wrap360(361.0)
	if b != 1.0 {
		t.Errorf("wrap360(361.0) = %f; want 1.0", b)
	}
	c := wrap360(359.5)
	if c != 359.5 {
		t.Errorf("wrap360(359.5) = %f; want 359.5", c)
	}
}

func TestRound(t *testing.T) {
	if r := round(149.0936022047032, 2); r != 149.09 {
		t.Errorf("round(149.0936..., 2) = %f; want 149.09", r)
	}
	if r := round(916.3199753205412, 2); r != 916.32 {
		t.Errorf("round(916.3199..., 2) = %f; want 916.32", r)
	}
	if r := round(-1.5, 0); r != -2.0 {
		t.Errorf("round(-1.5, 0) = %f; want -2.0", r)
	}
}

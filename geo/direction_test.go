package geo

import "testing"

// Reference base, on the north bank of the Thames.
var base = NewPoint(51.5069574, -0.112639096, 0)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name         string
		base, remote Point
		want         Direction
	}{
		{
			name:   "south-east",
			base:   base,
			remote: NewPoint(51.4986765, -0.104676284, 0),
			want:   Direction{Bearing: 149.09, Elevation: 0.0, Distance: 1073.14},
		},
		{
			name:   "south",
			base:   base,
			remote: NewPoint(51.4987206, -0.112233761, 0),
			want:   Direction{Bearing: 178.25, Elevation: 0.0, Distance: 916.32},
		},
		{
			name:   "north-east",
			base:   base,
			remote: NewPoint(51.5111140, -0.108711939, 0),
			want:   Direction{Bearing: 30.46, Elevation: 0.0, Distance: 536.18},
		},
		{
			name:   "target above sunken base",
			base:   NewPoint(51.5069574, -0.112639096, -5),
			remote: NewPoint(51.4986765, -0.104676284, 10),
			want:   Direction{Bearing: 149.09, Elevation: 0.8, Distance: 1073.14},
		},
		{
			name:   "high target",
			base:   base,
			remote: NewPoint(51.4986765, -0.104676284, 430),
			want:   Direction{Bearing: 149.09, Elevation: 21.84, Distance: 1073.14},
		},
	}

	for _, c := range cases {
		got := Calculate(c.base, c.remote, 2)
		if got != c.want {
			t.Errorf("%s: Calculate = %+v; want %+v", c.name, got, c.want)
		}
	}
}

func TestCalculateSelf(t *testing.T) {
	d := Calculate(base, base, 2)
	if d != (Direction{Bearing: 0, Elevation: 0, Distance: 0}) {
		t.Errorf("Calculate(P, P) = %+v; want {0 0 0}", d)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	remote := NewPoint(51.4986765, -0.104676284, 430)
	d1 := Calculate(base, remote, 6)
	d2 := Calculate(base, remote, 6)
	if d1 != d2 {
		t.Errorf("Calculate not deterministic: %+v != %+v", d1, d2)
	}
}

func TestCalculateBearingRange(t *testing.T) {
	for lat := -80.0; lat <= 80.0; lat += 16.0 {
		for lon := -180.0; lon <= 180.0; lon += 30.0 {
			d := Calculate(base, NewPoint(lat, lon, 0), 2)
			if d.Bearing < 0.0 || d.Bearing >= 360.0 {
				t.Errorf("Calculate(base, {%f,%f}).Bearing = %f; want [0,360)", lat, lon, d.Bearing)
			}
			if d.Distance < 0.0 {
				t.Errorf("Calculate(base, {%f,%f}).Distance = %f; want >= 0", lat, lon, d.Distance)
			}
		}
	}
}

func TestCalculatePrecision(t *testing.T) {
	remote := NewPoint(51.4986765, -0.104676284, 0)
	cases := []struct {
		precision int
		want      Direction
	}{
		{0, Direction{Bearing: 149, Elevation: 0, Distance: 1073}},
		{1, Direction{Bearing: 149.1, Elevation: 0, Distance: 1073.1}},
		{2, Direction{Bearing: 149.09, Elevation: 0, Distance: 1073.14}},
		{3, Direction{Bearing: 149.094, Elevation: 0, Distance: 1073.142}},
		{4, Direction{Bearing: 149.0936, Elevation: 0, Distance: 1073.1422}},
	}

	for _, c := range cases {
		got := Calculate(base, remote, c.precision)
		if got != c.want {
			t.Errorf("Calculate precision %d = %+v; want %+v", c.precision, got, c.want)
		}
	}
}

func TestCalculateVerticalTarget(t *testing.T) {
	remote := base
	remote.Alt = 430
	d := Calculate(base, remote, 2)
	if d != (Direction{Bearing: 0, Elevation: 90, Distance: 0}) {
		t.Errorf("Calculate(P, P+430m) = %+v; want {0 90 0}", d)
	}
}

func TestCalculateTargetBelow(t *testing.T) {
	remote := NewPoint(51.4986765, -0.104676284, -120)
	d := Calculate(base, remote, 2)
	if d.Elevation >= 0.0 {
		t.Errorf("Calculate(base, below).Elevation = %f; want < 0", d.Elevation)
	}
}

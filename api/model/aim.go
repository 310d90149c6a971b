package model

// Position is a geographic position in the units clients speak:
// degrees for lat and lon, meters for alt.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt"`
}

// Direction is the stateless form of the calculator: both ends come
// from the request.
type Direction struct {
	Base      Position `json:"base"`
	Remote    Position `json:"remote"`
	Precision *int     `json:"precision,omitempty"`
}

// Target aims the held base at a remote position.
type Target struct {
	Remote    Position `json:"remote"`
	Precision *int     `json:"precision,omitempty"`
}

// BasePatch carries a partial update of the base position. Absent
// fields keep their current value.
type BasePatch struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
	Alt *float64 `json:"alt,omitempty"`
}

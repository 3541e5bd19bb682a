package types

import (
	"math"
	"strconv"
)

// Coord is a coordinate value that survives JSON encoding even when the
// underlying input failed to parse. encoding/json refuses NaN, so invalid
// values are emitted as null and the map widget skips them.
type Coord float64

func (c Coord) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// Marker is a labeled point overlay, one each for the route start and end.
type Marker struct {
	Name string `json:"name"`
	Lat  Coord  `json:"lat"`
	Lon  Coord  `json:"lon"`
}

// Circle is a hazard-zone overlay centered on one incident.
type Circle struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Label  string  `json:"label"`
}

// Polyline is the computed route drawn on the map, vertices in order.
type Polyline struct {
	Points [][2]float64 `json:"points"`
}

// View is everything the map page renders: overlays derived from current
// state plus the single shared error slot and per-flow busy flags.
type View struct {
	Circles    []Circle          `json:"circles"`
	Markers    []Marker          `json:"markers"`
	Route      *Polyline         `json:"route,omitempty"`
	Prediction *PredictionResult `json:"prediction,omitempty"`
	Error      string            `json:"error,omitempty"`

	HazardsLoading bool `json:"hazardsLoading"`
	RouteLoading   bool `json:"routeLoading"`
	PredictLoading bool `json:"predictLoading"`
}

package types

import "math"

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsNumeric reports whether both components parsed to real numbers.
// A field that failed to parse carries NaN and makes the point unusable
// for route calculation, though it is still rendered.
func (p GeoPoint) IsNumeric() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon)
}

// InRange reports whether the point lies inside the usual WGS84 bounds.
// Out-of-range points are still forwarded to the backend, which is the
// authority on rejecting them.
func (p GeoPoint) InRange() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// WildfireIncident is one historical fire as served by the wildfires
// endpoint. Immutable once fetched.
type WildfireIncident struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	FireSize  float64 `json:"fire_size"`
}

// FireRecord is the Firestore document shape backing WildfireIncident.
type FireRecord struct {
	FireYear  int     `firestore:"fireYear" json:"fire_year"`
	State     string  `firestore:"state" json:"state"`
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
	FireSize  float64 `firestore:"fireSize" json:"fire_size"`
}

// Incident converts a stored record to its wire representation.
func (r FireRecord) Incident() WildfireIncident {
	return WildfireIncident{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		FireSize:  r.FireSize,
	}
}

// RouteRequest is the body of POST /calculate-route.
type RouteRequest struct {
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
	EndLat   float64 `json:"end_lat"`
	EndLon   float64 `json:"end_lon"`
}

// RouteResponse carries the computed path as [lat, lon] pairs, which is
// what the map widget consumes directly.
type RouteResponse struct {
	Route [][2]float64 `json:"route"`
}

// PredictionResult is the classifier verdict for one uploaded image.
// Confidence is whatever the model sent, a percentage string or a bare
// number; the client only displays it.
type PredictionResult struct {
	Prediction string `json:"prediction"`
	Confidence any    `json:"confidence"`
}

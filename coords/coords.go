// Package coords holds the user-edited route endpoints. Each field is set
// independently from textual input; a failed parse stores NaN rather than
// silently defaulting, so downstream consumers see "invalid" explicitly.
package coords

import (
	"math"
	"strconv"
	"sync"

	"go-sentinel/types"
)

type Model struct {
	mu       sync.Mutex
	startLat float64
	startLon float64
	endLat   float64
	endLon   float64
}

// NewModel returns a model with all four fields unset (NaN).
func NewModel() *Model {
	nan := math.NaN()
	return &Model{startLat: nan, startLon: nan, endLat: nan, endLon: nan}
}

func parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (m *Model) SetStartLat(s string) { m.mu.Lock(); m.startLat = parse(s); m.mu.Unlock() }
func (m *Model) SetStartLon(s string) { m.mu.Lock(); m.startLon = parse(s); m.mu.Unlock() }
func (m *Model) SetEndLat(s string)   { m.mu.Lock(); m.endLat = parse(s); m.mu.Unlock() }
func (m *Model) SetEndLon(s string)   { m.mu.Lock(); m.endLon = parse(s); m.mu.Unlock() }

// Start returns the current start point, NaN components included.
func (m *Model) Start() types.GeoPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return types.GeoPoint{Lat: m.startLat, Lon: m.startLon}
}

// End returns the current end point, NaN components included.
func (m *Model) End() types.GeoPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return types.GeoPoint{Lat: m.endLat, Lon: m.endLon}
}

// Valid reports whether both endpoints are fully numeric. No range or
// cross-field check happens here; the backend owns those decisions.
func (m *Model) Valid() bool {
	return m.Start().IsNumeric() && m.End().IsNumeric()
}

// Package view derives map overlays from current state. Nothing here is
// stored; every call recomputes from the flow stores and coordinate model.
package view

import (
	"fmt"

	"go-sentinel/classify"
	"go-sentinel/coords"
	"go-sentinel/flow"
	"go-sentinel/hazards"
	"go-sentinel/routing"
	"go-sentinel/types"
)

// Compose builds the full render state: one circle per incident, start and
// end markers at whatever the coordinate fields hold (invalid values are
// rendered as null positions, not rejected), a polyline iff a non-empty
// route exists, and the single shared error slot holding the most recent
// error across the three flows.
func Compose(m *coords.Model, hz *hazards.Store, rp *routing.Planner, cl *classify.Classifier) types.View {
	hzState := hz.State()
	rpState := rp.State()
	clState := cl.State()

	v := types.View{
		HazardsLoading: hzState.Loading,
		RouteLoading:   rpState.Loading,
		PredictLoading: clState.Loading,
		Prediction:     cl.Prediction(),
	}

	v.Circles = make([]types.Circle, 0, len(hzState.Data))
	for _, inc := range hzState.Data {
		v.Circles = append(v.Circles, types.Circle{
			Lat:    inc.Latitude,
			Lon:    inc.Longitude,
			Radius: inc.FireSize * 0.5,
			Label:  fmt.Sprintf("Fire size: %.2f acres", inc.FireSize),
		})
	}

	start, end := m.Start(), m.End()
	v.Markers = []types.Marker{
		{Name: "Start", Lat: types.Coord(start.Lat), Lon: types.Coord(start.Lon)},
		{Name: "End", Lat: types.Coord(end.Lat), Lon: types.Coord(end.Lon)},
	}

	if route := rp.Route(); len(route) > 0 {
		line := &types.Polyline{Points: make([][2]float64, 0, len(route))}
		for _, p := range route {
			line.Points = append(line.Points, [2]float64{p.Lat, p.Lon})
		}
		v.Route = line
	}

	v.Error = flow.MostRecentError(hz.LastError, rp.LastError, cl.LastError)
	return v
}

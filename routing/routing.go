// Package routing drives the route-calculation flow. A calculation is only
// ever started by an explicit user action, never by a coordinate edit.
package routing

import (
	"context"

	"go-sentinel/api"
	"go-sentinel/flow"
	"go-sentinel/types"
)

type Planner struct {
	client *api.Client
	flow   *flow.Store[[]types.GeoPoint]
}

func NewPlanner(client *api.Client) *Planner {
	return &Planner{
		client: client,
		flow:   flow.NewStore[[]types.GeoPoint]("route"),
	}
}

// Calculate requests a route between start and end. The displayed route is
// cleared the moment the calculation starts, so the old path never lingers
// under a spinner. Non-numeric endpoints fail locally without touching the
// network; out-of-range but numeric values are forwarded as-is and the
// backend decides. Returns flow.ErrBusy while a calculation is in flight.
func (p *Planner) Calculate(ctx context.Context, start, end types.GeoPoint) error {
	if p.flow.State().Loading {
		return flow.ErrBusy
	}
	if !start.IsNumeric() || !end.IsNumeric() {
		return p.flow.Fail("Start and end coordinates must be numbers.")
	}

	p.flow.Clear()
	return p.flow.Start(func() ([]types.GeoPoint, error) {
		return p.client.CalculateRoute(ctx, types.RouteRequest{
			StartLat: start.Lat,
			StartLon: start.Lon,
			EndLat:   end.Lat,
			EndLon:   end.Lon,
		})
	})
}

// Route returns the current path, nil when no route is displayed. A failed
// calculation leaves it nil; "no route yet" and "calculation failed" are
// told apart by the flow error.
func (p *Planner) Route() []types.GeoPoint {
	st := p.flow.State()
	if !st.HasData {
		return nil
	}
	return st.Data
}

func (p *Planner) State() flow.State[[]types.GeoPoint] { return p.flow.State() }
func (p *Planner) LastError() (flow.ErrorRecord, bool) { return p.flow.LastError() }
func (p *Planner) Subscribe(fn func())                 { p.flow.Subscribe(fn) }

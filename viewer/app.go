// Package viewer wires the client core together and serves the map page.
// The browser is only the map widget and the trigger surface; all state
// lives in this process.
package viewer

import (
	"context"
	"sync"

	"go-sentinel/api"
	"go-sentinel/classify"
	"go-sentinel/coords"
	"go-sentinel/hazards"
	"go-sentinel/routing"
	"go-sentinel/types"
	"go-sentinel/view"
)

// MapConfig is the consumed map-widget contract: center, zoom and a tile
// source. Rendering internals stay in the widget.
type MapConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	TileURL   string
}

type App struct {
	Coords     *coords.Model
	Hazards    *hazards.Store
	Planner    *routing.Planner
	Classifier *classify.Classifier
	Map        MapConfig

	mu      sync.Mutex
	current types.View
}

// NewApp builds the stores against one backend client and subscribes to
// all three, recomposing the cached view on any change. Stores never see
// each other; this is the only place their states meet.
func NewApp(client *api.Client, mapCfg MapConfig, fireYear int, fireRegion string) *App {
	app := &App{
		Coords:     coords.NewModel(),
		Hazards:    hazards.NewStore(client, fireYear, fireRegion),
		Planner:    routing.NewPlanner(client),
		Classifier: classify.NewClassifier(client),
		Map:        mapCfg,
	}

	app.Hazards.Subscribe(app.recompose)
	app.Planner.Subscribe(app.recompose)
	app.Classifier.Subscribe(app.recompose)
	app.recompose()
	return app
}

// Start kicks off the one hazard-layer fetch. The other two flows wait for
// user triggers.
func (a *App) Start(ctx context.Context) {
	a.Hazards.Fetch(ctx)
}

func (a *App) recompose() {
	v := view.Compose(a.Coords, a.Hazards, a.Planner, a.Classifier)
	a.mu.Lock()
	a.current = v
	a.mu.Unlock()
}

// View returns the latest composed render state.
func (a *App) View() types.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// SetCoord routes one textual field edit to the coordinate model. Unknown
// fields are ignored. Edits never trigger a calculation.
func (a *App) SetCoord(field, value string) {
	switch field {
	case "start_lat":
		a.Coords.SetStartLat(value)
	case "start_lon":
		a.Coords.SetStartLon(value)
	case "end_lat":
		a.Coords.SetEndLat(value)
	case "end_lon":
		a.Coords.SetEndLon(value)
	}
	a.recompose()
}

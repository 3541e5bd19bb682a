// Package planner computes evacuation routes. The path search itself is
// delegated to the Google Maps Directions API; this package's job is to
// reject any candidate that passes through a hazard zone.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"

	"go-sentinel/geo"
	"go-sentinel/types"
)

// dangerRadiusKM is how close a route vertex may come to a fire before the
// whole candidate is discarded.
const dangerRadiusKM = 1.0

// ErrNoSafePath means every candidate route crossed a hazard zone.
var ErrNoSafePath = errors.New("Could not find a safe path.")

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// initMapsClient initializes and returns a singleton Google Maps client.
func initMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	return mapsClient, err
}

type Planner struct {
	client *maps.Client
}

func New() (*Planner, error) {
	client, err := initMapsClient()
	if err != nil {
		return nil, err
	}
	return &Planner{client: client}, nil
}

// SafeRoute asks Directions for candidate routes between the endpoints and
// returns the vertices of the first one that stays clear of every hazard.
func (p *Planner) SafeRoute(ctx context.Context, rr types.RouteRequest, hazards []types.WildfireIncident) ([][2]float64, error) {
	req := &maps.DirectionsRequest{
		Origin:       fmt.Sprintf("%f,%f", rr.StartLat, rr.StartLon),
		Destination:  fmt.Sprintf("%f,%f", rr.EndLat, rr.EndLon),
		Mode:         maps.TravelModeDriving,
		Alternatives: true,
	}

	routes, _, err := p.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoSafePath
	}

	for _, rt := range routes {
		points, err := rt.OverviewPolyline.Decode()
		if err != nil {
			log.Printf("Warning: could not decode candidate polyline: %v", err)
			continue
		}
		if !routeIsSafe(points, hazards, dangerRadiusKM) {
			continue
		}

		coords := make([][2]float64, 0, len(points))
		for _, pt := range points {
			coords = append(coords, [2]float64{pt.Lat, pt.Lng})
		}
		return coords, nil
	}

	return nil, ErrNoSafePath
}

// routeIsSafe reports whether no vertex comes within radiusKM of a fire.
func routeIsSafe(points []maps.LatLng, hazards []types.WildfireIncident, radiusKM float64) bool {
	for _, pt := range points {
		for _, hz := range hazards {
			if geo.HaversineKM(pt.Lat, pt.Lng, hz.Latitude, hz.Longitude) < radiusKM {
				return false
			}
		}
	}
	return true
}

// Package hazards is the store for the wildfire incident layer. It fetches
// once at viewer start for a fixed year and region; there is no refetch or
// retry, the user reloads the application to try again.
package hazards

import (
	"context"
	"sync"

	"go-sentinel/api"
	"go-sentinel/flow"
	"go-sentinel/types"
)

type Store struct {
	client *api.Client
	year   int
	region string

	once sync.Once
	flow *flow.Store[[]types.WildfireIncident]
}

func NewStore(client *api.Client, year int, region string) *Store {
	return &Store{
		client: client,
		year:   year,
		region: region,
		flow:   flow.NewStore[[]types.WildfireIncident]("hazards"),
	}
}

// Fetch issues the one and only incident request. Later calls are no-ops.
// On failure the incident list stays empty and the error is recorded.
func (s *Store) Fetch(ctx context.Context) {
	s.once.Do(func() {
		_ = s.flow.Start(func() ([]types.WildfireIncident, error) {
			return s.client.GetWildfires(ctx, s.year, s.region)
		})
	})
}

// Incidents returns the fetched list; nil until a successful fetch.
func (s *Store) Incidents() []types.WildfireIncident {
	return s.flow.State().Data
}

func (s *Store) State() flow.State[[]types.WildfireIncident] { return s.flow.State() }
func (s *Store) LastError() (flow.ErrorRecord, bool)         { return s.flow.LastError() }
func (s *Store) Subscribe(fn func())                         { s.flow.Subscribe(fn) }

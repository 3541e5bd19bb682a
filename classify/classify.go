// Package classify manages the image-classification flow: a user-staged
// file plus the request cycle that turns it into a label and confidence.
package classify

import (
	"context"
	"sync"

	"go-sentinel/api"
	"go-sentinel/flow"
	"go-sentinel/types"
)

type Classifier struct {
	client *api.Client

	mu       sync.Mutex
	filename string
	data     []byte

	flow *flow.Store[types.PredictionResult]
}

func NewClassifier(client *api.Client) *Classifier {
	return &Classifier{
		client: client,
		flow:   flow.NewStore[types.PredictionResult]("prediction"),
	}
}

// Stage records the pending file and unconditionally clears any previous
// prediction, even if the new file is never analyzed. A newer Stage simply
// replaces the staged file.
func (c *Classifier) Stage(filename string, data []byte) {
	c.mu.Lock()
	c.filename = filename
	c.data = data
	c.mu.Unlock()
	c.flow.Clear()
}

// Analyze sends the staged file for classification. With nothing staged it
// fails immediately with a local error and no network call is attempted.
// Returns flow.ErrBusy while an analysis is in flight. A failed analysis
// leaves the prediction as it was, which after Stage's eager clear means
// cleared.
func (c *Classifier) Analyze(ctx context.Context) error {
	if c.flow.State().Loading {
		return flow.ErrBusy
	}

	c.mu.Lock()
	filename, data := c.filename, c.data
	c.mu.Unlock()
	if len(data) == 0 {
		return c.flow.Fail("Please select an image first.")
	}

	return c.flow.Start(func() (types.PredictionResult, error) {
		return c.client.Predict(ctx, filename, data)
	})
}

// Prediction returns the current result, nil when none is displayed.
func (c *Classifier) Prediction() *types.PredictionResult {
	st := c.flow.State()
	if !st.HasData {
		return nil
	}
	result := st.Data
	return &result
}

func (c *Classifier) State() flow.State[types.PredictionResult] { return c.flow.State() }
func (c *Classifier) LastError() (flow.ErrorRecord, bool)       { return c.flow.LastError() }
func (c *Classifier) Subscribe(fn func())                       { c.flow.Subscribe(fn) }

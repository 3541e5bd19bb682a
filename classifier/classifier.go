// Package classifier performs fire/no-fire inference for uploaded images.
// The model itself lives elsewhere: either a dedicated model service or
// OpenAI vision, selected from the environment.
package classifier

import (
	"context"
	"errors"
	"os"

	"go-sentinel/types"
)

// Labels match what the CNN service reports.
const (
	LabelFire   = "Fire Detected"
	LabelNoFire = "No Fire Detected"
)

type Classifier interface {
	Predict(ctx context.Context, filename string, image []byte) (types.PredictionResult, error)
}

// FromEnv picks the configured backend: MODEL_URL wins, then
// OPENAI_API_KEY.
func FromEnv() (Classifier, error) {
	if url := os.Getenv("MODEL_URL"); url != "" {
		return NewRemoteModel(url), nil
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return NewOpenAIClassifier(key), nil
	}
	return nil, errors.New("no classifier configured: set MODEL_URL or OPENAI_API_KEY")
}

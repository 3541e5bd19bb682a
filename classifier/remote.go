package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"go-sentinel/types"
)

// RemoteModel forwards images to the CNN model service and relays its
// verdict unchanged.
type RemoteModel struct {
	url  string
	http *http.Client
}

func NewRemoteModel(url string) *RemoteModel {
	return &RemoteModel{url: url, http: &http.Client{Timeout: 60 * time.Second}}
}

func (m *RemoteModel) Predict(ctx context.Context, filename string, image []byte) (types.PredictionResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return types.PredictionResult{}, err
	}
	if _, err := part.Write(image); err != nil {
		return types.PredictionResult{}, err
	}
	if err := mw.Close(); err != nil {
		return types.PredictionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, &buf)
	if err != nil {
		return types.PredictionResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := m.http.Do(req)
	if err != nil {
		return types.PredictionResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PredictionResult{}, errors.New("model service returned status: " + resp.Status)
	}

	var result types.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return types.PredictionResult{}, err
	}
	return result, nil
}

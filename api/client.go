// Package api is the HTTP client for the sentinel backend. Error handling
// follows one policy everywhere: a non-2xx response with a JSON "detail"
// field surfaces that string verbatim; anything else maps to a generic
// message for the calling flow.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go-sentinel/types"
)

// Generic fallback messages, one per flow.
const (
	msgWildfiresFailed = "Could not load wildfire data."
	msgRouteFailed     = "Failed to calculate route."
	msgPredictFailed   = "Failed to analyze image."
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the backend at baseURL. No client-side
// timeout is set; a hung request keeps its flow loading until the
// transport itself gives up.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// errorDetail is the structured error envelope the backend emits.
type errorDetail struct {
	Detail string `json:"detail"`
}

// responseError prefers the backend's detail string over the generic
// fallback for the flow.
func responseError(resp *http.Response, fallback string) error {
	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var ed errorDetail
		if json.Unmarshal(body, &ed) == nil && ed.Detail != "" {
			return errors.New(ed.Detail)
		}
	}
	return errors.New(fallback)
}

// GetWildfires fetches the incident set for one year and region.
func (c *Client) GetWildfires(ctx context.Context, year int, region string) ([]types.WildfireIncident, error) {
	url := fmt.Sprintf("%s/wildfires/%d/%s", c.baseURL, year, region)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(msgWildfiresFailed)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.New(msgWildfiresFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseError(resp, msgWildfiresFailed)
	}

	var incidents []types.WildfireIncident
	if err := json.NewDecoder(resp.Body).Decode(&incidents); err != nil {
		return nil, errors.New(msgWildfiresFailed)
	}
	return incidents, nil
}

// CalculateRoute asks the backend for a safe path between two points and
// returns the ordered vertices.
func (c *Client) CalculateRoute(ctx context.Context, rr types.RouteRequest) ([]types.GeoPoint, error) {
	payload, err := json.Marshal(rr)
	if err != nil {
		return nil, errors.New(msgRouteFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate-route", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New(msgRouteFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.New(msgRouteFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseError(resp, msgRouteFailed)
	}

	var rz types.RouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&rz); err != nil {
		return nil, errors.New(msgRouteFailed)
	}

	route := make([]types.GeoPoint, 0, len(rz.Route))
	for _, pair := range rz.Route {
		route = append(route, types.GeoPoint{Lat: pair[0], Lon: pair[1]})
	}
	return route, nil
}

// Predict uploads one image as a multipart body and returns the
// classifier's verdict.
func (c *Client) Predict(ctx context.Context, filename string, data []byte) (types.PredictionResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}
	if _, err := part.Write(data); err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}
	if err := mw.Close(); err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict/wildfire", &buf)
	if err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.PredictionResult{}, responseError(resp, msgPredictFailed)
	}

	var result types.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return types.PredictionResult{}, errors.New(msgPredictFailed)
	}
	return result, nil
}

package viewer

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-sentinel/api"
	"go-sentinel/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fakeBackend() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/wildfires/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"latitude":38.5,"longitude":-120.2,"fire_size":150.5}]`))
	})
	mux.HandleFunc("/calculate-route", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"route":[[37.0,-122.0],[37.1,-122.1]]}`))
	})
	mux.HandleFunc("/predict/wildfire", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"No Fire Detected","confidence":"8.00%"}`))
	})
	return httptest.NewServer(mux)
}

func newTestApp(backendURL string) *App {
	cfg := MapConfig{CenterLat: 37.5, CenterLon: -119.5, Zoom: 6, TileURL: "https://tiles.example/{z}/{x}/{y}.png"}
	return NewApp(api.NewClient(backendURL), cfg, 2015, "CA")
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func stateFrom(t *testing.T, w *httptest.ResponseRecorder) types.View {
	t.Helper()
	var v types.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestStartFetchesHazardLayer(t *testing.T) {
	backend := fakeBackend()
	defer backend.Close()

	app := newTestApp(backend.URL)
	app.Start(context.Background())

	v := app.View()
	require.Len(t, v.Circles, 1)
	require.Equal(t, 150.5*0.5, v.Circles[0].Radius)
}

func TestRouteTriggerEndToEnd(t *testing.T) {
	backend := fakeBackend()
	defer backend.Close()

	app := newTestApp(backend.URL)
	r := SetupRouter(app)

	for field, value := range map[string]string{
		"start_lat": "37.0", "start_lon": "-122.0",
		"end_lat": "37.1", "end_lon": "-122.1",
	} {
		body, _ := json.Marshal(map[string]string{"field": field, "value": value})
		req := httptest.NewRequest(http.MethodPost, "/api/coords", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		require.Equal(t, http.StatusOK, do(r, req).Code)
	}

	w := do(r, httptest.NewRequest(http.MethodPost, "/api/route", nil))
	require.Equal(t, http.StatusOK, w.Code)

	v := stateFrom(t, do(r, httptest.NewRequest(http.MethodGet, "/api/state", nil)))
	require.NotNil(t, v.Route)
	require.Equal(t, [][2]float64{{37.0, -122.0}, {37.1, -122.1}}, v.Route.Points)
	require.Empty(t, v.Error)
}

func TestAnalyzeWithoutImageSurfacesLocalError(t *testing.T) {
	backend := fakeBackend()
	defer backend.Close()

	app := newTestApp(backend.URL)
	r := SetupRouter(app)

	w := do(r, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	require.Equal(t, http.StatusOK, w.Code)

	v := stateFrom(t, w)
	require.Equal(t, "Please select an image first.", v.Error)
	require.Nil(t, v.Prediction)
}

func TestImageStageAndAnalyze(t *testing.T) {
	backend := fakeBackend()
	defer backend.Close()

	app := newTestApp(backend.URL)
	r := SetupRouter(app)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "forest.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.Equal(t, http.StatusOK, do(r, req).Code)

	w := do(r, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	require.Equal(t, http.StatusOK, w.Code)

	v := stateFrom(t, w)
	require.NotNil(t, v.Prediction)
	require.Equal(t, "No Fire Detected", v.Prediction.Prediction)
}

func TestCoordEditNeverTriggersCalculation(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/calculate-route", func(w http.ResponseWriter, r *http.Request) { calls++ })
	backend := httptest.NewServer(mux)
	defer backend.Close()

	app := newTestApp(backend.URL)
	r := SetupRouter(app)

	body, _ := json.Marshal(map[string]string{"field": "start_lat", "value": "37.0"})
	req := httptest.NewRequest(http.MethodPost, "/api/coords", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, http.StatusOK, do(r, req).Code)
	require.Zero(t, calls)
}

func TestIndexPageRendersMapConfig(t *testing.T) {
	backend := fakeBackend()
	defer backend.Close()

	app := newTestApp(backend.URL)
	r := SetupRouter(app)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Climate Sentinel")
	require.Contains(t, w.Body.String(), "leaflet")
}

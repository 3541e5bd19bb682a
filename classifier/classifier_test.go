package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		label      string
		confidence string
		wantErr    bool
	}{
		{name: "fire with confidence", reply: "FIRE 87", label: LabelFire, confidence: "87.00%"},
		{name: "no fire", reply: "NOFIRE 12", label: LabelNoFire, confidence: "12.00%"},
		{name: "lowercase and padding", reply: "  fire 55\n", label: LabelFire, confidence: "55.00%"},
		{name: "missing confidence defaults", reply: "FIRE", label: LabelFire, confidence: "50.00%"},
		{name: "out of range confidence defaults", reply: "FIRE 900", label: LabelFire, confidence: "50.00%"},
		{name: "garbage reply", reply: "I cannot tell", wantErr: true},
		{name: "empty reply", reply: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := parseVerdict(tc.reply)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.label, result.Prediction)
			require.Equal(t, tc.confidence, result.Confidence)
		})
	}
}

func TestRemoteModelForwardsImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "fire.jpg", fh.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"Fire Detected","confidence":"93.00%"}`))
	}))
	defer srv.Close()

	m := NewRemoteModel(srv.URL)
	result, err := m.Predict(context.Background(), "fire.jpg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	require.Equal(t, LabelFire, result.Prediction)
}

func TestRemoteModelSurfacesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewRemoteModel(srv.URL)
	_, err := m.Predict(context.Background(), "fire.jpg", []byte{0xff})
	require.Error(t, err)
	require.Contains(t, err.Error(), "model service returned status")
}

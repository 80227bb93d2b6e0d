package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-api-key"

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, testKey, r.PostFormValue("API_KEY"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latest_reading_time": "09-Sep-2025 13:30 PKT",
			"data": [
				{"name": "Marala", "status": "HIGH", "outflow_discharge": "34250", "outflow_trend": "Rising"},
				{"name": "Trimmu", "status": "LOW", "outflow_discharge": 980, "inflow_discharge": null, "inflow_trend": "Falling"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testKey, nil)
	payload, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09-Sep-2025 13:30 PKT", payload.LatestReadingTime)
	require.Len(t, payload.Stations, 2)

	assert.Equal(t, "Marala", payload.Stations[0].Name)
	assert.Equal(t, FlexString("34250"), payload.Stations[0].OutflowDischarge)

	// Numeric and null discharge values decode too.
	assert.Equal(t, FlexString("980"), payload.Stations[1].OutflowDischarge)
	assert.Equal(t, FlexString(""), payload.Stations[1].InflowDischarge)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testKey, nil)
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatus)
}

func TestFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testKey, nil)
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dashboard payload")
}

func TestFetchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, testKey, nil)
	_, err := client.Fetch(ctx)
	require.Error(t, err)
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{"string", `"12,500"`, "12,500"},
		{"integer", `980`, "980"},
		{"float", `12.5`, "12.5"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, f.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, f)
		})
	}

	var f FlexString
	assert.Error(t, f.UnmarshalJSON([]byte(`{"x":1}`)))
}

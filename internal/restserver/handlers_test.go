package restserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nbouziani/praytimes/pkg/config"
)

func testController(t *testing.T) *Controller {
	t.Helper()
	cfg := config.Config{
		ListenAddr: ":0",
		Method:     "MWL",
		Format:     "24h",
	}
	ctrl, err := NewController(context.Background(), &sync.WaitGroup{}, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	return ctrl
}

func get(t *testing.T, ctrl *Controller, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)
	return rec
}

func TestGetTimings(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=21.4225&lng=39.8262&method=Makkah&date=2024-01-01&timezone=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp struct {
		Code   int         `json:"code"`
		Status string      `json:"status"`
		Data   TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "05:36", resp.Data.Timings["Fajr"])
	assert.Equal(t, "17:49", resp.Data.Timings["Maghrib"])
	assert.Equal(t, "19:19", resp.Data.Timings["Isha"])
	assert.Equal(t, "Makkah", resp.Data.Meta.Method)
	assert.Equal(t, 3.0, resp.Data.Meta.Timezone)
	assert.Equal(t, "2024-01-01", resp.Data.Date.Gregorian)

	// 2024-01-01 falls in Jumada al-Akhirah 1445 on the tabular calendar.
	assert.Equal(t, 1445, resp.Data.Date.Hijri.Year)
	assert.NotEmpty(t, resp.Data.Date.Hijri.Name)
}

func TestGetTimingsFloatFormat(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=21.4225&lng=39.8262&method=Makkah&date=2024-01-01&timezone=3&format=Float")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	fajr, ok := resp.Data.Timings["Fajr"].(float64)
	require.True(t, ok, "Float format should produce numbers, got %T", resp.Data.Timings["Fajr"])
	assert.InDelta(t, 5.6, fajr, 0.02)
}

func TestGetTimingsMissingCoordinates(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=21.4")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTimingsBadDate(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=21.4&lng=39.8&date=January&timezone=3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTimingsUnknownMethodFallsBack(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=21.4&lng=39.8&method=Bogus&date=2024-01-01&timezone=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "MWL", resp.Data.Meta.Method)
}

func TestGetTimingsPolarSentinel(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/timings?lat=65&lng=25&date=2024-06-21&timezone=2&highlats=None")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "-----", resp.Data.Timings["Fajr"])
	assert.NotEqual(t, "-----", resp.Data.Timings["Sunrise"])
}

func TestGetTimingsConfiguredOverridesAndTune(t *testing.T) {
	cfg := config.Config{
		ListenAddr: ":0",
		Method:     "Makkah",
		Format:     "24h",
		Overrides:  map[string]string{"Isha": "120 min"},
		Tune:       map[string]float64{"Fajr": 30},
	}
	ctrl, err := NewController(context.Background(), &sync.WaitGroup{}, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	rec := get(t, ctrl, "/v1/timings?lat=21.4225&lng=39.8262&date=2024-01-01&timezone=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Base Makkah Fajr for this date is 05:36; the configured tuning
	// shifts it 30 minutes.
	assert.Equal(t, "06:06", resp.Data.Timings["Fajr"])
	// The configured 120 min rule replaces Makkah's 90 min Isha.
	assert.Equal(t, "17:49", resp.Data.Timings["Maghrib"])
	assert.Equal(t, "19:49", resp.Data.Timings["Isha"])
	assert.Equal(t, "Makkah", resp.Data.Meta.Method)
}

func TestGetTimingsConfiguredLocationFallback(t *testing.T) {
	cfg := config.Config{
		ListenAddr: ":0",
		Method:     "Makkah",
		Format:     "24h",
		Location: config.LocationConfig{
			Latitude:  21.4225,
			Longitude: 39.8262,
		},
	}
	ctrl, err := NewController(context.Background(), &sync.WaitGroup{}, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	rec := get(t, ctrl, "/v1/timings?date=2024-01-01&timezone=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimingsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "05:36", resp.Data.Timings["Fajr"])
	assert.Equal(t, 21.4225, resp.Data.Meta.Latitude)
	assert.Equal(t, 39.8262, resp.Data.Meta.Longitude)
}

func TestGetMethods(t *testing.T) {
	ctrl := testController(t)
	rec := get(t, ctrl, "/v1/methods")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []MethodInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 6)

	// Sorted by id.
	assert.Equal(t, "Egypt", resp.Data[0].ID)
	for _, m := range resp.Data {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Fajr)
	}
}

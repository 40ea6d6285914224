package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/tracking/internal/pkg/models"
)

func testRouteRequest() models.RouteRequest {
	return models.RouteRequest{
		Origin:      models.Coordinate{Latitude: -6.2100, Longitude: 106.8300},
		Destination: models.Coordinate{Latitude: -6.1754, Longitude: 106.8272},
		Vehicle:     models.VehicleProfile{Type: "truck"},
		Avoid:       models.RouteAvoid{Tolls: true},
	}
}

func TestPrimaryRouteProvider_GetRoute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/routes", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

			var req models.RouteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "truck", req.Vehicle.Type)
			assert.True(t, req.Avoid.Tolls)

			json.NewEncoder(w).Encode(models.RouteResponse{
				DistanceMeters:  15000,
				DurationSeconds: 1200,
				Polyline:        "_p~iF~ps|U_ulLnnqC",
			})
		}))
		defer server.Close()

		provider := NewPrimaryRouteProvider(models.RouteProviderConfig{
			BaseURL:        server.URL,
			APIKey:         "secret",
			TimeoutSeconds: 5,
		})

		resp, err := provider.GetRoute(context.Background(), testRouteRequest())

		require.NoError(t, err)
		assert.Equal(t, float64(15000), resp.DistanceMeters)
		assert.NotEmpty(t, resp.Polyline)
	})

	t.Run("server error is surfaced after retries", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		provider := NewPrimaryRouteProvider(models.RouteProviderConfig{
			BaseURL:        server.URL,
			TimeoutSeconds: 5,
		})

		resp, err := provider.GetRoute(context.Background(), testRouteRequest())

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, 3, calls)
	})

	t.Run("empty geometry is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.RouteResponse{DistanceMeters: 100})
		}))
		defer server.Close()

		provider := NewPrimaryRouteProvider(models.RouteProviderConfig{
			BaseURL:        server.URL,
			TimeoutSeconds: 5,
		})

		_, err := provider.GetRoute(context.Background(), testRouteRequest())

		assert.Error(t, err)
	})
}

func TestOSRMRouteProvider_GetRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		assert.Equal(t, "full", r.URL.Query().Get("overview"))

		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 14500,
				"duration": 1100,
				"geometry": "_p~iF~ps|U_ulLnnqC",
				"legs": [{"steps": [{"geometry": "_p~iF~ps|U"}, {"geometry": "_ulLnnqC"}]}]
			}]
		}`))
	}))
	defer server.Close()

	provider := NewOSRMRouteProvider(server.URL, 5*time.Second)

	resp, err := provider.GetRoute(context.Background(), testRouteRequest())

	require.NoError(t, err)
	assert.Equal(t, float64(14500), resp.DistanceMeters)
	assert.Equal(t, float64(1100), resp.DurationSeconds)
	require.Len(t, resp.Legs, 1)
	assert.Len(t, resp.Legs[0].Steps, 2)
}

func TestOSRMRouteProvider_NoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	provider := NewOSRMRouteProvider(server.URL, 5*time.Second)

	_, err := provider.GetRoute(context.Background(), testRouteRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "NoRoute")
}

func TestFailoverRouteProvider(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 9000, "duration": 800, "geometry": "_p~iF~ps|U_ulLnnqC"}]}`))
	}))
	defer fallback.Close()

	provider := NewFailoverRouteProvider(models.RouteProviderConfig{
		BaseURL:         primary.URL,
		FallbackBaseURL: fallback.URL,
		TimeoutSeconds:  5,
	})

	resp, err := provider.GetRoute(context.Background(), testRouteRequest())

	require.NoError(t, err)
	assert.Equal(t, float64(9000), resp.DistanceMeters)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/services/tracking/mocks"
	"github.com/angkutin/tracking/services/tracking/usecase"
)

func setupTest(t *testing.T) (*TrackingHandler, *mocks.MockTrackingUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockTrackingUC(ctrl)
	return NewTrackingHandler(uc), uc
}

func doRequest(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSelectTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, uc := setupTest(t)
		uc.EXPECT().SelectTrip(gomock.Any(), gomock.Any()).Return("7", nil)

		c, rec := doRequest(http.MethodPost, "/internal/trips",
			`{"id":"trip-1","status":"EN_ROUTE_TO_PICKUP","assigned_party_id":"7"}`)

		require.NoError(t, h.SelectTrip(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "7", resp.Data["tracked_party_id"])
	})

	t.Run("missing trip id", func(t *testing.T) {
		h, _ := setupTest(t)
		c, rec := doRequest(http.MethodPost, "/internal/trips", `{"status":"LOADED"}`)

		require.NoError(t, h.SelectTrip(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no trackable party", func(t *testing.T) {
		h, uc := setupTest(t)
		uc.EXPECT().SelectTrip(gomock.Any(), gomock.Any()).Return("", usecase.ErrNoTrackedParty)

		c, rec := doRequest(http.MethodPost, "/internal/trips", `{"id":"trip-1"}`)

		require.NoError(t, h.SelectTrip(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClearTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, uc := setupTest(t)
		uc.EXPECT().ClearTrip(gomock.Any(), "trip-1").Return(nil)

		c, rec := doRequest(http.MethodDelete, "/internal/trips/trip-1", "")
		c.SetParamNames("id")
		c.SetParamValues("trip-1")

		require.NoError(t, h.ClearTrip(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not tracked", func(t *testing.T) {
		h, uc := setupTest(t)
		uc.EXPECT().ClearTrip(gomock.Any(), "trip-9").Return(usecase.ErrTripNotFound)

		c, rec := doRequest(http.MethodDelete, "/internal/trips/trip-9", "")
		c.SetParamNames("id")
		c.SetParamValues("trip-9")

		require.NoError(t, h.ClearTrip(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetTripState(t *testing.T) {
	h, uc := setupTest(t)
	state := &models.TrackingState{
		TripID:         "trip-1",
		TrackedPartyID: "7",
		Position:       models.Position{Latitude: -6.21, Longitude: 106.83, Heading: 45},
	}
	uc.EXPECT().CurrentState(gomock.Any(), "trip-1").Return(state, nil)

	c, rec := doRequest(http.MethodGet, "/v1/trips/trip-1/state", "")
	c.SetParamNames("id")
	c.SetParamValues("trip-1")

	require.NoError(t, h.GetTripState(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracked_party_id":"7"`)
}

func TestGetTripRoute_NoRouteYet(t *testing.T) {
	h, uc := setupTest(t)
	uc.EXPECT().ActiveRoute(gomock.Any(), "trip-1").Return(nil, nil)

	c, rec := doRequest(http.MethodGet, "/v1/trips/trip-1/route", "")
	c.SetParamNames("id")
	c.SetParamValues("trip-1")

	require.NoError(t, h.GetTripRoute(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngestFix(t *testing.T) {
	h, uc := setupTest(t)
	uc.EXPECT().IngestFix(gomock.Any(), "7", gomock.Any(), models.FixSourceSelf).Return(nil)

	c, rec := doRequest(http.MethodPost, "/internal/parties/7/location",
		`{"lat":-6.21,"lng":106.83,"timestamp":1700000000000}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.IngestFix(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestGetPartyLocation_NotFound(t *testing.T) {
	h, uc := setupTest(t)
	uc.EXPECT().LastKnownLocation(gomock.Any(), "7").Return(nil, nil)

	c, rec := doRequest(http.MethodGet, "/v1/parties/7/location", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.GetPartyLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindNearbyParties(t *testing.T) {
	t.Run("missing params", func(t *testing.T) {
		h, _ := setupTest(t)
		c, rec := doRequest(http.MethodGet, "/internal/parties/nearby?lat=-6.21", "")

		require.NoError(t, h.FindNearbyParties(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		h, uc := setupTest(t)
		uc.EXPECT().NearbyParties(gomock.Any(), gomock.Any(), 5000.0).Return([]models.NearbyParty{
			{PartyID: "7", Latitude: -6.21, Longitude: 106.83, DistanceMeters: 120},
		}, nil)

		c, rec := doRequest(http.MethodGet, "/internal/parties/nearby?lat=-6.21&lng=106.83&radius=5000", "")

		require.NoError(t, h.FindNearbyParties(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"party_id":"7"`)
	})
}

package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/angkutin/tracking/internal/pkg/http"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// OSRMRouteProvider queries an OSRM-compatible routing server. Used as
// the fallback behind the commercial provider; OSRM does not apply
// vehicle dimension constraints, so the route may include roads the
// vehicle cannot take.
type OSRMRouteProvider struct {
	client *httpclient.Client
}

// NewOSRMRouteProvider creates an OSRM route provider
func NewOSRMRouteProvider(baseURL string, timeout time.Duration) *OSRMRouteProvider {
	return &OSRMRouteProvider{client: httpclient.NewClient(baseURL, timeout)}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
		Legs     []struct {
			Steps []struct {
				Geometry string `json:"geometry"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute requests a driving route from OSRM
func (p *OSRMRouteProvider) GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResponse, error) {
	path := fmt.Sprintf("/route/v1/driving/%f,%f", req.Origin.Longitude, req.Origin.Latitude)
	for _, wp := range req.Waypoints {
		path += fmt.Sprintf(";%f,%f", wp.Longitude, wp.Latitude)
	}
	path += fmt.Sprintf(";%f,%f?overview=full&steps=true", req.Destination.Longitude, req.Destination.Latitude)

	var response osrmResponse
	if err := p.client.GetJSON(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("osrm request failed: %w", err)
	}
	if response.Code != "Ok" || len(response.Routes) == 0 {
		return nil, fmt.Errorf("osrm returned no route: code=%s", response.Code)
	}

	route := response.Routes[0]
	result := &models.RouteResponse{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Polyline:        route.Geometry,
	}
	for _, leg := range route.Legs {
		var steps []models.RouteStep
		for _, step := range leg.Steps {
			steps = append(steps, models.RouteStep{Polyline: step.Geometry})
		}
		result.Legs = append(result.Legs, models.RouteLeg{Steps: steps})
	}
	return result, nil
}

package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/angkutin/tracking/internal/pkg/circuitbreaker"
	httpclient "github.com/angkutin/tracking/internal/pkg/http"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/pkg/retry"
)

// PrimaryRouteProvider calls the commercial routing API. Requests go
// through a circuit breaker so a degraded provider fails fast instead
// of holding up fix processing.
type PrimaryRouteProvider struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewPrimaryRouteProvider creates the primary routing API client
func NewPrimaryRouteProvider(cfg models.RouteProviderConfig) *PrimaryRouteProvider {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	return &PrimaryRouteProvider{
		client:  httpclient.NewClientWithAPIKey(cfg.BaseURL, cfg.APIKey, timeout),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("route-provider")),
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  200 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				// Retrying against an open breaker only burns the delay
				return err != circuitbreaker.ErrCircuitBreakerOpen &&
					err != circuitbreaker.ErrTooManyRequests
			},
		}),
	}
}

// GetRoute requests a vehicle-aware route from the provider
func (p *PrimaryRouteProvider) GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResponse, error) {
	var response models.RouteResponse

	err := p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.breaker.Execute(ctx, func(ctx context.Context) error {
			return p.client.PostJSON(ctx, "/v1/routes", req, &response)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("route provider request failed: %w", err)
	}

	if response.Polyline == "" && len(response.Legs) == 0 {
		return nil, fmt.Errorf("route provider returned no geometry")
	}
	return &response, nil
}

// FailoverRouteProvider tries the primary provider and falls back to a
// secondary when the primary fails. The secondary is optional.
type FailoverRouteProvider struct {
	primary   *PrimaryRouteProvider
	secondary *OSRMRouteProvider
}

// NewFailoverRouteProvider builds the provider chain from config. With
// no fallback URL configured the chain is just the primary.
func NewFailoverRouteProvider(cfg models.RouteProviderConfig) *FailoverRouteProvider {
	p := &FailoverRouteProvider{primary: NewPrimaryRouteProvider(cfg)}
	if cfg.FallbackBaseURL != "" {
		p.secondary = NewOSRMRouteProvider(cfg.FallbackBaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return p
}

// GetRoute runs the provider chain
func (p *FailoverRouteProvider) GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResponse, error) {
	response, err := p.primary.GetRoute(ctx, req)
	if err == nil {
		return response, nil
	}
	if p.secondary == nil {
		return nil, err
	}

	logger.Warn("Primary route provider failed, trying fallback",
		logger.Err(err))
	return p.secondary.GetRoute(ctx, req)
}

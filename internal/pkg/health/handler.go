package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/angkutin/tracking/internal/pkg/database"
	natspkg "github.com/angkutin/tracking/internal/pkg/nats"
)

// Checker reports the health of the service's dependencies
type Checker struct {
	serviceName string
	redis       *database.RedisClient
	nats        *natspkg.Client
}

// NewChecker creates a health checker
func NewChecker(serviceName string, redis *database.RedisClient, nats *natspkg.Client) *Checker {
	return &Checker{
		serviceName: serviceName,
		redis:       redis,
		nats:        nats,
	}
}

// Register mounts the health endpoints on the echo instance
func (h *Checker) Register(e *echo.Echo) {
	e.GET("/health", h.ping)
	e.GET("/health/detailed", h.detailed)
}

// ping is the cheap liveness check for load balancers
func (h *Checker) ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   h.serviceName,
		"timestamp": time.Now(),
	})
}

func (h *Checker) detailed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deps := map[string]string{}
	healthy := true

	if h.redis != nil {
		if _, err := h.redis.GetClient().Ping(ctx).Result(); err != nil {
			deps["redis"] = "unhealthy: " + err.Error()
			healthy = false
		} else {
			deps["redis"] = "ok"
		}
	}

	if h.nats != nil {
		if h.nats.IsConnected() {
			deps["nats"] = "ok"
		} else {
			deps["nats"] = "disconnected"
			healthy = false
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	return c.JSON(status, map[string]interface{}{
		"status":       overall,
		"service":      h.serviceName,
		"dependencies": deps,
		"timestamp":    time.Now(),
	})
}

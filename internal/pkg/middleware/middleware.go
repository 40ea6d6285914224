package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/angkutin/tracking/internal/pkg/jwt"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// APIKeyHeader carries the key for service-to-service calls
const APIKeyHeader = "X-API-Key"

// APIKey validates the shared key on internal endpoints
func APIKey(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(APIKeyHeader)
			if key == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}
			if expected == "" || key != expected {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}
			return next(c)
		}
	}
}

// JWTAuth validates a bearer token and stores the party id and role in
// the request context under "user_id" and "user_role".
func JWTAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", fmt.Sprintf("%v", userID))
			c.Set("user_role", fmt.Sprintf("%v", (*claims)["role"]))
			return next(c)
		}
	}
}

// RequestLogger logs each request with latency and status
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			// Returned errors reach echo's error handler exactly once,
			// after this middleware unwinds.
			err := next(c)

			logger.Info("HTTP request",
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", time.Since(start)))
			return err
		}
	}
}

// PanicRecovery converts handler panics into 500 responses
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						logger.String("path", c.Request().URL.Path),
						logger.Any("panic", r))
					c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}

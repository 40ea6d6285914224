package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local only) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "tracking-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.APIKey = GetEnv("SERVER_API_KEY", "")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Route provider config
	configs.RouteProvider.BaseURL = GetEnv("ROUTE_PROVIDER_URL", "")
	configs.RouteProvider.APIKey = GetEnv("ROUTE_PROVIDER_API_KEY", "")
	configs.RouteProvider.FallbackBaseURL = GetEnv("ROUTE_FALLBACK_URL", "https://router.project-osrm.org")
	configs.RouteProvider.TimeoutSeconds = GetEnvAsInt("ROUTE_PROVIDER_TIMEOUT", 30)
	configs.RouteProvider.VehicleType = GetEnv("ROUTE_VEHICLE_TYPE", "truck")
	configs.RouteProvider.AvoidTolls = GetEnvAsBool("ROUTE_AVOID_TOLLS", false)
	configs.RouteProvider.AvoidFerries = GetEnvAsBool("ROUTE_AVOID_FERRIES", true)

	// Tracking thresholds
	configs.Tracking.PickupRadiusMeters = GetEnvAsFloat("TRACKING_PICKUP_RADIUS_M", constants.DefaultPickupRadiusMeters)
	configs.Tracking.DropoffRadiusMeters = GetEnvAsFloat("TRACKING_DROPOFF_RADIUS_M", constants.DefaultDropoffRadiusMeters)
	configs.Tracking.RecomputeDistanceMeters = GetEnvAsFloat("TRACKING_RECOMPUTE_DISTANCE_M", constants.RecomputeDistanceMeters)
	configs.Tracking.SnapToleranceMeters = GetEnvAsFloat("TRACKING_SNAP_TOLERANCE_M", constants.DefaultSnapToleranceMeters)
	configs.Tracking.RouteDebounceSeconds = GetEnvAsInt("TRACKING_ROUTE_DEBOUNCE_S", constants.DefaultRouteDebounceSeconds)
	configs.Tracking.PublishDebounceSeconds = GetEnvAsInt("TRACKING_PUBLISH_DEBOUNCE_S", constants.DefaultPublishDebounceSeconds)
	configs.Tracking.FallbackSpeedKmh = GetEnvAsFloat("TRACKING_FALLBACK_SPEED_KMH", constants.FallbackSpeedKmh)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/tracking.log")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "file")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

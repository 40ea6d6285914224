package models

// Config represents application configuration
type Config struct {
	App           AppConfig
	Server        ServerConfig
	Redis         RedisConfig
	NATS          NATSConfig
	JWT           JWTConfig
	RouteProvider RouteProviderConfig
	Tracking      TrackingConfig
	Logger        LoggerConfig
	NewRelic      NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	// APIKey guards internal service-to-service endpoints
	APIKey string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RouteProviderConfig contains route-computation provider configuration
type RouteProviderConfig struct {
	BaseURL         string
	APIKey          string
	FallbackBaseURL string
	TimeoutSeconds  int
	VehicleType     string
	AvoidTolls      bool
	AvoidFerries    bool
}

// TrackingConfig contains trip tracking thresholds. Pickup and dropoff
// radii default to the same value but stay separately configurable.
type TrackingConfig struct {
	PickupRadiusMeters      float64
	DropoffRadiusMeters     float64
	RecomputeDistanceMeters float64
	SnapToleranceMeters     float64
	RouteDebounceSeconds    int
	PublishDebounceSeconds  int
	FallbackSpeedKmh        float64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// NewRelicConfig contains New Relic instrumentation configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Telemetry TelemetryConfig
	Monitor   MonitorConfig
	Alerts    AlertsConfig
	Services  ServicesConfig
	Logger    LoggerConfig
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
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
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

// TelemetryConfig contains ingestion gateway configuration
type TelemetryConfig struct {
	// APIKey is the shared secret expected from tracking devices.
	// Empty disables sender authentication.
	APIKey string
}

// MonitorConfig contains freshness monitor configuration
type MonitorConfig struct {
	PollIntervalSec   int // seconds between reads of the fix API
	StaleThresholdSec int // seconds since last fix before a route is offline
}

// AlertsConfig contains arrival alert configuration
type AlertsConfig struct {
	RequestTimeoutSec int // timeout for notification facility round trips
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	TelemetryServiceURL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level  string
	Format string // json or console
}

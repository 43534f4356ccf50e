package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Geofence GeofenceConfig
	Trips    TripsConfig
	Logger   LoggerConfig
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
	Driver    string
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

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// GeofenceConfig contains violation detection tuning
type GeofenceConfig struct {
	CooldownMinutes  int     // suppression window for repeated alerts per (vehicle, transition)
	PublishMaxRetry  int     // delivery attempts for a single alert
	GeohashPrecision uint    // precision of the location string attached to alerts
}

// TripsConfig contains track simplification and statistics tuning
type TripsConfig struct {
	MaxTrackPoints    int     // default cap on points returned for rendering
	LowSpeedThreshold float64 // speed below which a sample counts as stopped
	CoarseInputSize   int     // inputs at or above this size use the coarse tier
}

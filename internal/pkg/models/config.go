package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	Events    EventsConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Loads     LoadsConfig
	RateLimit RateLimitConfig
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

// NSQConfig contains the nsqd address used when events go through NSQ
type NSQConfig struct {
	Address string
}

// EventsConfig selects the broker for load change events ("nats" or "nsq")
type EventsConfig struct {
	Broker         string
	PublishRetries int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LoadsConfig contains load service specific configuration
type LoadsConfig struct {
	GeoIndexKey       string
	NearbyRadiusKm    float64
	NearbyMaxRadiusKm float64
	GeohashPrecision  uint
}

// RateLimitConfig bounds write traffic per caller on contended load routes
type RateLimitConfig struct {
	Requests      int
	WindowSeconds int
}

package config

import (
	"log"
	"strconv"

	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/spf13/viper"
)

// env resolves keys from the process environment first and the dotenv file second
var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// InitConfig builds the application config. In the local environment the
// dotenv file at configPath is read as a fallback for unset variables.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		env.SetConfigFile(configPath)
		env.SetConfigType("env")
		if err := env.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "loadboard")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "loadboard")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Messaging config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.Events.Broker = GetEnv("EVENTS_BROKER", "nats")
	configs.Events.PublishRetries = GetEnvAsInt("EVENTS_PUBLISH_RETRIES", 2)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "loadboard")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Loads config
	configs.Loads.GeoIndexKey = GetEnv("LOADS_GEO_INDEX_KEY", "loads:available:geo")
	configs.Loads.NearbyRadiusKm = GetEnvAsFloat("LOADS_NEARBY_RADIUS_KM", 50)
	configs.Loads.NearbyMaxRadiusKm = GetEnvAsFloat("LOADS_NEARBY_MAX_RADIUS_KM", 500)
	configs.Loads.GeohashPrecision = geohashPrecision("LOADS_GEOHASH_PRECISION", 6)

	// Rate limit config
	configs.RateLimit.Requests = GetEnvAsInt("RATE_LIMIT_REQUESTS", 30)
	configs.RateLimit.WindowSeconds = GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)

	return configs
}

// Helper functions to get configuration values with different types
func GetEnv(key, defaultValue string) string {
	value := env.GetString(key)
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

// geohashPrecision reads a geohash length, which the encoder only supports from 1 to 12
func geohashPrecision(key string, defaultValue uint) uint {
	value := GetEnvAsInt(key, int(defaultValue))
	if value < 1 || value > 12 {
		log.Printf("Warning: Geohash precision %d for %s is outside 1..12, using default: %d", value, key, defaultValue)
		return defaultValue
	}
	return uint(value)
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
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}

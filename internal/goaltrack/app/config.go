package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for tokens (default: goaltrack)

	StoreDriver  string // Optional: storage backend (sqlite, mongo) (default: sqlite)
	DatabaseFile string // Optional: path to SQLite database file (default: ./goaltrack.db)
	MongoURI     string // Optional: MongoDB connection string (used when StoreDriver is mongo)
	MongoDB      string // Optional: MongoDB database name (default: goaltrack)

	SigningKeyFile string        // Optional: path to ed25519 seed file; ephemeral key when unset
	TokenTTL       time.Duration // Optional: bearer token lifetime (default: 24h)
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	CatalogFile    string        // Optional: JSON snapshot of the objective catalog synced at startup

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer: getEnvOrDefault("GOALTRACK_ISSUER", "goaltrack"),

		StoreDriver:  getEnvOrDefault("STORE_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "goaltrack.db"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnvOrDefault("MONGO_DATABASE", "goaltrack"),

		SigningKeyFile: os.Getenv("SIGNING_KEY_FILE"), // Optional: ephemeral key when unset
		TokenTTL:       getEnvDurationOrDefault("TOKEN_TTL", 24*time.Hour),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),
		CatalogFile:    os.Getenv("CATALOG_FILE"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the sprite archive.
// The archive is optional; leaving Endpoint empty disables it.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SeedConfig controls the optional startup seeder that imports Pokémon
// from the public PokéAPI. Disabled unless SEED_ENABLED is set.
type SeedConfig struct {
	Enabled    bool
	BaseURL    string
	Limit      int
	TimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and injected
// into the components that need it; request-handling code never reads the
// environment directly.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Seed     SeedConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"), // default only for non-sensitive value
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "pokeapi-sprites"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Seed: SeedConfig{
			Enabled:    getEnvBool("SEED_ENABLED", false),
			BaseURL:    getEnv("SEED_BASE_URL", "https://pokeapi.co/api/v2"),
			Limit:      getEnvInt("SEED_LIMIT", 5),
			TimeoutSec: getEnvInt("SEED_TIMEOUT_SEC", 30),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

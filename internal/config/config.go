package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Cards    CardConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port      string
	BodyLimit int
}

// DatabaseConfig holds the postgres connection and pool settings.
type DatabaseConfig struct {
	Host            string
	User            string
	Password        string
	Name            string
	Port            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host          string
	Port          string
	Password      string
	DB            int
	BusinessTTL   time.Duration
	SettlementTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// CardConfig controls how MM/YY expiry dates are read and issued. Timezone
// is an IANA name; a card expires at the end of its month in that zone.
type CardConfig struct {
	Timezone      string
	ValidityYears int
}

// Location loads the configured timezone.
func (c CardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      GetEnv("PORT", "3000"),
			BodyLimit: GetIntEnv("BODY_LIMIT", 64*1024),
		},
		Database: DatabaseConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "cardpay"),
			Port:            GetEnv("DB_PORT", "5432"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:          GetEnv("REDIS_HOST", "localhost"),
			Port:          GetEnv("REDIS_PORT", "6379"),
			Password:      GetEnv("REDIS_PASSWORD", ""),
			DB:            GetIntEnv("REDIS_DB", 0),
			BusinessTTL:   GetDurationEnv("BUSINESS_CACHE_TTL", 10*time.Minute),
			SettlementTTL: GetDurationEnv("SETTLEMENT_LOCK_TTL", 5*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: GetEnv("JWT_SECRET", "cardpay"),
			Issuer:    GetEnv("JWT_ISSUER", "cardpay-api"),
			TokenTTL:  GetDurationEnv("JWT_TTL", 12*time.Hour),
		},
		Cards: CardConfig{
			Timezone:      GetEnv("CARD_TIMEZONE", "UTC"),
			ValidityYears: GetIntEnv("CARD_VALIDITY_YEARS", 5),
		},
		Log: LogConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Pretty: !IsProduction(),
		},
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable (e.g. "30s") or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

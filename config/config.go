package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config is the process configuration, read from the environment (and an
// optional .env file loaded by the caller).
type Config struct {
	Port        string
	StoreDriver string
	StateKey    string

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string

	HotelName string
	VATRate   decimal.Decimal

	LogLevel  string
	LogFormat string

	AMQPURL   string
	AMQPQueue string

	CORSOrigins []string
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

func Load() (Config, error) {
	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		StoreDriver:   strings.ToLower(envOrDefault("STORE_DRIVER", DriverMySQL)),
		StateKey:      envOrDefault("STATE_KEY", "hotel"),
		SQLitePath:    envOrDefault("SQLITE_PATH", "frontdesk.db"),
		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		HotelName:     envOrDefault("HOTEL_NAME", "HotelM8"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		AMQPURL:       strings.TrimSpace(os.Getenv("AMQP_URL")),
		AMQPQueue:     envOrDefault("AMQP_QUEUE", "frontdesk.stays"),
		CORSOrigins:   parseList(os.Getenv("CORS_ORIGINS")),
	}

	switch cfg.StoreDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite, DriverRedis, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	db, err := strconv.Atoi(envOrDefault("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = db

	ttl, err := time.ParseDuration(envOrDefault("TOKEN_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	vat, err := decimal.NewFromString(envOrDefault("VAT_RATE", "0.12"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid VAT_RATE: %w", err)
	}
	if vat.IsNegative() || vat.GreaterThan(decimal.NewFromInt(1)) {
		return Config{}, fmt.Errorf("VAT_RATE must be between 0 and 1, got %s", vat)
	}
	cfg.VATRate = vat

	return cfg, nil
}

// RequireJWTSecret is checked by the commands that serve HTTP.
func (c Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL         string
	ServerAddr          string
	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool

	// DispatchAPIKey guards the machine dispatch endpoint. Empty disables
	// the endpoint.
	DispatchAPIKey string

	// OpenAIAPIKey is the generator credential. Empty selects the
	// deterministic mock generator.
	OpenAIAPIKey string
	OpenAIModel  string
	GeneratorRPS float64

	// BatchCron is a cron expression for automatic fleet runs. Empty
	// disables the trigger.
	BatchCron string
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "botfleet")
		pass := getenv("POSTGRES_PASSWORD", "botfleet_pass")
		db := getenv("POSTGRES_DB", "botfleet")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}
	addr := getenv("SERVER_ADDR", "0.0.0.0:8080")
	ttl := parseDuration(getenv("SESSION_TTL", "24h"), 24*time.Hour)
	cookieName := getenv("SESSION_COOKIE_NAME", "botfleet_session")
	cookieSecure := parseBool(getenv("SESSION_COOKIE_SECURE", "false"), false)
	rps := parseFloat(getenv("GENERATOR_RPS", "2"), 2)

	return &Config{
		DatabaseURL:         dsn,
		ServerAddr:          addr,
		SessionTTL:          ttl,
		SessionCookieName:   cookieName,
		SessionCookieSecure: cookieSecure,
		DispatchAPIKey:      os.Getenv("DISPATCH_API_KEY"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         os.Getenv("OPENAI_MODEL"),
		GeneratorRPS:        rps,
		BatchCron:           os.Getenv("BATCH_CRON"),
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

func parseBool(val string, def bool) bool {
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}

func parseFloat(val string, def float64) float64 {
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return def
	}
	return f
}

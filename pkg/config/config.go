package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// PostingTimeout bounds each posting operation end to end. A posting that
	// exceeds it is aborted and its transaction rolled back.
	PostingTimeout time.Duration

	// Validation scheduler settings.
	ValidationRunInterval  time.Duration
	ValidationLockLease    time.Duration
	ValidationRetryCount   int
	ValidationRetryBackoff time.Duration

	// AlertChannels selects failure alert senders: "log", "webhook".
	AlertChannels   []string
	AlertWebhookURL string

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "finledger")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("POSTING_TIMEOUT", "5s")
	viper.SetDefault("VALIDATION_RUN_INTERVAL", "1h")
	viper.SetDefault("VALIDATION_LOCK_LEASE", "10m")
	viper.SetDefault("VALIDATION_RETRY_COUNT", 1)
	viper.SetDefault("VALIDATION_RETRY_BACKOFF", "30s")
	viper.SetDefault("FAILURE_ALERT_CHANNELS", "log")
	viper.SetDefault("ALERT_WEBHOOK_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)

	cfg.PostingTimeout = durationOrDefault("POSTING_TIMEOUT", 5*time.Second)
	cfg.ValidationRunInterval = durationOrDefault("VALIDATION_RUN_INTERVAL", time.Hour)
	cfg.ValidationLockLease = durationOrDefault("VALIDATION_LOCK_LEASE", 10*time.Minute)
	cfg.ValidationRetryCount = viper.GetInt("VALIDATION_RETRY_COUNT")
	if cfg.ValidationRetryCount < 0 {
		log.Printf("Warning: negative VALIDATION_RETRY_COUNT, defaulting to 1\n")
		cfg.ValidationRetryCount = 1
	}
	cfg.ValidationRetryBackoff = durationOrDefault("VALIDATION_RETRY_BACKOFF", 30*time.Second)

	cfg.AlertChannels = splitChannels(viper.GetString("FAILURE_ALERT_CHANNELS"))
	cfg.AlertWebhookURL = viper.GetString("ALERT_WEBHOOK_URL")
	if containsChannel(cfg.AlertChannels, "webhook") && cfg.AlertWebhookURL == "" {
		log.Println("Warning: webhook alert channel enabled but ALERT_WEBHOOK_URL not set.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}

func splitChannels(raw string) []string {
	parts := strings.Split(raw, ",")
	channels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			channels = append(channels, strings.ToLower(trimmed))
		}
	}
	return channels
}

func containsChannel(channels []string, want string) bool {
	for _, c := range channels {
		if c == want {
			return true
		}
	}
	return false
}

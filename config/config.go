package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Payment backends
const (
	PaymentBackendLive = "live"
	PaymentBackendStub = "stub"
)

const (
	defaultServerPort            = "8080"
	defaultProviderTimeout       = 10 * time.Second
	defaultRecipeRateLimit       = 30
	defaultSubscriptionRateLimit = 10
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string
	LogLevel    string

	// Payment configuration
	PaymentBackend       string
	StripeSecretKey      string
	StripeWebhookSecret  string
	StripeMonthlyPriceID string
	StripeYearlyPriceID  string
	// StripeAPIURL points the live backend at another API host, e.g. a mock.
	StripeAPIURL    string
	ProviderTimeout time.Duration

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Requests per client per hour. Zero disables the limit.
	RecipeRateLimit       int
	SubscriptionRateLimit int
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	// Load configuration based on environment
	var err error
	switch {
	case env == CI:
		err = loadCIConfig(cfg)
	case env.LoadsDotEnv():
		err = loadDevConfig(cfg)
	case env.IsProduction():
		err = loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	applyDefaults(cfg)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment from environment variables only
func loadCIConfig(cfg *Config) error {
	if err := loadFromEnv(cfg); err != nil {
		return err
	}
	if cfg.PaymentBackend == "" {
		cfg.PaymentBackend = PaymentBackendStub
	}
	return nil
}

// loadDevConfig loads configuration for development environment. A .env file
// is read when present; values already in the environment win. Docker
// secrets fill anything still unset.
func loadDevConfig(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := loadFromEnv(cfg); err != nil {
		return err
	}

	if cfg.StripeSecretKey == "" {
		cfg.StripeSecretKey = readSecret("stripe_secret_key")
	}
	if cfg.StripeWebhookSecret == "" {
		cfg.StripeWebhookSecret = readSecret("stripe_webhook_secret")
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}
	if cfg.PaymentBackend == "" {
		cfg.PaymentBackend = PaymentBackendStub
	}
	return nil
}

// loadProdConfig loads configuration for production environment. Credentials
// come ONLY from Docker secrets.
func loadProdConfig(cfg *Config) error {
	if err := loadFromEnv(cfg); err != nil {
		return err
	}

	cfg.StripeSecretKey = readSecret("stripe_secret_key")
	cfg.StripeWebhookSecret = readSecret("stripe_webhook_secret")
	cfg.RedisPassword = readSecret("redis_password")
	if url := readSecret("redis_url"); url != "" {
		cfg.RedisURL = url
	}
	if cfg.PaymentBackend == "" {
		cfg.PaymentBackend = PaymentBackendLive
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))
	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	cfg.PaymentBackend = strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_BACKEND")))
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.StripeMonthlyPriceID = os.Getenv("STRIPE_MONTHLY_PRICE_ID")
	cfg.StripeYearlyPriceID = os.Getenv("STRIPE_YEARLY_PRICE_ID")
	cfg.StripeAPIURL = os.Getenv("STRIPE_API_URL")

	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = 0 // This is a constant, not a secret

	var err error
	if cfg.ProviderTimeout, err = durationEnv("PROVIDER_TIMEOUT", defaultProviderTimeout); err != nil {
		return err
	}
	if cfg.RecipeRateLimit, err = intEnv("RATE_LIMIT_RECIPES_PER_HOUR", defaultRecipeRateLimit); err != nil {
		return err
	}
	if cfg.SubscriptionRateLimit, err = intEnv("RATE_LIMIT_SUBSCRIPTIONS_PER_HOUR", defaultSubscriptionRateLimit); err != nil {
		return err
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// PriceIDs maps plan ids to the provider prices they bill against. Plans
// without a configured price are left out.
func (c *Config) PriceIDs() map[string]string {
	prices := make(map[string]string, 2)
	if c.StripeMonthlyPriceID != "" {
		prices["monthly"] = c.StripeMonthlyPriceID
	}
	if c.StripeYearlyPriceID != "" {
		prices["yearly"] = c.StripeYearlyPriceID
	}
	return prices
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// UseJSONLogs reports whether logs should be machine readable.
func (c *Config) UseJSONLogs() bool {
	return c.Environment.IsProduction()
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	lines := make([]string, len(v))
	for i, e := range v {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// ValidateConfig checks if the configuration is usable for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("must be a port number, got %q", cfg.ServerPort))
	}

	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
		}
	}

	switch cfg.PaymentBackend {
	case PaymentBackendLive:
		// Secrets are named by their source in each environment.
		keyName, hookName := "STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET"
		if cfg.Environment.IsProduction() {
			keyName, hookName = "stripe_secret_key", "stripe_webhook_secret"
		}
		if cfg.StripeSecretKey == "" {
			add(keyName, "is required for the live payment backend")
		}
		if cfg.StripeWebhookSecret == "" {
			add(hookName, "is required for the live payment backend")
		}
	case PaymentBackendStub:
	default:
		add("PAYMENT_BACKEND", fmt.Sprintf("must be %q or %q, got %q", PaymentBackendLive, PaymentBackendStub, cfg.PaymentBackend))
	}

	if cfg.ProviderTimeout <= 0 {
		add("PROVIDER_TIMEOUT", "must be positive")
	}
	if cfg.RecipeRateLimit < 0 {
		add("RATE_LIMIT_RECIPES_PER_HOUR", "must not be negative")
	}
	if cfg.SubscriptionRateLimit < 0 {
		add("RATE_LIMIT_SUBSCRIPTIONS_PER_HOUR", "must not be negative")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

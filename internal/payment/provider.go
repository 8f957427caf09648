// Package payment holds the billing backends the subscription gateway can
// run against.
package payment

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/service"
)

var (
	_ service.Provider = (*StripeProvider)(nil)
	_ service.Provider = (*StubProvider)(nil)
)

// NewProvider builds the backend selected by cfg.PaymentBackend.
func NewProvider(cfg *config.Config, logger *logrus.Logger) (service.Provider, error) {
	switch cfg.PaymentBackend {
	case config.PaymentBackendLive:
		return NewStripeProvider(StripeConfig{
			SecretKey:   cfg.StripeSecretKey,
			APIURL:      cfg.StripeAPIURL,
			HTTPTimeout: cfg.ProviderTimeout,
		}, logger)
	case config.PaymentBackendStub, "":
		intervals := map[string]string{}
		if cfg.StripeYearlyPriceID != "" {
			intervals[cfg.StripeYearlyPriceID] = "year"
		}
		return NewStubProvider(intervals), nil
	default:
		return nil, fmt.Errorf("unknown payment backend %q", cfg.PaymentBackend)
	}
}

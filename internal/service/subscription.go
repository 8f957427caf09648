package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/observability"
)

const defaultProviderTimeout = 10 * time.Second

// SubscriptionConfig holds what the gateway needs beyond the provider itself.
type SubscriptionConfig struct {
	// PriceIDs maps a plan id to the provider price it bills against.
	PriceIDs        map[string]string
	ProviderTimeout time.Duration
}

// SubscriptionStatus is the read-only view returned by status lookups.
type SubscriptionStatus struct {
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool      `json:"cancelAtPeriodEnd"`
	// State is the observed lifecycle stage derived from the fields above.
	State             string    `json:"state"`
}

// PaymentIntentRequest describes a one-time payment. Amount is in major
// currency units.
type PaymentIntentRequest struct {
	Amount   float64
	Currency string
	Email    string
	Plan     string
}

var plans = []model.Plan{
	{
		ID:       model.PlanMonthly,
		Name:     "Monthly Premium",
		Price:    9.99,
		Currency: "usd",
		Interval: "month",
		Features: []string{
			"Unlimited recipe generation",
			"Advanced dietary filters",
			"Recipe scaling (2-12 servings)",
			"Nutritional information",
			"Recipe collections",
			"Ad-free experience",
		},
	},
	{
		ID:       model.PlanYearly,
		Name:     "Yearly Premium",
		Price:    79.99,
		Currency: "usd",
		Interval: "year",
		Savings:  "Save 33%",
		Features: []string{
			"Everything in Monthly",
			"Meal planning tools",
			"Shopping list generator",
			"Recipe sharing",
			"Priority support",
			"Early access to new features",
		},
	},
}

// SubscriptionService wraps the provider's customer and subscription APIs.
// It keeps no state of its own.
type SubscriptionService struct {
	provider Provider
	cfg      SubscriptionConfig
	metrics  *observability.Metrics
	logger   *logrus.Logger
}

// NewSubscriptionService creates a new SubscriptionService instance
func NewSubscriptionService(provider Provider, cfg SubscriptionConfig, metrics *observability.Metrics, logger *logrus.Logger) *SubscriptionService {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubscriptionService{
		provider: provider,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}

// CreateSubscription finds or creates the customer for email, attaches the
// payment method and subscribes the customer to plan. Input is validated
// before any provider call.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, email, plan, paymentMethodID string) (*model.Subscription, error) {
	email = strings.TrimSpace(email)
	plan = strings.TrimSpace(plan)
	paymentMethodID = strings.TrimSpace(paymentMethodID)

	if !strings.Contains(email, "@") {
		return nil, newValidationError("email", "a valid email address is required")
	}
	if !isKnownPlan(plan) {
		return nil, newValidationError("plan", "plan must be one of monthly or yearly")
	}
	if paymentMethodID == "" {
		return nil, newValidationError("paymentMethodId", "payment method is required")
	}

	priceID := s.cfg.PriceIDs[plan]
	if priceID == "" {
		return nil, &UpstreamError{Op: "resolve price", Err: errors.New("invalid plan selected")}
	}

	customer, err := s.findOrCreateCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.call(ctx, "attach_payment_method", func(ctx context.Context) error {
		return s.provider.AttachPaymentMethod(ctx, customer.ID, paymentMethodID)
	}); err != nil {
		return nil, err
	}

	var sub *model.Subscription
	if err := s.call(ctx, "create_subscription", func(ctx context.Context) error {
		var err error
		sub, err = s.provider.CreateSubscription(ctx, customer.ID, priceID)
		return err
	}); err != nil {
		return nil, err
	}

	sub.Plan = plan
	if sub.CustomerID == "" {
		sub.CustomerID = customer.ID
	}

	s.logger.WithFields(logrus.Fields{
		"subscription_id": sub.ID,
		"customer_id":     sub.CustomerID,
		"plan":            plan,
		"status":          sub.Status,
	}).Info("subscription created")

	return sub, nil
}

func (s *SubscriptionService) findOrCreateCustomer(ctx context.Context, email string) (*model.Customer, error) {
	var customer *model.Customer
	if err := s.call(ctx, "find_customer", func(ctx context.Context) error {
		var err error
		customer, err = s.provider.FindCustomerByEmail(ctx, email)
		return err
	}); err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	if err := s.call(ctx, "create_customer", func(ctx context.Context) error {
		var err error
		customer, err = s.provider.CreateCustomer(ctx, email)
		return err
	}); err != nil {
		return nil, err
	}
	return customer, nil
}

// CancelSubscription schedules cancellation at the end of the current
// billing period. Access is kept until then.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return nil, newValidationError("subscriptionId", "subscription id is required")
	}

	var sub *model.Subscription
	if err := s.call(ctx, "cancel_subscription", func(ctx context.Context) error {
		var err error
		sub, err = s.provider.CancelAtPeriodEnd(ctx, subscriptionID)
		return err
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"subscription_id":    sub.ID,
		"current_period_end": sub.CurrentPeriodEnd,
	}).Info("subscription cancellation scheduled")

	return sub, nil
}

// GetSubscriptionStatus asks the provider for the current state.
func (s *SubscriptionService) GetSubscriptionStatus(ctx context.Context, subscriptionID string) (*SubscriptionStatus, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return nil, newValidationError("subscriptionId", "subscription id is required")
	}

	var sub *model.Subscription
	if err := s.call(ctx, "get_subscription", func(ctx context.Context) error {
		var err error
		sub, err = s.provider.GetSubscription(ctx, subscriptionID)
		return err
	}); err != nil {
		return nil, err
	}

	return &SubscriptionStatus{
		Status:            sub.Status,
		CurrentPeriodEnd:  sub.CurrentPeriodEnd,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		State:             sub.State(),
	}, nil
}

// Plans lists the premium tiers.
func (s *SubscriptionService) Plans() []model.Plan {
	out := make([]model.Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// CreatePaymentIntent starts a one-time payment.
func (s *SubscriptionService) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*model.PaymentIntent, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, newValidationError("amount", "amount must be greater than zero")
	}
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "usd"
	}
	cents := int64(math.Round(req.Amount * 100))

	metadata := map[string]string{}
	if req.Email != "" {
		metadata["email"] = req.Email
	}
	if req.Plan != "" {
		metadata["plan"] = req.Plan
	}

	var intent *model.PaymentIntent
	if err := s.call(ctx, "create_payment_intent", func(ctx context.Context) error {
		var err error
		intent, err = s.provider.CreatePaymentIntent(ctx, cents, currency, metadata)
		return err
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"payment_intent_id": intent.ID,
		"amount":            cents,
		"currency":          currency,
	}).Info("payment intent created")

	return intent, nil
}

// ConfirmPayment confirms a payment intent with the given payment method.
func (s *SubscriptionService) ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	paymentMethodID = strings.TrimSpace(paymentMethodID)
	if paymentIntentID == "" {
		return nil, newValidationError("paymentIntentId", "payment intent id is required")
	}
	if paymentMethodID == "" {
		return nil, newValidationError("paymentMethodId", "payment method is required")
	}

	var intent *model.PaymentIntent
	if err := s.call(ctx, "confirm_payment_intent", func(ctx context.Context) error {
		var err error
		intent, err = s.provider.ConfirmPaymentIntent(ctx, paymentIntentID, paymentMethodID)
		return err
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"payment_intent_id": intent.ID,
		"status":            intent.Status,
	}).Info("payment confirmed")

	return intent, nil
}

// call runs a single provider operation under the provider timeout. Failures
// come back as UpstreamError; there are no retries.
func (s *SubscriptionService) call(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
	defer cancel()

	err := fn(ctx)
	s.metrics.ProviderCall(op, err)
	if err != nil {
		s.logger.WithError(err).WithField("op", op).Warn("payment provider call failed")
		return &UpstreamError{Op: op, Err: err}
	}
	return nil
}

func isKnownPlan(plan string) bool {
	return plan == model.PlanMonthly || plan == model.PlanYearly
}

package service

import (
	"context"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// Provider is the external billing system of record. Implementations live in
// the payment package; the gateway only requests transitions and passes the
// provider's answers through.
type Provider interface {
	// FindCustomerByEmail returns the first customer registered with email, or
	// nil when there is none.
	FindCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, email string) (*model.Customer, error)
	// AttachPaymentMethod attaches the method to the customer and makes it the
	// default for invoices.
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string) (*model.Subscription, error)
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*model.PaymentIntent, error)
	// ConfirmPaymentIntent confirms the intent with the given payment method
	// and returns it with its new status.
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error)
}

// IRecipeService defines the interface for recipe matching
type IRecipeService interface {
	Match(ctx context.Context, req MatchRequest) (*model.Recipe, error)
}

// ISubscriptionService defines the interface for subscription and payment operations
type ISubscriptionService interface {
	CreateSubscription(ctx context.Context, email, plan, paymentMethodID string) (*model.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	GetSubscriptionStatus(ctx context.Context, subscriptionID string) (*SubscriptionStatus, error)
	Plans() []model.Plan
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*model.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error)
}

// IWebhookService defines the interface for inbound provider events
type IWebhookService interface {
	HandleWebhookEvent(ctx context.Context, payload []byte, signatureHeader, endpointSecret string) error
}

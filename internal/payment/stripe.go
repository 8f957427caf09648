package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/pageza/pantrychef/backend/internal/model"
)

const defaultHTTPTimeout = 30 * time.Second

// StripeConfig configures the live backend.
type StripeConfig struct {
	SecretKey string
	// APIURL overrides the Stripe API base URL. Empty means the real API.
	APIURL      string
	HTTPTimeout time.Duration
}

// APIError carries the human-readable message Stripe returned for a failed
// request.
type APIError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StripeProvider talks to the Stripe API.
type StripeProvider struct {
	sc *client.API
}

// NewStripeProvider creates a provider bound to cfg.SecretKey. Requests are
// made once; retries are left to the caller.
func NewStripeProvider(cfg StripeConfig, logger *logrus.Logger) (*StripeProvider, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.HTTPTimeout},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}
	if logger != nil {
		backendConfig.LeveledLogger = logger
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
	})
	return &StripeProvider{sc: sc}, nil
}

func (p *StripeProvider) FindCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := p.sc.Customers.List(params)
	if iter.Next() {
		c := iter.Customer()
		return &model.Customer{ID: c.ID, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, translate(err)
	}
	return nil, nil
}

func (p *StripeProvider) CreateCustomer(ctx context.Context, email string) (*model.Customer, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx

	c, err := p.sc.Customers.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &model.Customer{ID: c.ID, Email: c.Email}, nil
}

func (p *StripeProvider) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	attach.Context = ctx
	if _, err := p.sc.PaymentMethods.Attach(paymentMethodID, attach); err != nil {
		return translate(err)
	}

	update := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	update.Context = ctx
	if _, err := p.sc.Customers.Update(customerID, update); err != nil {
		return translate(err)
	}
	return nil
}

func (p *StripeProvider) CreateSubscription(ctx context.Context, customerID, priceID string) (*model.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.confirmation_secret")

	sub, err := p.sc.Subscriptions.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return toSubscription(sub), nil
}

func (p *StripeProvider) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
	params.Context = ctx

	sub, err := p.sc.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return nil, translate(err)
	}
	return toSubscription(sub), nil
}

func (p *StripeProvider) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := p.sc.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, translate(err)
	}
	return toSubscription(sub), nil
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

func (p *StripeProvider) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	pi, err := p.sc.PaymentIntents.Confirm(paymentIntentID, params)
	if err != nil {
		return nil, translate(err)
	}
	return &model.PaymentIntent{
		ID:       pi.ID,
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Status:   string(pi.Status),
	}, nil
}

func toSubscription(sub *stripe.Subscription) *model.Subscription {
	out := &model.Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].CurrentPeriodEnd > 0 {
		out.CurrentPeriodEnd = time.Unix(sub.Items.Data[0].CurrentPeriodEnd, 0).UTC()
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.ConfirmationSecret != nil {
		out.ClientSecret = sub.LatestInvoice.ConfirmationSecret.ClientSecret
	}
	return out
}

// translate keeps Stripe's message as the error text so it can be shown to
// the caller unchanged.
func translate(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		msg := serr.Msg
		if msg == "" {
			msg = fmt.Sprintf("stripe request failed with status %d", serr.HTTPStatusCode)
		}
		return &APIError{Code: string(serr.Code), Message: msg, Err: err}
	}
	return err
}

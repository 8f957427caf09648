package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// FailPaymentMethod is the payment method token the stub always declines.
const FailPaymentMethod = "pm_card_chargeDeclined"

// StubProvider is an in-memory provider for development and tests. Every
// subscription it creates is immediately active.
type StubProvider struct {
	mu            sync.Mutex
	customers     map[string]*model.Customer
	byEmail       map[string]string
	subscriptions map[string]*model.Subscription
	intents       map[string]*model.PaymentIntent
	intervals     map[string]string
	now           func() time.Time
}

// NewStubProvider creates a stub. intervals maps a price id to "month" or
// "year"; prices it does not know bill monthly.
func NewStubProvider(intervals map[string]string) *StubProvider {
	return &StubProvider{
		customers:     make(map[string]*model.Customer),
		byEmail:       make(map[string]string),
		subscriptions: make(map[string]*model.Subscription),
		intents:       make(map[string]*model.PaymentIntent),
		intervals:     intervals,
		now:           time.Now,
	}
}

func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (p *StubProvider) FindCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.byEmail[email]
	if !ok {
		return nil, nil
	}
	c := *p.customers[id]
	return &c, nil
}

func (p *StubProvider) CreateCustomer(ctx context.Context, email string) (*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	c := &model.Customer{ID: newID("cus_"), Email: email}
	p.customers[c.ID] = c
	if _, exists := p.byEmail[email]; !exists {
		p.byEmail[email] = c.ID
	}
	out := *c
	return &out, nil
}

func (p *StubProvider) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if paymentMethodID == FailPaymentMethod {
		return &APIError{Code: "card_declined", Message: "Your card was declined."}
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.customers[customerID]; !ok {
		return &APIError{Code: "resource_missing", Message: fmt.Sprintf("No such customer: '%s'", customerID)}
	}
	return nil
}

func (p *StubProvider) CreateSubscription(ctx context.Context, customerID, priceID string) (*model.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.customers[customerID]; !ok {
		return nil, &APIError{Code: "resource_missing", Message: fmt.Sprintf("No such customer: '%s'", customerID)}
	}

	now := p.now().UTC()
	end := now.AddDate(0, 1, 0)
	if p.intervals[priceID] == "year" {
		end = now.AddDate(1, 0, 0)
	}

	sub := &model.Subscription{
		ID:               newID("sub_"),
		CustomerID:       customerID,
		Status:           "active",
		CurrentPeriodEnd: end,
	}
	p.subscriptions[sub.ID] = sub
	out := *sub
	return &out, nil
}

func (p *StubProvider) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	sub, ok := p.subscriptions[subscriptionID]
	if !ok {
		return nil, noSuchSubscription(subscriptionID)
	}
	sub.CancelAtPeriodEnd = true
	out := *sub
	return &out, nil
}

func (p *StubProvider) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	sub, ok := p.subscriptions[subscriptionID]
	if !ok {
		return nil, noSuchSubscription(subscriptionID)
	}
	out := *sub
	return &out, nil
}

func (p *StubProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string, _ map[string]string) (*model.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := newID("pi_")
	pi := &model.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + newID(""),
		Amount:       amount,
		Currency:     currency,
		Status:       "requires_payment_method",
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.intents[id] = pi
	out := *pi
	return &out, nil
}

// ConfirmPaymentIntent succeeds immediately unless the method is
// FailPaymentMethod, which leaves the intent awaiting a new method.
func (p *StubProvider) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pi, ok := p.intents[paymentIntentID]
	if !ok {
		return nil, &APIError{Code: "resource_missing", Message: fmt.Sprintf("No such payment_intent: '%s'", paymentIntentID)}
	}
	if paymentMethodID == FailPaymentMethod {
		return nil, &APIError{Code: "card_declined", Message: "Your card was declined."}
	}
	pi.Status = "succeeded"
	out := *pi
	return &out, nil
}

func noSuchSubscription(id string) error {
	return &APIError{Code: "resource_missing", Message: fmt.Sprintf("No such subscription: '%s'", id)}
}

package mocks

import (
	"context"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of the payment provider
type MockProvider struct {
	mock.Mock
}

// FindCustomerByEmail mocks the FindCustomerByEmail method
func (m *MockProvider) FindCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

// CreateCustomer mocks the CreateCustomer method
func (m *MockProvider) CreateCustomer(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

// AttachPaymentMethod mocks the AttachPaymentMethod method
func (m *MockProvider) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	args := m.Called(ctx, customerID, paymentMethodID)
	return args.Error(0)
}

// CreateSubscription mocks the CreateSubscription method
func (m *MockProvider) CreateSubscription(ctx context.Context, customerID, priceID string) (*model.Subscription, error) {
	args := m.Called(ctx, customerID, priceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// CancelAtPeriodEnd mocks the CancelAtPeriodEnd method
func (m *MockProvider) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// GetSubscription mocks the GetSubscription method
func (m *MockProvider) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// CreatePaymentIntent mocks the CreatePaymentIntent method
func (m *MockProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*model.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}

// ConfirmPaymentIntent mocks the ConfirmPaymentIntent method
func (m *MockProvider) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}

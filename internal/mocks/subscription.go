package mocks

import (
	"context"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionService is a mock implementation of the subscription service
type MockSubscriptionService struct {
	mock.Mock
}

// CreateSubscription mocks the CreateSubscription method
func (m *MockSubscriptionService) CreateSubscription(ctx context.Context, email, plan, paymentMethodID string) (*model.Subscription, error) {
	args := m.Called(ctx, email, plan, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// CancelSubscription mocks the CancelSubscription method
func (m *MockSubscriptionService) CancelSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// GetSubscriptionStatus mocks the GetSubscriptionStatus method
func (m *MockSubscriptionService) GetSubscriptionStatus(ctx context.Context, subscriptionID string) (*service.SubscriptionStatus, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubscriptionStatus), args.Error(1)
}

// Plans mocks the Plans method
func (m *MockSubscriptionService) Plans() []model.Plan {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Plan)
}

// CreatePaymentIntent mocks the CreatePaymentIntent method
func (m *MockSubscriptionService) CreatePaymentIntent(ctx context.Context, req service.PaymentIntentRequest) (*model.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}

// ConfirmPayment mocks the ConfirmPayment method
func (m *MockSubscriptionService) ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*model.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}

// MockWebhookService is a mock implementation of the webhook service
type MockWebhookService struct {
	mock.Mock
}

// HandleWebhookEvent mocks the HandleWebhookEvent method
func (m *MockWebhookService) HandleWebhookEvent(ctx context.Context, payload []byte, signatureHeader, endpointSecret string) error {
	args := m.Called(ctx, payload, signatureHeader, endpointSecret)
	return args.Error(0)
}

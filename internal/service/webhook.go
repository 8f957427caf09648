package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/observability"
)

// Provider event types the receiver reacts to.
const (
	EventInvoicePaymentSucceeded    = "invoice.payment_succeeded"
	EventInvoicePaymentFailed       = "invoice.payment_failed"
	EventSubscriptionDeleted        = "customer.subscription.deleted"
	EventSubscriptionUpdated        = "customer.subscription.updated"
	EventPaymentIntentSucceeded     = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed = "payment_intent.payment_failed"
)

// WebhookService verifies and dispatches provider events. Dispatch only logs;
// the provider stays the system of record.
type WebhookService struct {
	metrics *observability.Metrics
	logger  *logrus.Logger
}

// NewWebhookService creates a new WebhookService instance
func NewWebhookService(metrics *observability.Metrics, logger *logrus.Logger) *WebhookService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WebhookService{metrics: metrics, logger: logger}
}

type invoiceObject struct {
	ID           string `json:"id"`
	Subscription string `json:"subscription"`
	Parent       struct {
		SubscriptionDetails struct {
			Subscription string `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func (i invoiceObject) subscriptionID() string {
	if i.Subscription != "" {
		return i.Subscription
	}
	return i.Parent.SubscriptionDetails.Subscription
}

type subscriptionObject struct {
	ID                string `json:"id"`
	Customer          string `json:"customer"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

type paymentIntentObject struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// HandleWebhookEvent verifies payload against signatureHeader and
// endpointSecret, then dispatches on the event type. A verification failure
// returns SignatureError and nothing in the payload is looked at. Unknown
// event types are acknowledged.
func (s *WebhookService) HandleWebhookEvent(ctx context.Context, payload []byte, signatureHeader, endpointSecret string) error {
	if strings.TrimSpace(endpointSecret) == "" {
		return &SignatureError{Err: errors.New("webhook secret is not configured")}
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return &SignatureError{Err: errors.New("missing signature header")}
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, endpointSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return &SignatureError{Err: err}
	}

	if err := s.dispatch(ctx, &event); err != nil {
		return err
	}
	s.metrics.WebhookEvent(string(event.Type))
	return nil
}

func (s *WebhookService) dispatch(_ context.Context, event *stripe.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"type":     string(event.Type),
	})

	var raw json.RawMessage
	if event.Data != nil {
		raw = event.Data.Raw
	}

	switch string(event.Type) {
	case EventInvoicePaymentSucceeded, EventInvoicePaymentFailed:
		var inv invoiceObject
		if err := json.Unmarshal(raw, &inv); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		if string(event.Type) == EventInvoicePaymentSucceeded {
			log.WithField("subscription_id", inv.subscriptionID()).Info("payment succeeded for subscription")
		} else {
			log.WithField("subscription_id", inv.subscriptionID()).Warn("payment failed for subscription")
		}
	case EventSubscriptionDeleted, EventSubscriptionUpdated:
		var sub subscriptionObject
		if err := json.Unmarshal(raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		log.WithFields(logrus.Fields{
			"subscription_id":      sub.ID,
			"customer_id":          sub.Customer,
			"status":               sub.Status,
			"cancel_at_period_end": sub.CancelAtPeriodEnd,
			"state":                model.Subscription{Status: sub.Status, CancelAtPeriodEnd: sub.CancelAtPeriodEnd}.State(),
		}).Info("subscription changed")
	case EventPaymentIntentSucceeded, EventPaymentIntentPaymentFailed:
		var pi paymentIntentObject
		if err := json.Unmarshal(raw, &pi); err != nil {
			return fmt.Errorf("decode payment intent: %w", err)
		}
		log.WithFields(logrus.Fields{
			"payment_intent_id": pi.ID,
			"amount":            pi.Amount,
			"currency":          pi.Currency,
			"email":             pi.Metadata["email"],
		}).Info("payment intent event")
	default:
		log.Debug("unhandled webhook event type")
	}
	return nil
}

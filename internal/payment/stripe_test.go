package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStripe serves the handful of endpoints the provider uses and records
// the form bodies it receives.
type fakeStripe struct {
	mu        sync.Mutex
	forms     map[string]map[string][]string
	customers []map[string]any
}

func (f *fakeStripe) record(key string, r *http.Request) {
	_ = r.ParseForm()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms[key] = r.PostForm
}

func (f *fakeStripe) form(key string) map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func subscriptionJSON(id string, cancel bool) map[string]any {
	return map[string]any{
		"id":                   id,
		"object":               "subscription",
		"customer":             "cus_1",
		"status":               "active",
		"cancel_at_period_end": cancel,
		"items": map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "si_1", "object": "subscription_item", "current_period_end": 1798761600},
			},
		},
	}
}

func newFakeStripe(t *testing.T) (*fakeStripe, *StripeProvider) {
	t.Helper()
	fake := &fakeStripe{forms: map[string]map[string][]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/customers", func(w http.ResponseWriter, r *http.Request) {
		data := []map[string]any{}
		for _, c := range fake.customers {
			if c["email"] == r.URL.Query().Get("email") {
				data = append(data, c)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"object": "list", "url": "/v1/customers", "has_more": false, "data": data})
	})
	mux.HandleFunc("POST /v1/customers", func(w http.ResponseWriter, r *http.Request) {
		fake.record("create_customer", r)
		writeJSON(w, http.StatusOK, map[string]any{"id": "cus_new", "object": "customer", "email": r.PostForm.Get("email")})
	})
	mux.HandleFunc("POST /v1/customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		fake.record("update_customer", r)
		writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "object": "customer"})
	})
	mux.HandleFunc("POST /v1/payment_methods/{id}/attach", func(w http.ResponseWriter, r *http.Request) {
		fake.record("attach", r)
		if r.PathValue("id") == "pm_declined" {
			writeJSON(w, http.StatusPaymentRequired, map[string]any{"error": map[string]any{
				"type":    "card_error",
				"code":    "card_declined",
				"message": "Your card was declined.",
			}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "object": "payment_method"})
	})
	mux.HandleFunc("POST /v1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		fake.record("create_subscription", r)
		sub := subscriptionJSON("sub_1", false)
		sub["status"] = "incomplete"
		sub["latest_invoice"] = map[string]any{
			"id":     "in_1",
			"object": "invoice",
			"confirmation_secret": map[string]any{
				"client_secret": "pi_1_secret_abc",
				"type":          "payment_intent",
			},
		}
		writeJSON(w, http.StatusOK, sub)
	})
	mux.HandleFunc("POST /v1/subscriptions/{id}", func(w http.ResponseWriter, r *http.Request) {
		fake.record("update_subscription", r)
		writeJSON(w, http.StatusOK, subscriptionJSON(r.PathValue("id"), r.PostForm.Get("cancel_at_period_end") == "true"))
	})
	mux.HandleFunc("GET /v1/subscriptions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "sub_1" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{
				"type":    "invalid_request_error",
				"code":    "resource_missing",
				"message": "No such subscription: '" + r.PathValue("id") + "'",
			}})
			return
		}
		writeJSON(w, http.StatusOK, subscriptionJSON("sub_1", false))
	})
	mux.HandleFunc("POST /v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		fake.record("payment_intent", r)
		writeJSON(w, http.StatusOK, map[string]any{
			"id":            "pi_1",
			"object":        "payment_intent",
			"amount":        999,
			"currency":      r.PostForm.Get("currency"),
			"client_secret": "pi_1_secret_xyz",
		})
	})

	mux.HandleFunc("POST /v1/payment_intents/{id}/confirm", func(w http.ResponseWriter, r *http.Request) {
		fake.record("confirm_payment_intent", r)
		if r.PathValue("id") == "pi_missing" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{
				"type":    "invalid_request_error",
				"code":    "resource_missing",
				"message": "No such payment_intent: 'pi_missing'",
			}})
			return
		}
		if r.PostForm.Get("payment_method") == "pm_declined" {
			writeJSON(w, http.StatusPaymentRequired, map[string]any{"error": map[string]any{
				"type":    "card_error",
				"code":    "card_declined",
				"message": "Your card was declined.",
			}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":       r.PathValue("id"),
			"object":   "payment_intent",
			"amount":   999,
			"currency": "usd",
			"status":   "succeeded",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	provider, err := NewStripeProvider(StripeConfig{
		SecretKey:   "sk_test_123",
		APIURL:      srv.URL,
		HTTPTimeout: 5 * time.Second,
	}, logger)
	require.NoError(t, err)
	return fake, provider
}

func TestNewStripeProviderRequiresKey(t *testing.T) {
	_, err := NewStripeProvider(StripeConfig{}, nil)
	assert.Error(t, err)
}

func TestStripeProviderCustomers(t *testing.T) {
	fake, provider := newFakeStripe(t)
	fake.customers = []map[string]any{{"id": "cus_1", "object": "customer", "email": "a@b.com"}}
	ctx := context.Background()

	found, err := provider.FindCustomerByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "cus_1", found.ID)

	missing, err := provider.FindCustomerByEmail(ctx, "nobody@b.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := provider.CreateCustomer(ctx, "new@b.com")
	require.NoError(t, err)
	assert.Equal(t, "cus_new", created.ID)
	assert.Equal(t, []string{"new@b.com"}, fake.form("create_customer")["email"])
}

func TestStripeProviderAttachPaymentMethod(t *testing.T) {
	fake, provider := newFakeStripe(t)

	require.NoError(t, provider.AttachPaymentMethod(context.Background(), "cus_1", "pm_1"))
	assert.Equal(t, []string{"cus_1"}, fake.form("attach")["customer"])
	assert.Equal(t, []string{"pm_1"}, fake.form("update_customer")["invoice_settings[default_payment_method]"])
}

func TestStripeProviderDeclinedCard(t *testing.T) {
	_, provider := newFakeStripe(t)

	err := provider.AttachPaymentMethod(context.Background(), "cus_1", "pm_declined")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "card_declined", apiErr.Code)
	assert.Equal(t, "Your card was declined.", err.Error())
}

func TestStripeProviderCreateSubscription(t *testing.T) {
	fake, provider := newFakeStripe(t)

	sub, err := provider.CreateSubscription(context.Background(), "cus_1", "price_monthly")
	require.NoError(t, err)

	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "cus_1", sub.CustomerID)
	assert.Equal(t, "incomplete", sub.Status)
	assert.Equal(t, "pi_1_secret_abc", sub.ClientSecret)
	assert.Equal(t, time.Unix(1798761600, 0).UTC(), sub.CurrentPeriodEnd)

	form := fake.form("create_subscription")
	assert.Equal(t, []string{"price_monthly"}, form["items[0][price]"])
	assert.Equal(t, []string{"default_incomplete"}, form["payment_behavior"])
	assert.Equal(t, []string{"on_subscription"}, form["payment_settings[save_default_payment_method]"])
	assert.Equal(t, []string{"latest_invoice.confirmation_secret"}, form["expand[0]"])
}

func TestStripeProviderCancelAndGet(t *testing.T) {
	fake, provider := newFakeStripe(t)
	ctx := context.Background()

	canceled, err := provider.CancelAtPeriodEnd(ctx, "sub_1")
	require.NoError(t, err)
	assert.True(t, canceled.CancelAtPeriodEnd)
	assert.Equal(t, []string{"true"}, fake.form("update_subscription")["cancel_at_period_end"])

	sub, err := provider.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, "active", sub.Status)

	_, err = provider.GetSubscription(ctx, "sub_missing")
	require.Error(t, err)
	assert.Equal(t, "No such subscription: 'sub_missing'", err.Error())
}

func TestStripeProviderCreatePaymentIntent(t *testing.T) {
	fake, provider := newFakeStripe(t)

	intent, err := provider.CreatePaymentIntent(context.Background(), 999, "usd", map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_xyz", intent.ClientSecret)
	assert.Equal(t, int64(999), intent.Amount)

	form := fake.form("payment_intent")
	assert.Equal(t, []string{"999"}, form["amount"])
	assert.Equal(t, []string{"a@b.com"}, form["metadata[email]"])
	assert.Equal(t, []string{"true"}, form["automatic_payment_methods[enabled]"])
}

func TestStripeProviderConfirmPaymentIntent(t *testing.T) {
	fake, provider := newFakeStripe(t)
	ctx := context.Background()

	intent, err := provider.ConfirmPaymentIntent(ctx, "pi_1", "pm_card_visa")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, int64(999), intent.Amount)
	assert.Equal(t, []string{"pm_card_visa"}, fake.form("confirm_payment_intent")["payment_method"])

	_, err = provider.ConfirmPaymentIntent(ctx, "pi_1", "pm_declined")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "card_declined", apiErr.Code)

	_, err = provider.ConfirmPaymentIntent(ctx, "pi_missing", "pm_card_visa")
	require.Error(t, err)
	assert.Equal(t, "No such payment_intent: 'pi_missing'", err.Error())
}

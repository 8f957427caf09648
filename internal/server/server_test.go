package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/observability"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:           config.Test,
		ServerHost:            "127.0.0.1",
		ServerPort:            "0",
		PaymentBackend:        config.PaymentBackendStub,
		StripeMonthlyPriceID:  "price_monthly",
		StripeYearlyPriceID:   "price_yearly",
		ProviderTimeout:       time.Second,
		RecipeRateLimit:       2,
		SubscriptionRateLimit: 1,
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func post(h http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := observability.NewMetrics(nil)

	srv, err := New(testConfig(), nil, metrics, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, srv)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = post(srv.Handler(), "/api/generate-recipe", map[string]any{"ingredients": []string{"salmon"}})
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pantrychef_recipes_generated_total{source="catalog"} 1`)
	assert.Contains(t, w.Body.String(), `pantrychef_http_requests_total`)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentBackend = "paypal"

	_, err := New(cfg, nil, nil, quietLogger())
	assert.Error(t, err)
}

func TestRateLimitedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	srv, err := New(testConfig(), client, nil, quietLogger())
	require.NoError(t, err)

	body := map[string]any{"ingredients": []string{"tofu"}}
	assert.Equal(t, http.StatusOK, post(srv.Handler(), "/api/generate-recipe", body).Code)
	assert.Equal(t, http.StatusOK, post(srv.Handler(), "/api/generate-recipe", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(srv.Handler(), "/api/generate-recipe", body).Code)

	sub := map[string]string{"email": "a@b.com", "plan": "monthly", "paymentMethodId": "pm_card_visa"}
	assert.Equal(t, http.StatusOK, post(srv.Handler(), "/api/create-subscription", sub).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(srv.Handler(), "/api/create-subscription", sub).Code)

	// Unlimited routes are untouched.
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	srv, err := New(testConfig(), nil, nil, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

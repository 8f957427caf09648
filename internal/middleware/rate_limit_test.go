package middleware

import (
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
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupLimiter(t *testing.T, limit int) (*miniredis.Miniredis, *RateLimiter, *gin.Engine) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Hour,
		Limit:     limit,
		KeyPrefix: "rate_limit:test",
	}, quietLogger())

	router := gin.New()
	router.POST("/limited", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return mr, rl, router
}

func send(router http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterRejectsAfterLimit(t *testing.T) {
	_, _, router := setupLimiter(t, 2)

	first := send(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := send(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := send(router, "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, third.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(third.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])
	assert.Contains(t, body["message"], "rate limit of 2 requests")

	// Other clients have their own window.
	assert.Equal(t, http.StatusOK, send(router, "10.0.0.2:1234").Code)
}

func TestRateLimiterKeysExpireWithWindow(t *testing.T) {
	mr, rl, _ := setupLimiter(t, 5)
	fixed := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	allowed, remaining, reset, err := rl.IsAllowed(context.Background(), "10.0.0.9")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 4, remaining)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), reset)

	key := rl.key("10.0.0.9", fixed.Truncate(time.Hour))
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr, _, router := setupLimiter(t, 1)
	mr.Close()

	w := send(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

func TestRateLimiterDisabled(t *testing.T) {
	var nilLimiter *RateLimiter
	noRedis := NewRecipeRateLimiter(nil, 1, quietLogger())

	for name, rl := range map[string]*RateLimiter{"nil limiter": nilLimiter, "no redis": noRedis} {
		t.Run(name, func(t *testing.T) {
			router := gin.New()
			router.POST("/limited", rl.Middleware(), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})
			for i := 0; i < 3; i++ {
				assert.Equal(t, http.StatusNoContent, send(router, "10.0.0.1:1234").Code)
			}
		})
	}
}

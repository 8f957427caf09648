package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/catalog"
	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/observability"
	"github.com/pageza/pantrychef/backend/internal/payment"
	"github.com/pageza/pantrychef/backend/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *logrus.Logger
}

// NewServer wires the HTTP surface onto already constructed dependencies
func NewServer(cfg *config.Config, deps api.Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.ErrorHandler(deps.Logger),
		middleware.CORS(cfg.CORSOrigins),
	)
	api.SetupAPI(router, deps)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: deps.Logger,
	}
}

// New builds the full application from configuration. redisClient may be
// nil, in which case rate limiting is disabled.
func New(cfg *config.Config, redisClient *redis.Client, metrics *observability.Metrics, logger *logrus.Logger) (*Server, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	provider, err := payment.NewProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	recipes := service.NewRecipeService(cat, nil, metrics, logger)
	subscriptions := service.NewSubscriptionService(provider, service.SubscriptionConfig{
		PriceIDs:        cfg.PriceIDs(),
		ProviderTimeout: cfg.ProviderTimeout,
	}, metrics, logger)
	webhooks := service.NewWebhookService(metrics, logger)

	deps := api.Dependencies{
		Recipes:       recipes,
		Subscriptions: subscriptions,
		Webhooks:      webhooks,
		WebhookSecret: cfg.StripeWebhookSecret,
		Metrics:       metrics,
		Logger:        logger,
	}
	if redisClient != nil {
		deps.RecipeLimiter = middleware.NewRecipeRateLimiter(redisClient, cfg.RecipeRateLimit, logger)
		deps.SubscriptionLimiter = middleware.NewSubscriptionRateLimiter(redisClient, cfg.SubscriptionRateLimit, logger)
	} else {
		logger.Warn("Redis is not available, rate limiting is disabled")
	}

	logger.WithFields(logrus.Fields{
		"payment_backend": cfg.PaymentBackend,
		"environment":     cfg.Environment,
		"keywords":        cat.Len(),
	}).Info("server configured")
	return NewServer(cfg, deps), nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until the server is shut down. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to five seconds.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errChan
}

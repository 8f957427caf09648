package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/observability"
	"github.com/pageza/pantrychef/backend/internal/service"
)

// Dependencies are the services and limiters the HTTP surface is built on.
type Dependencies struct {
	Recipes       service.IRecipeService
	Subscriptions service.ISubscriptionService
	Webhooks      service.IWebhookService
	WebhookSecret string

	RecipeLimiter       *middleware.RateLimiter
	SubscriptionLimiter *middleware.RateLimiter

	Metrics *observability.Metrics
	Logger  *logrus.Logger
}

func SetupAPI(router *gin.Engine, deps Dependencies) {
	api := router.Group("/api")
	{
		api.GET("/health", Health)

		recipeHandler := NewRecipeHandler(deps.Recipes, deps.Logger)
		subscriptionHandler := NewSubscriptionHandler(deps.Subscriptions, deps.Webhooks, deps.WebhookSecret, deps.Logger)

		recipeHandler.RegisterRoutes(api, deps.RecipeLimiter.Middleware())
		subscriptionHandler.RegisterRoutes(api, deps.SubscriptionLimiter.Middleware())
	}

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "Recipe app server is running"})
}

func invalidBody(err error) error {
	return &service.ValidationError{Field: "body", Message: "invalid request body: " + err.Error()}
}

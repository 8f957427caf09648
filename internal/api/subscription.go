package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/service"
)

const maxWebhookBodyBytes = 1 << 20

type SubscriptionHandler struct {
	subscriptions service.ISubscriptionService
	webhooks      service.IWebhookService
	webhookSecret string
	logger        *logrus.Logger
}

func NewSubscriptionHandler(subscriptions service.ISubscriptionService, webhooks service.IWebhookService, webhookSecret string, logger *logrus.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		webhooks:      webhooks,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// RegisterRoutes mounts the billing endpoints. limit guards subscription
// creation.
func (h *SubscriptionHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.GET("/plans", h.ListPlans)
	router.POST("/create-subscription", limit, h.CreateSubscription)
	router.POST("/cancel-subscription", h.CancelSubscription)
	router.GET("/subscription-status/:subscriptionId", h.GetSubscriptionStatus)
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.POST("/confirm-payment", h.ConfirmPayment)
	router.POST("/webhook", h.HandleWebhook)
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.subscriptions.Plans()})
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	sub, err := h.subscriptions.CreateSubscription(c.Request.Context(), req.Email, req.Plan, req.PaymentMethodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CreateSubscriptionResponse{
		SubscriptionID: sub.ID,
		CustomerID:     sub.CustomerID,
		Status:         sub.Status,
		ClientSecret:   sub.ClientSecret,
	})
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	var req CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	sub, err := h.subscriptions.CancelSubscription(c.Request.Context(), req.SubscriptionID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CancelSubscriptionResponse{
		Message:        "Subscription will be cancelled at the end of the billing period",
		SubscriptionID: sub.ID,
	})
}

func (h *SubscriptionHandler) GetSubscriptionStatus(c *gin.Context) {
	status, err := h.subscriptions.GetSubscriptionStatus(c.Request.Context(), c.Param("subscriptionId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *SubscriptionHandler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	intent, err := h.subscriptions.CreatePaymentIntent(c.Request.Context(), service.PaymentIntentRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Email:    req.Email,
		Plan:     req.Plan,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

func (h *SubscriptionHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	intent, err := h.subscriptions.ConfirmPayment(c.Request.Context(), req.PaymentIntentID, req.PaymentMethodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ConfirmPaymentResponse{
		Success: true,
		Status:  intent.Status,
		Amount:  intent.Amount,
	})
}

// HandleWebhook verifies and dispatches a provider event. The raw body is
// needed for signature verification, so it is read before any parsing.
func (h *SubscriptionHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(&service.ValidationError{Message: "webhook payload too large"})
			return
		}
		_ = c.Error(&service.ValidationError{Message: "could not read webhook payload"})
		return
	}

	if err := h.webhooks.HandleWebhookEvent(c.Request.Context(), body, c.GetHeader("Stripe-Signature"), h.webhookSecret); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

package api

// GenerateRecipeRequest is the body of POST /api/generate-recipe
type GenerateRecipeRequest struct {
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Cuisine             string   `json:"cuisine"`
	Difficulty          string   `json:"difficulty"`
	Servings            int      `json:"servings"`
}

// CreateSubscriptionRequest is the body of POST /api/create-subscription
type CreateSubscriptionRequest struct {
	Email           string `json:"email"`
	Plan            string `json:"plan"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// CreateSubscriptionResponse is returned once the provider accepted the
// subscription. ClientSecret is set when the first invoice still needs
// client-side confirmation.
type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	CustomerID     string `json:"customerId"`
	Status         string `json:"status,omitempty"`
	ClientSecret   string `json:"clientSecret,omitempty"`
}

// CancelSubscriptionRequest is the body of POST /api/cancel-subscription
type CancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId"`
}

type CancelSubscriptionResponse struct {
	Message        string `json:"message"`
	SubscriptionID string `json:"subscriptionId"`
}

// PaymentIntentRequest is the body of POST /api/create-payment-intent
type PaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Email    string  `json:"email"`
	Plan     string  `json:"plan"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmPaymentRequest is the body of POST /api/confirm-payment
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type ConfirmPaymentResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Amount  int64  `json:"amount"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

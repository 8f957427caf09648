package model

import "time"

// Plan identifiers accepted by the subscription gateway.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Observed subscription states. The provider owns the real state; these are
// derived from what it reports.
const (
	StateIncomplete      = "incomplete"
	StateActive          = "active"
	StateCanceledPending = "canceled_pending"
	StatePastDue         = "past_due"
	StateCanceled        = "canceled"
)

type Customer struct {
	ID    string `json:"customerId"`
	Email string `json:"email"`
}

type Subscription struct {
	ID                string    `json:"subscriptionId"`
	CustomerID        string    `json:"customerId"`
	Plan              string    `json:"plan,omitempty"`
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool      `json:"cancelAtPeriodEnd"`
	ClientSecret      string    `json:"clientSecret,omitempty"`
}

// State maps the provider status onto the observed lifecycle
// incomplete -> active -> (canceled_pending | past_due) -> canceled.
func (s Subscription) State() string {
	switch s.Status {
	case "active", "trialing":
		if s.CancelAtPeriodEnd {
			return StateCanceledPending
		}
		return StateActive
	case "past_due", "unpaid":
		return StatePastDue
	case "canceled", "incomplete_expired":
		return StateCanceled
	default:
		return StateIncomplete
	}
}

// Plan describes a premium tier as shown to clients.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Savings  string   `json:"savings,omitempty"`
	Features []string `json:"features"`
}

type PaymentIntent struct {
	ID           string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status,omitempty"`
}

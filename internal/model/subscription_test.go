package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionState(t *testing.T) {
	tests := []struct {
		name   string
		sub    Subscription
		expect string
	}{
		{"incomplete", Subscription{Status: "incomplete"}, StateIncomplete},
		{"active", Subscription{Status: "active"}, StateActive},
		{"cancel scheduled", Subscription{Status: "active", CancelAtPeriodEnd: true}, StateCanceledPending},
		{"past due", Subscription{Status: "past_due"}, StatePastDue},
		{"canceled", Subscription{Status: "canceled"}, StateCanceled},
		{"unknown status", Subscription{Status: "paused"}, StateIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.sub.State())
		})
	}
}

func TestRecipeCloneIsDeep(t *testing.T) {
	orig := Recipe{
		Title:        "Beef Tacos",
		Ingredients:  []Ingredient{{Item: "ground beef", Amount: "1", Unit: "pound"}},
		Instructions: []string{"Brown the beef"},
	}

	cp := orig.Clone()
	cp.Ingredients[0].Amount = "2"
	cp.Instructions[0] = "changed"

	assert.Equal(t, "1", orig.Ingredients[0].Amount)
	assert.Equal(t, "Brown the beef", orig.Instructions[0])
}

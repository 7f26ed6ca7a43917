package entities

import (
	"fmt"
	"time"
)

// Plan is a subscription offer garages renew against.
//
// Storage model (DynamoDB):
//   - PK: id
type Plan struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DurationInMonths int       `json:"duration_in_months"`
	Amount           float64   `json:"amount"`
	Features         []string  `json:"features"`
	SubscriptionType string    `json:"subscription_type"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Type is the subscription type written on the garage, e.g. "6_months".
func (p Plan) Type() string {
	if p.SubscriptionType != "" {
		return p.SubscriptionType
	}
	return fmt.Sprintf("%d_months", p.DurationInMonths)
}

// SubscriptionStatus summarises a garage subscription at a point in time.
type SubscriptionStatus struct {
	GarageID          string
	GarageName        string
	IsSubscribed      bool
	SubscriptionType  string
	SubscriptionStart time.Time
	SubscriptionEnd   time.Time
	IsExpired         bool
	// DaysUntilExpiry is nil when the garage has no end date. It goes
	// negative once the subscription has lapsed.
	DaysUntilExpiry *int
	PaymentDetails  PaymentDetails
}

// SubscriptionStatusAt evaluates g's subscription at now. Partial days round
// up, so a subscription ending in three hours has 1 day left.
func SubscriptionStatusAt(g Garage, now time.Time) SubscriptionStatus {
	s := SubscriptionStatus{
		GarageID:          g.ID,
		GarageName:        g.Name,
		IsSubscribed:      g.IsSubscribed,
		SubscriptionType:  g.SubscriptionType,
		SubscriptionStart: g.SubscriptionStart,
		SubscriptionEnd:   g.SubscriptionEnd,
		PaymentDetails:    g.PaymentDetails,
	}
	if g.SubscriptionEnd.IsZero() {
		return s
	}
	s.IsExpired = g.SubscriptionEnd.Before(now)
	left := g.SubscriptionEnd.Sub(now)
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) > 0 {
		days++
	}
	s.DaysUntilExpiry = &days
	return s
}

// HasActiveSubscription reports whether g is subscribed and not yet expired.
func (g Garage) HasActiveSubscription(now time.Time) bool {
	return g.IsSubscribed && !g.SubscriptionEnd.IsZero() && g.SubscriptionEnd.After(now)
}

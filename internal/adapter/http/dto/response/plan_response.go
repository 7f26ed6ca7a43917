package response

import (
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

type PlanResponse struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	DurationInMonths int           `json:"duration_in_months"`
	Amount           billing.Money `json:"amount"`
	Features         []string      `json:"features"`
	SubscriptionType string        `json:"subscription_type"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func FromPlan(p entities.Plan) PlanResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanResponse{
		ID:               p.ID,
		Name:             p.Name,
		DurationInMonths: p.DurationInMonths,
		Amount:           billing.NewMoney(p.Amount),
		Features:         features,
		SubscriptionType: p.Type(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPlans(in []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPlan(p))
	}
	return out
}

type PlanEnvelope struct {
	Message string       `json:"message"`
	Plan    PlanResponse `json:"plan"`
}

type PlansEnvelope struct {
	Message string         `json:"message"`
	Plans   []PlanResponse `json:"plans"`
}

// RenewalResponse reports a renewal. Completed is false while the payment is
// still pending with the provider.
type RenewalResponse struct {
	Message   string         `json:"message"`
	Completed bool           `json:"completed"`
	PaymentID string         `json:"payment_id"`
	Status    string         `json:"status"`
	Plan      PlanResponse   `json:"plan"`
	Garage    GarageResponse `json:"garage"`
}

func FromRenewal(r usecase.RenewalResult) RenewalResponse {
	msg := "Subscription renewed successfully"
	if !r.Completed {
		msg = "Subscription payment pending"
	}
	return RenewalResponse{
		Message:   msg,
		Completed: r.Completed,
		PaymentID: r.PaymentID,
		Status:    r.Status,
		Plan:      FromPlan(r.Plan),
		Garage:    FromGarage(r.Garage),
	}
}

type SubscriptionStatusResponse struct {
	GarageID          string                 `json:"garage_id"`
	GarageName        string                 `json:"garage_name"`
	IsSubscribed      bool                   `json:"is_subscribed"`
	SubscriptionType  string                 `json:"subscription_type"`
	SubscriptionStart time.Time              `json:"subscription_start"`
	SubscriptionEnd   time.Time              `json:"subscription_end"`
	IsExpired         bool                   `json:"is_expired"`
	DaysUntilExpiry   *int                   `json:"days_until_expiry"`
	PaymentDetails    PaymentDetailsResponse `json:"payment_details"`
}

func FromSubscriptionStatus(s entities.SubscriptionStatus) SubscriptionStatusResponse {
	return SubscriptionStatusResponse{
		GarageID:          s.GarageID,
		GarageName:        s.GarageName,
		IsSubscribed:      s.IsSubscribed,
		SubscriptionType:  s.SubscriptionType,
		SubscriptionStart: s.SubscriptionStart,
		SubscriptionEnd:   s.SubscriptionEnd,
		IsExpired:         s.IsExpired,
		DaysUntilExpiry:   s.DaysUntilExpiry,
		PaymentDetails:    fromPaymentDetails(s.PaymentDetails),
	}
}

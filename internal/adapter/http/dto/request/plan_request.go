package request

import (
	"encoding/json"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/usecase"
)

type PlanRequest struct {
	Name             string          `json:"name" binding:"required"`
	DurationInMonths int             `json:"duration_in_months"`
	Amount           *billing.Number `json:"amount"`
	Features         []string        `json:"features"`
	SubscriptionType string          `json:"subscription_type"`
}

func (r PlanRequest) ToInput() usecase.PlanInput {
	return usecase.PlanInput{
		Name:             r.Name,
		DurationInMonths: r.DurationInMonths,
		Amount:           r.Amount.Float64(),
		Features:         r.Features,
		SubscriptionType: r.SubscriptionType,
	}
}

// RenewSubscriptionRequest starts a renewal. `payment` is the raw Mercado
// Pago payment request; the charged amount always comes from the plan.
type RenewSubscriptionRequest struct {
	GarageID string          `json:"garage_id" binding:"required"`
	PlanID   string          `json:"plan_id" binding:"required"`
	Payment  json.RawMessage `json:"payment"`
}

func (r RenewSubscriptionRequest) ToInput() usecase.RenewSubscriptionInput {
	return usecase.RenewSubscriptionInput{GarageID: r.GarageID, PlanID: r.PlanID, Payment: r.Payment}
}

type CompleteRenewalRequest struct {
	GarageID  string `json:"garage_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
}

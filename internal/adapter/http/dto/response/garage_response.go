package response

import (
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
)

type PaymentDetailsResponse struct {
	PaymentID string        `json:"payment_id"`
	Amount    billing.Money `json:"amount"`
	Method    string        `json:"method"`
	Status    string        `json:"status"`
	PlanID    string        `json:"plan_id,omitempty"`
}

type GarageResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Address           string                 `json:"address"`
	Phone             string                 `json:"phone"`
	Email             string                 `json:"email"`
	Logo              string                 `json:"logo"`
	Approved          bool                   `json:"approved"`
	IsVerified        bool                   `json:"is_verified"`
	GSTNum            string                 `json:"gst_num"`
	PANNum            string                 `json:"pan_num"`
	SubscriptionType  string                 `json:"subscription_type"`
	SubscriptionStart time.Time              `json:"subscription_start"`
	SubscriptionEnd   time.Time              `json:"subscription_end"`
	IsSubscribed      bool                   `json:"is_subscribed"`
	BankDetails       entities.BankDetails   `json:"bank_details"`
	PaymentDetails    PaymentDetailsResponse `json:"payment_details"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

func FromGarage(g entities.Garage) GarageResponse {
	return GarageResponse{
		ID:                g.ID,
		Name:              g.Name,
		Address:           g.Address,
		Phone:             g.Phone,
		Email:             g.Email,
		Logo:              g.Logo,
		Approved:          g.Approved,
		IsVerified:        g.IsVerified,
		GSTNum:            g.GSTNum,
		PANNum:            g.PANNum,
		SubscriptionType:  g.SubscriptionType,
		SubscriptionStart: g.SubscriptionStart,
		SubscriptionEnd:   g.SubscriptionEnd,
		IsSubscribed:      g.IsSubscribed,
		BankDetails:       g.BankDetails,
		PaymentDetails:    fromPaymentDetails(g.PaymentDetails),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func fromPaymentDetails(pd entities.PaymentDetails) PaymentDetailsResponse {
	return PaymentDetailsResponse{
		PaymentID: pd.PaymentID,
		Amount:    billing.NewMoney(pd.Amount),
		Method:    pd.Method,
		Status:    pd.Status,
		PlanID:    pd.PlanID,
	}
}

func FromGarages(in []entities.Garage) []GarageResponse {
	out := make([]GarageResponse, 0, len(in))
	for _, g := range in {
		out = append(out, FromGarage(g))
	}
	return out
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Garage  GarageResponse `json:"garage"`
}

type GaragesEnvelope struct {
	Message string           `json:"message"`
	Garages []GarageResponse `json:"garages"`
}

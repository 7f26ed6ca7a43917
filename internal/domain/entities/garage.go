package entities

import "time"

// BankDetails is copied onto every bill at generation time.
type BankDetails struct {
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
	BankName          string `json:"bank_name"`
	BranchName        string `json:"branch_name"`
	UPIID             string `json:"upi_id"`
}

// PaymentDetails records how the garage subscription was paid. PlanID is set
// for renewals.
type PaymentDetails struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	PlanID    string  `json:"plan_id,omitempty"`
}

const (
	PaymentMethodFree        = "free"
	PaymentMethodMercadoPago = "mercadopago"

	// PaymentStatusPaid marks a renewal whose plan has been applied.
	PaymentStatusPaid = "paid"
)

// Garage is the tenant. Every job card, bill, engineer and inventory part
// belongs to exactly one garage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type Garage struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Address           string         `json:"address"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email"`
	PasswordHash      string         `json:"-"`
	Logo              string         `json:"logo"`
	Approved          bool           `json:"approved"`
	IsVerified        bool           `json:"is_verified"`
	GSTNum            string         `json:"gst_num"`
	PANNum            string         `json:"pan_num"`
	SubscriptionType  string         `json:"subscription_type"`
	SubscriptionStart time.Time      `json:"subscription_start"`
	SubscriptionEnd   time.Time      `json:"subscription_end"`
	IsSubscribed      bool           `json:"is_subscribed"`
	BankDetails       BankDetails    `json:"bank_details"`
	PaymentDetails    PaymentDetails `json:"payment_details"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// IsPendingRegistration reports whether the garage never got past sign-up.
func (g Garage) IsPendingRegistration() bool {
	return !g.Approved && !g.IsVerified
}

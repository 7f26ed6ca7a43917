package request

import (
	"encoding/json"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

// RegisterGarageRequest is the public sign-up payload. `payment` is the raw
// Mercado Pago payment request and is ignored for free plans.
type RegisterGarageRequest struct {
	Name             string               `json:"name" binding:"required"`
	Address          string               `json:"address"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email" binding:"required"`
	Password         string               `json:"password" binding:"required"`
	GSTNum           string               `json:"gst_num"`
	PANNum           string               `json:"pan_num"`
	Logo             string               `json:"logo"`
	DurationInMonths int                  `json:"duration_in_months"`
	Amount           *billing.Number      `json:"amount"`
	IsFreePlan       bool                 `json:"is_free_plan"`
	Payment          json.RawMessage      `json:"payment"`
	BankDetails      entities.BankDetails `json:"bank_details"`
}

func (r RegisterGarageRequest) ToInput() usecase.RegisterGarageInput {
	return usecase.RegisterGarageInput{
		Name:             r.Name,
		Address:          r.Address,
		Phone:            r.Phone,
		Email:            r.Email,
		Password:         r.Password,
		GSTNum:           r.GSTNum,
		PANNum:           r.PANNum,
		Logo:             r.Logo,
		DurationInMonths: r.DurationInMonths,
		Amount:           r.Amount.Float64(),
		IsFreePlan:       r.IsFreePlan,
		Payment:          r.Payment,
		BankDetails:      r.BankDetails,
	}
}

type LoginGarageRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateGarageProfileRequest struct {
	Logo        *string               `json:"logo"`
	BankDetails *entities.BankDetails `json:"bank_details"`
}

func (r UpdateGarageProfileRequest) ToInput() usecase.UpdateGarageProfileInput {
	return usecase.UpdateGarageProfileInput{Logo: r.Logo, BankDetails: r.BankDetails}
}

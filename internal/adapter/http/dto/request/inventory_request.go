package request

import (
	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

type AddPartRequest struct {
	GarageID      string          `json:"garage_id"`
	CarName       string          `json:"car_name"`
	Model         string          `json:"model"`
	PartNumber    string          `json:"part_number"`
	PartName      string          `json:"part_name"`
	Quantity      *billing.Number `json:"quantity"`
	PurchasePrice *billing.Number `json:"purchase_price"`
	SellingPrice  *billing.Number `json:"selling_price"`
	TaxAmount     *billing.Number `json:"tax_amount"`
	HSNNumber     string          `json:"hsn_number"`
	IGST          *billing.Number `json:"igst"`
	CGSTSGST      *billing.Number `json:"cgst_sgst"`
}

func (r AddPartRequest) ToInput() usecase.AddPartInput {
	return usecase.AddPartInput{
		GarageID:      r.GarageID,
		CarName:       r.CarName,
		Model:         r.Model,
		PartNumber:    r.PartNumber,
		PartName:      r.PartName,
		Quantity:      optionalFloat(r.Quantity),
		PurchasePrice: optionalFloat(r.PurchasePrice),
		SellingPrice:  optionalFloat(r.SellingPrice),
		TaxAmount:     r.TaxAmount.Float64(),
		HSNNumber:     r.HSNNumber,
		IGST:          r.IGST.Float64(),
		CGSTSGST:      r.CGSTSGST.Float64(),
	}
}

type UpdatePartRequest struct {
	CarName       *string         `json:"car_name"`
	Model         *string         `json:"model"`
	PartNumber    *string         `json:"part_number"`
	PartName      *string         `json:"part_name"`
	Quantity      *billing.Number `json:"quantity"`
	PurchasePrice *billing.Number `json:"purchase_price"`
	SellingPrice  *billing.Number `json:"selling_price"`
	TaxAmount     *billing.Number `json:"tax_amount"`
	HSNNumber     *string         `json:"hsn_number"`
	IGST          *billing.Number `json:"igst"`
	CGSTSGST      *billing.Number `json:"cgst_sgst"`
}

func (r UpdatePartRequest) ToPatch() entities.InventoryPartPatch {
	return entities.InventoryPartPatch{
		CarName:       r.CarName,
		Model:         r.Model,
		PartNumber:    r.PartNumber,
		PartName:      r.PartName,
		Quantity:      optionalFloat(r.Quantity),
		PurchasePrice: optionalFloat(r.PurchasePrice),
		SellingPrice:  optionalFloat(r.SellingPrice),
		TaxAmount:     optionalFloat(r.TaxAmount),
		HSNNumber:     r.HSNNumber,
		IGST:          optionalFloat(r.IGST),
		CGSTSGST:      optionalFloat(r.CGSTSGST),
	}
}

package entities

import "time"

// InventoryPart is a stock item held by a garage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (garage_id-index): garage_id
type InventoryPart struct {
	ID            string    `json:"id"`
	GarageID      string    `json:"garage_id"`
	CarName       string    `json:"car_name"`
	Model         string    `json:"model"`
	PartNumber    string    `json:"part_number"`
	PartName      string    `json:"part_name"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	TaxAmount     float64   `json:"tax_amount"`
	HSNNumber     string    `json:"hsn_number"`
	IGST          float64   `json:"igst"`
	CGSTSGST      float64   `json:"cgst_sgst"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InventoryPartPatch holds the editable fields of a part; nil means unchanged.
type InventoryPartPatch struct {
	CarName       *string
	Model         *string
	PartNumber    *string
	PartName      *string
	Quantity      *float64
	PurchasePrice *float64
	SellingPrice  *float64
	TaxAmount     *float64
	HSNNumber     *string
	IGST          *float64
	CGSTSGST      *float64
}

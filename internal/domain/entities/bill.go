package entities

import "time"

// BillType selects the invoice numbering series.
type BillType string

const (
	BillTypeGST    BillType = "gst"
	BillTypeNonGST BillType = "non-gst"
)

func (t BillType) Valid() bool {
	return t == BillTypeGST || t == BillTypeNonGST
}

// InvoicePrefix is prepended to the stored invoice digits for display.
const InvoicePrefix = "INV-"

// Party is a bill-to or ship-to address block.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
}

// BillPartLine is a part charged on a bill.
type BillPartLine struct {
	PartName     string  `json:"part_name"`
	PartNumber   string  `json:"part_number"`
	HSNNumber    string  `json:"hsn_number"`
	Quantity     float64 `json:"quantity"`
	SellingPrice float64 `json:"selling_price"`
	Total        float64 `json:"total"`
}

// BillServiceLine is a labour/service charge on a bill.
type BillServiceLine struct {
	Description string  `json:"description"`
	LaborCost   float64 `json:"labor_cost"`
}

// Bill is the invoice generated from a job card. Cost fields never change
// after creation; only the payment fields are updated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (garage_id-index): garage_id, created_at (sort)
//   - GSI2 (job_id-index): job_id, created_at (sort)
//   - GSI3 (series-index): garage_id#bill_type, created_at (sort)
type Bill struct {
	ID             string            `json:"id"`
	GarageID       string            `json:"garage_id"`
	JobCardID      string            `json:"job_card_id"`
	JobID          string            `json:"job_id"`
	InvoiceNo      string            `json:"invoice_no"`
	BillType       BillType          `json:"bill_type"`
	Parts          []BillPartLine    `json:"parts"`
	Services       []BillServiceLine `json:"services"`
	TotalPartsCost float64           `json:"total_parts_cost"`
	TotalLaborCost float64           `json:"total_labor_cost"`
	SubTotal       float64           `json:"sub_total"`
	GST            float64           `json:"gst"`
	GSTPercentage  float64           `json:"gst_percentage"`
	Discount       float64           `json:"discount"`
	FinalAmount    float64           `json:"final_amount"`
	HSNCode        string            `json:"hsn_code"`
	Logo           string            `json:"logo"`
	BankDetails    BankDetails       `json:"bank_details"`
	BillToParty    Party             `json:"bill_to_party"`
	ShiftToParty   Party             `json:"shift_to_party"`
	IsPaid         bool              `json:"is_paid"`
	PaymentMethod  string            `json:"payment_method"`
	PaidAt         *time.Time        `json:"paid_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// DisplayInvoiceNo is the invoice number as printed, e.g. "INV-001".
func (b Bill) DisplayInvoiceNo() string {
	if b.InvoiceNo == "" {
		return ""
	}
	return InvoicePrefix + b.InvoiceNo
}

// LatestBill picks the most recently created bill.
func LatestBill(bills []Bill) (Bill, bool) {
	if len(bills) == 0 {
		return Bill{}, false
	}
	latest := bills[0]
	for _, b := range bills[1:] {
		if b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	return latest, true
}

package response

import (
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
)

type BillPartResponse struct {
	PartName     string        `json:"part_name"`
	PartNumber   string        `json:"part_number"`
	HSNNumber    string        `json:"hsn_number"`
	Quantity     float64       `json:"quantity"`
	SellingPrice billing.Money `json:"selling_price"`
	Total        billing.Money `json:"total"`
}

type BillServiceResponse struct {
	Description string        `json:"description"`
	LaborCost   billing.Money `json:"labor_cost"`
}

// BillResponse is a bill as shown to clients: the invoice number carries the
// INV- prefix and money renders with two decimals.
type BillResponse struct {
	ID             string                `json:"id"`
	GarageID       string                `json:"garage_id"`
	JobCardID      string                `json:"job_card_id"`
	JobID          string                `json:"job_id"`
	InvoiceNo      string                `json:"invoice_no"`
	BillType       string                `json:"bill_type"`
	Parts          []BillPartResponse    `json:"parts"`
	Services       []BillServiceResponse `json:"services"`
	TotalPartsCost billing.Money         `json:"total_parts_cost"`
	TotalLaborCost billing.Money         `json:"total_labor_cost"`
	SubTotal       billing.Money         `json:"sub_total"`
	GST            billing.Money         `json:"gst"`
	GSTPercentage  billing.Money         `json:"gst_percentage"`
	Discount       billing.Money         `json:"discount"`
	FinalAmount    billing.Money         `json:"final_amount"`
	HSNCode        string                `json:"hsn_code"`
	Logo           string                `json:"logo"`
	BankDetails    entities.BankDetails  `json:"bank_details"`
	BillToParty    entities.Party        `json:"bill_to_party"`
	ShiftToParty   entities.Party        `json:"shift_to_party"`
	IsPaid         bool                  `json:"is_paid"`
	PaymentMethod  string                `json:"payment_method"`
	PaidAt         *time.Time            `json:"paid_at,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromBill(b entities.Bill) BillResponse {
	parts := make([]BillPartResponse, 0, len(b.Parts))
	for _, p := range b.Parts {
		parts = append(parts, BillPartResponse{
			PartName:     p.PartName,
			PartNumber:   p.PartNumber,
			HSNNumber:    p.HSNNumber,
			Quantity:     p.Quantity,
			SellingPrice: billing.NewMoney(p.SellingPrice),
			Total:        billing.NewMoney(p.Total),
		})
	}
	services := make([]BillServiceResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, BillServiceResponse{Description: s.Description, LaborCost: billing.NewMoney(s.LaborCost)})
	}

	return BillResponse{
		ID:             b.ID,
		GarageID:       b.GarageID,
		JobCardID:      b.JobCardID,
		JobID:          b.JobID,
		InvoiceNo:      b.DisplayInvoiceNo(),
		BillType:       string(b.BillType),
		Parts:          parts,
		Services:       services,
		TotalPartsCost: billing.NewMoney(b.TotalPartsCost),
		TotalLaborCost: billing.NewMoney(b.TotalLaborCost),
		SubTotal:       billing.NewMoney(b.SubTotal),
		GST:            billing.NewMoney(b.GST),
		GSTPercentage:  billing.NewMoney(b.GSTPercentage),
		Discount:       billing.NewMoney(b.Discount),
		FinalAmount:    billing.NewMoney(b.FinalAmount),
		HSNCode:        b.HSNCode,
		Logo:           b.Logo,
		BankDetails:    b.BankDetails,
		BillToParty:    b.BillToParty,
		ShiftToParty:   b.ShiftToParty,
		IsPaid:         b.IsPaid,
		PaymentMethod:  b.PaymentMethod,
		PaidAt:         b.PaidAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type BillEnvelope struct {
	Message string       `json:"message"`
	Bill    BillResponse `json:"bill"`
}

type LastInvoiceResponse struct {
	LastInvoiceNo string `json:"last_invoice_no"`
}

type BillEmailResponse struct {
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	InvoiceNo string    `json:"invoice_no"`
	SentAt    time.Time `json:"sent_at"`
}

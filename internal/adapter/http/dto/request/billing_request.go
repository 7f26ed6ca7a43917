package request

import (
	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

type GenerateBillRequest struct {
	Parts         []billing.BillPartInput    `json:"parts"`
	Services      []billing.BillServiceInput `json:"services"`
	Discount      *billing.Number            `json:"discount"`
	GSTPercentage *billing.Number            `json:"gst_percentage"`
	BillType      string                     `json:"bill_type"`
	BillToParty   entities.Party             `json:"bill_to_party"`
	ShiftToParty  entities.Party             `json:"shift_to_party"`
}

func (r GenerateBillRequest) ToInput() usecase.GenerateBillInput {
	return usecase.GenerateBillInput{
		Parts:         r.Parts,
		Services:      r.Services,
		Discount:      optionalFloat(r.Discount),
		GSTPercentage: optionalFloat(r.GSTPercentage),
		BillType:      r.BillType,
		BillToParty:   r.BillToParty,
		ShiftToParty:  r.ShiftToParty,
	}
}

// ProcessPaymentRequest pays the latest bill of a job. garage_id defaults to
// the caller's garage and is required for admins.
type ProcessPaymentRequest struct {
	GarageID      string `json:"garage_id"`
	JobID         string `json:"job_id"`
	PaymentMethod string `json:"payment_method"`
}

// SendBillEmailRequest carries the rendered invoice PDF as base64. invoice_no
// and job_id are fallbacks used when the bill id does not resolve.
type SendBillEmailRequest struct {
	Email     string `json:"email"`
	PDFBase64 string `json:"pdf_base64"`
	InvoiceNo string `json:"invoice_no"`
	JobID     string `json:"job_id"`
}

func (r SendBillEmailRequest) ToInput() usecase.SendBillEmailInput {
	return usecase.SendBillEmailInput{Email: r.Email, PDFBase64: r.PDFBase64, InvoiceNo: r.InvoiceNo, JobID: r.JobID}
}

func optionalFloat(n *billing.Number) *float64 {
	if n == nil {
		return nil
	}
	v := n.Float64()
	return &v
}

package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBillNotFound          = errors.New("bill not found")
	ErrInvoiceNumberConflict = errors.New("invoice number already exists, retry")
	ErrInvalidBillType       = errors.New("invalid bill type")
	ErrInvalidJobID          = errors.New("invalid job_id")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrEmailRequired         = errors.New("email address is required")
	ErrPDFRequired           = errors.New("pdf data is required")
	ErrInvalidPDF            = errors.New("pdf data is not valid base64")
	ErrEmailDeliveryFailed   = errors.New("failed to send email")
)

type GenerateBillInput struct {
	Parts         []billing.BillPartInput
	Services      []billing.BillServiceInput
	Discount      *float64
	GSTPercentage *float64
	BillType      string
	BillToParty   entities.Party
	ShiftToParty  entities.Party
}

type SendBillEmailInput struct {
	Email     string
	PDFBase64 string
	InvoiceNo string
	JobID     string
}

type SendBillEmailResult struct {
	Email     string
	InvoiceNo string
	SentAt    time.Time
}

type IBillingUseCase interface {
	GenerateBill(ctx context.Context, actor entities.Actor, jobCardID string, in GenerateBillInput) (entities.Bill, error)
	ProcessPayment(ctx context.Context, actor entities.Actor, garageID, jobID string, paymentMethod string) (entities.Bill, error)
	GetInvoice(ctx context.Context, actor entities.Actor, garageID, jobID string) (entities.Bill, error)
	LastInvoiceNumber(ctx context.Context, actor entities.Actor, garageID string, billType string) (string, error)
	SendBillEmail(ctx context.Context, actor entities.Actor, billID string, in SendBillEmailInput) (SendBillEmailResult, error)
}

type BillingUseCase struct {
	bills     interfaces.IBillRepository
	jobCards  interfaces.IJobCardRepository
	garages   interfaces.IGarageRepository
	sequences ISequenceAllocator
	mailer    interfaces.IEmailSender
	cache     interfaces.IReportCache
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(
	bills interfaces.IBillRepository,
	jobCards interfaces.IJobCardRepository,
	garages interfaces.IGarageRepository,
	sequences ISequenceAllocator,
	mailer interfaces.IEmailSender,
	cache interfaces.IReportCache,
) *BillingUseCase {
	return &BillingUseCase{bills: bills, jobCards: jobCards, garages: garages, sequences: sequences, mailer: mailer, cache: cache}
}

func (u *BillingUseCase) GenerateBill(ctx context.Context, actor entities.Actor, jobCardID string, in GenerateBillInput) (entities.Bill, error) {
	jobCardID = strings.TrimSpace(jobCardID)
	log.Printf("[billing][usecase] generate start job_card_id=%s bill_type=%q", jobCardID, in.BillType)

	billType, err := parseBillType(in.BillType)
	if err != nil {
		return entities.Bill{}, err
	}
	gstPercentage := float64(billing.DefaultGSTPercentage)
	if in.GSTPercentage != nil {
		gstPercentage = *in.GSTPercentage
	}
	discount := 0.0
	if in.Discount != nil {
		discount = *in.Discount
	}

	jc, err := u.jobCards.GetByID(ctx, jobCardID)
	if err != nil {
		return entities.Bill{}, err
	}
	if jc.ID == "" {
		log.Printf("[billing][usecase] job card not found job_card_id=%s", jobCardID)
		return entities.Bill{}, ErrJobCardNotFound
	}
	if !actor.CanAccessGarage(jc.GarageID) {
		return entities.Bill{}, ErrForbidden
	}

	garage, err := u.garages.GetByID(ctx, jc.GarageID)
	if err != nil {
		return entities.Bill{}, err
	}
	if garage.ID == "" {
		log.Printf("[billing][usecase] garage not found garage_id=%s", jc.GarageID)
		return entities.Bill{}, ErrGarageNotFound
	}

	totals, err := billing.ComputeBillTotals(billType, in.Parts, in.Services, gstPercentage, discount)
	if err != nil {
		log.Printf("[billing][usecase] invalid bill lines job_card_id=%s err=%v", jobCardID, err)
		return entities.Bill{}, err
	}

	now := time.Now().UTC()
	for attempt := 1; attempt <= maxSequenceAttempts; attempt++ {
		seq, err := u.sequences.ReserveInvoiceNumber(ctx, jc.GarageID, billType)
		if err != nil {
			return entities.Bill{}, err
		}

		bill := entities.Bill{
			ID:             uuid.NewString(),
			GarageID:       jc.GarageID,
			JobCardID:      jc.ID,
			JobID:          jc.JobID,
			InvoiceNo:      billing.FormatInvoiceNumber(billType, seq.Value),
			BillType:       billType,
			Parts:          totals.Parts,
			Services:       totals.Services,
			TotalPartsCost: totals.TotalPartsCost,
			TotalLaborCost: totals.TotalLaborCost,
			SubTotal:       totals.SubTotal,
			GST:            totals.GST,
			GSTPercentage:  totals.GSTPercentage,
			Discount:       totals.Discount,
			FinalAmount:    totals.FinalAmount,
			HSNCode:        totals.HSNCode,
			Logo:           garage.Logo,
			BankDetails:    garage.BankDetails,
			BillToParty:    in.BillToParty,
			ShiftToParty:   in.ShiftToParty,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		created, err := u.bills.Create(ctx, bill, seq)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			log.Printf("[billing][usecase] invoice number taken, retrying garage_id=%s bill_type=%s number=%s attempt=%d", jc.GarageID, billType, bill.InvoiceNo, attempt)
			continue
		}
		if err != nil {
			log.Printf("[billing][usecase] create failed job_card_id=%s err=%v", jobCardID, err)
			return entities.Bill{}, err
		}
		u.invalidateReports(ctx, jc.GarageID)
		log.Printf("[billing][usecase] generate success bill_id=%s invoice=%s final_amount=%.2f", created.ID, created.DisplayInvoiceNo(), created.FinalAmount)
		return created, nil
	}
	log.Printf("[billing][usecase] giving up after %d attempts garage_id=%s bill_type=%s", maxSequenceAttempts, jc.GarageID, billType)
	return entities.Bill{}, ErrInvoiceNumberConflict
}

func (u *BillingUseCase) ProcessPayment(ctx context.Context, actor entities.Actor, garageID, jobID string, paymentMethod string) (entities.Bill, error) {
	jobID = strings.TrimSpace(jobID)
	paymentMethod = strings.TrimSpace(paymentMethod)
	log.Printf("[billing][usecase] payment start garage_id=%s job_id=%s method=%s", garageID, jobID, paymentMethod)
	if jobID == "" {
		return entities.Bill{}, ErrInvalidJobID
	}
	if paymentMethod == "" {
		return entities.Bill{}, ErrInvalidPaymentMethod
	}
	garageID, err := jobScope(actor, garageID)
	if err != nil {
		return entities.Bill{}, err
	}

	bill, err := u.latestForJob(ctx, garageID, jobID)
	if err != nil {
		return entities.Bill{}, err
	}

	paid, err := u.bills.MarkPaid(ctx, bill.ID, paymentMethod)
	if err != nil {
		return entities.Bill{}, err
	}
	if paid.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	u.invalidateReports(ctx, paid.GarageID)
	log.Printf("[billing][usecase] payment success bill_id=%s invoice=%s", paid.ID, paid.DisplayInvoiceNo())
	return paid, nil
}

func (u *BillingUseCase) GetInvoice(ctx context.Context, actor entities.Actor, garageID, jobID string) (entities.Bill, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Bill{}, ErrInvalidJobID
	}
	garageID, err := jobScope(actor, garageID)
	if err != nil {
		return entities.Bill{}, err
	}

	if !actor.IsAdmin() {
		jc, err := u.jobCards.GetByJobID(ctx, garageID, jobID)
		if err != nil {
			return entities.Bill{}, err
		}
		if jc.ID == "" || !canReadInvoice(actor, jc) {
			log.Printf("[billing][usecase] invoice access denied garage_id=%s job_id=%s actor=%s", garageID, jobID, actor.ID)
			return entities.Bill{}, ErrForbidden
		}
	}

	return u.latestForJob(ctx, garageID, jobID)
}

// jobScope picks the garage a job id is resolved in: the explicit one, or
// the caller's own. Admins have no garage and must name one.
func jobScope(actor entities.Actor, garageID string) (string, error) {
	garageID = strings.TrimSpace(garageID)
	if garageID == "" {
		garageID = actor.GarageID
	}
	if garageID == "" {
		return "", ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return "", ErrForbidden
	}
	return garageID, nil
}

// canReadInvoice lets the garage account read every invoice it owns, while
// staff users only read invoices of job cards they created.
func canReadInvoice(actor entities.Actor, jc entities.JobCard) bool {
	if actor.ManagesGarage(jc.GarageID) {
		return true
	}
	return actor.GarageID == jc.GarageID && jc.CreatedBy.Kind == entities.CreatorKindUser && jc.CreatedBy.ID == actor.ID
}

func (u *BillingUseCase) LastInvoiceNumber(ctx context.Context, actor entities.Actor, garageID string, billType string) (string, error) {
	garageID = strings.TrimSpace(garageID)
	if !actor.CanAccessGarage(garageID) {
		return "", ErrForbidden
	}
	t, err := parseBillType(billType)
	if err != nil {
		return "", err
	}

	last, err := u.bills.LatestInSeries(ctx, garageID, t)
	if err != nil {
		return "", err
	}
	n, ok := billing.ParseInvoiceNumber(last.InvoiceNo)
	if !ok {
		n = 1
	}
	return billing.DisplayInvoiceNumber(billing.FormatInvoiceNumber(t, n)), nil
}

func (u *BillingUseCase) SendBillEmail(ctx context.Context, actor entities.Actor, billID string, in SendBillEmailInput) (SendBillEmailResult, error) {
	to := strings.TrimSpace(in.Email)
	if to == "" {
		return SendBillEmailResult{}, ErrEmailRequired
	}
	pdf, err := decodePDF(in.PDFBase64)
	if err != nil {
		return SendBillEmailResult{}, err
	}

	bill, err := u.resolveBill(ctx, actor, billID, in)
	if err != nil {
		return SendBillEmailResult{}, err
	}
	if !actor.CanAccessGarage(bill.GarageID) {
		return SendBillEmailResult{}, ErrForbidden
	}

	jc, err := u.jobCards.GetByID(ctx, bill.JobCardID)
	if err != nil {
		return SendBillEmailResult{}, err
	}
	if jc.ID == "" {
		return SendBillEmailResult{}, ErrJobCardNotFound
	}
	garage, err := u.garages.GetByID(ctx, bill.GarageID)
	if err != nil {
		return SendBillEmailResult{}, err
	}
	if garage.ID == "" {
		return SendBillEmailResult{}, ErrGarageNotFound
	}

	invoiceNo := strings.TrimSpace(in.InvoiceNo)
	if invoiceNo == "" {
		invoiceNo = bill.DisplayInvoiceNo()
	}
	msg := interfaces.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("Invoice %s - %s", invoiceNo, garage.Name),
		Body:    billEmailBody(garage, jc, bill, invoiceNo),
		Attachments: []interfaces.EmailAttachment{{
			Filename:    fmt.Sprintf("Invoice_%s.pdf", invoiceNo),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}

	log.Printf("[billing][usecase] sending bill email bill_id=%s invoice=%s", bill.ID, invoiceNo)
	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[billing][usecase] bill email failed bill_id=%s err=%v", bill.ID, err)
		return SendBillEmailResult{}, fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}
	return SendBillEmailResult{Email: to, InvoiceNo: invoiceNo, SentAt: time.Now().UTC()}, nil
}

// resolveBill finds the bill by id, then by job id, then by invoice number
// within the caller's garage.
func (u *BillingUseCase) resolveBill(ctx context.Context, actor entities.Actor, billID string, in SendBillEmailInput) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	if billID != "" && billID != "null" && billID != "undefined" {
		b, err := u.bills.GetByID(ctx, billID)
		if err != nil {
			return entities.Bill{}, err
		}
		if b.ID != "" {
			return b, nil
		}
	}
	if jobID := strings.TrimSpace(in.JobID); jobID != "" && actor.GarageID != "" {
		return u.latestForJob(ctx, actor.GarageID, jobID)
	}
	if n, ok := billing.ParseInvoiceNumber(in.InvoiceNo); ok && actor.GarageID != "" {
		for _, t := range []entities.BillType{entities.BillTypeGST, entities.BillTypeNonGST} {
			b, err := u.bills.FindByInvoiceNo(ctx, actor.GarageID, t, billing.FormatInvoiceNumber(t, n))
			if err != nil {
				return entities.Bill{}, err
			}
			if b.ID != "" {
				return b, nil
			}
		}
	}
	return entities.Bill{}, ErrBillNotFound
}

func (u *BillingUseCase) latestForJob(ctx context.Context, garageID, jobID string) (entities.Bill, error) {
	bills, err := u.bills.ListByJobID(ctx, garageID, jobID)
	if err != nil {
		return entities.Bill{}, err
	}
	latest, ok := entities.LatestBill(bills)
	if !ok {
		return entities.Bill{}, ErrBillNotFound
	}
	return latest, nil
}

func (u *BillingUseCase) invalidateReports(ctx context.Context, garageID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateGarage(ctx, garageID); err != nil {
		log.Printf("[billing][usecase] report cache invalidation failed garage_id=%s err=%v", garageID, err)
	}
}

func parseBillType(raw string) (entities.BillType, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return entities.BillTypeGST, nil
	}
	t := entities.BillType(raw)
	if !t.Valid() {
		return "", ErrInvalidBillType
	}
	return t, nil
}

func decodePDF(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrPDFRequired
	}
	if i := strings.Index(raw, ";base64,"); i >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[i+len(";base64,"):]
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, ErrInvalidPDF
	}
	return b, nil
}

func billEmailBody(garage entities.Garage, jc entities.JobCard, bill entities.Bill, invoiceNo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", jc.CustomerName)
	fmt.Fprintf(&b, "Thank you for choosing %s for your vehicle service.\n\n", garage.Name)
	fmt.Fprintf(&b, "Please find attached your invoice for the service performed on your vehicle %s (%s).\n\n", jc.CarNumber, jc.Model)
	b.WriteString("Invoice Details:\n")
	fmt.Fprintf(&b, "- Invoice Number: %s\n", invoiceNo)
	fmt.Fprintf(&b, "- Job ID: %s\n", bill.JobID)
	fmt.Fprintf(&b, "- Service Date: %s\n", bill.CreatedAt.Format("02/01/2006"))
	fmt.Fprintf(&b, "- Total Amount: ₹%.2f\n\n", bill.FinalAmount)
	b.WriteString("If you have any questions about this invoice, please don't hesitate to contact us.\n\n")
	b.WriteString("Thank you for your business!\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s\n", garage.Name)
	return b.String()
}

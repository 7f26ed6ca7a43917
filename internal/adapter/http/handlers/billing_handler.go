package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BillingHandler serves bill generation, payment, invoice lookup and the
// financial report of a garage.
type BillingHandler struct {
	billing usecase.IBillingUseCase
	reports usecase.IFinancialReportUseCase
}

func NewBillingHandler(billing usecase.IBillingUseCase, reports usecase.IFinancialReportUseCase) *BillingHandler {
	return &BillingHandler{billing: billing, reports: reports}
}

// GenerateBill godoc
// @Summary      Generate the bill of a job card
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                       true  "Job card ID"
// @Param        payload      body      request.GenerateBillRequest  true  "Bill lines"
// @Success      201          {object}  response.BillEnvelope
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /billing/generate/{job_card_id} [post]
func (h *BillingHandler) GenerateBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	jobCardID := c.Param("job_card_id")
	var payload request.GenerateBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[billing][handler] generate invalid payload job_card_id=%s err=%v", jobCardID, err)
		writeError(c, bindError(err))
		return
	}

	bill, err := h.billing.GenerateBill(c.Request.Context(), actor, jobCardID, payload.ToInput())
	if err != nil {
		log.Printf("[billing][handler] generate failed job_card_id=%s err=%v", jobCardID, err)
		writeError(c, mapDomainError(err))
		return
	}
	log.Printf("[billing][handler] generate success job_card_id=%s bill_id=%s invoice=%s", jobCardID, bill.ID, bill.DisplayInvoiceNo())
	c.JSON(http.StatusCreated, response.BillEnvelope{Message: "Bill generated successfully", Bill: response.FromBill(bill)})
}

// ProcessPayment godoc
// @Summary      Mark the bill of a job as paid
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.ProcessPaymentRequest  true  "Payment"
// @Success      200      {object}  response.BillEnvelope
// @Failure      404      {object}  pkg.HTTPError
// @Router       /billing/pay [post]
func (h *BillingHandler) ProcessPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	bill, err := h.billing.ProcessPayment(c.Request.Context(), actor, payload.GarageID, payload.JobID, payload.PaymentMethod)
	if err != nil {
		log.Printf("[billing][handler] pay failed job_id=%s err=%v", payload.JobID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.BillEnvelope{Message: "Payment successful", Bill: response.FromBill(bill)})
}

// GetInvoice godoc
// @Summary      Get the invoice of a job
// @Tags         billing
// @Produce      json
// @Security     Bearer
// @Param        job_id     query     string  true   "Job ID"
// @Param        garage_id  query     string  false  "Garage ID (required for admins)"
// @Success      200        {object}  response.BillResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /billing/invoice [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bill, err := h.billing.GetInvoice(c.Request.Context(), actor, c.Query("garage_id"), c.Query("job_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBill(bill))
}

// LastInvoiceNumber godoc
// @Summary      Latest invoice number of a series
// @Tags         billing
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true   "Garage ID"
// @Param        billType   query     string  false  "gst or non-gst"
// @Success      200        {object}  response.LastInvoiceResponse
// @Router       /billing/last-invoice/{garage_id} [get]
func (h *BillingHandler) LastInvoiceNumber(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	last, err := h.billing.LastInvoiceNumber(c.Request.Context(), actor, c.Param("garage_id"), c.Query("billType"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.LastInvoiceResponse{LastInvoiceNo: last})
}

// SendBillEmail godoc
// @Summary      Email the invoice PDF to the customer
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        bill_id  path      string                        true  "Bill ID"
// @Param        payload  body      request.SendBillEmailRequest  true  "Recipient and PDF"
// @Success      200      {object}  response.BillEmailResponse
// @Failure      502      {object}  pkg.HTTPError
// @Router       /billing/{bill_id}/email [post]
func (h *BillingHandler) SendBillEmail(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	billID := c.Param("bill_id")
	var payload request.SendBillEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	res, err := h.billing.SendBillEmail(c.Request.Context(), actor, billID, payload.ToInput())
	if err != nil {
		log.Printf("[billing][handler] email failed bill_id=%s err=%v", billID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.BillEmailResponse{
		Message:   "Bill sent successfully",
		Email:     res.Email,
		InvoiceNo: res.InvoiceNo,
		SentAt:    res.SentAt,
	})
}

// FinancialReport godoc
// @Summary      Financial report of a garage
// @Tags         billing
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true   "Garage ID"
// @Param        startDate  query     string  false  "YYYY-MM-DD"
// @Param        endDate    query     string  false  "YYYY-MM-DD"
// @Success      200        {object}  response.ReportEnvelope
// @Failure      400        {object}  pkg.HTTPError
// @Router       /billing/report/{garage_id} [get]
func (h *BillingHandler) FinancialReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	garageID := c.Param("garage_id")

	report, err := h.reports.Report(c.Request.Context(), actor, garageID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("[report][handler] report failed garage_id=%s err=%v", garageID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.ReportEnvelope{Message: "Financial report generated successfully", Report: response.FromFinancialReport(report)})
}

// ExportFinancialReport godoc
// @Summary      Financial report as a spreadsheet
// @Tags         billing
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Param        garage_id  path      string  true   "Garage ID"
// @Param        startDate  query     string  false  "YYYY-MM-DD"
// @Param        endDate    query     string  false  "YYYY-MM-DD"
// @Success      200        {file}    file
// @Router       /billing/report/{garage_id}/export [get]
func (h *BillingHandler) ExportFinancialReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	garageID := c.Param("garage_id")

	data, err := h.reports.Export(c.Request.Context(), actor, garageID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("[report][handler] export failed garage_id=%s err=%v", garageID, err)
		writeError(c, mapDomainError(err))
		return
	}

	filename := fmt.Sprintf("financial-report-%s-%s.xlsx", garageID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

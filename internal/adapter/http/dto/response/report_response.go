package response

import (
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
)

type ReportSummaryResponse struct {
	TotalBills     int           `json:"total_bills"`
	TotalRevenue   billing.Money `json:"total_revenue"`
	TotalPartsCost billing.Money `json:"total_parts_cost"`
	TotalLaborCost billing.Money `json:"total_labor_cost"`
	TotalGST       billing.Money `json:"total_gst"`
	TotalDiscount  billing.Money `json:"total_discount"`
	GrossProfit    billing.Money `json:"gross_profit"`
	NetProfit      billing.Money `json:"net_profit"`
	CompletedJobs  int           `json:"completed_jobs"`
	PendingJobs    int           `json:"pending_jobs"`
}

type BillTypeBreakdownResponse struct {
	GST    billing.Money `json:"gst"`
	NonGST billing.Money `json:"non_gst"`
}

type MonthlyStatsResponse struct {
	Month     string        `json:"month"`
	Revenue   billing.Money `json:"revenue"`
	Jobs      int           `json:"jobs"`
	PartsCost billing.Money `json:"parts_cost"`
	LaborCost billing.Money `json:"labor_cost"`
}

type RecentBillResponse struct {
	InvoiceNo    string            `json:"invoice_no"`
	JobID        string            `json:"job_id"`
	CustomerName string            `json:"customer_name"`
	CarNumber    string            `json:"car_number"`
	Amount       billing.Money     `json:"amount"`
	CreatedAt    time.Time         `json:"created_at"`
	BillType     entities.BillType `json:"bill_type"`
}

type FinancialReportResponse struct {
	GarageID          string                    `json:"garage_id"`
	Period            entities.ReportPeriod     `json:"period"`
	Summary           ReportSummaryResponse     `json:"summary"`
	BillTypeBreakdown BillTypeBreakdownResponse `json:"bill_type_breakdown"`
	MonthlyBreakdown  []MonthlyStatsResponse    `json:"monthly_breakdown"`
	CurrentMonth      MonthlyStatsResponse      `json:"current_month"`
	RecentBills       []RecentBillResponse      `json:"recent_bills"`
	GeneratedAt       time.Time                 `json:"generated_at"`
}

type ReportEnvelope struct {
	Message string                  `json:"message"`
	Report  FinancialReportResponse `json:"report"`
}

func FromFinancialReport(r entities.FinancialReport) FinancialReportResponse {
	s := r.Summary
	out := FinancialReportResponse{
		GarageID: r.GarageID,
		Period:   r.Period,
		Summary: ReportSummaryResponse{
			TotalBills:     s.TotalBills,
			TotalRevenue:   billing.NewMoney(s.TotalRevenue),
			TotalPartsCost: billing.NewMoney(s.TotalPartsCost),
			TotalLaborCost: billing.NewMoney(s.TotalLaborCost),
			TotalGST:       billing.NewMoney(s.TotalGST),
			TotalDiscount:  billing.NewMoney(s.TotalDiscount),
			GrossProfit:    billing.NewMoney(s.GrossProfit),
			NetProfit:      billing.NewMoney(s.NetProfit),
			CompletedJobs:  s.CompletedJobs,
			PendingJobs:    s.PendingJobs,
		},
		BillTypeBreakdown: BillTypeBreakdownResponse{
			GST:    billing.NewMoney(r.BillTypeBreakdown.GST),
			NonGST: billing.NewMoney(r.BillTypeBreakdown.NonGST),
		},
		MonthlyBreakdown: make([]MonthlyStatsResponse, 0, len(r.MonthlyBreakdown)),
		CurrentMonth:     fromMonthlyStats(r.CurrentMonth),
		RecentBills:      make([]RecentBillResponse, 0, len(r.RecentBills)),
		GeneratedAt:      r.GeneratedAt,
	}
	for _, m := range r.MonthlyBreakdown {
		out.MonthlyBreakdown = append(out.MonthlyBreakdown, fromMonthlyStats(m))
	}
	for _, b := range r.RecentBills {
		out.RecentBills = append(out.RecentBills, RecentBillResponse{
			InvoiceNo:    b.InvoiceNo,
			JobID:        b.JobID,
			CustomerName: b.CustomerName,
			CarNumber:    b.CarNumber,
			Amount:       billing.NewMoney(b.Amount),
			CreatedAt:    b.CreatedAt,
			BillType:     b.BillType,
		})
	}
	return out
}

func fromMonthlyStats(m entities.MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		Month:     m.Month,
		Revenue:   billing.NewMoney(m.Revenue),
		Jobs:      m.Jobs,
		PartsCost: billing.NewMoney(m.PartsCost),
		LaborCost: billing.NewMoney(m.LaborCost),
	}
}

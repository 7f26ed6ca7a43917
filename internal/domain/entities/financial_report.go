package entities

import "time"

// ReportPeriod is the requested bill date window. Either bound may be nil.
type ReportPeriod struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether t falls inside the window, both bounds inclusive.
func (p ReportPeriod) Contains(t time.Time) bool {
	if p.Start != nil && t.Before(*p.Start) {
		return false
	}
	if p.End != nil && t.After(*p.End) {
		return false
	}
	return true
}

type ReportSummary struct {
	TotalBills     int     `json:"total_bills"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalPartsCost float64 `json:"total_parts_cost"`
	TotalLaborCost float64 `json:"total_labor_cost"`
	TotalGST       float64 `json:"total_gst"`
	TotalDiscount  float64 `json:"total_discount"`
	GrossProfit    float64 `json:"gross_profit"`
	NetProfit      float64 `json:"net_profit"`
	CompletedJobs  int     `json:"completed_jobs"`
	PendingJobs    int     `json:"pending_jobs"`
}

// BillTypeBreakdown sums final amounts per invoice series.
type BillTypeBreakdown struct {
	GST    float64 `json:"gst"`
	NonGST float64 `json:"non_gst"`
}

type MonthlyStats struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Jobs      int     `json:"jobs"`
	PartsCost float64 `json:"parts_cost"`
	LaborCost float64 `json:"labor_cost"`
}

type RecentBill struct {
	InvoiceNo    string    `json:"invoice_no"`
	JobID        string    `json:"job_id"`
	CustomerName string    `json:"customer_name"`
	CarNumber    string    `json:"car_number"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	BillType     BillType  `json:"bill_type"`
}

// FinancialReport is the aggregate over a garage's bills in a period.
type FinancialReport struct {
	GarageID          string            `json:"garage_id"`
	Period            ReportPeriod      `json:"period"`
	Summary           ReportSummary     `json:"summary"`
	BillTypeBreakdown BillTypeBreakdown `json:"bill_type_breakdown"`
	MonthlyBreakdown  []MonthlyStats    `json:"monthly_breakdown"`
	CurrentMonth      MonthlyStats      `json:"current_month"`
	RecentBills       []RecentBill      `json:"recent_bills"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

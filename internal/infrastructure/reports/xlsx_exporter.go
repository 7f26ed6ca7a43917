package reports

import (
	"bytes"
	"fmt"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetMonthly = "Monthly"
	sheetRecent  = "Recent Bills"
)

// XLSXExporter renders a financial report as an Excel workbook.
type XLSXExporter struct{}

var _ interfaces.IReportExporter = XLSXExporter{}

func (XLSXExporter) Export(report entities.FinancialReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetRecent); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	s := report.Summary
	summary := [][]any{
		{"Garage", report.GarageID},
		{"Period start", formatBound(report.Period.Start)},
		{"Period end", formatBound(report.Period.End)},
		{"Generated at", report.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
		{"Total bills", s.TotalBills},
		{"Total revenue", s.TotalRevenue},
		{"Parts cost", s.TotalPartsCost},
		{"Labor cost", s.TotalLaborCost},
		{"GST", s.TotalGST},
		{"Discount", s.TotalDiscount},
		{"Gross profit", s.GrossProfit},
		{"Net profit", s.NetProfit},
		{"Completed jobs", s.CompletedJobs},
		{"Pending jobs", s.PendingJobs},
		{},
		{"GST revenue", report.BillTypeBreakdown.GST},
		{"Non-GST revenue", report.BillTypeBreakdown.NonGST},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, err
	}

	monthly := [][]any{{"Month", "Revenue", "Jobs", "Parts cost", "Labor cost"}}
	for _, m := range report.MonthlyBreakdown {
		monthly = append(monthly, []any{m.Month, m.Revenue, m.Jobs, m.PartsCost, m.LaborCost})
	}
	if err := writeRows(f, sheetMonthly, monthly); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetMonthly, "A1", "E1", bold); err != nil {
		return nil, err
	}

	recent := [][]any{{"Invoice", "Job", "Customer", "Car", "Amount", "Type", "Created at"}}
	for _, b := range report.RecentBills {
		recent = append(recent, []any{
			b.InvoiceNo, b.JobID, b.CustomerName, b.CarNumber, b.Amount, string(b.BillType), b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	if err := writeRows(f, sheetRecent, recent); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetRecent, "A1", "G1", bold); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

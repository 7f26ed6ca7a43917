package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidReportDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidReportPeriod = errors.New("start date is after end date")
)

const (
	reportDateLayout      = "2006-01-02"
	reportMonthLayout     = "2006-01"
	recentBillsLimit      = 10
	DefaultReportCacheTTL = 5 * time.Minute
	reportNotAvailable    = "N/A"
)

type IFinancialReportUseCase interface {
	Report(ctx context.Context, actor entities.Actor, garageID, startDate, endDate string) (entities.FinancialReport, error)
	Export(ctx context.Context, actor entities.Actor, garageID, startDate, endDate string) ([]byte, error)
}

type FinancialReportUseCase struct {
	bills    interfaces.IBillRepository
	jobCards interfaces.IJobCardRepository
	cache    interfaces.IReportCache
	exporter interfaces.IReportExporter
	cacheTTL time.Duration
}

var _ IFinancialReportUseCase = (*FinancialReportUseCase)(nil)

// NewFinancialReportUseCase builds the reporter. cache and exporter may be
// nil; reports are then always computed and Export is unavailable.
func NewFinancialReportUseCase(
	bills interfaces.IBillRepository,
	jobCards interfaces.IJobCardRepository,
	cache interfaces.IReportCache,
	exporter interfaces.IReportExporter,
	cacheTTL time.Duration,
) *FinancialReportUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultReportCacheTTL
	}
	return &FinancialReportUseCase{bills: bills, jobCards: jobCards, cache: cache, exporter: exporter, cacheTTL: cacheTTL}
}

func (u *FinancialReportUseCase) Report(ctx context.Context, actor entities.Actor, garageID, startDate, endDate string) (entities.FinancialReport, error) {
	garageID = strings.TrimSpace(garageID)
	log.Printf("[report][usecase] report start garage_id=%s start=%q end=%q", garageID, startDate, endDate)
	if garageID == "" {
		return entities.FinancialReport{}, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return entities.FinancialReport{}, ErrForbidden
	}
	period, err := parseReportPeriod(startDate, endDate)
	if err != nil {
		return entities.FinancialReport{}, err
	}

	variant := strings.TrimSpace(startDate) + "|" + strings.TrimSpace(endDate)
	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, garageID, variant)
		if err != nil {
			log.Printf("[report][usecase] cache read failed garage_id=%s err=%v", garageID, err)
		} else if ok {
			log.Printf("[report][usecase] cache hit garage_id=%s", garageID)
			return cached, nil
		}
	}

	bills, err := u.bills.ListByGarage(ctx, garageID, period)
	if err != nil {
		log.Printf("[report][usecase] loading bills failed garage_id=%s err=%v", garageID, err)
		return entities.FinancialReport{}, err
	}

	jobCards := map[string]entities.JobCard{}
	if ids := linkedJobCardIDs(bills); len(ids) > 0 {
		found, err := u.jobCards.GetByIDs(ctx, ids)
		if err != nil {
			// Only display fields and the completed count depend on the join.
			log.Printf("[report][usecase] loading job cards failed garage_id=%s err=%v", garageID, err)
		} else {
			jobCards = found
		}
	}

	report := BuildFinancialReport(garageID, period, bills, jobCards, time.Now().UTC())

	if u.cache != nil {
		if err := u.cache.Set(ctx, garageID, variant, report, u.cacheTTL); err != nil {
			log.Printf("[report][usecase] cache write failed garage_id=%s err=%v", garageID, err)
		}
	}
	log.Printf("[report][usecase] report success garage_id=%s bills=%d revenue=%.2f", garageID, report.Summary.TotalBills, report.Summary.TotalRevenue)
	return report, nil
}

func (u *FinancialReportUseCase) Export(ctx context.Context, actor entities.Actor, garageID, startDate, endDate string) ([]byte, error) {
	if u.exporter == nil {
		return nil, errors.New("report exporter not configured")
	}
	report, err := u.Report(ctx, actor, garageID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return u.exporter.Export(report)
}

// parseReportPeriod reads YYYY-MM-DD bounds. The end date covers the whole
// day up to 23:59:59.999 UTC.
func parseReportPeriod(startDate, endDate string) (entities.ReportPeriod, error) {
	var p entities.ReportPeriod
	if s := strings.TrimSpace(startDate); s != "" {
		t, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return p, ErrInvalidReportDate
		}
		p.Start = &t
	}
	if s := strings.TrimSpace(endDate); s != "" {
		t, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return p, ErrInvalidReportDate
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		p.End = &end
	}
	if p.Start != nil && p.End != nil && p.Start.After(*p.End) {
		return p, ErrInvalidReportPeriod
	}
	return p, nil
}

func linkedJobCardIDs(bills []entities.Bill) []string {
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(bills))
	for _, b := range bills {
		if b.JobCardID == "" {
			continue
		}
		if _, ok := seen[b.JobCardID]; ok {
			continue
		}
		seen[b.JobCardID] = struct{}{}
		ids = append(ids, b.JobCardID)
	}
	return ids
}

type monthTotals struct {
	revenue, partsCost, laborCost decimal.Decimal
	jobs                          int
}

func (m monthTotals) stats(month string) entities.MonthlyStats {
	return entities.MonthlyStats{
		Month:     month,
		Revenue:   money(m.revenue),
		Jobs:      m.jobs,
		PartsCost: money(m.partsCost),
		LaborCost: money(m.laborCost),
	}
}

// BuildFinancialReport aggregates bills that already fall inside the period.
// A bill whose job card is missing from jobCards counts as not completed and
// shows "N/A" for customer and car.
func BuildFinancialReport(garageID string, period entities.ReportPeriod, bills []entities.Bill, jobCards map[string]entities.JobCard, now time.Time) entities.FinancialReport {
	var (
		revenue, partsCost, laborCost = decimal.Zero, decimal.Zero, decimal.Zero
		gst, discount                 = decimal.Zero, decimal.Zero
		gstRevenue, nonGSTRevenue     = decimal.Zero, decimal.Zero
		completed, pending            int
	)
	months := map[string]*monthTotals{}

	for _, b := range bills {
		final := decimal.NewFromFloat(b.FinalAmount)
		parts := decimal.NewFromFloat(b.TotalPartsCost)
		labor := decimal.NewFromFloat(b.TotalLaborCost)

		revenue = revenue.Add(final)
		partsCost = partsCost.Add(parts)
		laborCost = laborCost.Add(labor)
		gst = gst.Add(decimal.NewFromFloat(b.GST))
		discount = discount.Add(decimal.NewFromFloat(b.Discount))

		if b.BillType == entities.BillTypeGST {
			gstRevenue = gstRevenue.Add(final)
		} else {
			nonGSTRevenue = nonGSTRevenue.Add(final)
		}

		key := b.CreatedAt.UTC().Format(reportMonthLayout)
		m, ok := months[key]
		if !ok {
			m = &monthTotals{revenue: decimal.Zero, partsCost: decimal.Zero, laborCost: decimal.Zero}
			months[key] = m
		}
		m.revenue = m.revenue.Add(final)
		m.partsCost = m.partsCost.Add(parts)
		m.laborCost = m.laborCost.Add(labor)
		m.jobs++

		if jc, ok := jobCards[b.JobCardID]; ok && jc.Status == entities.JobStatusCompleted {
			completed++
		} else {
			pending++
		}
	}

	gross := revenue.Sub(partsCost.Add(laborCost))
	net := gross.Sub(discount)

	monthly := make([]entities.MonthlyStats, 0, len(months))
	for key, m := range months {
		monthly = append(monthly, m.stats(key))
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	currentKey := now.UTC().Format(reportMonthLayout)
	current := entities.MonthlyStats{Month: currentKey}
	if m, ok := months[currentKey]; ok {
		current = m.stats(currentKey)
	}

	return entities.FinancialReport{
		GarageID: garageID,
		Period:   period,
		Summary: entities.ReportSummary{
			TotalBills:     len(bills),
			TotalRevenue:   money(revenue),
			TotalPartsCost: money(partsCost),
			TotalLaborCost: money(laborCost),
			TotalGST:       money(gst),
			TotalDiscount:  money(discount),
			GrossProfit:    money(gross),
			NetProfit:      money(net),
			CompletedJobs:  completed,
			PendingJobs:    pending,
		},
		BillTypeBreakdown: entities.BillTypeBreakdown{
			GST:    money(gstRevenue),
			NonGST: money(nonGSTRevenue),
		},
		MonthlyBreakdown: monthly,
		CurrentMonth:     current,
		RecentBills:      recentBills(bills, jobCards),
		GeneratedAt:      now,
	}
}

func recentBills(bills []entities.Bill, jobCards map[string]entities.JobCard) []entities.RecentBill {
	sorted := append([]entities.Bill(nil), bills...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > recentBillsLimit {
		sorted = sorted[:recentBillsLimit]
	}

	out := make([]entities.RecentBill, 0, len(sorted))
	for _, b := range sorted {
		customer, car := reportNotAvailable, reportNotAvailable
		if jc, ok := jobCards[b.JobCardID]; ok {
			if jc.CustomerName != "" {
				customer = jc.CustomerName
			}
			if jc.CarNumber != "" {
				car = jc.CarNumber
			}
		}
		out = append(out, entities.RecentBill{
			InvoiceNo:    b.DisplayInvoiceNo(),
			JobID:        b.JobID,
			CustomerName: customer,
			CarNumber:    car,
			Amount:       money(decimal.NewFromFloat(b.FinalAmount)),
			CreatedAt:    b.CreatedAt,
			BillType:     b.BillType,
		})
	}
	return out
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

package billing

import (
	"strings"

	"garage_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultGSTPercentage applies when a bill request omits the rate.
const DefaultGSTPercentage = 18

// BillPartInput is a part charged at billing time.
type BillPartInput struct {
	PartName     string  `json:"part_name"`
	PartNumber   string  `json:"part_number"`
	HSNNumber    string  `json:"hsn_number"`
	Quantity     *Number `json:"quantity" validate:"required"`
	SellingPrice *Number `json:"selling_price" validate:"required"`
}

// BillServiceInput is a labour/service charge at billing time.
type BillServiceInput struct {
	Description string  `json:"description"`
	LaborCost   *Number `json:"labor_cost" validate:"required"`
}

// BillTotals is the cost breakdown stored on a bill. Every amount is kept at
// 2 decimals.
type BillTotals struct {
	Parts          []entities.BillPartLine
	Services       []entities.BillServiceLine
	TotalPartsCost float64
	TotalLaborCost float64
	SubTotal       float64
	GST            float64
	GSTPercentage  float64
	Discount       float64
	FinalAmount    float64
	HSNCode        string
}

// ComputeBillTotals validates the billing lines and computes the totals:
//
//	subTotal    = Σ(quantity × sellingPrice) + Σ(laborCost)
//	gst         = round2(subTotal × gstPercentage / 100), gst bills only
//	finalAmount = subTotal + gst − discount
//
// Non-GST bills carry gst 0 and gstPercentage 0. The discount is a flat
// amount and finalAmount is not clamped at zero. The HSN code comes from the
// first part line only.
func ComputeBillTotals(
	billType entities.BillType,
	parts []BillPartInput,
	services []BillServiceInput,
	gstPercentage float64,
	discount float64,
) (BillTotals, error) {
	if !billType.Valid() {
		return BillTotals{}, entities.NewValidationError("bill_type", "must be one of: gst non-gst")
	}
	for i := range parts {
		if err := validateItem("parts", i, parts[i]); err != nil {
			return BillTotals{}, err
		}
	}
	for i := range services {
		if err := validateItem("services", i, services[i]); err != nil {
			return BillTotals{}, err
		}
	}

	partsCost := decimal.Zero
	partLines := make([]entities.BillPartLine, 0, len(parts))
	for _, p := range parts {
		line := p.Quantity.Decimal().Mul(p.SellingPrice.Decimal())
		partsCost = partsCost.Add(line)
		partLines = append(partLines, entities.BillPartLine{
			PartName:     strings.TrimSpace(p.PartName),
			PartNumber:   strings.TrimSpace(p.PartNumber),
			HSNNumber:    strings.TrimSpace(p.HSNNumber),
			Quantity:     p.Quantity.Float64(),
			SellingPrice: round2(p.SellingPrice.Decimal()),
			Total:        round2(line),
		})
	}

	laborCost := decimal.Zero
	serviceLines := make([]entities.BillServiceLine, 0, len(services))
	for _, s := range services {
		laborCost = laborCost.Add(s.LaborCost.Decimal())
		serviceLines = append(serviceLines, entities.BillServiceLine{
			Description: strings.TrimSpace(s.Description),
			LaborCost:   round2(s.LaborCost.Decimal()),
		})
	}

	subTotal := partsCost.Add(laborCost)
	gst := decimal.Zero
	pct := decimal.NewFromFloat(gstPercentage)
	if billType == entities.BillTypeGST {
		gst = percentOf(subTotal, pct).Round(2)
	} else {
		pct = decimal.Zero
	}
	disc := decimal.NewFromFloat(discount)
	final := subTotal.Add(gst).Sub(disc)

	hsn := ""
	if len(partLines) > 0 {
		hsn = partLines[0].HSNNumber
	}

	return BillTotals{
		Parts:          partLines,
		Services:       serviceLines,
		TotalPartsCost: round2(partsCost),
		TotalLaborCost: round2(laborCost),
		SubTotal:       round2(subTotal),
		GST:            round2(gst),
		GSTPercentage:  pct.InexactFloat64(),
		Discount:       round2(disc),
		FinalAmount:    round2(final),
		HSNCode:        hsn,
	}, nil
}

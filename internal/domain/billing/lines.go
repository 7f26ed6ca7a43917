package billing

import (
	"strings"

	"garage_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PartInput is a job card part line as submitted by a client.
type PartInput struct {
	PartName      string  `json:"part_name" validate:"required"`
	PartNumber    string  `json:"part_number"`
	Quantity      *Number `json:"quantity" validate:"required"`
	PricePerPiece *Number `json:"price_per_piece" validate:"required"`
	TotalPrice    *Number `json:"total_price"`
	TaxAmount     *Number `json:"tax_amount"`
	TaxPercentage *Number `json:"tax_percentage"`
	HSNNumber     string  `json:"hsn_number"`
	HSNCode       string  `json:"hsn_code"`
	IGST          *Number `json:"igst"`
	CGSTSGST      *Number `json:"cgst_sgst"`
}

// LabourInput is a labour/service charge as submitted by a client.
type LabourInput struct {
	LabourCost  *Number     `json:"labour_cost" validate:"required"`
	LabourTax   *Number     `json:"labour_tax"`
	LabourType  string      `json:"labour_type" validate:"required"`
	LabourNotes string      `json:"labour_notes"`
	Parts       []PartInput `json:"parts" validate:"dive"`
}

// NormalizePartLines validates every line first and only then builds the
// normalized records, so one bad line rejects the whole batch.
func NormalizePartLines(field string, in []PartInput) ([]entities.PartLine, error) {
	for i := range in {
		if err := validateItem(field, i, in[i]); err != nil {
			return nil, err
		}
	}
	out := make([]entities.PartLine, 0, len(in))
	for _, p := range in {
		out = append(out, normalizePart(p))
	}
	return out, nil
}

// NormalizeLabourServices validates and normalizes labour lines including
// their nested parts.
func NormalizeLabourServices(field string, in []LabourInput) ([]entities.LabourService, error) {
	for i := range in {
		if err := validateItem(field, i, in[i]); err != nil {
			return nil, err
		}
	}
	out := make([]entities.LabourService, 0, len(in))
	for _, l := range in {
		parts := make([]entities.PartLine, 0, len(l.Parts))
		for _, p := range l.Parts {
			parts = append(parts, normalizePart(p))
		}
		out = append(out, entities.LabourService{
			LabourCost:  round2(l.LabourCost.Decimal()),
			LabourTax:   round2(l.LabourTax.Decimal()),
			LabourType:  strings.TrimSpace(l.LabourType),
			LabourNotes: l.LabourNotes,
			Parts:       parts,
		})
	}
	return out, nil
}

func normalizePart(p PartInput) entities.PartLine {
	qty := p.Quantity.Decimal()
	price := p.PricePerPiece.Decimal()

	total := qty.Mul(price)
	if p.TotalPrice != nil {
		total = p.TotalPrice.Decimal()
	}

	pct := p.TaxPercentage.Decimal()
	var tax decimal.Decimal
	if p.TaxAmount != nil {
		tax = p.TaxAmount.Decimal()
	} else {
		tax = percentOf(total, pct)
	}

	hsn := strings.TrimSpace(p.HSNNumber)
	if hsn == "" {
		hsn = strings.TrimSpace(p.HSNCode)
	}

	return entities.PartLine{
		PartName:      strings.TrimSpace(p.PartName),
		PartNumber:    strings.TrimSpace(p.PartNumber),
		Quantity:      qty.InexactFloat64(),
		PricePerPiece: round2(price),
		TotalPrice:    round2(total),
		TaxAmount:     round2(tax),
		TaxPercentage: pct.InexactFloat64(),
		HSNNumber:     hsn,
		IGST:          round2(p.IGST.Decimal()),
		CGSTSGST:      round2(p.CGSTSGST.Decimal()),
	}
}

// SumLabour returns the labour total and labour tax total of the lines.
func SumLabour(lines []entities.LabourService) (total, tax float64) {
	t, x := decimal.Zero, decimal.Zero
	for _, l := range lines {
		t = t.Add(decimal.NewFromFloat(l.LabourCost))
		x = x.Add(decimal.NewFromFloat(l.LabourTax))
	}
	return round2(t), round2(x)
}

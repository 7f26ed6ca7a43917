package response

import (
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type PartLineResponse struct {
	PartName      string        `json:"part_name"`
	PartNumber    string        `json:"part_number"`
	Quantity      float64       `json:"quantity"`
	PricePerPiece billing.Money `json:"price_per_piece"`
	TotalPrice    billing.Money `json:"total_price"`
	TaxAmount     billing.Money `json:"tax_amount"`
	TaxPercentage float64       `json:"tax_percentage"`
	HSNNumber     string        `json:"hsn_number"`
	IGST          billing.Money `json:"igst"`
	CGSTSGST      billing.Money `json:"cgst_sgst"`
}

type LabourServiceResponse struct {
	LabourCost  billing.Money      `json:"labour_cost"`
	LabourTax   billing.Money      `json:"labour_tax"`
	LabourType  string             `json:"labour_type"`
	LabourNotes string             `json:"labour_notes"`
	Parts       []PartLineResponse `json:"parts"`
}

// JobCardResponse flattens the intake details like the stored record does.
// ExcessAmount shadows the embedded float so it renders as money.
type JobCardResponse struct {
	ID            string `json:"id"`
	GarageID      string `json:"garage_id"`
	JobCardNumber int64  `json:"job_card_number"`
	JobID         string `json:"job_id"`
	entities.JobCardDetails
	ExcessAmount       billing.Money           `json:"excess_amount"`
	Status             entities.JobStatus      `json:"status"`
	EngineerIDs        []string                `json:"engineer_ids"`
	CreatedBy          entities.Creator        `json:"created_by"`
	GenerateBill       bool                    `json:"generate_bill"`
	PartsUsed          []PartLineResponse      `json:"parts_used"`
	LaborHours         float64                 `json:"labor_hours"`
	LaborServicesTotal billing.Money           `json:"labor_services_total"`
	LaborServicesTax   billing.Money           `json:"labor_services_tax"`
	LabourServiceCost  []LabourServiceResponse `json:"labour_service_cost"`
	EngineerRemarks    string                  `json:"engineer_remarks"`
	QualityCheck       *entities.QualityCheck  `json:"quality_check,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

func FromJobCard(j entities.JobCard) JobCardResponse {
	services := make([]LabourServiceResponse, 0, len(j.LabourServiceCost))
	for _, s := range j.LabourServiceCost {
		services = append(services, LabourServiceResponse{
			LabourCost:  billing.NewMoney(s.LabourCost),
			LabourTax:   billing.NewMoney(s.LabourTax),
			LabourType:  s.LabourType,
			LabourNotes: s.LabourNotes,
			Parts:       fromPartLines(s.Parts),
		})
	}
	engineers := j.EngineerIDs
	if engineers == nil {
		engineers = []string{}
	}

	return JobCardResponse{
		ID:                 j.ID,
		GarageID:           j.GarageID,
		JobCardNumber:      j.JobCardNumber,
		JobID:              j.JobID,
		JobCardDetails:     j.JobCardDetails,
		ExcessAmount:       billing.NewMoney(j.ExcessAmount),
		Status:             j.Status,
		EngineerIDs:        engineers,
		CreatedBy:          j.CreatedBy,
		GenerateBill:       j.GenerateBill,
		PartsUsed:          fromPartLines(j.PartsUsed),
		LaborHours:         j.LaborHours,
		LaborServicesTotal: billing.NewMoney(j.LaborServicesTotal),
		LaborServicesTax:   billing.NewMoney(j.LaborServicesTax),
		LabourServiceCost:  services,
		EngineerRemarks:    j.EngineerRemarks,
		QualityCheck:       j.QualityCheck,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func fromPartLines(in []entities.PartLine) []PartLineResponse {
	out := make([]PartLineResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PartLineResponse{
			PartName:      p.PartName,
			PartNumber:    p.PartNumber,
			Quantity:      p.Quantity,
			PricePerPiece: billing.NewMoney(p.PricePerPiece),
			TotalPrice:    billing.NewMoney(p.TotalPrice),
			TaxAmount:     billing.NewMoney(p.TaxAmount),
			TaxPercentage: p.TaxPercentage,
			HSNNumber:     p.HSNNumber,
			IGST:          billing.NewMoney(p.IGST),
			CGSTSGST:      billing.NewMoney(p.CGSTSGST),
		})
	}
	return out
}

type JobCardEnvelope struct {
	Message string          `json:"message"`
	JobCard JobCardResponse `json:"job_card"`
}

func NewJobCardEnvelope(message string, j entities.JobCard) JobCardEnvelope {
	return JobCardEnvelope{Message: message, JobCard: FromJobCard(j)}
}

// JobCards never renders as null.
func JobCards(in []entities.JobCard) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(in))
	for _, j := range in {
		out = append(out, FromJobCard(j))
	}
	return out
}

func Engineers(in []entities.Engineer) []entities.Engineer {
	if in == nil {
		return []entities.Engineer{}
	}
	return in
}

type InventoryPartResponse struct {
	ID            string        `json:"id"`
	GarageID      string        `json:"garage_id"`
	CarName       string        `json:"car_name"`
	Model         string        `json:"model"`
	PartNumber    string        `json:"part_number"`
	PartName      string        `json:"part_name"`
	Quantity      float64       `json:"quantity"`
	PurchasePrice billing.Money `json:"purchase_price"`
	SellingPrice  billing.Money `json:"selling_price"`
	TaxAmount     billing.Money `json:"tax_amount"`
	HSNNumber     string        `json:"hsn_number"`
	IGST          billing.Money `json:"igst"`
	CGSTSGST      billing.Money `json:"cgst_sgst"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func FromInventoryPart(p entities.InventoryPart) InventoryPartResponse {
	return InventoryPartResponse{
		ID:            p.ID,
		GarageID:      p.GarageID,
		CarName:       p.CarName,
		Model:         p.Model,
		PartNumber:    p.PartNumber,
		PartName:      p.PartName,
		Quantity:      p.Quantity,
		PurchasePrice: billing.NewMoney(p.PurchasePrice),
		SellingPrice:  billing.NewMoney(p.SellingPrice),
		TaxAmount:     billing.NewMoney(p.TaxAmount),
		HSNNumber:     p.HSNNumber,
		IGST:          billing.NewMoney(p.IGST),
		CGSTSGST:      billing.NewMoney(p.CGSTSGST),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func InventoryParts(in []entities.InventoryPart) []InventoryPartResponse {
	out := make([]InventoryPartResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromInventoryPart(p))
	}
	return out
}

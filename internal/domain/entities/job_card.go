package entities

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus is the operator-facing state of a job card. Any status may move
// to any other through an explicit update.
type JobStatus string

const (
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusPending    JobStatus = "Pending"
	JobStatusCancelled  JobStatus = "Cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusInProgress, JobStatusCompleted, JobStatusPending, JobStatusCancelled:
		return true
	}
	return false
}

// PartLine is a normalized part consumed by a job, with its tax resolved.
type PartLine struct {
	PartName      string  `json:"part_name"`
	PartNumber    string  `json:"part_number"`
	Quantity      float64 `json:"quantity"`
	PricePerPiece float64 `json:"price_per_piece"`
	TotalPrice    float64 `json:"total_price"`
	TaxAmount     float64 `json:"tax_amount"`
	TaxPercentage float64 `json:"tax_percentage"`
	HSNNumber     string  `json:"hsn_number"`
	IGST          float64 `json:"igst"`
	CGSTSGST      float64 `json:"cgst_sgst"`
}

// LabourService is a labour/service charge, optionally with its own parts.
type LabourService struct {
	LabourCost  float64    `json:"labour_cost"`
	LabourTax   float64    `json:"labour_tax"`
	LabourType  string     `json:"labour_type"`
	LabourNotes string     `json:"labour_notes"`
	Parts       []PartLine `json:"parts"`
}

// QualityCheck is the one-time engineer sign-off.
type QualityCheck struct {
	Notes        string    `json:"notes"`
	Date         time.Time `json:"date"`
	DoneBy       []string  `json:"done_by"`
	BillApproved bool      `json:"bill_approved"`
}

// JobCardDetails holds the customer and vehicle fields captured at intake.
type JobCardDetails struct {
	CustomerNumber     string     `json:"customer_number"`
	CustomerName       string     `json:"customer_name"`
	ContactNumber      string     `json:"contact_number"`
	Email              string     `json:"email"`
	Company            string     `json:"company"`
	CarNumber          string     `json:"car_number"`
	Model              string     `json:"model"`
	Kilometer          float64    `json:"kilometer"`
	FuelType           string     `json:"fuel_type"`
	FuelLevel          string     `json:"fuel_level"`
	InsuranceProvider  string     `json:"insurance_provider"`
	PolicyNumber       string     `json:"policy_number"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty"`
	RegistrationNumber string     `json:"registration_number"`
	Type               string     `json:"type"`
	JobDetails         string     `json:"job_details"`
	ExcessAmount       float64    `json:"excess_amount"`
	GSTApplicable      bool       `json:"gst_applicable"`
	Images             []string   `json:"images"`
	Video              string     `json:"video"`
}

// JobCard is a single vehicle service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (garage_id-index): garage_id, job_card_number (sort)
//   - GSI2 (job_id-index): job_id
//
// (garage_id, job_card_number) is unique; the number is allocated by the
// sequence allocator and never reused.
type JobCard struct {
	ID            string `json:"id"`
	GarageID      string `json:"garage_id"`
	JobCardNumber int64  `json:"job_card_number"`
	JobID         string `json:"job_id"`
	JobCardDetails
	Status             JobStatus       `json:"status"`
	EngineerIDs        []string        `json:"engineer_ids"`
	CreatedBy          Creator         `json:"created_by"`
	GenerateBill       bool            `json:"generate_bill"`
	PartsUsed          []PartLine      `json:"parts_used"`
	LaborHours         float64         `json:"labor_hours"`
	LaborServicesTotal float64         `json:"labor_services_total"`
	LaborServicesTax   float64         `json:"labor_services_tax"`
	LabourServiceCost  []LabourService `json:"labour_service_cost"`
	EngineerRemarks    string          `json:"engineer_remarks"`
	QualityCheck       *QualityCheck   `json:"quality_check,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// JobIDFor builds the customer-facing job id from the garage and the
// allocated job card number. It is unique within the garage because the
// number is; lookups by job id are always scoped to a garage.
func JobIDFor(garageID string, number int64) string {
	code := strings.ToUpper(strings.ReplaceAll(garageID, "-", ""))
	if len(code) > 6 {
		code = code[:6]
	}
	if code == "" {
		return fmt.Sprintf("JC-%d", number)
	}
	return fmt.Sprintf("JC-%s-%d", code, number)
}

func (j JobCard) HasEngineers() bool {
	return len(j.EngineerIDs) > 0
}

func (j JobCard) QualityCheckDone() bool {
	return j.QualityCheck != nil && len(j.QualityCheck.DoneBy) > 0
}

// JobCardPatch lists the fields a partial update writes. Nil fields are left
// untouched in storage.
type JobCardPatch struct {
	Details            *JobCardDetails
	Status             *JobStatus
	EngineerIDs        *[]string
	GenerateBill       *bool
	PartsUsed          *[]PartLine
	LaborHours         *float64
	LabourServiceCost  *[]LabourService
	LaborServicesTotal *float64
	LaborServicesTax   *float64
	EngineerRemarks    *string
}

func (p JobCardPatch) IsEmpty() bool {
	return p.Details == nil && p.Status == nil && p.EngineerIDs == nil && p.GenerateBill == nil &&
		p.PartsUsed == nil && p.LaborHours == nil && p.LabourServiceCost == nil &&
		p.LaborServicesTotal == nil && p.LaborServicesTax == nil && p.EngineerRemarks == nil
}

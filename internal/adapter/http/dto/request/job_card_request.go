package request

import (
	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

// CreateJobCardRequest carries the intake form. The garage is taken from the
// caller's token when garage_id is empty.
type CreateJobCardRequest struct {
	GarageID string `json:"garage_id"`
	entities.JobCardDetails
}

func (r CreateJobCardRequest) ToInput() usecase.CreateJobCardInput {
	return usecase.CreateJobCardInput{GarageID: r.GarageID, Details: r.JobCardDetails}
}

type AssignEngineersRequest struct {
	EngineerIDs []string `json:"engineer_ids"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WorkProgressRequest is a partial update; absent fields keep their value.
// Numeric fields accept numbers or numeric strings.
type WorkProgressRequest struct {
	PartsUsed         *[]billing.PartInput   `json:"parts_used"`
	LaborHours        *billing.Number        `json:"labor_hours"`
	EngineerRemarks   *string                `json:"engineer_remarks"`
	Status            *string                `json:"status"`
	LabourServiceCost *[]billing.LabourInput `json:"labour_service_cost"`
}

func (r WorkProgressRequest) ToInput() usecase.WorkProgressInput {
	in := usecase.WorkProgressInput{
		PartsUsed:         r.PartsUsed,
		EngineerRemarks:   r.EngineerRemarks,
		Status:            r.Status,
		LabourServiceCost: r.LabourServiceCost,
	}
	if r.LaborHours != nil {
		h := r.LaborHours.Float64()
		in.LaborHours = &h
	}
	return in
}

type QualityCheckRequest struct {
	Notes string `json:"notes"`
}

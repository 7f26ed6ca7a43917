package request

import "garage_manager/internal/usecase"

type CreateEngineerRequest struct {
	GarageID string `json:"garage_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r CreateEngineerRequest) ToInput() usecase.CreateEngineerInput {
	return usecase.CreateEngineerInput{GarageID: r.GarageID, Name: r.Name, Email: r.Email, Phone: r.Phone}
}

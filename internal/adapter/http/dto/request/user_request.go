package request

import "garage_manager/internal/usecase"

type CreateUserRequest struct {
	GarageID    string   `json:"garage_id"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Password    string   `json:"password" binding:"required"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		GarageID:    r.GarageID,
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Permissions: r.Permissions,
	}
}

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePermissionsRequest replaces the whole permission list. An empty list
// clears it.
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateEngineerInput struct {
	GarageID string
	Name     string
	Email    string
	Phone    string
}

type IEngineerUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateEngineerInput) (entities.Engineer, error)
	ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.Engineer, error)
}

type EngineerUseCase struct {
	repo    interfaces.IEngineerRepository
	garages interfaces.IGarageRepository
}

var _ IEngineerUseCase = (*EngineerUseCase)(nil)

func NewEngineerUseCase(repo interfaces.IEngineerRepository, garages interfaces.IGarageRepository) *EngineerUseCase {
	return &EngineerUseCase{repo: repo, garages: garages}
}

func (u *EngineerUseCase) Create(ctx context.Context, actor entities.Actor, in CreateEngineerInput) (entities.Engineer, error) {
	garageID := strings.TrimSpace(in.GarageID)
	if garageID == "" {
		garageID = actor.GarageID
	}
	if garageID == "" {
		return entities.Engineer{}, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return entities.Engineer{}, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Engineer{}, entities.NewValidationError("name", "is required")
	}

	garage, err := u.garages.GetByID(ctx, garageID)
	if err != nil {
		return entities.Engineer{}, err
	}
	if garage.ID == "" {
		return entities.Engineer{}, ErrGarageNotFound
	}

	now := time.Now().UTC()
	e := entities.Engineer{
		ID:        uuid.NewString(),
		GarageID:  garageID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[engineer][usecase] create failed garage_id=%s err=%v", garageID, err)
		return entities.Engineer{}, err
	}
	log.Printf("[engineer][usecase] create success id=%s garage_id=%s", created.ID, garageID)
	return created, nil
}

func (u *EngineerUseCase) ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.Engineer, error) {
	garageID = strings.TrimSpace(garageID)
	if garageID == "" {
		return nil, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByGarage(ctx, garageID)
}

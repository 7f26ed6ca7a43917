package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrPartNotFound = errors.New("part not found")

type AddPartInput struct {
	GarageID      string
	CarName       string
	Model         string
	PartNumber    string
	PartName      string
	Quantity      *float64
	PurchasePrice *float64
	SellingPrice  *float64
	TaxAmount     float64
	HSNNumber     string
	IGST          float64
	CGSTSGST      float64
}

type IInventoryUseCase interface {
	AddPart(ctx context.Context, actor entities.Actor, in AddPartInput) (entities.InventoryPart, error)
	ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.InventoryPart, error)
	UpdatePart(ctx context.Context, actor entities.Actor, id string, patch entities.InventoryPartPatch) (entities.InventoryPart, error)
	DeletePart(ctx context.Context, actor entities.Actor, id string) error
}

type InventoryUseCase struct {
	repo    interfaces.IInventoryRepository
	garages interfaces.IGarageRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, garages interfaces.IGarageRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, garages: garages}
}

func (u *InventoryUseCase) AddPart(ctx context.Context, actor entities.Actor, in AddPartInput) (entities.InventoryPart, error) {
	garageID := strings.TrimSpace(in.GarageID)
	if garageID == "" {
		garageID = actor.GarageID
	}
	if garageID == "" {
		return entities.InventoryPart{}, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return entities.InventoryPart{}, ErrForbidden
	}
	if err := validateAddPart(in); err != nil {
		return entities.InventoryPart{}, err
	}

	garage, err := u.garages.GetByID(ctx, garageID)
	if err != nil {
		return entities.InventoryPart{}, err
	}
	if garage.ID == "" {
		return entities.InventoryPart{}, ErrGarageNotFound
	}

	now := time.Now().UTC()
	p := entities.InventoryPart{
		ID:            uuid.NewString(),
		GarageID:      garageID,
		CarName:       strings.TrimSpace(in.CarName),
		Model:         strings.TrimSpace(in.Model),
		PartNumber:    strings.TrimSpace(in.PartNumber),
		PartName:      strings.TrimSpace(in.PartName),
		Quantity:      *in.Quantity,
		PurchasePrice: *in.PurchasePrice,
		SellingPrice:  *in.SellingPrice,
		TaxAmount:     in.TaxAmount,
		HSNNumber:     strings.TrimSpace(in.HSNNumber),
		IGST:          in.IGST,
		CGSTSGST:      in.CGSTSGST,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[inventory][usecase] add failed garage_id=%s err=%v", garageID, err)
		return entities.InventoryPart{}, err
	}
	log.Printf("[inventory][usecase] add success id=%s garage_id=%s part_number=%s", created.ID, garageID, created.PartNumber)
	return created, nil
}

func (u *InventoryUseCase) ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.InventoryPart, error) {
	garageID = strings.TrimSpace(garageID)
	if garageID == "" {
		return nil, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByGarage(ctx, garageID)
}

func (u *InventoryUseCase) UpdatePart(ctx context.Context, actor entities.Actor, id string, patch entities.InventoryPartPatch) (entities.InventoryPart, error) {
	if _, err := u.load(ctx, actor, id); err != nil {
		return entities.InventoryPart{}, err
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return entities.InventoryPart{}, entities.NewValidationError("quantity", "must be greater than or equal to 0")
	}
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.InventoryPart{}, err
	}
	if updated.ID == "" {
		return entities.InventoryPart{}, ErrPartNotFound
	}
	return updated, nil
}

func (u *InventoryUseCase) DeletePart(ctx context.Context, actor entities.Actor, id string) error {
	if _, err := u.load(ctx, actor, id); err != nil {
		return err
	}
	log.Printf("[inventory][usecase] delete id=%s", id)
	return u.repo.Delete(ctx, id)
}

func (u *InventoryUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.InventoryPart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryPart{}, ErrPartNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryPart{}, err
	}
	if p.ID == "" {
		return entities.InventoryPart{}, ErrPartNotFound
	}
	if !actor.CanAccessGarage(p.GarageID) {
		return entities.InventoryPart{}, ErrForbidden
	}
	return p, nil
}

func validateAddPart(in AddPartInput) error {
	for _, r := range []struct {
		field string
		value string
	}{
		{"car_name", in.CarName},
		{"model", in.Model},
		{"part_number", in.PartNumber},
		{"part_name", in.PartName},
		{"hsn_number", in.HSNNumber},
	} {
		if strings.TrimSpace(r.value) == "" {
			return entities.NewValidationError(r.field, "is required")
		}
	}
	for _, r := range []struct {
		field string
		value *float64
	}{
		{"quantity", in.Quantity},
		{"purchase_price", in.PurchasePrice},
		{"selling_price", in.SellingPrice},
	} {
		if r.value == nil {
			return entities.NewValidationError(r.field, "is required")
		}
		if *r.value < 0 {
			return entities.NewValidationError(r.field, "must be greater than or equal to 0")
		}
	}
	return nil
}

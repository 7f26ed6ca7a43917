package usecase

import (
	"context"
	"errors"
	"testing"

	"garage_manager/internal/domain/entities"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func ptrFloat(v float64) *float64 { return &v }

func validPart() AddPartInput {
	return AddPartInput{
		CarName:       "Maruti",
		Model:         "Swift",
		PartNumber:    "BP-01",
		PartName:      "Brake Pad",
		Quantity:      ptrFloat(10),
		PurchasePrice: ptrFloat(300),
		SellingPrice:  ptrFloat(450),
		HSNNumber:     "8708",
	}
}

func TestInventoryUseCase_AddPart(t *testing.T) {
	t.Run("required fields", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)

		in := validPart()
		in.HSNNumber = ""
		_, err := uc.AddPart(context.Background(), garageActor, in)
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "hsn_number" {
			t.Fatalf("expected hsn_number validation error, got %v", err)
		}

		in = validPart()
		in.SellingPrice = nil
		_, err = uc.AddPart(context.Background(), garageActor, in)
		if !errors.As(err, &verr) || verr.Field != "selling_price" {
			t.Fatalf("expected selling_price validation error, got %v", err)
		}

		in = validPart()
		in.Quantity = ptrFloat(-1)
		if _, err := uc.AddPart(context.Background(), garageActor, in); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		in := validPart()
		in.GarageID = "g1"
		if _, err := uc.AddPart(context.Background(), otherActor, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		garages := mock_interfaces.NewMockIGarageRepository(ctrl)
		uc := NewInventoryUseCase(repo, garages)

		garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{ID: "g1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InventoryPart) (entities.InventoryPart, error) {
				if p.ID == "" || p.GarageID != "g1" || p.Quantity != 10 || p.SellingPrice != 450 {
					t.Fatalf("unexpected part: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.AddPart(context.Background(), garageActor, validPart()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInventoryUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.InventoryPart{}, nil)

		if _, err := uc.UpdatePart(context.Background(), garageActor, "p1", entities.InventoryPartPatch{}); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("other garage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.InventoryPart{ID: "p1", GarageID: "g1"}, nil)

		if err := uc.DeletePart(context.Background(), otherActor, "p1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("update quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		qty := 4.0
		patch := entities.InventoryPartPatch{Quantity: &qty}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.InventoryPart{ID: "p1", GarageID: "g1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "p1", patch).Return(entities.InventoryPart{ID: "p1", GarageID: "g1", Quantity: 4}, nil)

		p, err := uc.UpdatePart(context.Background(), garageActor, "p1", patch)
		if err != nil || p.Quantity != 4 {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.InventoryPart{ID: "p1", GarageID: "g1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.DeletePart(context.Background(), garageActor, "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

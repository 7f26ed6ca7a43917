package usecase

import (
	"context"
	"errors"
	"testing"

	"garage_manager/internal/domain/entities"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEngineerUseCase_Create(t *testing.T) {
	t.Run("other garage forbidden", func(t *testing.T) {
		uc := NewEngineerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), otherActor, CreateEngineerInput{GarageID: "g1", Name: "Ravi"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc := NewEngineerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), garageActor, CreateEngineerInput{Name: " "})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("garage not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngineerRepository(ctrl)
		garages := mock_interfaces.NewMockIGarageRepository(ctrl)
		uc := NewEngineerUseCase(repo, garages)

		garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{}, nil)

		_, err := uc.Create(context.Background(), garageActor, CreateEngineerInput{Name: "Ravi"})
		if !errors.Is(err, ErrGarageNotFound) {
			t.Fatalf("expected ErrGarageNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngineerRepository(ctrl)
		garages := mock_interfaces.NewMockIGarageRepository(ctrl)
		uc := NewEngineerUseCase(repo, garages)

		garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{ID: "g1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engineer) (entities.Engineer, error) {
				if e.ID == "" || e.GarageID != "g1" || e.Name != "Ravi" || e.Email != "ravi@x.com" {
					t.Fatalf("unexpected engineer: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), garageActor, CreateEngineerInput{Name: " Ravi ", Email: "Ravi@X.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEngineerUseCase_ListByGarage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEngineerRepository(ctrl)
	uc := NewEngineerUseCase(repo, nil)

	repo.EXPECT().ListByGarage(gomock.Any(), "g1").Return([]entities.Engineer{{ID: "e1"}}, nil)

	list, err := uc.ListByGarage(context.Background(), garageActor, "g1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result: %+v %v", list, err)
	}
	if _, err := uc.ListByGarage(context.Background(), otherActor, "g1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

package handlers

import (
	"net/http"
	"testing"

	"garage_manager/internal/adapter/http/handlers/mocks"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/inventory", withActor(testGarageActor), h.AddPart)

		uc.EXPECT().AddPart(gomock.Any(), testGarageActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.AddPartInput) (entities.InventoryPart, error) {
				if in.Quantity == nil || *in.Quantity != 4 || in.SellingPrice == nil || *in.SellingPrice != 250 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.InventoryPart{ID: "p1", GarageID: "g1", Quantity: 4}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/inventory", `{"part_name":"Filter","quantity":"4","purchase_price":200,"selling_price":250,"hsn_number":"8421"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add part validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/inventory", withActor(testGarageActor), h.AddPart)

		uc.EXPECT().AddPart(gomock.Any(), testGarageActor, gomock.Any()).Return(entities.InventoryPart{}, entities.NewValidationError("hsn_number", "is required"))

		w := doRequest(r, http.MethodPost, "/v1/inventory", `{"part_name":"Filter"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/inventory/:garage_id", withActor(testGarageActor), h.ListParts)

		uc.EXPECT().ListByGarage(gomock.Any(), testGarageActor, "g1").Return([]entities.InventoryPart{{ID: "p1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/inventory/g1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update missing part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.PUT("/v1/inventory/part/:part_id", withActor(testGarageActor), h.UpdatePart)

		uc.EXPECT().UpdatePart(gomock.Any(), testGarageActor, "p9", gomock.Any()).Return(entities.InventoryPart{}, usecase.ErrPartNotFound)

		w := doRequest(r, http.MethodPut, "/v1/inventory/part/p9", `{"quantity":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/inventory/part/:part_id", withActor(testGarageActor), h.DeletePart)

		uc.EXPECT().DeletePart(gomock.Any(), testGarageActor, "p1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/inventory/part/p1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEngineerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.POST("/v1/engineers", withActor(testGarageActor), h.CreateEngineer)

		uc.EXPECT().Create(gomock.Any(), testGarageActor, usecase.CreateEngineerInput{Name: "Ravi", Email: "r@x.com"}).
			Return(entities.Engineer{ID: "e1", GarageID: "g1", Name: "Ravi"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/engineers", `{"name":"Ravi","email":"r@x.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create for missing garage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.POST("/v1/engineers", withActor(testAdminActor), h.CreateEngineer)

		uc.EXPECT().Create(gomock.Any(), testAdminActor, gomock.Any()).Return(entities.Engineer{}, usecase.ErrGarageNotFound)

		w := doRequest(r, http.MethodPost, "/v1/engineers", `{"garage_id":"gx","name":"Ravi"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.GET("/v1/engineers/garage/:garage_id", withActor(testGarageActor), h.ListEngineers)

		uc.EXPECT().ListByGarage(gomock.Any(), testGarageActor, "g1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/engineers/garage/g1", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

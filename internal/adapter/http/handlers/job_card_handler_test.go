package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"garage_manager/internal/adapter/http/handlers/mocks"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
	"garage_manager/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobCardHandler_CreateJobCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards", h.CreateJobCard)

		w := doRequest(r, http.MethodPost, "/v1/jobcards", `{"customer_name":"Asha"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards", withActor(testGarageActor), h.CreateJobCard)

		w := doRequest(r, http.MethodPost, "/v1/jobcards", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards", withActor(testGarageActor), h.CreateJobCard)

		uc.EXPECT().Create(gomock.Any(), testGarageActor, gomock.Any()).Return(entities.JobCard{}, entities.NewValidationError("car_number", "is required"))

		w := doRequest(r, http.MethodPost, "/v1/jobcards", `{"customer_name":"Asha"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards", withActor(testGarageActor), h.CreateJobCard)

		uc.EXPECT().Create(gomock.Any(), testGarageActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.CreateJobCardInput) (entities.JobCard, error) {
				if in.Details.CustomerName != "Asha" || in.Details.CarNumber != "KA01" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.JobCard{ID: "jc-1", GarageID: "g1", JobCardNumber: 1, JobID: "JC-1", Status: entities.JobStatusPending}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/jobcards", `{"customer_name":"Asha","car_number":"KA01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			JobCard entities.JobCard `json:"job_card"`
		}
		decodeBody(t, w, &body)
		if body.JobCard.JobCardNumber != 1 || body.JobCard.Status != entities.JobStatusPending {
			t.Fatalf("unexpected job card: %+v", body.JobCard)
		}
	})
}

func TestJobCardHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list returns empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.GET("/v1/jobcards/garage/:garage_id", withActor(testGarageActor), h.ListJobCards)

		uc.EXPECT().ListByGarage(gomock.Any(), testGarageActor, "g1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/jobcards/garage/g1", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.GET("/v1/jobcards/:job_card_id", withActor(testGarageActor), h.GetJobCard)

		uc.EXPECT().Get(gomock.Any(), testGarageActor, "missing").Return(entities.JobCard{}, usecase.ErrJobCardNotFound)

		w := doRequest(r, http.MethodGet, "/v1/jobcards/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id", withActor(testGarageActor), h.UpdateJobCard)

		uc.EXPECT().UpdateDetails(gomock.Any(), testGarageActor, "jc-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, _ string, d entities.JobCardDetails) (entities.JobCard, error) {
				if d.Model != "Swift" {
					t.Fatalf("unexpected details: %+v", d)
				}
				return entities.JobCard{ID: "jc-1", JobCardDetails: d}, nil
			},
		)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1", `{"model":"Swift"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobcards/:job_card_id", withActor(testGarageActor), h.DeleteJobCard)

		uc.EXPECT().Delete(gomock.Any(), testGarageActor, "jc-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/jobcards/jc-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("assign engineers from another garage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/engineers", withActor(testGarageActor), h.AssignEngineers)

		uc.EXPECT().AssignEngineers(gomock.Any(), testGarageActor, "jc-1", []string{"e1", "e9"}).Return(entities.JobCard{}, usecase.ErrEngineerNotInGarage)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/engineers", `{"engineer_ids":["e1","e9"]}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("status requires a value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobcards/:job_card_id/status", withActor(testGarageActor), h.UpdateStatus)

		w := doRequest(r, http.MethodPatch, "/v1/jobcards/jc-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobcards/:job_card_id/status", withActor(testGarageActor), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testGarageActor, "jc-1", "Completed").Return(entities.JobCard{ID: "jc-1", Status: entities.JobStatusCompleted}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/jobcards/jc-1/status", `{"status":"Completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("work progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/work", withActor(testGarageActor), h.LogWorkProgress)

		uc.EXPECT().LogWorkProgress(gomock.Any(), testGarageActor, "jc-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, _ string, in usecase.WorkProgressInput) (entities.JobCard, error) {
				if in.LaborHours == nil || *in.LaborHours != 3 {
					t.Fatalf("unexpected labor hours: %+v", in.LaborHours)
				}
				if in.LabourServiceCost == nil || len(*in.LabourServiceCost) != 1 {
					t.Fatalf("unexpected labour: %+v", in.LabourServiceCost)
				}
				return entities.JobCard{ID: "jc-1", LaborHours: 3, LaborServicesTotal: 500}, nil
			},
		)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/work", `{"labor_hours":"3","labour_service_cost":[{"labour_type":"Wash","labour_cost":"500"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("work progress bad number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/work", withActor(testGarageActor), h.LogWorkProgress)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/work", `{"labor_hours":"three"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Code != "VALIDATION_ERROR" || !strings.Contains(body.Message, "labor_hours") {
			t.Fatalf("unexpected error body: %+v", body)
		}

		w = doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/work", `{"parts_used":[{"part_name":"Pad","quantity":"abc","price_per_piece":10}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		decodeBody(t, w, &body)
		if body.Code != "VALIDATION_ERROR" || body.Message != "parts_used.quantity: must be a number" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("second quality check conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/quality-check", withActor(testGarageActor), h.QualityCheck)

		uc.EXPECT().QualityCheck(gomock.Any(), testGarageActor, "jc-1", "").Return(entities.JobCard{}, usecase.ErrQualityCheckAlreadyDone)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/quality-check", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("quality check with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/quality-check", withActor(testGarageActor), h.QualityCheck)

		qc := &entities.QualityCheck{Notes: "ok", Date: time.Now().UTC(), DoneBy: []string{"e1"}, BillApproved: true}
		uc.EXPECT().QualityCheck(gomock.Any(), testGarageActor, "jc-1", "ok").Return(entities.JobCard{ID: "jc-1", QualityCheck: qc}, nil)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/quality-check", `{"notes":"ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark for billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobCardUseCase(ctrl)
		h := NewJobCardHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobcards/:job_card_id/generate-bill", withActor(testGarageActor), h.MarkForBilling)

		uc.EXPECT().MarkForBilling(gomock.Any(), testGarageActor, "jc-1").Return(entities.JobCard{ID: "jc-1", GenerateBill: true}, nil)

		w := doRequest(r, http.MethodPut, "/v1/jobcards/jc-1/generate-bill", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			JobCard entities.JobCard `json:"job_card"`
		}
		decodeBody(t, w, &body)
		if !body.JobCard.GenerateBill {
			t.Fatalf("expected generate_bill=true")
		}
	})
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type planMocks struct {
	plans   *mock_interfaces.MockIPlanRepository
	garages *mock_interfaces.MockIGarageRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

var planNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newPlanUseCaseWithMocks(ctrl *gomock.Controller) (*PlanUseCase, planMocks) {
	m := planMocks{
		plans:   mock_interfaces.NewMockIPlanRepository(ctrl),
		garages: mock_interfaces.NewMockIGarageRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPlanUseCase(m.plans, m.garages, m.gateway)
	uc.now = func() time.Time { return planNow }
	return uc, m
}

var halfYear = entities.Plan{ID: "p6", Name: "Half year", DurationInMonths: 6, Amount: 2999}

func lapsedGarage() entities.Garage {
	return entities.Garage{
		ID:              "g1",
		Email:           "owner@speedy.in",
		IsSubscribed:    true,
		SubscriptionEnd: planNow.Add(-24 * time.Hour),
	}
}

func returnGarage(_ context.Context, g entities.Garage) (entities.Garage, error) {
	return g, nil
}

func TestPlanUseCase_CRUD(t *testing.T) {
	t.Run("only admins manage plans", func(t *testing.T) {
		uc := NewPlanUseCase(nil, nil, nil)
		in := PlanInput{Name: "Yearly", DurationInMonths: 12, Amount: 100}
		if _, err := uc.Create(context.Background(), garageActor, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := uc.Update(context.Background(), staffActor, "p1", in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if err := uc.Delete(context.Background(), garageActor, "p1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validations", func(t *testing.T) {
		uc := NewPlanUseCase(nil, nil, nil)
		cases := []struct {
			in   PlanInput
			want error
		}{
			{PlanInput{DurationInMonths: 1}, entities.ErrValidation},
			{PlanInput{Name: "x"}, ErrInvalidSubscriptionDuration},
			{PlanInput{Name: "x", DurationInMonths: 1, Amount: -1}, ErrInvalidSubscriptionAmount},
		}
		for _, tc := range cases {
			if _, err := uc.Create(context.Background(), adminActor, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("%+v: expected %v, got %v", tc.in, tc.want, err)
			}
		}
	})

	t.Run("create cleans features", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.plans.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) {
				if p.ID == "" || p.Name != "Yearly" || !p.CreatedAt.Equal(planNow) {
					t.Fatalf("unexpected plan: %+v", p)
				}
				if len(p.Features) != 2 || p.Features[0] != "billing" || p.Features[1] != "reports" {
					t.Fatalf("unexpected features: %v", p.Features)
				}
				return p, nil
			},
		)

		_, err := uc.Create(context.Background(), adminActor, PlanInput{
			Name:             " Yearly ",
			DurationInMonths: 12,
			Amount:           4999,
			Features:         []string{"billing", " ", "reports", "billing"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get missing plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.plans.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Plan{}, nil)

		if _, err := uc.Get(context.Background(), "nope"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("update keeps id and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		created := planNow.Add(-time.Hour)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(entities.Plan{ID: "p6", Name: "Old", DurationInMonths: 6, CreatedAt: created}, nil)
		m.plans.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) {
				if p.ID != "p6" || p.Name != "New" || p.Amount != 10 || !p.CreatedAt.Equal(created) || !p.UpdatedAt.Equal(planNow) {
					t.Fatalf("unexpected plan: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), adminActor, "p6", PlanInput{Name: "New", DurationInMonths: 6, Amount: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
		m.plans.EXPECT().Delete(gomock.Any(), "p6").Return(nil)

		if err := uc.Delete(context.Background(), adminActor, "p6"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlanUseCase_RenewSubscription(t *testing.T) {
	renew := RenewSubscriptionInput{GarageID: "g1", PlanID: "p6", Payment: json.RawMessage(`{}`)}

	t.Run("active subscription is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		g := lapsedGarage()
		g.SubscriptionEnd = planNow.Add(time.Hour)
		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(g, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)

		if _, err := uc.RenewSubscription(context.Background(), renew); !errors.Is(err, ErrSubscriptionStillActive) {
			t.Fatalf("expected ErrSubscriptionStillActive, got %v", err)
		}
	})

	t.Run("free plan cannot be renewed through the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsedGarage(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "free").Return(entities.Plan{ID: "free", DurationInMonths: 1}, nil)

		in := renew
		in.PlanID = "free"
		if _, err := uc.RenewSubscription(context.Background(), in); !errors.Is(err, ErrInvalidSubscriptionAmount) {
			t.Fatalf("expected ErrInvalidSubscriptionAmount, got %v", err)
		}
	})

	t.Run("unknown plan and garage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{}, nil)
		if _, err := uc.RenewSubscription(context.Background(), renew); !errors.Is(err, ErrGarageNotFound) {
			t.Fatalf("expected ErrGarageNotFound, got %v", err)
		}

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsedGarage(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(entities.Plan{}, nil)
		if _, err := uc.RenewSubscription(context.Background(), renew); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("approved payment starts a new period", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsedGarage(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				_ = json.Unmarshal(payload, &body)
				if body["transaction_amount"] != 2999.0 || body["external_reference"] != "owner@speedy.in" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return "mp-9", "approved", nil, nil
			},
		)
		m.garages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnGarage)

		res, err := uc.RenewSubscription(context.Background(), renew)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g := res.Garage
		if !res.Completed || res.Status != entities.PaymentStatusPaid {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !g.SubscriptionStart.Equal(planNow) || !g.SubscriptionEnd.Equal(planNow.AddDate(0, 6, 0)) || g.SubscriptionType != "6_months" {
			t.Fatalf("unexpected subscription: %+v", g)
		}
		if g.PaymentDetails.PaymentID != "mp-9" || g.PaymentDetails.PlanID != "p6" || g.PaymentDetails.Amount != 2999 {
			t.Fatalf("unexpected payment: %+v", g.PaymentDetails)
		}
	})

	t.Run("pending payment is stored without extending", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		lapsed := lapsedGarage()
		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsed, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-10", "in_process", nil, nil)
		m.garages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnGarage)

		res, err := uc.RenewSubscription(context.Background(), renew)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Completed || res.Status != "in_process" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !res.Garage.SubscriptionEnd.Equal(lapsed.SubscriptionEnd) {
			t.Fatalf("pending renewal must not extend the subscription")
		}
		if pd := res.Garage.PaymentDetails; pd.PaymentID != "mp-10" || pd.PlanID != "p6" || pd.Status != "in_process" {
			t.Fatalf("unexpected payment: %+v", pd)
		}
	})

	t.Run("rejected payment", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsedGarage(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-11", "rejected", nil, nil)

		if _, err := uc.RenewSubscription(context.Background(), renew); !errors.Is(err, ErrSubscriptionPaymentRejected) {
			t.Fatalf("expected ErrSubscriptionPaymentRejected, got %v", err)
		}
	})

	t.Run("no gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		garages := mock_interfaces.NewMockIGarageRepository(ctrl)
		uc := NewPlanUseCase(plans, garages, nil)
		uc.now = func() time.Time { return planNow }

		garages.EXPECT().GetByID(gomock.Any(), "g1").Return(lapsedGarage(), nil)
		plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)

		if _, err := uc.RenewSubscription(context.Background(), renew); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPlanUseCase_CompleteRenewal(t *testing.T) {
	pending := func() entities.Garage {
		g := lapsedGarage()
		g.PaymentDetails = entities.PaymentDetails{PaymentID: "mp-10", Amount: 2999, Method: entities.PaymentMethodMercadoPago, Status: "pending", PlanID: "p6"}
		return g
	}

	t.Run("unknown payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(pending(), nil)

		if _, err := uc.CompleteRenewal(context.Background(), "g1", "mp-other"); !errors.Is(err, ErrRenewalNotFound) {
			t.Fatalf("expected ErrRenewalNotFound, got %v", err)
		}
	})

	t.Run("approved by provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(pending(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "mp-10").Return("approved", nil, nil)
		m.garages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnGarage)

		res, err := uc.CompleteRenewal(context.Background(), "g1", " mp-10 ")
		if err != nil || !res.Completed {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if !res.Garage.SubscriptionEnd.Equal(planNow.AddDate(0, 6, 0)) || res.Garage.PaymentDetails.Status != entities.PaymentStatusPaid {
			t.Fatalf("unexpected garage: %+v", res.Garage)
		}
	})

	t.Run("already applied is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		g := pending()
		g.PaymentDetails.Status = entities.PaymentStatusPaid
		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(g, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)

		res, err := uc.CompleteRenewal(context.Background(), "g1", "mp-10")
		if err != nil || !res.Completed {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("still pending and rejected", func(t *testing.T) {
		for status, want := range map[string]error{
			"pending":    ErrRenewalPaymentPending,
			"in_process": ErrRenewalPaymentPending,
			"rejected":   ErrSubscriptionPaymentRejected,
		} {
			ctrl := gomock.NewController(t)
			uc, m := newPlanUseCaseWithMocks(ctrl)

			m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(pending(), nil)
			m.plans.EXPECT().GetByID(gomock.Any(), "p6").Return(halfYear, nil)
			m.gateway.EXPECT().GetPayment(gomock.Any(), "mp-10").Return(status, nil, nil)

			if _, err := uc.CompleteRenewal(context.Background(), "g1", "mp-10"); !errors.Is(err, want) {
				t.Fatalf("status %s: expected %v, got %v", status, want, err)
			}
			ctrl.Finish()
		}
	})
}

func TestPlanUseCase_SubscriptionStatus(t *testing.T) {
	t.Run("foreign garage", func(t *testing.T) {
		uc := NewPlanUseCase(nil, nil, nil)
		if _, err := uc.SubscriptionStatus(context.Background(), otherActor, "g1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("days left", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPlanUseCaseWithMocks(ctrl)

		g := lapsedGarage()
		g.SubscriptionEnd = planNow.Add(10 * 24 * time.Hour)
		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(g, nil)

		s, err := uc.SubscriptionStatus(context.Background(), staffActor, "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.IsExpired || s.DaysUntilExpiry == nil || *s.DaysUntilExpiry != 10 {
			t.Fatalf("unexpected status: %+v", s)
		}
	})
}

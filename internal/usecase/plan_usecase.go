package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound            = errors.New("plan not found")
	ErrSubscriptionStillActive = errors.New("subscription still active")
	ErrRenewalNotFound         = errors.New("no pending renewal for payment")
	ErrRenewalPaymentPending   = errors.New("renewal payment still pending")
)

type PlanInput struct {
	Name             string
	DurationInMonths int
	Amount           float64
	Features         []string
	SubscriptionType string
}

type RenewSubscriptionInput struct {
	GarageID string
	PlanID   string
	Payment  json.RawMessage
}

// RenewalResult reports a renewal attempt. Completed is false while the
// provider still has the payment pending; the garage keeps its old period
// until CompleteRenewal settles it.
type RenewalResult struct {
	Garage    entities.Garage
	Plan      entities.Plan
	PaymentID string
	Status    string
	Completed bool
}

type IPlanUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in PlanInput) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
	Get(ctx context.Context, id string) (entities.Plan, error)
	Update(ctx context.Context, actor entities.Actor, id string, in PlanInput) (entities.Plan, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	RenewSubscription(ctx context.Context, in RenewSubscriptionInput) (RenewalResult, error)
	CompleteRenewal(ctx context.Context, garageID, paymentID string) (RenewalResult, error)
	SubscriptionStatus(ctx context.Context, actor entities.Actor, garageID string) (entities.SubscriptionStatus, error)
}

type PlanUseCase struct {
	plans   interfaces.IPlanRepository
	garages interfaces.IGarageRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(plans interfaces.IPlanRepository, garages interfaces.IGarageRepository, gateway interfaces.IPaymentGateway) *PlanUseCase {
	return &PlanUseCase{plans: plans, garages: garages, gateway: gateway, now: time.Now}
}

func (u *PlanUseCase) Create(ctx context.Context, actor entities.Actor, in PlanInput) (entities.Plan, error) {
	if !actor.IsAdmin() {
		return entities.Plan{}, ErrForbidden
	}
	if err := validatePlan(in); err != nil {
		return entities.Plan{}, err
	}
	now := u.now().UTC()
	p := entities.Plan{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPlanInput(&p, in)

	created, err := u.plans.Create(ctx, p)
	if err != nil {
		log.Printf("[plan][usecase] create failed name=%s err=%v", p.Name, err)
		return entities.Plan{}, err
	}
	log.Printf("[plan][usecase] created id=%s months=%d amount=%.2f", created.ID, created.DurationInMonths, created.Amount)
	return created, nil
}

func (u *PlanUseCase) List(ctx context.Context) ([]entities.Plan, error) {
	return u.plans.List(ctx)
}

func (u *PlanUseCase) Get(ctx context.Context, id string) (entities.Plan, error) {
	return u.loadPlan(ctx, id)
}

func (u *PlanUseCase) Update(ctx context.Context, actor entities.Actor, id string, in PlanInput) (entities.Plan, error) {
	if !actor.IsAdmin() {
		return entities.Plan{}, ErrForbidden
	}
	if err := validatePlan(in); err != nil {
		return entities.Plan{}, err
	}
	p, err := u.loadPlan(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	applyPlanInput(&p, in)
	p.UpdatedAt = u.now().UTC()

	updated, err := u.plans.Update(ctx, p)
	if err != nil {
		return entities.Plan{}, err
	}
	if updated.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	log.Printf("[plan][usecase] updated id=%s", updated.ID)
	return updated, nil
}

func (u *PlanUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	p, err := u.loadPlan(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("[plan][usecase] delete id=%s admin=%s", p.ID, actor.ID)
	return u.plans.Delete(ctx, p.ID)
}

// RenewSubscription charges the plan amount through the payment gateway. An
// approved payment starts a new period right away. A pending one is stored on
// the garage so CompleteRenewal can settle it later.
func (u *PlanUseCase) RenewSubscription(ctx context.Context, in RenewSubscriptionInput) (RenewalResult, error) {
	garageID := strings.TrimSpace(in.GarageID)
	planID := strings.TrimSpace(in.PlanID)
	log.Printf("[plan][usecase] renew start garage_id=%s plan_id=%s", garageID, planID)

	if garageID == "" {
		return RenewalResult{}, entities.NewValidationError("garage_id", "is required")
	}
	if planID == "" {
		return RenewalResult{}, entities.NewValidationError("plan_id", "is required")
	}
	g, err := u.loadGarage(ctx, garageID)
	if err != nil {
		return RenewalResult{}, err
	}
	p, err := u.loadPlan(ctx, planID)
	if err != nil {
		return RenewalResult{}, err
	}
	if p.Amount <= 0 {
		return RenewalResult{}, ErrInvalidSubscriptionAmount
	}
	if g.HasActiveSubscription(u.now().UTC()) {
		log.Printf("[plan][usecase] renew refused, subscription active garage_id=%s end=%s", g.ID, g.SubscriptionEnd.Format(time.RFC3339))
		return RenewalResult{}, ErrSubscriptionStillActive
	}
	if u.gateway == nil {
		return RenewalResult{}, ErrPaymentGatewayNotConfigured
	}

	payload, err := prepareSubscriptionPayment(in.Payment, g.Email, p.DurationInMonths, p.Amount)
	if err != nil {
		return RenewalResult{}, err
	}
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[plan][usecase] renew payment failed garage_id=%s err=%v", g.ID, err)
		return RenewalResult{}, classifyGatewayError(err)
	}
	log.Printf("[plan][usecase] renew payment garage_id=%s payment_id=%s status=%s", g.ID, paymentID, status)

	switch status {
	case "rejected", "cancelled":
		return RenewalResult{}, ErrSubscriptionPaymentRejected
	case "approved":
		return u.applyPlan(ctx, g, p, paymentID)
	}

	g.PaymentDetails = entities.PaymentDetails{
		PaymentID: paymentID,
		Amount:    p.Amount,
		Method:    entities.PaymentMethodMercadoPago,
		Status:    status,
		PlanID:    p.ID,
	}
	g.UpdatedAt = u.now().UTC()
	saved, err := u.saveGarage(ctx, g)
	if err != nil {
		return RenewalResult{}, err
	}
	return RenewalResult{Garage: saved, Plan: p, PaymentID: paymentID, Status: status}, nil
}

// CompleteRenewal settles a pending renewal once the provider approves it.
// Only the payment stored by RenewSubscription is accepted, and completing an
// already applied renewal returns the garage unchanged.
func (u *PlanUseCase) CompleteRenewal(ctx context.Context, garageID, paymentID string) (RenewalResult, error) {
	garageID = strings.TrimSpace(garageID)
	paymentID = strings.TrimSpace(paymentID)
	if garageID == "" {
		return RenewalResult{}, entities.NewValidationError("garage_id", "is required")
	}
	if paymentID == "" {
		return RenewalResult{}, entities.NewValidationError("payment_id", "is required")
	}
	g, err := u.loadGarage(ctx, garageID)
	if err != nil {
		return RenewalResult{}, err
	}
	pd := g.PaymentDetails
	if pd.PaymentID != paymentID || pd.PlanID == "" {
		log.Printf("[plan][usecase] complete unknown payment garage_id=%s payment_id=%s", g.ID, paymentID)
		return RenewalResult{}, ErrRenewalNotFound
	}
	p, err := u.loadPlan(ctx, pd.PlanID)
	if err != nil {
		return RenewalResult{}, err
	}
	if pd.Status == entities.PaymentStatusPaid {
		return RenewalResult{Garage: g, Plan: p, PaymentID: paymentID, Status: pd.Status, Completed: true}, nil
	}
	if u.gateway == nil {
		return RenewalResult{}, ErrPaymentGatewayNotConfigured
	}

	status, _, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[plan][usecase] complete lookup failed garage_id=%s payment_id=%s err=%v", g.ID, paymentID, err)
		return RenewalResult{}, classifyGatewayError(err)
	}
	log.Printf("[plan][usecase] complete garage_id=%s payment_id=%s status=%s", g.ID, paymentID, status)
	switch status {
	case "approved":
		return u.applyPlan(ctx, g, p, paymentID)
	case "rejected", "cancelled":
		return RenewalResult{}, ErrSubscriptionPaymentRejected
	}
	return RenewalResult{}, ErrRenewalPaymentPending
}

func (u *PlanUseCase) SubscriptionStatus(ctx context.Context, actor entities.Actor, garageID string) (entities.SubscriptionStatus, error) {
	garageID = strings.TrimSpace(garageID)
	if !actor.CanAccessGarage(garageID) {
		return entities.SubscriptionStatus{}, ErrForbidden
	}
	g, err := u.loadGarage(ctx, garageID)
	if err != nil {
		return entities.SubscriptionStatus{}, err
	}
	return entities.SubscriptionStatusAt(g, u.now().UTC()), nil
}

// applyPlan starts a new subscription period at the current time.
func (u *PlanUseCase) applyPlan(ctx context.Context, g entities.Garage, p entities.Plan, paymentID string) (RenewalResult, error) {
	now := u.now().UTC()
	g.SubscriptionType = p.Type()
	g.SubscriptionStart = now
	g.SubscriptionEnd = now.AddDate(0, p.DurationInMonths, 0)
	g.IsSubscribed = true
	g.PaymentDetails = entities.PaymentDetails{
		PaymentID: paymentID,
		Amount:    p.Amount,
		Method:    entities.PaymentMethodMercadoPago,
		Status:    entities.PaymentStatusPaid,
		PlanID:    p.ID,
	}
	g.UpdatedAt = now

	saved, err := u.saveGarage(ctx, g)
	if err != nil {
		return RenewalResult{}, err
	}
	log.Printf("[plan][usecase] renewed garage_id=%s plan_id=%s end=%s", saved.ID, p.ID, saved.SubscriptionEnd.Format(time.RFC3339))
	return RenewalResult{Garage: saved, Plan: p, PaymentID: paymentID, Status: entities.PaymentStatusPaid, Completed: true}, nil
}

func (u *PlanUseCase) loadPlan(ctx context.Context, id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	p, err := u.plans.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if p.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *PlanUseCase) loadGarage(ctx context.Context, id string) (entities.Garage, error) {
	g, err := u.garages.GetByID(ctx, id)
	if err != nil {
		return entities.Garage{}, err
	}
	if g.ID == "" {
		return entities.Garage{}, ErrGarageNotFound
	}
	return g, nil
}

func (u *PlanUseCase) saveGarage(ctx context.Context, g entities.Garage) (entities.Garage, error) {
	saved, err := u.garages.Update(ctx, g)
	if err != nil {
		return entities.Garage{}, err
	}
	if saved.ID == "" {
		return entities.Garage{}, ErrGarageNotFound
	}
	return saved, nil
}

func validatePlan(in PlanInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return entities.NewValidationError("name", "is required")
	}
	if in.DurationInMonths <= 0 {
		return ErrInvalidSubscriptionDuration
	}
	if in.Amount < 0 {
		return ErrInvalidSubscriptionAmount
	}
	return nil
}

func applyPlanInput(p *entities.Plan, in PlanInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.DurationInMonths = in.DurationInMonths
	p.Amount = in.Amount
	p.Features = cleanList(in.Features)
	p.SubscriptionType = strings.TrimSpace(in.SubscriptionType)
}

// cleanList trims entries and drops blanks and repeats, keeping order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

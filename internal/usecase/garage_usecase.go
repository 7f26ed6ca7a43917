package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrGarageAlreadyExists         = errors.New("garage already exists")
	ErrInvalidSubscriptionDuration = errors.New("invalid subscription duration")
	ErrInvalidSubscriptionAmount   = errors.New("invalid subscription amount")
	ErrInvalidCredentials          = errors.New("invalid credentials")
	ErrGarageNotVerified           = errors.New("garage not verified")
	ErrGarageNotApproved           = errors.New("garage not approved by admin")
	ErrSubscriptionExpired         = errors.New("subscription expired")
	ErrTokenIssuerNotConfigured    = errors.New("token issuer not configured")
)

const paymentStatusFree = "free"

type RegisterGarageInput struct {
	Name             string
	Address          string
	Phone            string
	Email            string
	Password         string
	GSTNum           string
	PANNum           string
	Logo             string
	DurationInMonths int
	Amount           float64
	IsFreePlan       bool
	Payment          json.RawMessage
	BankDetails      entities.BankDetails
}

type UpdateGarageProfileInput struct {
	Logo        *string
	BankDetails *entities.BankDetails
}

type IGarageUseCase interface {
	Register(ctx context.Context, in RegisterGarageInput) (entities.Garage, string, error)
	Login(ctx context.Context, email, password string) (entities.Garage, string, error)
	Get(ctx context.Context, actor entities.Actor, id string) (entities.Garage, error)
	UpdateProfile(ctx context.Context, actor entities.Actor, id string, in UpdateGarageProfileInput) (entities.Garage, error)
	ListPending(ctx context.Context, actor entities.Actor) ([]entities.Garage, error)
	Approve(ctx context.Context, actor entities.Actor, id string) (entities.Garage, error)
	Reject(ctx context.Context, actor entities.Actor, id string) error
	RemoveExpiredRegistrations(ctx context.Context, olderThan time.Duration) (int, error)
}

type GarageUseCase struct {
	repo    interfaces.IGarageRepository
	gateway interfaces.IPaymentGateway
	tokens  interfaces.ITokenIssuer
}

var _ IGarageUseCase = (*GarageUseCase)(nil)

func NewGarageUseCase(repo interfaces.IGarageRepository, gateway interfaces.IPaymentGateway, tokens interfaces.ITokenIssuer) *GarageUseCase {
	return &GarageUseCase{repo: repo, gateway: gateway, tokens: tokens}
}

func (u *GarageUseCase) Register(ctx context.Context, in RegisterGarageInput) (entities.Garage, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	log.Printf("[garage][usecase] register start email=%s months=%d free=%t", email, in.DurationInMonths, in.IsFreePlan)

	if strings.TrimSpace(in.Name) == "" {
		return entities.Garage{}, "", entities.NewValidationError("name", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Garage{}, "", entities.NewValidationError("email", "is invalid")
	}
	if strings.TrimSpace(in.Password) == "" {
		return entities.Garage{}, "", entities.NewValidationError("password", "is required")
	}
	if in.DurationInMonths <= 0 {
		return entities.Garage{}, "", ErrInvalidSubscriptionDuration
	}
	if !in.IsFreePlan && in.Amount <= 0 {
		return entities.Garage{}, "", ErrInvalidSubscriptionAmount
	}
	if u.tokens == nil {
		return entities.Garage{}, "", ErrTokenIssuerNotConfigured
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Garage{}, "", err
	}
	if existing.ID != "" {
		log.Printf("[garage][usecase] email already registered email=%s", email)
		return entities.Garage{}, "", ErrGarageAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Garage{}, "", err
	}

	payment := entities.PaymentDetails{Amount: 0, Method: entities.PaymentMethodFree, Status: paymentStatusFree}
	if !in.IsFreePlan {
		payment, err = u.chargeSubscription(ctx, in, email)
		if err != nil {
			return entities.Garage{}, "", err
		}
	}

	now := time.Now().UTC()
	g := entities.Garage{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(in.Name),
		Address:           strings.TrimSpace(in.Address),
		Phone:             strings.TrimSpace(in.Phone),
		Email:             email,
		PasswordHash:      string(hash),
		Logo:              strings.TrimSpace(in.Logo),
		GSTNum:            strings.TrimSpace(in.GSTNum),
		PANNum:            strings.TrimSpace(in.PANNum),
		SubscriptionType:  fmt.Sprintf("%d_months", in.DurationInMonths),
		SubscriptionStart: now,
		SubscriptionEnd:   now.AddDate(0, in.DurationInMonths, 0),
		IsSubscribed:      true,
		BankDetails:       in.BankDetails,
		PaymentDetails:    payment,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, g)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Garage{}, "", ErrGarageAlreadyExists
	}
	if err != nil {
		log.Printf("[garage][usecase] create failed email=%s err=%v", email, err)
		return entities.Garage{}, "", err
	}

	token, err := u.tokens.Issue(entities.Actor{Kind: entities.ActorKindGarage, ID: created.ID, GarageID: created.ID})
	if err != nil {
		return entities.Garage{}, "", err
	}
	log.Printf("[garage][usecase] register success id=%s payment_method=%s", created.ID, payment.Method)
	return created, token, nil
}

func (u *GarageUseCase) chargeSubscription(ctx context.Context, in RegisterGarageInput, email string) (entities.PaymentDetails, error) {
	if u.gateway == nil {
		log.Printf("[garage][usecase] gateway not configured email=%s", email)
		return entities.PaymentDetails{}, ErrPaymentGatewayNotConfigured
	}
	payload, err := prepareSubscriptionPayment(in.Payment, email, in.DurationInMonths, in.Amount)
	if err != nil {
		return entities.PaymentDetails{}, err
	}

	log.Printf("[garage][usecase] calling payment gateway email=%s amount=%.2f", email, in.Amount)
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[garage][usecase] payment gateway failed email=%s err=%v", email, err)
		return entities.PaymentDetails{}, classifyGatewayError(err)
	}
	if status == "rejected" || status == "cancelled" {
		log.Printf("[garage][usecase] payment not approved email=%s payment_id=%s status=%s", email, paymentID, status)
		return entities.PaymentDetails{}, ErrSubscriptionPaymentRejected
	}
	log.Printf("[garage][usecase] payment gateway success email=%s payment_id=%s status=%s", email, paymentID, status)
	return entities.PaymentDetails{
		PaymentID: paymentID,
		Amount:    in.Amount,
		Method:    entities.PaymentMethodMercadoPago,
		Status:    status,
	}, nil
}

func (u *GarageUseCase) Login(ctx context.Context, email, password string) (entities.Garage, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.Garage{}, "", ErrInvalidCredentials
	}
	g, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Garage{}, "", err
	}
	if g.ID == "" {
		return entities.Garage{}, "", ErrGarageNotFound
	}
	if !g.IsVerified {
		return entities.Garage{}, "", ErrGarageNotVerified
	}
	if !g.Approved {
		return entities.Garage{}, "", ErrGarageNotApproved
	}
	if !g.SubscriptionEnd.IsZero() && time.Now().UTC().After(g.SubscriptionEnd) {
		return entities.Garage{}, "", ErrSubscriptionExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte(password)); err != nil {
		log.Printf("[garage][usecase] login password mismatch id=%s", g.ID)
		return entities.Garage{}, "", ErrInvalidCredentials
	}
	if u.tokens == nil {
		return entities.Garage{}, "", ErrTokenIssuerNotConfigured
	}
	token, err := u.tokens.Issue(entities.Actor{Kind: entities.ActorKindGarage, ID: g.ID, GarageID: g.ID})
	if err != nil {
		return entities.Garage{}, "", err
	}
	return g, token, nil
}

func (u *GarageUseCase) Get(ctx context.Context, actor entities.Actor, id string) (entities.Garage, error) {
	id = strings.TrimSpace(id)
	if !actor.CanAccessGarage(id) {
		return entities.Garage{}, ErrForbidden
	}
	return u.load(ctx, id)
}

// UpdateProfile edits the garage logo and bank details. Bills keep the copy
// taken when they were generated.
func (u *GarageUseCase) UpdateProfile(ctx context.Context, actor entities.Actor, id string, in UpdateGarageProfileInput) (entities.Garage, error) {
	id = strings.TrimSpace(id)
	if !actor.CanAccessGarage(id) {
		return entities.Garage{}, ErrForbidden
	}
	if in.Logo == nil && in.BankDetails == nil {
		return entities.Garage{}, ErrNothingToUpdate
	}
	g, err := u.load(ctx, id)
	if err != nil {
		return entities.Garage{}, err
	}
	if in.Logo != nil {
		g.Logo = strings.TrimSpace(*in.Logo)
	}
	if in.BankDetails != nil {
		g.BankDetails = *in.BankDetails
	}
	g.UpdatedAt = time.Now().UTC()
	log.Printf("[garage][usecase] profile update id=%s", id)
	return u.save(ctx, g)
}

func (u *GarageUseCase) ListPending(ctx context.Context, actor entities.Actor) ([]entities.Garage, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return u.repo.ListPending(ctx)
}

func (u *GarageUseCase) Approve(ctx context.Context, actor entities.Actor, id string) (entities.Garage, error) {
	if !actor.IsAdmin() {
		return entities.Garage{}, ErrForbidden
	}
	g, err := u.load(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Garage{}, err
	}
	g.Approved = true
	g.IsVerified = true
	g.UpdatedAt = time.Now().UTC()
	log.Printf("[garage][usecase] approve id=%s admin=%s", g.ID, actor.ID)
	return u.save(ctx, g)
}

func (u *GarageUseCase) Reject(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	g, err := u.load(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	log.Printf("[garage][usecase] reject id=%s admin=%s", g.ID, actor.ID)
	return u.repo.Delete(ctx, g)
}

// RemoveExpiredRegistrations deletes garages that were never approved nor
// verified and were created more than olderThan ago.
func (u *GarageUseCase) RemoveExpiredRegistrations(ctx context.Context, olderThan time.Duration) (int, error) {
	pending, err := u.repo.ListPending(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-olderThan)
	removed := 0
	for _, g := range pending {
		if !g.IsPendingRegistration() || !g.CreatedAt.Before(cutoff) {
			continue
		}
		if err := u.repo.Delete(ctx, g); err != nil {
			log.Printf("[garage][usecase] sweep delete failed id=%s err=%v", g.ID, err)
			return removed, err
		}
		removed++
	}
	if removed > 0 {
		log.Printf("[garage][usecase] sweep removed=%d cutoff=%s", removed, cutoff.Format(time.RFC3339))
	}
	return removed, nil
}

func (u *GarageUseCase) load(ctx context.Context, id string) (entities.Garage, error) {
	if id == "" {
		return entities.Garage{}, ErrGarageNotFound
	}
	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Garage{}, err
	}
	if g.ID == "" {
		return entities.Garage{}, ErrGarageNotFound
	}
	return g, nil
}

func (u *GarageUseCase) save(ctx context.Context, g entities.Garage) (entities.Garage, error) {
	updated, err := u.repo.Update(ctx, g)
	if err != nil {
		return entities.Garage{}, err
	}
	if updated.ID == "" {
		return entities.Garage{}, ErrGarageNotFound
	}
	return updated, nil
}

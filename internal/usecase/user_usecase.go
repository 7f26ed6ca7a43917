package usecase

import (
	"context"
	"errors"
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
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserRole   = errors.New("invalid user role")
)

type CreateUserInput struct {
	// GarageID defaults to the caller's garage.
	GarageID    string
	Name        string
	Email       string
	Password    string
	Role        string
	Permissions []string
}

type IUserUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateUserInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.User, error)
	Me(ctx context.Context, actor entities.Actor) (entities.User, error)
	UpdatePermissions(ctx context.Context, actor entities.Actor, userID string, permissions []string) (entities.User, error)
	Delete(ctx context.Context, actor entities.Actor, userID string) error
}

type UserUseCase struct {
	users   interfaces.IUserRepository
	garages interfaces.IGarageRepository
	tokens  interfaces.ITokenIssuer
	now     func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository, garages interfaces.IGarageRepository, tokens interfaces.ITokenIssuer) *UserUseCase {
	return &UserUseCase{users: users, garages: garages, tokens: tokens, now: time.Now}
}

// Create adds a staff account to a garage. Only the garage account, its
// admin or manager users, and platform admins may do it.
func (u *UserUseCase) Create(ctx context.Context, actor entities.Actor, in CreateUserInput) (entities.User, error) {
	garageID := strings.TrimSpace(in.GarageID)
	if garageID == "" {
		garageID = actor.GarageID
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	log.Printf("[user][usecase] create start garage_id=%s email=%s role=%s", garageID, email, in.Role)

	if garageID == "" {
		return entities.User{}, entities.NewValidationError("garage_id", "is required")
	}
	if !actor.ManagesGarage(garageID) {
		return entities.User{}, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.User{}, entities.NewValidationError("name", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.User{}, entities.NewValidationError("email", "is invalid")
	}
	if strings.TrimSpace(in.Password) == "" {
		return entities.User{}, entities.NewValidationError("password", "is required")
	}
	role := entities.UserRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = entities.UserRoleStaff
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}
	// Managers cannot mint admins.
	if role == entities.UserRoleAdmin && actor.Kind == entities.ActorKindUser && entities.UserRole(actor.Role) == entities.UserRoleManager {
		return entities.User{}, ErrForbidden
	}

	g, err := u.garages.GetByID(ctx, garageID)
	if err != nil {
		return entities.User{}, err
	}
	if g.ID == "" {
		return entities.User{}, ErrGarageNotFound
	}
	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}
	now := u.now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		GarageID:     garageID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  cleanList(in.Permissions),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.users.Create(ctx, user)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Printf("[user][usecase] create failed email=%s err=%v", email, err)
		return entities.User{}, err
	}
	log.Printf("[user][usecase] created id=%s garage_id=%s", created.ID, created.GarageID)
	return created, nil
}

// Login authenticates a staff account. The owning garage must be approved
// and within its subscription, like a garage login.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[user][usecase] login password mismatch id=%s", user.ID)
		return entities.User{}, "", ErrInvalidCredentials
	}

	g, err := u.garages.GetByID(ctx, user.GarageID)
	if err != nil {
		return entities.User{}, "", err
	}
	if g.ID == "" {
		return entities.User{}, "", ErrGarageNotFound
	}
	if !g.Approved {
		return entities.User{}, "", ErrGarageNotApproved
	}
	if !g.SubscriptionEnd.IsZero() && u.now().UTC().After(g.SubscriptionEnd) {
		return entities.User{}, "", ErrSubscriptionExpired
	}
	if u.tokens == nil {
		return entities.User{}, "", ErrTokenIssuerNotConfigured
	}
	token, err := u.tokens.Issue(user.Actor())
	if err != nil {
		return entities.User{}, "", err
	}
	log.Printf("[user][usecase] login id=%s garage_id=%s", user.ID, user.GarageID)
	return user, token, nil
}

func (u *UserUseCase) ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.User, error) {
	garageID = strings.TrimSpace(garageID)
	if !actor.ManagesGarage(garageID) {
		return nil, ErrForbidden
	}
	return u.users.ListByGarage(ctx, garageID)
}

// Me returns the caller's own account, used to read its permissions.
func (u *UserUseCase) Me(ctx context.Context, actor entities.Actor) (entities.User, error) {
	if actor.Kind != entities.ActorKindUser {
		return entities.User{}, ErrUserNotFound
	}
	return u.load(ctx, actor.ID)
}

func (u *UserUseCase) UpdatePermissions(ctx context.Context, actor entities.Actor, userID string, permissions []string) (entities.User, error) {
	user, err := u.load(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if !actor.ManagesGarage(user.GarageID) {
		return entities.User{}, ErrForbidden
	}
	user.Permissions = cleanList(permissions)
	user.UpdatedAt = u.now().UTC()

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	log.Printf("[user][usecase] permissions updated id=%s count=%d", updated.ID, len(updated.Permissions))
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, actor entities.Actor, userID string) error {
	user, err := u.load(ctx, userID)
	if err != nil {
		return err
	}
	if !actor.ManagesGarage(user.GarageID) {
		return ErrForbidden
	}
	log.Printf("[user][usecase] delete id=%s by=%s", user.ID, actor.ID)
	return u.users.Delete(ctx, user)
}

func (u *UserUseCase) load(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	users   *mock_interfaces.MockIUserRepository
	garages *mock_interfaces.MockIGarageRepository
	tokens  *mock_interfaces.MockITokenIssuer
}

func newUserUseCaseWithMocks(ctrl *gomock.Controller) (*UserUseCase, userMocks) {
	m := userMocks{
		users:   mock_interfaces.NewMockIUserRepository(ctrl),
		garages: mock_interfaces.NewMockIGarageRepository(ctrl),
		tokens:  mock_interfaces.NewMockITokenIssuer(ctrl),
	}
	return NewUserUseCase(m.users, m.garages, m.tokens), m
}

var managerActor = entities.Actor{Kind: entities.ActorKindUser, ID: "u7", GarageID: "g1", Role: "manager"}

func deskUser() CreateUserInput {
	return CreateUserInput{
		Name:        "Front Desk",
		Email:       " Desk@Speedy.in ",
		Password:    "s3cret",
		Permissions: []string{"billing", "billing", " job_cards "},
	}
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("staff cannot create users", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		if _, err := uc.Create(context.Background(), staffActor, deskUser()); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("foreign garage", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		in := deskUser()
		in.GarageID = "g2"
		if _, err := uc.Create(context.Background(), garageActor, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validations", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)

		in := deskUser()
		in.Email = "nope"
		if _, err := uc.Create(context.Background(), garageActor, in); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}

		in = deskUser()
		in.Role = "owner"
		if _, err := uc.Create(context.Background(), garageActor, in); !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}

		in = deskUser()
		in.Role = "super-admin"
		if _, err := uc.Create(context.Background(), garageActor, in); !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}

		in = deskUser()
		in.Role = "admin"
		if _, err := uc.Create(context.Background(), managerActor, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{ID: "g1"}, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "desk@speedy.in").Return(entities.User{ID: "u2"}, nil)

		if _, err := uc.Create(context.Background(), garageActor, deskUser()); !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("concurrent duplicate maps to already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{ID: "g1"}, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrConditionFailed)

		if _, err := uc.Create(context.Background(), garageActor, deskUser()); !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("defaults to caller garage and staff role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Garage{ID: "g1"}, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "desk@speedy.in").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.GarageID != "g1" || u.Role != entities.UserRoleStaff || u.Email != "desk@speedy.in" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) != nil {
					t.Fatalf("password not hashed with bcrypt")
				}
				if len(u.Permissions) != 2 || u.Permissions[0] != "billing" || u.Permissions[1] != "job_cards" {
					t.Fatalf("unexpected permissions: %v", u.Permissions)
				}
				return u, nil
			},
		)

		if _, err := uc.Create(context.Background(), managerActor, deskUser()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	user := entities.User{ID: "u1", GarageID: "g1", Email: "desk@speedy.in", PasswordHash: string(hash), Role: entities.UserRoleManager}
	active := entities.Garage{ID: "g1", Approved: true, IsVerified: true, SubscriptionEnd: time.Now().UTC().Add(24 * time.Hour)}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "ghost@speedy.in").Return(entities.User{}, nil)

		if _, _, err := uc.Login(context.Background(), "ghost@speedy.in", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "desk@speedy.in").Return(user, nil)

		if _, _, err := uc.Login(context.Background(), "desk@speedy.in", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	garageCases := []struct {
		name   string
		garage entities.Garage
		want   error
	}{
		{"not approved", func() entities.Garage { g := active; g.Approved = false; return g }(), ErrGarageNotApproved},
		{"expired", func() entities.Garage { g := active; g.SubscriptionEnd = time.Now().Add(-time.Hour); return g }(), ErrSubscriptionExpired},
	}
	for _, tc := range garageCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newUserUseCaseWithMocks(ctrl)

			m.users.EXPECT().GetByEmail(gomock.Any(), "desk@speedy.in").Return(user, nil)
			m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(tc.garage, nil)

			if _, _, err := uc.Login(context.Background(), "desk@speedy.in", "s3cret"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("issues a user token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "desk@speedy.in").Return(user, nil)
		m.garages.EXPECT().GetByID(gomock.Any(), "g1").Return(active, nil)
		m.tokens.EXPECT().Issue(entities.Actor{Kind: entities.ActorKindUser, ID: "u1", GarageID: "g1", Role: "manager"}).Return("jwt", nil)

		got, token, err := uc.Login(context.Background(), " DESK@speedy.in ", "s3cret")
		if err != nil || token != "jwt" || got.ID != "u1" {
			t.Fatalf("unexpected result: %+v %q %v", got, token, err)
		}
	})
}

func TestUserUseCase_Manage(t *testing.T) {
	t.Run("list requires a manager", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		if _, err := uc.ListByGarage(context.Background(), staffActor, "g1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().ListByGarage(gomock.Any(), "g1").Return([]entities.User{{ID: "u1"}}, nil)

		users, err := uc.ListByGarage(context.Background(), garageActor, "g1")
		if err != nil || len(users) != 1 {
			t.Fatalf("unexpected result: %+v %v", users, err)
		}
	})

	t.Run("me needs a user token", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		if _, err := uc.Me(context.Background(), garageActor); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("me", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Permissions: []string{"billing"}}, nil)

		u, err := uc.Me(context.Background(), staffActor)
		if err != nil || len(u.Permissions) != 1 {
			t.Fatalf("unexpected result: %+v %v", u, err)
		}
	})

	t.Run("update permissions of foreign user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "u5").Return(entities.User{ID: "u5", GarageID: "g2"}, nil)

		if _, err := uc.UpdatePermissions(context.Background(), garageActor, "u5", []string{"x"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("update permissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "u5").Return(entities.User{ID: "u5", GarageID: "g1", Permissions: []string{"old"}}, nil)
		m.users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if len(u.Permissions) != 1 || u.Permissions[0] != "inventory" {
					t.Fatalf("unexpected permissions: %v", u.Permissions)
				}
				return u, nil
			},
		)

		if _, err := uc.UpdatePermissions(context.Background(), managerActor, "u5", []string{"inventory", ""}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "u404").Return(entities.User{}, nil)

		if err := uc.Delete(context.Background(), garageActor, "u404"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUserUseCaseWithMocks(ctrl)

		u := entities.User{ID: "u5", GarageID: "g1", Email: "desk@speedy.in"}
		m.users.EXPECT().GetByID(gomock.Any(), "u5").Return(u, nil)
		m.users.EXPECT().Delete(gomock.Any(), u).Return(nil)

		if err := uc.Delete(context.Background(), garageActor, "u5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

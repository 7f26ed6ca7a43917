package handlers

import (
	"net/http"
	"strings"
	"testing"

	"garage_manager/internal/adapter/http/handlers/mocks"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUserRouter(t *testing.T, actor *entities.Actor) (*gin.Engine, *mocks.MockIUserUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.POST("/v1/users/login", h.Login)

	private := r.Group("/v1")
	if actor != nil {
		private.Use(withActor(*actor))
	}
	private.POST("/users", h.CreateUser)
	private.GET("/users/garage/:garage_id", h.ListByGarage)
	private.GET("/users/me/permissions", h.MyPermissions)
	private.PATCH("/users/:user_id/permissions", h.UpdatePermissions)
	private.DELETE("/users/:user_id", h.DeleteUser)
	return r, uc
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		r, _ := newUserRouter(t, nil)
		w := doRequest(r, http.MethodPost, "/v1/users/login", `{"email":"desk@speedy.in"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, uc := newUserRouter(t, nil)
		uc.EXPECT().Login(gomock.Any(), "desk@speedy.in", "nope").Return(entities.User{}, "", usecase.ErrInvalidCredentials)

		w := doRequest(r, http.MethodPost, "/v1/users/login", `{"email":"desk@speedy.in","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success hides hash", func(t *testing.T) {
		r, uc := newUserRouter(t, nil)
		uc.EXPECT().Login(gomock.Any(), "desk@speedy.in", "s3cret").Return(
			entities.User{ID: "u1", GarageID: "g1", Email: "desk@speedy.in", PasswordHash: "$2a$hash", Role: entities.UserRoleStaff}, "jwt", nil)

		w := doRequest(r, http.MethodPost, "/v1/users/login", `{"email":"desk@speedy.in","password":"s3cret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "$2a$hash") {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["token"] != "jwt" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestUserHandler_Manage(t *testing.T) {
	t.Run("create requires actor", func(t *testing.T) {
		r, _ := newUserRouter(t, nil)
		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"a","email":"a@b.in","password":"x"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		r, uc := newUserRouter(t, &testGarageActor)
		uc.EXPECT().Create(gomock.Any(), testGarageActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.CreateUserInput) (entities.User, error) {
				if in.Role != "manager" || len(in.Permissions) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.User{}, usecase.ErrUserAlreadyExists
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"a","email":"a@b.in","password":"x","role":"manager","permissions":["billing"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newUserRouter(t, &testGarageActor)
		uc.EXPECT().Create(gomock.Any(), testGarageActor, gomock.Any()).Return(entities.User{ID: "u1", GarageID: "g1", Role: entities.UserRoleStaff}, nil)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"a","email":"a@b.in","password":"x"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newUserRouter(t, &testGarageActor)
		uc.EXPECT().ListByGarage(gomock.Any(), testGarageActor, "g1").Return([]entities.User{{ID: "u1"}, {ID: "u2"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/users/garage/g1", "")
		var body struct {
			Users []map[string]any `json:"users"`
		}
		decodeBody(t, w, &body)
		if w.Code != http.StatusOK || len(body.Users) != 2 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("my permissions", func(t *testing.T) {
		staff := entities.Actor{Kind: entities.ActorKindUser, ID: "u1", GarageID: "g1", Role: "staff"}
		r, uc := newUserRouter(t, &staff)
		uc.EXPECT().Me(gomock.Any(), staff).Return(entities.User{ID: "u1", Role: entities.UserRoleStaff, Permissions: []string{"billing"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/users/me/permissions", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"permissions":["billing"]`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update permissions rejects non array", func(t *testing.T) {
		r, _ := newUserRouter(t, &testGarageActor)
		w := doRequest(r, http.MethodPatch, "/v1/users/u1/permissions", `{"permissions":"billing"}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "permissions: must be an array") {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update permissions", func(t *testing.T) {
		r, uc := newUserRouter(t, &testGarageActor)
		uc.EXPECT().UpdatePermissions(gomock.Any(), testGarageActor, "u1", []string{"billing", "inventory"}).Return(entities.User{ID: "u1"}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/users/u1/permissions", `{"permissions":["billing","inventory"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := newUserRouter(t, &testGarageActor)
		uc.EXPECT().Delete(gomock.Any(), testGarageActor, "u404").Return(usecase.ErrUserNotFound)

		w := doRequest(r, http.MethodDelete, "/v1/users/u404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

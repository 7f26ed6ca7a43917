package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"garage_manager/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type stubParser struct {
	actor entities.Actor
	err   error
	got   string
}

func (s *stubParser) Parse(token string) (entities.Actor, error) {
	s.got = token
	return s.actor, s.err
}

func newAuthRouter(p ITokenParser, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(p)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, actor.ID)
	})
	r.GET("/private", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header string
		err    error
		want   int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", nil, http.StatusUnauthorized},
		{"too many parts", "Bearer a b", nil, http.StatusUnauthorized},
		{"rejected token", "Bearer bad", errors.New("expired"), http.StatusUnauthorized},
		{"valid token", "Bearer good", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &stubParser{actor: entities.Actor{Kind: entities.ActorKindGarage, ID: "g1", GarageID: "g1"}, err: tc.err}
			r := newAuthRouter(p)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.want == http.StatusOK && (w.Body.String() != "g1" || p.got != "good") {
				t.Fatalf("unexpected body=%q token=%q", w.Body.String(), p.got)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("garage is forbidden", func(t *testing.T) {
		p := &stubParser{actor: entities.Actor{Kind: entities.ActorKindGarage, ID: "g1", GarageID: "g1"}}
		r := newAuthRouter(p, RequireAdmin())

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		p := &stubParser{actor: entities.Actor{Kind: entities.ActorKindAdmin, ID: "root"}}
		r := newAuthRouter(p, RequireAdmin())

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

package middleware

import (
	"log"
	"net/http"
	"strings"

	"garage_manager/internal/domain/entities"
	"garage_manager/pkg"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// ITokenParser resolves a bearer token into the calling actor.
type ITokenParser interface {
	Parse(token string) (entities.Actor, error)
}

var (
	errMissingAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is missing", http.StatusUnauthorized)
	errInvalidAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization format. Expected 'Bearer <token>'", http.StatusUnauthorized)
	errInvalidToken         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errAdminOnly            = pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied: admin only", http.StatusForbidden)
)

// RequireAuth validates the Authorization header and stores the actor in the
// request context.
func RequireAuth(tokens ITokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(errMissingAuthorization.HTTPStatus, errMissingAuthorization.ToHTTPError())
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errInvalidAuthorization.HTTPStatus, errInvalidAuthorization.ToHTTPError())
			return
		}

		actor, err := tokens.Parse(parts[1])
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok || !actor.IsAdmin() {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor is used by tests and internal callers that authenticate by other
// means.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}

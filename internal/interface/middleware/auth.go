package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/domain/repository"
	"github.com/lojinha/catalog-api/pkg/helpers"
	"github.com/lojinha/catalog-api/pkg/response"
)

const ctxUserKey = "currentUser"

// Auth validates the bearer token from the Authorization header, resolves the
// user and attaches its public projection to the request context. All token
// and user failures are 401; a store failure is 500.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			response.AbortError(c, http.StatusUnauthorized, "Token invalid format")
			return
		}

		claims, err := jwt.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				response.AbortError(c, http.StatusUnauthorized, "Token expired")
				return
			}
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.AbortError(c, http.StatusUnauthorized, "User not found")
				return
			}
			response.AbortError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(ctxUserKey, u.Public())
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Auth.
func CurrentUser(c *gin.Context) (entity.PublicUser, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return entity.PublicUser{}, false
	}
	u, ok := v.(entity.PublicUser)
	return u, ok
}

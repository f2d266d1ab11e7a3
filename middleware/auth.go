package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"managehotel/apperrors"
	"managehotel/services"
	"managehotel/utils"
)

// Authenticate validates the bearer token and stores its claims on the
// context for downstream role checks.
func Authenticate(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole allows only callers whose token carries one of the given
// roles. Must run after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("claims")
		if !ok {
			utils.JSONError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		claims, ok := v.(*services.Claims)
		if !ok {
			utils.JSONError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		for _, role := range roles {
			if strings.EqualFold(claims.Role, role) {
				c.Next()
				return
			}
		}
		utils.JSONError(c, apperrors.ErrUnauthorized)
		c.Abort()
	}
}

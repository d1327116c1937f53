package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

const (
	OperatorKey = "operator"
	RoleKey     = "role"
)

type TokenParser interface {
	ParseToken(raw string) (*services.Claims, error)
}

// RequireOperator rejects requests without a valid bearer token and stores
// the operator's username and role on the context.
func RequireOperator(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := tokens.ParseToken(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(OperatorKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "forbidden")
		c.Abort()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autopilot/pkg/utils"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "Role"
)

func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		accountID := claims.AccountID()
		if accountID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Token carries no account")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set(ContextUserID, accountID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

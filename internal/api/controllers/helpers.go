package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autopilot/pkg/middleware"
	"autopilot/pkg/utils"
)

// currentAccountID reads the account set by JWTAuthMiddleware and answers 401 when absent.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid account in token")
		return uuid.Nil, false
	}
	return id, true
}

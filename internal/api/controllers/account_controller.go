package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/models/request_models"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	logger         *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, logger *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account on the free plan
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, account, "Account created successfully")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

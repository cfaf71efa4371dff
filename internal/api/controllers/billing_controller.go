package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopilot/internal/models/request_models"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type BillingController struct {
	billingService services.BillingService
	logger         *zap.Logger
}

func NewBillingController(billingService services.BillingService, logger *zap.Logger) *BillingController {
	return &BillingController{billingService: billingService, logger: logger}
}

// UpgradePlan godoc
// @Summary Apply a plan upgrade
// @Description Sets the account's plan and resets its monthly count. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpgradePlanRequest true "Account and plan"
// @Success 200 {object} response_models.UsageResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/billing/upgrade [post]
func (b *BillingController) UpgradePlan(c *gin.Context) {
	var req request_models.UpgradePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "account_id must be a uuid")
		return
	}

	usage, err := b.billingService.ApplyUpgrade(c.Request.Context(), accountID, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, b.logger, err)
		return
	}

	utils.RespondSuccess(c, usage, "Plan upgraded successfully")
}

package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type UsageController struct {
	planService services.PlanServiceInterface
	logger      *zap.Logger
}

func NewUsageController(planService services.PlanServiceInterface, logger *zap.Logger) *UsageController {
	return &UsageController{planService: planService, logger: logger}
}

// GetUsage godoc
// @Summary Monthly usage
// @Description Generations used in the current UTC month and the plan limit (null when unlimited)
// @Tags Usage
// @Produce json
// @Success 200 {object} response_models.UsageResponse
// @Security BearerAuth
// @Router /usage [get]
func (u *UsageController) GetUsage(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	usage, err := u.planService.GetUsage(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, usage, "Usage fetched successfully")
}

// ListPlans godoc
// @Summary Plan catalogue
// @Tags Usage
// @Produce json
// @Success 200 {array} response_models.PlanResponse
// @Router /plans [get]
func (u *UsageController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, u.planService.GetPlans(), "Plans fetched successfully")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type WorkController struct {
	workService services.WorkService
	logger      *zap.Logger
}

func NewWorkController(workService services.WorkService, logger *zap.Logger) *WorkController {
	return &WorkController{workService: workService, logger: logger}
}

// ListWork godoc
// @Summary Work history
// @Description The caller's generated artifacts, newest first
// @Tags Work
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} services.WorkHistoryPage
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /work [get]
func (w *WorkController) ListWork(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	history, err := w.workService.ListWork(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, w.logger, err)
		return
	}

	utils.RespondSuccess(c, history, "Work history fetched successfully")
}

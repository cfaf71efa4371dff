package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/models/response_models"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard godoc
// @Summary Get usage dashboard
// @Description Account totals, plan mix, generations per content kind and per bucket, accounts at their monthly limit
// @Tags Admin
// @Accept json
// @Produce json
// @Param start    query string false "RFC3339 start (e.g. 2026-10-01T00:00:00Z)"
// @Param end      query string false "RFC3339 end   (e.g. 2026-10-19T23:59:59Z)"
// @Param last_days query int   false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Param interval query string false "Bucket size: day | week | month (default: day)"
// @Param tz       query string false "IANA timezone for bucketing (default: UTC)"
// @Success 200 {object} response_models.UsageDashboard
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	interval := c.DefaultQuery("interval", "day")
	tz := c.Query("tz")

	if !validInterval(interval) {
		utils.RespondError(c, http.StatusBadRequest, "interval must be one of: day, week, month")
		return
	}
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "tz must be an IANA time zone")
			return
		}
	}

	var (
		start, end time.Time
		err        error
	)

	startStr := c.Query("start")
	endStr := c.Query("end")
	lastDaysStr := c.Query("last_days")

	if lastDaysStr != "" && (startStr != "" || endStr != "") {
		utils.RespondError(c, http.StatusBadRequest, "provide either last_days or start/end (not both)")
		return
	}

	switch {
	case lastDaysStr != "":
		d, convErr := strconv.Atoi(lastDaysStr)
		if convErr != nil || d <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "last_days must be a positive integer")
			return
		}
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -d)

	default:
		if startStr != "" {
			start, err = time.Parse(time.RFC3339, startStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "start must be RFC3339 (e.g. 2026-10-01T00:00:00Z)")
				return
			}
		}
		if endStr != "" {
			end, err = time.Parse(time.RFC3339, endStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "end must be RFC3339 (e.g. 2026-10-19T23:59:59Z)")
				return
			}
		}
	}

	tr := response_models.TimeRange{
		Start:    start,
		End:      end,
		Interval: interval,
		Timezone: tz,
	}

	report, svcErr := p.dashboardService.BuildDashboard(c.Request.Context(), tr)
	if svcErr != nil {
		utils.HandleServiceError(c, p.logger, svcErr)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

// ---- helpers ----

func validInterval(s string) bool {
	switch s {
	case "day", "week", "month":
		return true
	default:
		return false
	}
}

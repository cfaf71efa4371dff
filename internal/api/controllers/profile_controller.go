package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/models/request_models"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileService
	logger         *zap.Logger
}

func NewProfileController(profileService services.ProfileService, logger *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

// GetMyProfile godoc
// @Summary Get personalization profile
// @Description Returns the caller's profile, or the defaults when none was saved
// @Tags Profile
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Security BearerAuth
// @Router /profile/me [get]
func (p *ProfileController) GetMyProfile(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	profile, err := p.profileService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateMyProfile godoc
// @Summary Replace personalization profile
// @Description Creates the profile on first save. Omitted preference fields are reset to defaults.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ProfileUpdateRequest true "Profile"
// @Success 200 {object} response_models.ProfileResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/update [put]
func (p *ProfileController) UpdateMyProfile(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.UpdateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile saved successfully")
}

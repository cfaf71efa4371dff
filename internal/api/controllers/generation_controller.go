package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/models/request_models"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationService
	logger            *zap.Logger
}

func NewGenerationController(generationService services.GenerationService, logger *zap.Logger) *GenerationController {
	return &GenerationController{
		generationService: generationService,
		logger:            logger,
	}
}

// GenerateAds godoc
// @Summary Generate ad copy
// @Description Generates three ad variants personalized with the caller's profile. Consumes one generation.
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.AdRequest true "Product and audience, or a free-form prompt"
// @Success 200 {object} response_models.GenerationResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ads/generate [post]
func (g *GenerationController) GenerateAds(c *gin.Context) {
	var req request_models.AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	g.generate(c, func() (services.ContentBrief, error) { return services.NewAdBrief(req) })
}

// GenerateContent godoc
// @Summary Generate social posts
// @Description Generates five ready-to-post social media posts for a platform. Consumes one generation.
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.PostRequest true "Topic and platform"
// @Success 200 {object} response_models.GenerationResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /content/generate [post]
func (g *GenerationController) GenerateContent(c *gin.Context) {
	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	g.generate(c, func() (services.ContentBrief, error) { return services.NewPostBrief(req) })
}

// GenerateEmail godoc
// @Summary Generate a business email
// @Description Generates a send-ready email. Consumes one generation.
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.EmailRequest true "Subject and details"
// @Success 200 {object} response_models.GenerationResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /email/generate [post]
func (g *GenerationController) GenerateEmail(c *gin.Context) {
	var req request_models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	g.generate(c, func() (services.ContentBrief, error) { return services.NewEmailBrief(req) })
}

func (g *GenerationController) generate(c *gin.Context, brief func() (services.ContentBrief, error)) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	b, err := brief()
	if err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	result, err := g.generationService.Generate(c.Request.Context(), accountID, b)
	if err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Content generated successfully")
}

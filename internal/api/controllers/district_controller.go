package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

type DistrictController struct {
	districtService   services.DistrictServiceInterface
	hiddenGemsService services.HiddenGemsServiceInterface
	logger            *zap.Logger
}

func NewDistrictController(
	districtService services.DistrictServiceInterface,
	hiddenGemsService services.HiddenGemsServiceInterface,
	logger *zap.Logger,
) *DistrictController {
	return &DistrictController{
		districtService:   districtService,
		hiddenGemsService: hiddenGemsService,
		logger:            logger,
	}
}

// GetDistrictDetails godoc
// @Summary Describe a district
// @Tags Districts
// @Accept json
// @Produce json
// @Param request body request_models.DistrictRequest true "District"
// @Success 200 {object} response_models.DistrictDetailsResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/districts/details [post]
func (dc *DistrictController) GetDistrictDetails(c *gin.Context) {
	var req request_models.DistrictDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	details, err := dc.districtService.GetDistrictDetails(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.logger, err)
		return
	}
	utils.RespondSuccess(c, details, "District details fetched successfully")
}

func (dc *DistrictController) GenerateDistrictImage(c *gin.Context) {
	var req request_models.DistrictImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	image, err := dc.districtService.GenerateDistrictImage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.logger, err)
		return
	}
	utils.RespondSuccess(c, image, "District image generated successfully")
}

func (dc *DistrictController) ExploreDistrict(c *gin.Context) {
	var req request_models.DistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	overview, err := dc.districtService.ExploreDistrict(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.logger, err)
		return
	}

	message := "District explored successfully"
	if overview.ImageError != "" {
		message = "District details fetched, image unavailable"
	}
	utils.RespondSuccess(c, overview, message)
}

// SuggestHiddenGems godoc
// @Summary Suggest off-the-beaten-path places in a district
// @Tags Districts
// @Accept json
// @Produce json
// @Param request body request_models.HiddenGemsRequest true "District and optional preferences"
// @Success 200 {object} response_models.HiddenGemsResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/districts/hidden-gems [post]
func (dc *DistrictController) SuggestHiddenGems(c *gin.Context) {
	var req request_models.HiddenGemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gems, err := dc.hiddenGemsService.SuggestHiddenGems(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.logger, err)
		return
	}
	utils.RespondSuccess(c, gems, "Hidden gems suggested successfully")
}

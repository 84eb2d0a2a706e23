package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary godoc
// @Summary Generate or modify an itinerary
// @Description Creates a day-by-day plan. Sending previousItinerary and modificationRequest rewrites an existing plan instead.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Trip preferences"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/itineraries [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	message := "Itinerary generated successfully"
	if req.IsModification() {
		message = "Itinerary updated successfully"
	}
	utils.RespondSuccess(c, itinerary, message)
}

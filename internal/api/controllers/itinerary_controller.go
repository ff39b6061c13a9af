package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Plan a day-by-day Gujarat trip. Falls back to a curated plan when the model is unavailable.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Trip request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := ic.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// ListThemes godoc
// @Summary List day themes
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/themes [get]
func (ic *ItineraryController) ListThemes(c *gin.Context) {
	utils.RespondSuccess(c, ic.itineraryService.Themes(), "Themes fetched successfully")
}

// GetItinerary godoc
// @Summary Get a saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary, err := ic.itineraryService.GetSaved(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

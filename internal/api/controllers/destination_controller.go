package controllers

import (
	"github.com/gin-gonic/gin"

	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{destinationService: destinationService}
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Destinations
// @Produce json
// @Param category query string false "heritage, rural, nature, spiritual, urban or all"
// @Param q query string false "Search by name, region or specialty"
// @Param mood query string false "relaxing, adventurous, instagrammable or family-friendly"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /destinations [get]
func (dc *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := dc.destinationService.List(c.Query("category"), c.Query("q"), c.Query("mood"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// ListCategories godoc
// @Summary List destination categories with counts
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /destinations/categories [get]
func (dc *DestinationController) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, dc.destinationService.Categories(), "Categories fetched successfully")
}

// GetDestination godoc
// @Summary Get a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (dc *DestinationController) GetDestination(c *gin.Context) {
	destination, err := dc.destinationService.Get(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

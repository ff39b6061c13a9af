package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

type VoiceController struct {
	directionsService services.DirectionsServiceInterface
	speechService     services.SpeechServiceInterface
}

func NewVoiceController(directionsService services.DirectionsServiceInterface, speechService services.SpeechServiceInterface) *VoiceController {
	return &VoiceController{directionsService: directionsService, speechService: speechService}
}

// Directions godoc
// @Summary Directions for a spoken destination
// @Description Turns a speech transcript into English or Gujarati direction text for playback.
// @Tags Voice
// @Accept json
// @Produce json
// @Param request body request_models.DirectionsRequest true "Transcript"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /voice/directions [post]
func (vc *VoiceController) Directions(c *gin.Context) {
	var req request_models.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	directions := vc.directionsService.Directions(c.Request.Context(), req.Transcript, req.Language)
	utils.RespondSuccess(c, directions, "Directions generated")
}

// Capabilities godoc
// @Summary Server side speech capabilities
// @Tags Voice
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /voice/capabilities [get]
func (vc *VoiceController) Capabilities(c *gin.Context) {
	utils.RespondSuccess(c, vc.speechService.Capabilities(), "")
}

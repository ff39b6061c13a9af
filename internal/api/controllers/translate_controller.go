package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/models/response_models"
	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

type TranslateController struct {
	translateService services.TranslateServiceInterface
}

func NewTranslateController(translateService services.TranslateServiceInterface) *TranslateController {
	return &TranslateController{translateService: translateService}
}

// Translate godoc
// @Summary Translate text between English, Gujarati and Hindi
// @Tags Translation
// @Accept json
// @Produce json
// @Param request body request_models.TranslationOptions true "Text and language pair"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /translate [post]
func (tc *TranslateController) Translate(c *gin.Context) {
	var req request_models.TranslationOptions
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result := tc.translateService.Translate(c.Request.Context(), req)
	utils.RespondSuccess(c, result, "Translation completed")
}

// DetectLanguage godoc
// @Summary Detect the script of a text
// @Tags Translation
// @Accept json
// @Produce json
// @Param request body request_models.DetectLanguageRequest true "Text"
// @Success 200 {object} utils.APIResponse
// @Router /translate/detect [post]
func (tc *TranslateController) DetectLanguage(c *gin.Context) {
	var req request_models.DetectLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	utils.RespondSuccess(c, response_models.DetectedLanguage{
		Language: tc.translateService.DetectLanguage(req.Text),
	}, "Language detected")
}

// ListLanguages godoc
// @Summary List supported languages
// @Tags Translation
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /translate/languages [get]
func (tc *TranslateController) ListLanguages(c *gin.Context) {
	utils.RespondSuccess(c, tc.translateService.SupportedLanguages(), "Languages fetched successfully")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/services"
	"yatrasetu/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Add a community review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /reviews [post]
func (rc *ReviewController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	review, err := rc.reviewService.AddReview(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review added successfully")
}

// ListReviews godoc
// @Summary List community reviews
// @Tags Reviews
// @Produce json
// @Param village query string false "Filter by village"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /reviews [get]
func (rc *ReviewController) ListReviews(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	reviews, err := rc.reviewService.ListReviews(c.Request.Context(), c.Query("village"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// MarkHelpful godoc
// @Summary Mark a review as helpful
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id}/helpful [post]
func (rc *ReviewController) MarkHelpful(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review ID")
		return
	}

	review, err := rc.reviewService.MarkHelpful(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review marked helpful")
}

// RemoveReview godoc
// @Summary Remove a review (admin)
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [delete]
func (rc *ReviewController) RemoveReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := rc.reviewService.RemoveReview(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review removed")
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"yatrasetu/internal/models/db_models"
	"yatrasetu/internal/models/request_models"
	"yatrasetu/internal/models/response_models"
	"yatrasetu/internal/repositories"
	"yatrasetu/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, userID uuid.UUID, req request_models.AddReviewRequest) (response_models.Review, error)
	ListReviews(ctx context.Context, village string, page, pageSize int) (response_models.ReviewPage, error)
	MarkHelpful(ctx context.Context, id uuid.UUID) (response_models.Review, error)
	RemoveReview(ctx context.Context, id uuid.UUID) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) AddReview(ctx context.Context, userID uuid.UUID, req request_models.AddReviewRequest) (response_models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return response_models.Review{}, utils.ErrInvalidRating
	}

	review := &db_models.Review{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Village:  strings.TrimSpace(req.Village),
		Rating:   req.Rating,
		Body:     strings.TrimSpace(req.Review),
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return response_models.Review{}, err
	}
	return toReviewResponse(*review), nil
}

func (s *ReviewService) ListReviews(ctx context.Context, village string, page, pageSize int) (response_models.ReviewPage, error) {
	if page < 1 {
		return response_models.ReviewPage{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return response_models.ReviewPage{}, utils.ErrInvalidPageSize
	}

	rows, err := s.reviewRepo.ListReviews(ctx, strings.TrimSpace(village), page, pageSize)
	if err != nil {
		return response_models.ReviewPage{}, fmt.Errorf("list reviews: %w", err)
	}

	items := make([]response_models.Review, 0, len(rows))
	for _, r := range rows {
		items = append(items, toReviewResponse(r))
	}
	return response_models.ReviewPage{Page: page, PageSize: pageSize, Items: items}, nil
}

func (s *ReviewService) MarkHelpful(ctx context.Context, id uuid.UUID) (response_models.Review, error) {
	review, err := s.reviewRepo.IncrementHelpful(ctx, id)
	if err != nil {
		return response_models.Review{}, err
	}
	return toReviewResponse(*review), nil
}

func (s *ReviewService) RemoveReview(ctx context.Context, id uuid.UUID) error {
	return s.reviewRepo.DeleteReview(ctx, id)
}

func toReviewResponse(r db_models.Review) response_models.Review {
	return response_models.Review{
		ID:       r.ID.String(),
		UserID:   r.UserID.String(),
		Name:     r.Name,
		Location: r.Location,
		Village:  r.Village,
		Rating:   r.Rating,
		Review:   r.Body,
		Helpful:  r.Helpful,
		Date:     reviewDate(r.CreatedTime()),
	}
}

func reviewDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

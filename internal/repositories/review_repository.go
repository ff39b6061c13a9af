package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatrasetu/internal/models/db_models"
	"yatrasetu/pkg/utils"
)

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListReviews(ctx context.Context, village string, page, pageSize int) ([]db_models.Review, error)
	IncrementHelpful(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("%w: create review: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *ReviewRepository) ListReviews(ctx context.Context, village string, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	q := r.db.WithContext(ctx).Model(&db_models.Review{})
	if village != "" {
		q = q.Where("LOWER(village) = LOWER(?)", village)
	}
	err := q.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews: %v", utils.ErrDatabaseError, err)
	}
	return reviews, nil
}

func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Review{}).
			Where("id = ?", id).
			UpdateColumn("helpful", gorm.Expr("helpful + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrReviewNotFound
		}
		return tx.First(&review, "id = ?", id).Error
	})
	if errors.Is(err, utils.ErrReviewNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: mark review helpful: %v", utils.ErrDatabaseError, err)
	}
	return &review, nil
}

// DeleteReview soft deletes a review so it drops out of listings.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: delete review: %v", utils.ErrDatabaseError, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrReviewNotFound
	}
	return nil
}

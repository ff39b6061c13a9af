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

type ItineraryRepositoryInterface interface {
	Save(ctx context.Context, itinerary *db_models.SavedItinerary) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.SavedItinerary, error)
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Save(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return fmt.Errorf("%w: save itinerary: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrItineraryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get itinerary: %v", utils.ErrDatabaseError, err)
	}
	return &itinerary, nil
}

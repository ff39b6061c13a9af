package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the identity and unix-second timestamps shared by every
// persisted record.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.stamp(time.Now(), true)
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.stamp(time.Now(), false)
	return nil
}

func (b *BaseModel) stamp(now time.Time, created bool) {
	if created && b.CreatedAt == 0 {
		b.CreatedAt = now.Unix()
	}
	b.UpdatedAt = now.Unix()
}

// CreatedTime returns the creation timestamp in UTC, or the zero time for an
// unsaved record.
func (b BaseModel) CreatedTime() time.Time {
	if b.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(b.CreatedAt, 0).UTC()
}

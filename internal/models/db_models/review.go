package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Location string    `gorm:"type:varchar(100)"`
	Village  string    `gorm:"type:varchar(100);not null;index"`
	Rating   int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Body     string    `gorm:"type:text;not null"`
	Helpful  int       `gorm:"not null;default:0"`
}

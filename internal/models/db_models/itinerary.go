package db_models

// SavedItinerary keeps the request that produced an itinerary alongside the
// rendered response body.
type SavedItinerary struct {
	BaseModel
	Destination string `gorm:"type:varchar(200);not null;index"`
	Days        int    `gorm:"not null"`
	Interests   string `gorm:"type:text"`
	GroupSize   string `gorm:"type:varchar(20);not null"`
	Source      string `gorm:"type:varchar(20);not null"`
	Body        string `gorm:"type:jsonb;not null"`
}

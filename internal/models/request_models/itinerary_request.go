package request_models

type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	Interests   string `json:"interests"`
	GroupSize   string `json:"groupSize" binding:"required,oneof=solo couple family group"`
}

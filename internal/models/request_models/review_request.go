package request_models

type AddReviewRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Location string `json:"location" binding:"max=100"`
	Village  string `json:"village" binding:"required,max=100"`
	Rating   int    `json:"rating" binding:"required"`
	Review   string `json:"review" binding:"required,max=2000"`
}

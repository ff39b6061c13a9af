package request_models

type DirectionsRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Language   string `json:"language" binding:"omitempty,oneof=en gu en-US gu-IN"`
}

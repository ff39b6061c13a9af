package request_models

type TranslationOptions struct {
	Text string `json:"text" binding:"required"`
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type DetectLanguageRequest struct {
	Text string `json:"text" binding:"required"`
}

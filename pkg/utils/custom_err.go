package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrInvalidDays         = errors.New("days must be at least 1")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidMood         = errors.New("unknown mood")
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrUnauthorized        = errors.New("unauthorized")

	ErrLLMUnavailable  = errors.New("llm provider unavailable")
	ErrLLMEmptyContent = errors.New("no content received from llm")
	ErrLLMMalformed    = errors.New("llm response does not match itinerary schema")

	ErrRecognitionUnsupported = errors.New("speech recognition not supported")
	ErrSynthesisUnsupported   = errors.New("speech synthesis not supported")
	ErrSpeechCancelled        = errors.New("speech cancelled")
)

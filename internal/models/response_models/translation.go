package response_models

type TranslationResult struct {
	TranslatedText         string  `json:"translatedText"`
	DetectedSourceLanguage string  `json:"detectedSourceLanguage,omitempty"`
	Confidence             float64 `json:"confidence"`
}

type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

type DetectedLanguage struct {
	Language string `json:"language"`
}

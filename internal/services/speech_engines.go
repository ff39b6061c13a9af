package services

import (
	"context"

	"yatrasetu/pkg/utils"
)

type RecognitionResult struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"isFinal"`
}

// RecognitionEvent is one engine callback. Exactly one of Result, Err or End
// is set.
type RecognitionEvent struct {
	Result *RecognitionResult
	Err    error
	End    bool
}

type RecognitionSession interface {
	Events() <-chan RecognitionEvent
	Stop()
}

// SpeechRecognizer is a platform speech-to-text engine producing interim and
// final results for a single utterance per session.
type SpeechRecognizer interface {
	Supported() bool
	Start(ctx context.Context, lang string) (RecognitionSession, error)
}

type Voice struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

type Utterance struct {
	Text   string
	Lang   string
	Rate   float64
	Pitch  float64
	Volume float64
	Voice  *Voice
}

// Playback is one utterance being spoken. Done yields nil on normal end or the
// engine error, then closes.
type Playback interface {
	Done() <-chan error
	Cancel()
}

type SpeechSynthesizer interface {
	Supported() bool
	Voices() []Voice
	Speak(ctx context.Context, u Utterance) (Playback, error)
}

// Speech runs in the browser, so the server side only ever has these.
type UnsupportedRecognizer struct{}

func (UnsupportedRecognizer) Supported() bool { return false }

func (UnsupportedRecognizer) Start(context.Context, string) (RecognitionSession, error) {
	return nil, utils.ErrRecognitionUnsupported
}

type UnsupportedSynthesizer struct{}

func (UnsupportedSynthesizer) Supported() bool { return false }

func (UnsupportedSynthesizer) Voices() []Voice { return nil }

func (UnsupportedSynthesizer) Speak(context.Context, Utterance) (Playback, error) {
	return nil, utils.ErrSynthesisUnsupported
}

package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"yatrasetu/internal/models/response_models"
	"yatrasetu/pkg/utils"
)

type RecognitionState string

const (
	RecognitionIdle       RecognitionState = "idle"
	RecognitionListening  RecognitionState = "listening"
	RecognitionFinalizing RecognitionState = "finalizing"
)

type SynthesisState string

const (
	SynthesisIdle     SynthesisState = "idle"
	SynthesisSpeaking SynthesisState = "speaking"
)

var speechLanguages = []string{"en-US", "gu-IN", "hi-IN"}

type SpeechOptions struct {
	Text   string
	Lang   string
	Rate   float64
	Pitch  float64
	Volume float64
}

type SpeechState struct {
	Recognition RecognitionState `json:"recognition"`
	Synthesis   SynthesisState   `json:"synthesis"`
}

type SpeechServiceInterface interface {
	Listen(ctx context.Context, lang string, onResult func(RecognitionResult)) (RecognitionResult, error)
	StopListening()
	Speak(ctx context.Context, opts SpeechOptions) error
	StopSpeaking()
	State() SpeechState
	Capabilities() response_models.SpeechCapabilities
}

// listenToken is registered before the engine starts so that Stop and
// supersede work while Start is still running.
type listenToken struct {
	mu      sync.Mutex
	session RecognitionSession
	stopped chan struct{}
	once    sync.Once
}

func newListenToken() *listenToken {
	return &listenToken{stopped: make(chan struct{})}
}

// attach reports false when the token was stopped before the engine started.
func (t *listenToken) attach(session RecognitionSession) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.stopped:
		return false
	default:
	}
	t.session = session
	return true
}

func (t *listenToken) stop() {
	t.once.Do(func() {
		t.mu.Lock()
		close(t.stopped)
		session := t.session
		t.mu.Unlock()
		if session != nil {
			session.Stop()
		}
	})
}

type speakToken struct {
	mu        sync.Mutex
	playback  Playback
	cancelled chan struct{}
	once      sync.Once
}

func newSpeakToken() *speakToken {
	return &speakToken{cancelled: make(chan struct{})}
}

func (t *speakToken) attach(playback Playback) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.cancelled:
		return false
	default:
	}
	t.playback = playback
	return true
}

func (t *speakToken) cancel() {
	t.once.Do(func() {
		t.mu.Lock()
		close(t.cancelled)
		playback := t.playback
		t.mu.Unlock()
		if playback != nil {
			playback.Cancel()
		}
	})
}

func (t *speakToken) isCancelled() bool {
	select {
	case <-t.cancelled:
		return true
	default:
		return false
	}
}

// SpeechService serializes access to one recognizer and one synthesizer:
// at most one recognition session and one utterance are live at a time.
type SpeechService struct {
	recognizer  SpeechRecognizer
	synthesizer SpeechSynthesizer
	logger      *zap.Logger

	mu        sync.Mutex
	recState  RecognitionState
	synState  SynthesisState
	listening *listenToken
	speaking  *speakToken
}

func NewSpeechService(recognizer SpeechRecognizer, synthesizer SpeechSynthesizer, logger *zap.Logger) SpeechServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeechService{
		recognizer:  recognizer,
		synthesizer: synthesizer,
		logger:      logger.Named("speech"),
		recState:    RecognitionIdle,
		synState:    SynthesisIdle,
	}
}

// Listen runs one recognition session. Interim and final results are passed
// to onResult; the call returns on the first final result, when the engine
// ends the session, or when the session is stopped or superseded.
func (s *SpeechService) Listen(ctx context.Context, lang string, onResult func(RecognitionResult)) (RecognitionResult, error) {
	if s.recognizer == nil || !s.recognizer.Supported() {
		return RecognitionResult{}, utils.ErrRecognitionUnsupported
	}
	if lang == "" {
		lang = "en-US"
	}

	tok := newListenToken()
	s.mu.Lock()
	prev := s.listening
	s.listening = tok
	s.recState = RecognitionListening
	s.mu.Unlock()
	if prev != nil {
		s.logger.Debug("recognition session superseded", zap.String("lang", lang))
		prev.stop()
	}

	session, err := s.recognizer.Start(ctx, lang)
	if err != nil {
		s.endListen(tok)
		return RecognitionResult{}, err
	}
	if !tok.attach(session) {
		session.Stop()
		s.endListen(tok)
		return RecognitionResult{}, nil
	}

	var last RecognitionResult
	for {
		select {
		case ev, ok := <-session.Events():
			select {
			case <-tok.stopped:
				s.endListen(tok)
				return last, nil
			default:
			}
			switch {
			case !ok || ev.End:
				s.endListen(tok)
				return last, nil
			case ev.Err != nil:
				s.endListen(tok)
				return last, ev.Err
			case ev.Result != nil:
				last = *ev.Result
				if onResult != nil {
					onResult(last)
				}
				if last.IsFinal {
					s.setRecognition(tok, RecognitionFinalizing)
					s.endListen(tok)
					return last, nil
				}
			}
		case <-tok.stopped:
			s.endListen(tok)
			return last, nil
		case <-ctx.Done():
			s.endListen(tok)
			return last, ctx.Err()
		}
	}
}

func (s *SpeechService) StopListening() {
	s.mu.Lock()
	tok := s.listening
	if tok != nil {
		s.recState = RecognitionFinalizing
	}
	s.mu.Unlock()
	if tok != nil {
		tok.stop()
	}
}

func (s *SpeechService) setRecognition(tok *listenToken, state RecognitionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listening == tok {
		s.recState = state
	}
}

func (s *SpeechService) endListen(tok *listenToken) {
	tok.stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listening == tok {
		s.listening = nil
		s.recState = RecognitionIdle
	}
}

// Speak cancels whatever is being spoken and speaks opts. A superseded or
// stopped utterance returns ErrSpeechCancelled.
func (s *SpeechService) Speak(ctx context.Context, opts SpeechOptions) error {
	if s.synthesizer == nil || !s.synthesizer.Supported() {
		return utils.ErrSynthesisUnsupported
	}

	u := Utterance{
		Text:   opts.Text,
		Lang:   opts.Lang,
		Rate:   orOne(opts.Rate),
		Pitch:  orOne(opts.Pitch),
		Volume: orOne(opts.Volume),
		Voice:  pickVoice(s.synthesizer.Voices(), opts.Lang),
	}

	tok := newSpeakToken()
	s.mu.Lock()
	prev := s.speaking
	s.speaking = tok
	s.synState = SynthesisSpeaking
	s.mu.Unlock()
	if prev != nil {
		s.logger.Debug("utterance superseded", zap.String("lang", opts.Lang))
		prev.cancel()
	}

	playback, err := s.synthesizer.Speak(ctx, u)
	if err != nil {
		s.endSpeak(tok, false)
		if tok.isCancelled() {
			return utils.ErrSpeechCancelled
		}
		return err
	}
	if !tok.attach(playback) {
		playback.Cancel()
		s.endSpeak(tok, false)
		return utils.ErrSpeechCancelled
	}

	select {
	case err := <-playback.Done():
		if tok.isCancelled() {
			return utils.ErrSpeechCancelled
		}
		s.endSpeak(tok, false)
		return err
	case <-tok.cancelled:
		return utils.ErrSpeechCancelled
	case <-ctx.Done():
		s.endSpeak(tok, true)
		return ctx.Err()
	}
}

func (s *SpeechService) StopSpeaking() {
	s.mu.Lock()
	tok := s.speaking
	s.speaking = nil
	s.synState = SynthesisIdle
	s.mu.Unlock()
	if tok != nil {
		tok.cancel()
	}
}

func (s *SpeechService) endSpeak(tok *speakToken, cancel bool) {
	if cancel {
		tok.cancel()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.speaking == tok {
		s.speaking = nil
		s.synState = SynthesisIdle
	}
}

func (s *SpeechService) State() SpeechState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SpeechState{Recognition: s.recState, Synthesis: s.synState}
}

func (s *SpeechService) Capabilities() response_models.SpeechCapabilities {
	return response_models.SpeechCapabilities{
		Recognition: s.recognizer != nil && s.recognizer.Supported(),
		Synthesis:   s.synthesizer != nil && s.synthesizer.Supported(),
		Languages:   append([]string(nil), speechLanguages...),
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// pickVoice returns the first voice sharing the two-letter language prefix.
func pickVoice(voices []Voice, lang string) *Voice {
	if len(lang) < 2 {
		return nil
	}
	prefix := lang[:2]
	for i := range voices {
		if strings.HasPrefix(voices[i].Lang, prefix) {
			v := voices[i]
			return &v
		}
	}
	return nil
}

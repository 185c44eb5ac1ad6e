// Package speech turns plan text into audio. ElevenLabs renders an MP3 when
// an API key is configured; otherwise an injected synthesizer, typically the
// client device's own text-to-speech, is asked to speak the text directly.
package speech

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitforge/fitforge/internal/errors"
)

// ErrNotSupported is reported when neither ElevenLabs nor a fallback
// synthesizer is available.
var ErrNotSupported = errors.NewSentinel("speech synthesis not supported")

// Kind tags how a request was fulfilled.
type Kind string

const (
	// KindAudio means the result carries rendered MP3 audio.
	KindAudio Kind = "audio"
	// KindSynthesizer means the fallback synthesizer spoke the text itself
	// and no audio payload is returned.
	KindSynthesizer Kind = "browser-tts"
)

// Result of a synthesis request.
type Result struct {
	Kind  Kind   `json:"kind"`
	Audio []byte `json:"-"`
}

// Synthesizer speaks text through some device-local mechanism. Speak blocks
// until the utterance finishes or ctx is done.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

const synthesizerTimeout = 30 * time.Second

// Service coordinates the ElevenLabs primary and the synthesizer fallback.
type Service struct {
	elevenLabs *elevenLabsClient
	synth      Synthesizer
	timeout    time.Duration
	logger     *slog.Logger
}

// Config for the speech service. An empty or placeholder API key disables
// ElevenLabs. Synth may be nil when no fallback is available.
type Config struct {
	ElevenLabsAPIKey string
	VoiceID          string
	Synth            Synthesizer
}

func NewService(cfg Config, logger *slog.Logger) *Service {
	s := &Service{
		synth:   cfg.Synth,
		timeout: synthesizerTimeout,
		logger:  logger,
	}
	if cfg.ElevenLabsAPIKey != "" && cfg.ElevenLabsAPIKey != "your_elevenlabs_api_key_here" {
		s.elevenLabs = newElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.VoiceID, logger)
	}
	return s
}

// Speak renders the text to audio via ElevenLabs, falling back to the
// injected synthesizer on failure. The fallback gets a bounded time budget so
// a stuck synthesizer cannot hold the request forever.
func (s *Service) Speak(ctx context.Context, text string) (Result, error) {
	if s.elevenLabs != nil {
		audio, err := s.elevenLabs.synthesize(ctx, text)
		if err == nil {
			return Result{Kind: KindAudio, Audio: audio}, nil
		}
		s.logger.WarnContext(ctx, "elevenlabs synthesis failed, using fallback",
			"error", err)
	}

	if s.synth == nil {
		return Result{}, ErrNotSupported
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.synth.Speak(ctx, text); err != nil {
		return Result{}, errors.Wrap(err, "fallback synthesizer")
	}
	return Result{Kind: KindSynthesizer}, nil
}

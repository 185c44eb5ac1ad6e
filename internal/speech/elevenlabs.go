package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitforge/fitforge/internal/errors"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

	// "Bella", a clear English voice that suits coaching copy.
	defaultVoiceID = "EXAVITQu4vr4xnSDxMaL"

	elevenLabsModel = "eleven_monolingual_v1"
)

type elevenLabsClient struct {
	apiKey     string
	voiceID    string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newElevenLabsClient(apiKey, voiceID string, logger *slog.Logger) *elevenLabsClient {
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	return &elevenLabsClient{
		apiKey:     apiKey,
		voiceID:    voiceID,
		baseURL:    elevenLabsBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// synthesize renders text to MP3 audio.
func (c *elevenLabsClient) synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: elevenLabsModel,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal synthesis request")
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "create synthesis request")
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call elevenlabs api")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(nil, "elevenlabs api error",
			slog.Int("status", resp.StatusCode))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read audio response")
	}
	if len(audio) == 0 {
		return nil, errors.New("empty audio response")
	}

	c.logger.DebugContext(ctx, "synthesized speech",
		"text_length", len(text), "audio_bytes", len(audio))
	return audio, nil
}

package plan

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

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// geminiGenerator calls the Gemini REST API directly. Google's endpoint speaks
// plain JSON over HTTP so a hand-rolled client is all it takes.
type geminiGenerator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newGeminiGenerator(apiKey string, logger *slog.Logger) *geminiGenerator {
	return &geminiGenerator{
		apiKey:     apiKey,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

func (g *geminiGenerator) Name() string { return "gemini" }

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *geminiGenerator) Generate(ctx context.Context, details UserDetails) (Content, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(details)}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.6,
			MaxOutputTokens: 6000,
			TopK:            40,
			TopP:            0.95,
		},
	})
	if err != nil {
		return Content{}, errors.Wrap(err, "marshal gemini request")
	}

	url := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Content{}, errors.Wrap(err, "create gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Content{}, errors.Wrap(err, "call gemini api")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Content{}, errors.Wrap(err, "read gemini response")
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Content{}, errors.Wrap(err, "parse gemini response",
			slog.Int("status", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return Content{}, errors.New(fmt.Sprintf("gemini api error: %d - %s", resp.StatusCode, message))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 ||
		parsed.Candidates[0].Content.Parts[0].Text == "" {
		return Content{}, errors.New("empty response from gemini")
	}

	g.logger.DebugContext(ctx, "received gemini response",
		"response_length", len(parsed.Candidates[0].Content.Parts[0].Text))

	return decodeContent(parsed.Candidates[0].Content.Parts[0].Text)
}

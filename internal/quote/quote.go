// Package quote serves short motivational quotes. When an OpenAI key is
// configured a fresh quote is generated per request; otherwise a curated list
// answers. Either way the caller always gets a quote.
package quote

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/fitforge/fitforge/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Quote is a single motivational quote.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category"`
}

// curated quotes used when AI generation is unavailable or fails.
var curated = []Quote{
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown", Category: "workout"},
	{Text: "Your body can do it. It's your mind you have to convince.", Author: "Unknown", Category: "motivation"},
	{Text: "Abs are made in the kitchen, not just in the gym.", Author: "Unknown", Category: "diet"},
	{Text: "Progress, not perfection.", Author: "Unknown", Category: "general"},
	{Text: "A healthy outside starts from the inside.", Author: "Robert Urich", Category: "general"},
	{Text: "Exercise is a celebration of what your body can do, not a punishment for what you ate.", Author: "Unknown", Category: "workout"},
}

const generationPrompt = "Generate a short, inspiring fitness or wellness motivation quote " +
	"(under 100 characters). Return only the quote text, no attribution or extra text."

// Service hands out motivational quotes.
type Service struct {
	client *openai.Client
	logger *slog.Logger
	pick   func(n int) int
}

// NewService builds a quote service. An empty or placeholder API key disables
// AI generation.
func NewService(openAIAPIKey string, logger *slog.Logger) *Service {
	s := &Service{
		logger: logger,
		pick:   rand.IntN,
	}
	if openAIAPIKey != "" && openAIAPIKey != "your_openai_api_key_here" {
		client := openai.NewClient(option.WithAPIKey(openAIAPIKey))
		s.client = &client
	}
	return s
}

// Get returns a motivational quote. Generation failures silently degrade to
// the curated list, so Get always succeeds.
func (s *Service) Get(ctx context.Context) Quote {
	if s.client != nil {
		if generated, err := s.generate(ctx); err == nil {
			return generated
		} else {
			s.logger.WarnContext(ctx, "quote generation failed, using curated quote",
				"error", err)
		}
	}
	return curated[s.pick(len(curated))]
}

// List returns the full curated quote collection, e.g. for a rotating
// carousel.
func (s *Service) List() []Quote {
	quotes := make([]Quote, len(curated))
	copy(quotes, curated)
	return quotes
}

func (s *Service) generate(ctx context.Context) (Quote, error) {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT3_5Turbo,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(generationPrompt),
		},
		Temperature: openai.Float(0.8),
		MaxTokens:   openai.Int(50),
	})
	if err != nil {
		return Quote{}, err
	}
	if len(completion.Choices) == 0 {
		return Quote{}, errEmptyCompletion
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	text = strings.Trim(text, `"`)
	if text == "" {
		return Quote{}, errEmptyCompletion
	}
	return Quote{Text: text, Category: "motivation"}, nil
}

var errEmptyCompletion = errors.NewSentinel("empty completion from openai")

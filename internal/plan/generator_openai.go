package plan

import (
	"context"
	"log/slog"

	"github.com/fitforge/fitforge/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// openAIGenerator asks GPT-4o for a plan in JSON mode.
type openAIGenerator struct {
	client openai.Client
	logger *slog.Logger
}

func newOpenAIGenerator(apiKey string, logger *slog.Logger) *openAIGenerator {
	return &openAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

func (g *openAIGenerator) Name() string { return "openai" }

func (g *openAIGenerator) Generate(ctx context.Context, details UserDetails) (Content, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(details)),
		},
		Temperature: openai.Float(0.6),
		MaxTokens:   openai.Int(6000),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	g.logger.DebugContext(ctx, "sending chat completion request",
		"model", openai.ChatModelGPT4o,
		"plan_days", details.PlanDays)

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Content{}, errors.Wrap(err, "openai chat completion")
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return Content{}, errors.New("empty response from openai")
	}

	g.logger.DebugContext(ctx, "received chat completion response",
		"completion_tokens", completion.Usage.CompletionTokens,
		"prompt_tokens", completion.Usage.PromptTokens)

	return decodeContent(completion.Choices[0].Message.Content)
}

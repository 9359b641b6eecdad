package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"
)

// Generator is the narrow surface the domain services depend on. It sends a
// two-part exchange (system instruction + rendered prompt) to the upstream
// text-generation model and returns the raw reply. No retries, no streaming;
// the call blocks until the model answers or the deadline expires.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GeminiClient talks to Google's Gemini models through langchaingo.
type GeminiClient struct {
	model   llms.Model
	timeout time.Duration
}

// NewGeminiClient constructs a client for the given model name. The timeout
// bounds every Generate call; the upstream API has no deadline of its own and
// a single generation can take multiple seconds.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google api key is required")
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{model: m, timeout: timeout}, nil
}

// Generate implements Generator. Any transport or model error is surfaced as
// a single wrapped "generation failed" error; callers do not distinguish
// failure causes.
func (c *GeminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(2048),
	)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation failed: model returned no candidates")
	}

	return resp.Choices[0].Content, nil
}

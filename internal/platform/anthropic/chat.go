// Package anthropic provides a generation.ChatProvider backed by Anthropic's
// Messages API through llmkit.
package anthropic

import (
	"context"
	"errors"
	"log/slog"

	llm "github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
)

// ProviderID is the id used in "<provider>__<model>" options.
const ProviderID = "anthropic"

// ProviderLabel is the human readable provider name.
const ProviderLabel = "Anthropic"

// DefaultModels lists the models offered in the settings form.
var DefaultModels = []string{
	"claude-3-5-haiku-latest",
	"claude-sonnet-4-0",
}

// promptFunc sends one system+user exchange and returns the answer text.
type promptFunc func(systemPrompt, userPrompt, apiKey string, settings types.RequestSettings) (string, error)

// ChatProvider implements generation.ChatProvider with llmkit.
type ChatProvider struct {
	apiKey      string
	maxTokens   int
	temperature float64
	prompt      promptFunc
	logger      *slog.Logger
}

var _ generation.ChatProvider = (*ChatProvider)(nil)

// NewChatProvider creates a provider from the LLM configuration.
func NewChatProvider(log *slog.Logger, cfg config.LLMConfig) (*ChatProvider, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, errors.New("anthropic API key cannot be empty")
	}
	return newChatProvider(log, cfg, sdkPrompt), nil
}

func newChatProvider(log *slog.Logger, cfg config.LLMConfig, prompt promptFunc) *ChatProvider {
	if log == nil {
		log = slog.Default()
	}
	return &ChatProvider{
		apiKey:      cfg.AnthropicAPIKey,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		prompt:      prompt,
		logger:      log.With(slog.String("component", "anthropic_chat")),
	}
}

// Chat implements generation.ChatProvider. llmkit does not accept a
// context, so cancellation is only honoured before the request is sent.
func (p *ChatProvider) Chat(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", generation.NewProviderError(ProviderID, "", err)
	}

	log := logger.FromContextOrDefault(ctx, p.logger)
	log.DebugContext(ctx, "calling Anthropic", slog.String("model", modelID))

	text, err := p.prompt(systemPrompt, userPrompt, p.apiKey, types.RequestSettings{
		Model:       modelID,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		return "", generation.NewProviderError(ProviderID, "", err)
	}
	return text, nil
}

func sdkPrompt(systemPrompt, userPrompt, apiKey string, settings types.RequestSettings) (string, error) {
	response, err := llm.PromptWithSettings(systemPrompt, userPrompt, "", apiKey, settings)
	if err != nil {
		return "", err
	}
	if len(response.Content) == 0 {
		return "", nil
	}
	return response.Content[0].Text, nil
}

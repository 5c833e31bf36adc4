// Package openai provides a generation.ChatProvider backed by the OpenAI
// chat completions API or any server speaking the same protocol.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
)

// ProviderID is the id used in "<provider>__<model>" options.
const ProviderID = "openai"

// ProviderLabel is the human readable provider name.
const ProviderLabel = "OpenAI"

// DefaultModels lists the models offered in the settings form.
var DefaultModels = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-4.1-mini",
}

// ChatProvider implements generation.ChatProvider with openai-go.
type ChatProvider struct {
	client      openai.Client
	maxTokens   int64
	temperature float64
	logger      *slog.Logger
}

var _ generation.ChatProvider = (*ChatProvider)(nil)

// NewChatProvider creates a client from the LLM configuration. Extra request
// options are appended after the configured ones.
func NewChatProvider(log *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*ChatProvider, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	if log == nil {
		log = slog.Default()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &ChatProvider{
		client:      openai.NewClient(reqOpts...),
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		logger:      log.With(slog.String("component", "openai_chat")),
	}, nil
}

// Chat implements generation.ChatProvider.
func (p *ChatProvider) Chat(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(p.temperature),
	}
	if p.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(p.maxTokens)
	}

	log.DebugContext(ctx, "calling OpenAI", slog.String("model", modelID))

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", toProviderError(err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

func toProviderError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("%d %s", apiErr.StatusCode, http.StatusText(apiErr.StatusCode))
		}
		return generation.NewProviderError(ProviderID, msg, err)
	}
	return generation.NewProviderError(ProviderID, "", err)
}

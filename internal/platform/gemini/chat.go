package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"google.golang.org/genai"
)

// ProviderID is the id used in "<provider>__<model>" options.
const ProviderID = "gemini"

// ProviderLabel is the human readable provider name.
const ProviderLabel = "Google Gemini"

// DefaultModels lists the models offered in the settings form.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
}

// proThinkingBudget is the smallest thinking budget gemini-2.5-pro accepts;
// it cannot switch thinking off.
const proThinkingBudget int32 = 128

// contentGenerator is the subset of *genai.Models used by ChatProvider.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ChatProvider implements generation.ChatProvider with the genai SDK.
type ChatProvider struct {
	models      contentGenerator
	maxTokens   int32
	temperature float32
	logger      *slog.Logger
}

var _ generation.ChatProvider = (*ChatProvider)(nil)

// NewChatProvider creates a Gemini client from the LLM configuration.
func NewChatProvider(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*ChatProvider, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newChatProvider(client.Models, log, cfg), nil
}

func newChatProvider(models contentGenerator, log *slog.Logger, cfg config.LLMConfig) *ChatProvider {
	if log == nil {
		log = slog.Default()
	}
	return &ChatProvider{
		models:      models,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(cfg.Temperature),
		logger:      log.With(slog.String("component", "gemini_chat")),
	}
}

// Chat implements generation.ChatProvider.
func (p *ChatProvider) Chat(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(p.temperature),
	}
	budget, thinks := thinkingBudget(modelID)
	if thinks {
		genConfig.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(budget)}
	}
	if p.maxTokens > 0 {
		// Thinking tokens count against MaxOutputTokens on 2.5 models.
		genConfig.MaxOutputTokens = p.maxTokens + budget
	}

	log.DebugContext(ctx, "calling Gemini", slog.String("model", modelID))

	resp, err := p.models.GenerateContent(
		ctx,
		modelID,
		[]*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)},
		genConfig,
	)
	if err != nil {
		return "", toProviderError(err)
	}

	return responseText(resp)
}

// thinkingBudget returns the thinking budget for modelID and whether the
// model supports thinking at all. Flash models run with thinking disabled.
func thinkingBudget(modelID string) (int32, bool) {
	if !strings.HasPrefix(modelID, "gemini-2.5") {
		return 0, false
	}
	if strings.Contains(modelID, "-pro") {
		return proThinkingBudget, true
	}
	return 0, true
}

// responseText concatenates the text parts of the first candidate. A
// response without candidates yields "" so the caller reports it as empty,
// unless the token limit cut the answer off before any text was produced.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", generation.NewProviderError(ProviderID,
				fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason), nil)
		}
		return "", nil
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.NewProviderError(ProviderID, "content blocked by safety filters", nil)
	}

	var sb strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 && candidate.FinishReason == genai.FinishReasonMaxTokens {
		return "", generation.NewProviderError(ProviderID, "response truncated: max tokens reached", nil)
	}
	return sb.String(), nil
}

func toProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", apiErr.Code)
		}
		return generation.NewProviderError(ProviderID, msg, err)
	}
	return generation.NewProviderError(ProviderID, "", err)
}

package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
)

// Generator produces a meta description for a content item.
// This interface serves as the boundary between the HTTP and CLI surfaces
// and the generation pipeline.
type Generator interface {
	// Generate runs the pipeline once using the given settings snapshot.
	// It never returns an error: every failure is reported as a Failure.
	Generate(ctx context.Context, settings domain.GenerationSettings, item *domain.ContentItem) Result
}

// ContentExtractor produces the plain text a description is written from.
type ContentExtractor interface {
	// ExtractText returns "" when the item has nothing to describe.
	// Rendering problems are reported as errors wrapping ErrExtractionFailed.
	ExtractText(ctx context.Context, item *domain.ContentItem) (string, error)
}

// ChatProvider sends a single system+user exchange to an LLM.
// Upstream failures are returned as *ProviderError.
type ChatProvider interface {
	Chat(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error)
}

// ProviderResolver finds the chat provider behind a "provider__model" option.
type ProviderResolver interface {
	// HasChatProvider reports whether any chat provider is registered.
	HasChatProvider() bool

	// Resolve returns the provider and parsed config for option, or false
	// when the option is malformed or names an unregistered provider.
	Resolve(option string) (ChatProvider, domain.ProviderConfig, bool)
}

// Recorder observes finished generation runs.
type Recorder interface {
	ObserveGeneration(outcome string, duration time.Duration)
}

// MetaDescriptionGenerator is the default Generator.
type MetaDescriptionGenerator struct {
	providers     ProviderResolver
	extractor     ContentExtractor
	prompts       PromptBuilder
	postProcessor PostProcessor
	recorder      Recorder
	logger        *slog.Logger
}

var _ Generator = (*MetaDescriptionGenerator)(nil)

// Option customizes a MetaDescriptionGenerator.
type Option func(*MetaDescriptionGenerator)

// WithPromptBuilder replaces DefaultPromptBuilder.
func WithPromptBuilder(b PromptBuilder) Option {
	return func(g *MetaDescriptionGenerator) { g.prompts = b }
}

// WithPostProcessor replaces DefaultPostProcessor.
func WithPostProcessor(p PostProcessor) Option {
	return func(g *MetaDescriptionGenerator) { g.postProcessor = p }
}

// WithRecorder registers a Recorder notified after every run.
func WithRecorder(r Recorder) Option {
	return func(g *MetaDescriptionGenerator) { g.recorder = r }
}

// NewMetaDescriptionGenerator wires a generator from its collaborators.
// It returns an error if a required collaborator is missing.
func NewMetaDescriptionGenerator(
	providers ProviderResolver,
	extractor ContentExtractor,
	log *slog.Logger,
	opts ...Option,
) (*MetaDescriptionGenerator, error) {
	if providers == nil {
		return nil, errors.New("provider resolver cannot be nil")
	}
	if extractor == nil {
		return nil, errors.New("content extractor cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	g := &MetaDescriptionGenerator{
		providers:     providers,
		extractor:     extractor,
		prompts:       DefaultPromptBuilder{},
		postProcessor: DefaultPostProcessor{},
		logger:        log.With(slog.String("component", "meta_description_generator")),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate implements Generator.
func (g *MetaDescriptionGenerator) Generate(
	ctx context.Context,
	settings domain.GenerationSettings,
	item *domain.ContentItem,
) Result {
	start := time.Now()
	log := logger.FromContextOrDefault(ctx, g.logger).With(
		slog.String("generation_id", uuid.NewString()),
	)
	if item != nil {
		log = log.With(slog.Int64("item_id", item.ID), slog.String("bundle", item.Bundle))
	}

	result := g.run(ctx, log, settings, item)

	outcome := Outcome(result)
	duration := time.Since(start)
	if g.recorder != nil {
		g.recorder.ObserveGeneration(outcome, duration)
	}

	if f, ok := result.(Failure); ok {
		log.Warn("meta description generation failed",
			slog.String("kind", string(f.Kind)),
			slog.String("message", f.Message),
			slog.Duration("duration", duration))
	} else {
		log.Info("meta description generated", slog.Duration("duration", duration))
	}

	return result
}

func (g *MetaDescriptionGenerator) run(
	ctx context.Context,
	log *slog.Logger,
	settings domain.GenerationSettings,
	item *domain.ContentItem,
) Result {
	if !settings.Enabled {
		return fail(KindConfiguration, MsgDisabled)
	}

	if !g.providers.HasChatProvider() {
		return fail(KindConfiguration, MsgNoChatProvider)
	}

	if settings.DefaultProvider == "" {
		return fail(KindConfiguration, MsgNoDefaultProvider)
	}

	provider, providerCfg, ok := g.providers.Resolve(settings.DefaultProvider)
	if !ok {
		log.Warn("configured provider could not be resolved",
			slog.String("option", settings.DefaultProvider))
		return fail(KindResolution, MsgProviderUnavailable)
	}
	log = log.With(
		slog.String("provider", providerCfg.ProviderID),
		slog.String("model", providerCfg.ModelID),
	)

	text, err := g.extractor.ExtractText(ctx, item)
	if err != nil {
		log.Error("failed to extract content", slog.Any("error", err))
		return fail(KindContent, MsgExtractionFailed)
	}
	if text == "" {
		return fail(KindContent, MsgNoContent)
	}

	prompt := g.prompts.Build(settings.EffectivePersona(), text)
	log.Debug("sending generation request",
		slog.Int("system_prompt_length", len(prompt.System)),
		slog.Int("user_prompt_length", len(prompt.User)))

	raw, err := callProvider(ctx, provider, prompt, providerCfg.ModelID)
	if err != nil {
		var providerErr *ProviderError
		if errors.As(err, &providerErr) {
			log.Error("chat provider request failed", slog.Any("error", err))
			return fail(KindProvider, MsgRequestFailedPrefix+providerErr.Message)
		}
		log.Error("unexpected error during generation", slog.Any("error", err))
		return fail(KindUnexpected, MsgUnexpected)
	}

	description := g.postProcessor.PostProcess(raw)
	if description == "" {
		return fail(KindEmptyResponse, MsgEmptyResponse)
	}

	return Success{Description: description}
}

// callProvider invokes the provider and converts a panic into an error.
func callProvider(ctx context.Context, p ChatProvider, prompt Prompt, modelID string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProviderPanic, r)
		}
	}()

	return p.Chat(ctx, prompt.User, prompt.System, modelID)
}

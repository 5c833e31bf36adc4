package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/metadesc-api/internal/api"
	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/extract"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/metrics"
	"github.com/phrazzld/metadesc-api/internal/platform/anthropic"
	"github.com/phrazzld/metadesc-api/internal/platform/gemini"
	"github.com/phrazzld/metadesc-api/internal/platform/openai"
	"github.com/phrazzld/metadesc-api/internal/platform/postgres"
	"github.com/phrazzld/metadesc-api/internal/provider"
	"github.com/phrazzld/metadesc-api/internal/render"
	"github.com/phrazzld/metadesc-api/internal/service/auth"
	"github.com/phrazzld/metadesc-api/internal/settings"
	"github.com/phrazzld/metadesc-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds the wired dependencies shared by the commands.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	contents  store.ContentStore
	settings  settings.Loader
	providers api.ProviderCatalog
	generator generation.Generator
	jwt       auth.JWTService
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
}

// newApplication wires the pipeline against db. Metrics are registered with
// reg and exposed from gatherer.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	db *sql.DB,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) (*application, error) {
	registry, err := buildProviderRegistry(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}
	if !registry.HasChatProvider() {
		log.Warn("no LLM provider API key configured; generation will report a configuration failure")
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	m := metrics.New(reg)
	generator, err := generation.NewMetaDescriptionGenerator(
		registry,
		extract.NewTextExtractor(renderer),
		log,
		generation.WithRecorder(m),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    log,
		contents:  postgres.NewPostgresContentStore(db, log),
		settings:  settings.NewStore(cfg.Settings.Path, log),
		providers: registry,
		generator: generator,
		jwt:       jwtService,
		metrics:   m,
		gatherer:  gatherer,
	}, nil
}

// buildProviderRegistry registers every provider whose API key is set.
func buildProviderRegistry(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (*provider.Registry, error) {
	registry := provider.NewRegistry()

	if cfg.GeminiAPIKey != "" {
		p, err := gemini.NewChatProvider(ctx, log, cfg)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(provider.Definition{
			ID:     gemini.ProviderID,
			Label:  gemini.ProviderLabel,
			Models: provider.ModelsFromIDs(gemini.DefaultModels),
			Chat:   p,
		}); err != nil {
			return nil, err
		}
	}

	if cfg.OpenAIAPIKey != "" {
		p, err := openai.NewChatProvider(log, cfg)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(provider.Definition{
			ID:     openai.ProviderID,
			Label:  openai.ProviderLabel,
			Models: provider.ModelsFromIDs(openai.DefaultModels),
			Chat:   p,
		}); err != nil {
			return nil, err
		}
	}

	if cfg.AnthropicAPIKey != "" {
		p, err := anthropic.NewChatProvider(log, cfg)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(provider.Definition{
			ID:     anthropic.ProviderID,
			Label:  anthropic.ProviderLabel,
			Models: provider.ModelsFromIDs(anthropic.DefaultModels),
			Chat:   p,
		}); err != nil {
			return nil, err
		}
	}

	log.Info("LLM providers registered", "providers", registry.IDs())
	return registry, nil
}

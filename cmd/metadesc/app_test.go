package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/platform/anthropic"
	"github.com/phrazzld/metadesc-api/internal/platform/openai"
	"github.com/phrazzld/metadesc-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildProviderRegistry_NoKeys(t *testing.T) {
	registry, err := buildProviderRegistry(context.Background(), config.LLMConfig{MaxTokens: 300}, discardLogger())

	require.NoError(t, err)
	assert.False(t, registry.HasChatProvider())
	assert.Empty(t, registry.Options())
}

func TestBuildProviderRegistry_RegistersConfiguredProviders(t *testing.T) {
	cfg := config.LLMConfig{
		OpenAIAPIKey:    "sk-test",
		AnthropicAPIKey: "sk-ant-test",
		MaxTokens:       300,
		Temperature:     0.7,
	}

	registry, err := buildProviderRegistry(context.Background(), cfg, discardLogger())

	require.NoError(t, err)
	assert.Equal(t, []string{anthropic.ProviderID, openai.ProviderID}, registry.IDs())

	_, pc, ok := registry.Resolve(openai.ProviderID + "__" + openai.DefaultModels[0])
	require.True(t, ok)
	assert.Equal(t, openai.DefaultModels[0], pc.ModelID)

	_, _, ok = registry.Resolve("gemini__gemini-2.5-flash")
	assert.False(t, ok)
}

func TestTokenCommand(t *testing.T) {
	const secret = "test-jwt-secret-that-is-32-chars-long"
	t.Setenv("METADESC_DATABASE_URL", "postgres://localhost:5432/metadesc")
	t.Setenv("METADESC_AUTH_JWT_SECRET", secret)
	t.Setenv("METADESC_SERVER_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"token", "--subject", "editor@example.com"})

	require.NoError(t, root.Execute())

	svc, err := auth.NewJWTService(config.AuthConfig{JWTSecret: secret, TokenLifetime: time.Hour})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), string(bytes.TrimSpace(out.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", claims.Subject)
}

func TestTokenCommand_RequiresSubject(t *testing.T) {
	t.Setenv("METADESC_DATABASE_URL", "postgres://localhost:5432/metadesc")
	t.Setenv("METADESC_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars-long")
	t.Setenv("METADESC_SERVER_LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"token"})

	assert.Error(t, root.Execute())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Setenv("METADESC_DATABASE_URL", "")
	t.Setenv("METADESC_AUTH_JWT_SECRET", "short")

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"token", "--subject", "x"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestMigrateCommand_RejectsUnknownCommand(t *testing.T) {
	t.Setenv("METADESC_DATABASE_URL", "postgres://localhost:5432/metadesc")
	t.Setenv("METADESC_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars-long")
	t.Setenv("METADESC_SERVER_LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"migrate", "sideways"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

package anthropic

import (
	"context"
	"errors"
	"testing"

	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.LLMConfig {
	return config.LLMConfig{AnthropicAPIKey: "sk-ant-test", MaxTokens: 256, Temperature: 0.4}
}

func TestNewChatProvider_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewChatProvider(nil, config.LLMConfig{})
	assert.Error(t, err)

	p, err := NewChatProvider(nil, testConfig())
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestChat_PassesPromptsAndSettings(t *testing.T) {
	t.Parallel()

	var gotSystem, gotUser, gotKey string
	var gotSettings types.RequestSettings
	p := newChatProvider(nil, testConfig(), func(system, user, key string, s types.RequestSettings) (string, error) {
		gotSystem, gotUser, gotKey, gotSettings = system, user, key, s
		return "Anthropic description.", nil
	})

	text, err := p.Chat(context.Background(), "user prompt", "system prompt", "claude-3-5-haiku-latest")

	require.NoError(t, err)
	assert.Equal(t, "Anthropic description.", text)
	assert.Equal(t, "system prompt", gotSystem)
	assert.Equal(t, "user prompt", gotUser)
	assert.Equal(t, "sk-ant-test", gotKey)
	assert.Equal(t, "claude-3-5-haiku-latest", gotSettings.Model)
	assert.Equal(t, 256, gotSettings.MaxTokens)
	assert.InDelta(t, 0.4, gotSettings.Temperature, 1e-9)
}

func TestChat_WrapsErrors(t *testing.T) {
	t.Parallel()

	p := newChatProvider(nil, testConfig(), func(string, string, string, types.RequestSettings) (string, error) {
		return "", errors.New("overloaded_error: Overloaded")
	})

	_, err := p.Chat(context.Background(), "u", "s", "m")

	var providerErr *generation.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, ProviderID, providerErr.Provider)
	assert.Equal(t, "overloaded_error: Overloaded", providerErr.Message)
}

func TestChat_CancelledContext(t *testing.T) {
	t.Parallel()

	called := false
	p := newChatProvider(nil, testConfig(), func(string, string, string, types.RequestSettings) (string, error) {
		called = true
		return "x", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Chat(ctx, "u", "s", "m")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

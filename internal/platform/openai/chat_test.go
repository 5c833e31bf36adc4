package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model               string  `json:"model"`
	Temperature         float64 `json:"temperature"`
	MaxCompletionTokens int64   `json:"max_completion_tokens"`
	Messages            []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newProvider(t *testing.T, baseURL string) *openai.ChatProvider {
	t.Helper()
	p, err := openai.NewChatProvider(nil, config.LLMConfig{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		MaxTokens:     300,
		Temperature:   0.7,
	})
	require.NoError(t, err)
	return p
}

func TestNewChatProvider_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := openai.NewChatProvider(nil, config.LLMConfig{})
	assert.Error(t, err)
}

func TestChat_Success(t *testing.T) {
	t.Parallel()

	var captured capturedRequest
	srv := newServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "A useful description."}
		}]
	}`, &captured)

	text, err := newProvider(t, srv.URL).Chat(context.Background(), "user prompt", "system prompt", "gpt-4o-mini")

	require.NoError(t, err)
	assert.Equal(t, "A useful description.", text)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 1e-9)
	assert.Equal(t, int64(300), captured.MaxCompletionTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system prompt", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "user prompt", captured.Messages[1].Content)
}

func TestChat_NoChoices(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`, nil)

	text, err := newProvider(t, srv.URL).Chat(context.Background(), "u", "s", "m")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestChat_APIError(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"rate limited","type":"requests","param":null,"code":"rate_limit_exceeded"}}`, nil)

	_, err := newProvider(t, srv.URL).Chat(context.Background(), "u", "s", "gpt-4o-mini")

	var providerErr *generation.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, openai.ProviderID, providerErr.Provider)
	assert.Equal(t, "rate limited", providerErr.Message)
}

func TestChat_APIErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusBadGateway, `{"error":{"message":"","type":"server_error"}}`, nil)

	_, err := newProvider(t, srv.URL).Chat(context.Background(), "u", "s", "gpt-4o-mini")

	var providerErr *generation.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "502 Bad Gateway", providerErr.Message)
}

func TestChat_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newProvider(t, srv.URL).Chat(ctx, "u", "s", "m")

	var providerErr *generation.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.ErrorIs(t, err, context.Canceled)
}

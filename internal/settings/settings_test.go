package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "metadesc.settings.yaml", `
enabled: true
default_provider: " openai__gpt-4o-mini "
persona: a travel journalist
enabled_bundles:
  - article
  - " page "
  - ""
  - article
`)

	got, err := NewStore(path, nil).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.GenerationSettings{
		Enabled:         true,
		DefaultProvider: "openai__gpt-4o-mini",
		Persona:         "a travel journalist",
		EnabledBundles:  []string{"article", "page"},
	}, got)
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "settings.json", `{"enabled": false, "default_provider": "gemini__gemini-2.0-flash"}`)

	got, err := NewStore(path, nil).Load(context.Background())

	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, "gemini__gemini-2.0-flash", got.DefaultProvider)
	assert.Empty(t, got.EnabledBundles)
	assert.True(t, got.BundleEnabled("anything"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")

	got, err := NewStore(path, nil).Load(context.Background())

	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Empty(t, got.DefaultProvider)
	assert.Equal(t, domain.DefaultPersona, got.EffectivePersona())
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "broken.yaml", "enabled: [true\n")

	_, err := NewStore(path, nil).Load(context.Background())

	assert.Error(t, err)
}

func TestLoad_RereadsOnEveryCall(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "metadesc.settings.yaml", "enabled: false\n")
	store := NewStore(path, nil)

	first, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Enabled)

	require.NoError(t, os.WriteFile(path, []byte("enabled: true\npersona: an editor\n"), 0o600))

	second, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Enabled)
	assert.Equal(t, "an editor", second.Persona)
}

func TestLoad_SeesEachWriteImmediately(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "metadesc.settings.yaml", "enabled: true\n")
	store := NewStore(path, nil)

	for i := 0; i < 20; i++ {
		persona := fmt.Sprintf("editor %d", i)
		require.NoError(t, os.WriteFile(path, []byte("enabled: true\npersona: "+persona+"\n"), 0o600))

		got, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, persona, got.Persona)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore("unused.yaml", nil).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "metadesc.settings.yaml", "enabled: true\nenabled_bundles: [article]\n")
	store := NewStore(path, nil)

	var wg sync.WaitGroup
	results := make([]domain.GenerationSettings, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Load(context.Background())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Enabled)
		assert.Equal(t, []string{"article"}, results[i].EnabledBundles)
	}

	results[0].EnabledBundles[0] = "mutated"
	assert.Equal(t, "article", results[1].EnabledBundles[0])
}

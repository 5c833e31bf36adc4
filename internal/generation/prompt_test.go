package generation_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPromptBuilder(t *testing.T) {
	t.Parallel()

	b := generation.DefaultPromptBuilder{}

	t.Run("uses persona", func(t *testing.T) {
		p := b.Build("an SEO specialist", "Body text")
		assert.True(t, strings.HasPrefix(p.System, "You are an SEO specialist. "))
		assert.Contains(t, p.System, "155-200 characters")
		assert.Contains(t, p.System, "first 160 characters")
		assert.Contains(t, p.System, "Return ONLY the description")
	})

	t.Run("falls back to default persona", func(t *testing.T) {
		p := b.Build("  ", "Body text")
		assert.True(t, strings.HasPrefix(p.System, "You are a professional content writer. "))
	})

	t.Run("appends text verbatim", func(t *testing.T) {
		text := "Line with <b>markup</b> & symbols"
		p := b.Build("", text)
		assert.True(t, strings.HasPrefix(p.User, "Write a meta description between 155-200 characters"))
		assert.True(t, strings.HasSuffix(p.User, ":\n\n"+text))
	})
}

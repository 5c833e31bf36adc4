package generation

import (
	"fmt"
	"strings"

	"github.com/phrazzld/metadesc-api/internal/domain"
)

// Prompt is the pair of messages sent to a chat provider.
type Prompt struct {
	System string
	User   string
}

// PromptBuilder builds the prompts for one generation run.
type PromptBuilder interface {
	Build(persona, text string) Prompt
}

// DefaultPromptBuilder asks for a 155-200 character description with the
// key information in the first 160 characters.
type DefaultPromptBuilder struct{}

var _ PromptBuilder = DefaultPromptBuilder{}

const (
	systemPromptTemplate = "You are %s. Your task is to write meta descriptions for SEO that are " +
		"155-200 characters long. FRONT-LOAD the most important information in the first " +
		"160 characters (guaranteed visible). You can extend to 200 chars to add context. " +
		"Example: 'Discover how artificial intelligence transforms modern business operations " +
		"with machine learning, automation, and data analytics. Practical implementation " +
		"strategies for 2026.' (183 chars). Return ONLY the description, no formatting."

	userPromptPrefix = "Write a meta description between 155-200 characters for this content. " +
		"IMPORTANT: Front-load key information in the first 160 characters. " +
		"Make it engaging and informative:\n\n"
)

// Build returns the prompts for text. An empty persona falls back to
// domain.DefaultPersona. The text is appended to the user prompt verbatim.
func (DefaultPromptBuilder) Build(persona, text string) Prompt {
	persona = strings.TrimSpace(persona)
	if persona == "" {
		persona = domain.DefaultPersona
	}

	return Prompt{
		System: fmt.Sprintf(systemPromptTemplate, persona),
		User:   userPromptPrefix + text,
	}
}

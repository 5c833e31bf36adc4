// Package extract turns a rendered content item into the plain text sent to
// the language model.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/generation"
)

// MaxTextLength is the number of characters kept from the rendered text.
const MaxTextLength = 5000

const truncationSuffix = "..."

// nonContentSelector matches elements whose text is never shown to readers.
const nonContentSelector = "script, style, noscript, template"

// blockSelector matches elements that visually separate text. A space is
// inserted after each so adjacent blocks do not run together.
const blockSelector = "p, div, br, li, dt, dd, h1, h2, h3, h4, h5, h6, " +
	"tr, td, th, blockquote, pre, section, article, header, footer, figcaption"

// Renderer produces the full display markup of a content item.
type Renderer interface {
	Render(ctx context.Context, item *domain.ContentItem) (string, error)
}

// TextExtractor implements generation.ContentExtractor on top of a Renderer.
type TextExtractor struct {
	renderer Renderer
}

var _ generation.ContentExtractor = (*TextExtractor)(nil)

// NewTextExtractor returns an extractor using renderer.
func NewTextExtractor(renderer Renderer) *TextExtractor {
	return &TextExtractor{renderer: renderer}
}

// ExtractText renders item, strips the markup, decodes entities, collapses
// whitespace and truncates the result to MaxTextLength characters followed
// by "..." when longer.
func (e *TextExtractor) ExtractText(ctx context.Context, item *domain.ContentItem) (string, error) {
	if !item.HasRenderableBody() {
		return "", nil
	}

	markup, err := e.renderer.Render(ctx, item)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrExtractionFailed, err)
	}

	text, err := PlainText(markup)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrExtractionFailed, err)
	}

	return Truncate(text, MaxTextLength), nil
}

// PlainText strips all markup from an HTML fragment and returns its visible
// text with entities decoded and every whitespace run collapsed to a single
// space.
func PlainText(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	doc.Find(nonContentSelector).Remove()
	doc.Find(blockSelector).AfterHtml(" ")

	return normalizeText(doc.Text()), nil
}

// Truncate returns s cut to max characters with "..." appended when it was
// longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationSuffix
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

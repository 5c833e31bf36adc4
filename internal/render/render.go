// Package render produces the full display markup of a content item, the
// same representation a visitor sees on the item's page.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/phrazzld/metadesc-api/internal/domain"
)

// ViewModeFull is the only view mode rendered by HTMLRenderer.
const ViewModeFull = "full"

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// HTMLRenderer renders content items with the embedded view templates.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse view templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type view struct {
	Bundle  string
	Title   string
	Summary string
	Body    template.HTML
	Author  string
}

// Render returns the full view markup of item. Items without a title,
// summary or body render to "". The body is trusted editor markup and is
// emitted unescaped; every other field is escaped.
func (r *HTMLRenderer) Render(ctx context.Context, item *domain.ContentItem) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !item.HasRenderableBody() {
		return "", nil
	}

	v := view{
		Bundle:  item.Bundle,
		Title:   strings.TrimSpace(item.Title),
		Summary: strings.TrimSpace(item.Summary),
		// #nosec G203 -- body markup is stored by editors and rendered as-is on the site.
		Body:   template.HTML(item.Body),
		Author: strings.TrimSpace(item.Author),
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, ViewModeFull, v); err != nil {
		return "", fmt.Errorf("failed to render item %d: %w", item.ID, err)
	}
	return buf.String(), nil
}

package domain

import (
	"strings"
	"time"
)

// ContentItem is an editorial entity (an article, a page) whose rendered
// text is summarized into a meta description.
type ContentItem struct {
	ID        int64     `json:"id"`
	Bundle    string    `json:"bundle"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRenderableBody reports whether the item has anything a reader would see
// in its full display.
func (c *ContentItem) HasRenderableBody() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.Title) != "" ||
		strings.TrimSpace(c.Summary) != "" ||
		strings.TrimSpace(c.Body) != ""
}

// Validate checks the invariants a stored content item must satisfy.
func (c *ContentItem) Validate() error {
	if c.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	if strings.TrimSpace(c.Bundle) == "" {
		return NewValidationError("bundle", "is required", ErrValidation)
	}
	return nil
}

// Bundle is a content type that carries a meta description field.
type Bundle struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

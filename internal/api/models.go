package api

import (
	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/provider"
)

// GenerateResponse is returned by a successful generation.
type GenerateResponse struct {
	Description  string                  `json:"description"`
	Length       int                     `json:"length"`
	LengthStatus generation.LengthStatus `json:"length_status"`
	Regenerated  bool                    `json:"regenerated"`
}

// SettingsResponse describes the current generation settings together with
// the choices the settings form offers.
type SettingsResponse struct {
	Settings         domain.GenerationSettings `json:"settings"`
	EffectivePersona string                    `json:"effective_persona"`
	HasChatProvider  bool                      `json:"has_chat_provider"`
	ProviderOptions  []provider.Option         `json:"provider_options"`
	Bundles          []domain.Bundle           `json:"bundles"`
}

// CreateContentRequest defines the payload for storing a content item.
type CreateContentRequest struct {
	ID        int64  `json:"id"        validate:"required,gt=0"`
	Bundle    string `json:"bundle"    validate:"required,max=64"`
	Title     string `json:"title"     validate:"max=255"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Author    string `json:"author"    validate:"max=255"`
	Published bool   `json:"published"`
}

// toDomain converts the request into a content item.
func (r CreateContentRequest) toDomain() *domain.ContentItem {
	return &domain.ContentItem{
		ID:        r.ID,
		Bundle:    r.Bundle,
		Title:     r.Title,
		Summary:   r.Summary,
		Body:      r.Body,
		Author:    r.Author,
		Published: r.Published,
	}
}

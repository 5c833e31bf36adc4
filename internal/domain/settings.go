package domain

import (
	"fmt"
	"strings"
)

// DefaultPersona is used when the settings leave the persona blank.
const DefaultPersona = "a professional content writer"

// providerOptionSeparator joins provider and model ids in a provider option.
const providerOptionSeparator = "__"

// GenerationSettings is the editor-managed configuration of the generator.
// It is read at call time and never mutated by the pipeline.
type GenerationSettings struct {
	Enabled         bool     `mapstructure:"enabled" json:"enabled"`
	DefaultProvider string   `mapstructure:"default_provider" json:"default_provider"`
	Persona         string   `mapstructure:"persona" json:"persona"`
	EnabledBundles  []string `mapstructure:"enabled_bundles" json:"enabled_bundles"`
}

// EffectivePersona returns the configured persona or DefaultPersona when blank.
func (s GenerationSettings) EffectivePersona() string {
	if p := strings.TrimSpace(s.Persona); p != "" {
		return p
	}
	return DefaultPersona
}

// BundleEnabled reports whether generation is offered for the bundle.
// An empty bundle list enables every bundle.
func (s GenerationSettings) BundleEnabled(bundle string) bool {
	if len(s.EnabledBundles) == 0 {
		return true
	}
	for _, b := range s.EnabledBundles {
		if b == bundle {
			return true
		}
	}
	return false
}

// ProviderConfig is the provider/model pair derived from the settings.
// ProviderID is empty when no chat-capable provider is configured.
type ProviderConfig struct {
	ProviderID string `json:"provider_id,omitempty"`
	ModelID    string `json:"model_id"`
}

// HasProvider reports whether a provider was selected.
func (p ProviderConfig) HasProvider() bool {
	return p.ProviderID != ""
}

// Option returns the "<provider>__<model>" form of the config.
func (p ProviderConfig) Option() string {
	if !p.HasProvider() {
		return ""
	}
	return p.ProviderID + providerOptionSeparator + p.ModelID
}

// ParseProviderOption splits a "<provider>__<model>" option. The model part
// may itself contain the separator; only the first occurrence splits.
func ParseProviderOption(option string) (ProviderConfig, error) {
	option = strings.TrimSpace(option)
	if option == "" {
		return ProviderConfig{}, nil
	}

	providerID, modelID, ok := strings.Cut(option, providerOptionSeparator)
	if !ok || providerID == "" || modelID == "" {
		return ProviderConfig{}, fmt.Errorf("%w: %q", ErrInvalidProviderOption, option)
	}

	return ProviderConfig{ProviderID: providerID, ModelID: modelID}, nil
}

package domain

import (
	"errors"
	"testing"
)

func TestEffectivePersona(t *testing.T) {
	t.Parallel()

	if got := (GenerationSettings{}).EffectivePersona(); got != DefaultPersona {
		t.Errorf("Expected default persona %q, got %q", DefaultPersona, got)
	}

	if got := (GenerationSettings{Persona: "   "}).EffectivePersona(); got != DefaultPersona {
		t.Errorf("Expected blank persona to fall back to %q, got %q", DefaultPersona, got)
	}

	s := GenerationSettings{Persona: "an SEO specialist for e-commerce"}
	if got := s.EffectivePersona(); got != "an SEO specialist for e-commerce" {
		t.Errorf("Expected configured persona, got %q", got)
	}
}

func TestBundleEnabled(t *testing.T) {
	t.Parallel()

	all := GenerationSettings{}
	if !all.BundleEnabled("article") || !all.BundleEnabled("page") {
		t.Error("Expected an empty bundle list to enable every bundle")
	}

	some := GenerationSettings{EnabledBundles: []string{"article"}}
	if !some.BundleEnabled("article") {
		t.Error("Expected article to be enabled")
	}
	if some.BundleEnabled("page") {
		t.Error("Expected page to be disabled")
	}
}

func TestParseProviderOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		option   string
		expected ProviderConfig
		wantErr  bool
	}{
		{name: "empty", option: "", expected: ProviderConfig{}},
		{name: "whitespace", option: "  ", expected: ProviderConfig{}},
		{
			name:     "simple",
			option:   "openai__gpt-4o-mini",
			expected: ProviderConfig{ProviderID: "openai", ModelID: "gpt-4o-mini"},
		},
		{
			name:     "model containing separator",
			option:   "gemini__models__gemini-2.0-flash",
			expected: ProviderConfig{ProviderID: "gemini", ModelID: "models__gemini-2.0-flash"},
		},
		{name: "missing separator", option: "openai", wantErr: true},
		{name: "missing model", option: "openai__", wantErr: true},
		{name: "missing provider", option: "__gpt-4o", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProviderOption(tt.option)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProviderOption) {
					t.Fatalf("Expected ErrInvalidProviderOption, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestProviderConfigOption(t *testing.T) {
	t.Parallel()

	if (ProviderConfig{}).HasProvider() {
		t.Error("Expected empty config to have no provider")
	}
	if got := (ProviderConfig{}).Option(); got != "" {
		t.Errorf("Expected empty option, got %q", got)
	}

	cfg := ProviderConfig{ProviderID: "anthropic", ModelID: "claude-sonnet-4-20250514"}
	if got := cfg.Option(); got != "anthropic__claude-sonnet-4-20250514" {
		t.Errorf("Unexpected option %q", got)
	}
}

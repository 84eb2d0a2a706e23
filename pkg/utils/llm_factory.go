package utils

import (
	"fmt"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
	ProviderOpenAI = "openai"
)

type LLMProviderConfig struct {
	Provider   string
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
}

// NewLLMClient creates the client for the configured provider.
func NewLLMClient(cfg LLMProviderConfig) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %q", cfg.Provider)
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			ImageModel: cfg.ImageModel,
			BaseURL:    cfg.BaseURL,
		}), nil
	case ProviderGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	case ProviderGenAI:
		return NewGenAIClient(GenAIConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			ImageModel: cfg.ImageModel,
			BaseURL:    cfg.BaseURL,
		})
	default:
		return nil, fmt.Errorf("%w: %s. Use 'genai', 'gemini' or 'openai'", ErrUnsupportedProvider, cfg.Provider)
	}
}

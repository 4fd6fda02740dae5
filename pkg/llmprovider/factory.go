package llmprovider

import (
	"fmt"
	"sort"
	"time"

	"autonomous-barman/config"
	"autonomous-barman/pkg/gemini"
	"autonomous-barman/pkg/openai"
)

// Primary returns the highest priority enabled entry of config.LLMConfig.
func Primary(cfg *config.LLMConfig) (config.ProviderConfig, error) {
	if cfg == nil {
		return config.ProviderConfig{}, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return config.ProviderConfig{}, ErrNoProvidersConfigured
	}

	// Sort by priority (ascending order)
	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})
	return enabledProviders[0], nil
}

// InitializeProvider creates the Provider for the primary entry of config.LLMConfig.
// Lower priority entries are never called, so a failure to build the primary is fatal.
func InitializeProvider(cfg *config.LLMConfig) (Provider, error) {
	primary, err := Primary(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := createProvider(primary, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %s (priority %d): %w", primary.Name, primary.Priority, err)
	}
	return provider, nil
}

// NewManagerConfig derives the manager sampling defaults from the primary entry.
// Gemini gets the top-p the persona was tuned with; other vendors keep their own default.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	primary, err := Primary(cfg)
	if err != nil {
		return nil, err
	}

	mc := &Config{
		Timeout:     cfg.Timeout,
		Temperature: primary.Temperature,
		MaxTokens:   primary.MaxTokens,
	}
	if primary.Name == "gemini" {
		mc.TopP = gemini.DefaultTopP
	}
	return mc, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig, fallbackTimeout time.Duration) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := fallbackTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case openai.VendorGroq, openai.VendorDeepSeek, openai.VendorQwen, "alibaba", openai.VendorOpenAI:
		vendor := cfg.Name
		if vendor == "alibaba" {
			vendor = openai.VendorQwen
		}
		client, err := openai.New(openai.Config{
			Vendor:  vendor,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", vendor, err)
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

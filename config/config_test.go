package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadIn(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	viper.Reset()

	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	}
	t.Chdir(dir)

	return Load()
}

func TestLoad_DefaultsWithGroqKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := loadIn(t, "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, ResolverPattern, cfg.Bar.Resolver)
	assert.Equal(t, PortionTasting, cfg.Bar.PortionMode)
	assert.Equal(t, "192.168.12.120", cfg.Dispenser.Host)
	assert.Equal(t, 5000, cfg.Dispenser.Port)
	assert.Equal(t, "/hacer_trago", cfg.Dispenser.Path)
	assert.Equal(t, 10*time.Second, cfg.Dispenser.Timeout)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)

	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "groq", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "gsk-test", cfg.LLM.Providers[0].APIKey)
}

func TestLoad_MissingCredentialIsFatal(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := loadIn(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is missing")
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := loadIn(t, `
bar:
  resolver: command
  portion_mode: FULL
  max_history_turns: 4
dispenser:
  host: 10.0.0.5
  port: 8000
  timeout: 3s
llm:
  timeout: 12s
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${GEMINI_API_KEY}
      model: gemini-2.5-flash
      temperature: 0.7
      max_tokens: 500
    - name: groq
      enabled: false
      priority: 2
      model: llama-3.3-70b-versatile
`)
	require.NoError(t, err)

	assert.Equal(t, ResolverCommand, cfg.Bar.Resolver)
	assert.Equal(t, PortionFull, cfg.Bar.PortionMode)
	assert.Equal(t, 4, cfg.Bar.MaxHistoryTurns)
	assert.Equal(t, "10.0.0.5", cfg.Dispenser.Host)
	assert.Equal(t, 3*time.Second, cfg.Dispenser.Timeout)
	assert.Equal(t, 12*time.Second, cfg.LLM.Timeout)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "g-key", cfg.LLM.Providers[0].APIKey)
	assert.InDelta(t, 0.7, cfg.LLM.Providers[0].Temperature, 1e-9)
	assert.Equal(t, 500, cfg.LLM.Providers[0].MaxTokens)
}

func TestLoad_RejectsUnknownResolver(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	_, err := loadIn(t, "bar:\n  resolver: magic\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar.resolver")
}

func TestLoad_RejectsUnknownPortionMode(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	_, err := loadIn(t, "bar:\n  portion_mode: double\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar.portion_mode")
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "a", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				{Name: "b", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "secondary without key is fine",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "a", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				{Name: "b", Enabled: true, Priority: 2, Model: "m"},
			}},
		},
		{
			name: "unexpanded placeholder",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "a", Enabled: true, Priority: 1, APIKey: "${NOPE}", Model: "m"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

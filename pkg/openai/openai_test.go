package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantURL string
		wantMdl string
		wantErr bool
	}{
		{name: "groq defaults", cfg: Config{Vendor: VendorGroq, APIKey: "k"}, wantURL: "https://api.groq.com/openai/v1", wantMdl: "llama-3.3-70b-versatile"},
		{name: "explicit model kept", cfg: Config{Vendor: VendorDeepSeek, APIKey: "k", Model: "deepseek-reasoner"}, wantURL: "https://api.deepseek.com/v1", wantMdl: "deepseek-reasoner"},
		{name: "missing key", cfg: Config{Vendor: VendorGroq}, wantErr: true},
		{name: "unknown vendor needs url", cfg: Config{Vendor: "local", APIKey: "k", Model: "m"}, wantErr: true},
		{name: "unknown vendor with url", cfg: Config{Vendor: "local", APIKey: "k", BaseURL: "http://localhost:1234/v1", Model: "m"}, wantURL: "http://localhost:1234/v1", wantMdl: "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.BaseURL)
			assert.Equal(t, tt.wantMdl, cfg.Model)
			assert.Equal(t, DefaultTimeout, cfg.Timeout)
		})
	}
}

func TestChat(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		MaxTokens int `json:"max_tokens"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "c1", "object": "chat.completion", "model": "llama-3.3-70b-versatile",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "¡Marchando! 🍹"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
		}`))
	}))
	defer srv.Close()

	c, err := New(Config{Vendor: VendorGroq, APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, VendorGroq, c.Vendor())

	res, err := c.Chat(context.Background(), &Request{
		Messages: []Message{
			{Role: "system", Content: "barman"},
			{Role: "model", Content: "hola"},
			{Role: "user", Content: "fanta"},
		},
		MaxTokens: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, "¡Marchando! 🍹", res.Content)
	assert.Equal(t, "stop", res.FinishReason)
	assert.Equal(t, 16, res.Usage.TotalTokens)

	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Equal(t, "user", got.Messages[2].Role)
}

func TestChat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	c, err := New(Config{Vendor: VendorGroq, APIKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Chat(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "hola"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq")
}

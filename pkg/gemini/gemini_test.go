package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent(t *testing.T) {
	var got generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "¡Hola! "}, {"text": "¿Qué te sirvo?"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 20, "candidatesTokenCount": 6, "totalTokenCount": 26}
		}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "secret", APIURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model())

	res, err := c.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "Eres un barman"}}},
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "hola"}}},
			{Role: "assistant", Parts: []Part{{Text: "¡Bienvenido!"}}},
			{Role: "user", Parts: []Part{{Text: "fanta"}}},
		},
		Temperature: 0.7,
		TopP:        DefaultTopP,
		MaxTokens:   500,
	})
	require.NoError(t, err)

	assert.Equal(t, "¡Hola! ¿Qué te sirvo?", res.Content.Text())
	assert.Equal(t, "STOP", res.FinishReason)
	assert.Equal(t, 26, res.Usage.TotalTokens)

	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "Eres un barman", got.SystemInstruction.Text())
	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "model", got.Contents[1].Role)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 500, got.GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.8, got.GenerationConfig.TopP, 1e-9)
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", APIURL: srv.URL})
	require.NoError(t, err)

	res, err := c.GenerateContent(context.Background(), &Request{Messages: []Content{{Role: "user", Parts: []Part{{Text: "hola"}}}}})
	require.NoError(t, err)
	assert.Empty(t, res.Content.Text())
	assert.NotNil(t, res.Usage)
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "bad", APIURL: srv.URL})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), &Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestGeminiRole(t *testing.T) {
	assert.Equal(t, "model", geminiRole("assistant"))
	assert.Equal(t, "model", geminiRole("model"))
	assert.Equal(t, "user", geminiRole("user"))
	assert.Equal(t, "user", geminiRole(""))
}

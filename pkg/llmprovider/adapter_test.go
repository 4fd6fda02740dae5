package llmprovider

import (
	"context"
	"testing"

	"autonomous-barman/pkg/gemini"
	"autonomous-barman/pkg/openai"
)

type fakeGemini struct{ got *gemini.Request }

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "¡Sale "}, {Text: "una sangría!"}}},
		Usage:   &gemini.Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-2.5-flash" }

type fakeOpenAI struct{ got *openai.Request }

func (f *fakeOpenAI) Chat(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	f.got = req
	return &openai.Response{Content: "¡Marchando!", Usage: openai.Usage{TotalTokens: 9}}, nil
}

func (f *fakeOpenAI) Vendor() string { return "groq" }
func (f *fakeOpenAI) Model() string  { return "llama-3.3-70b-versatile" }

func chatRequest() *Request {
	sys := TextMessage("system", "Eres un barman")
	return &Request{
		SystemInstruction: &sys,
		Messages: []Message{
			TextMessage("user", "hola"),
			TextMessage("assistant", "¡Bienvenido!"),
			TextMessage("user", "sangria"),
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}
}

func TestGeminiAdapter(t *testing.T) {
	fake := &fakeGemini{}
	resp, err := NewGeminiAdapter(fake).GenerateContent(context.Background(), chatRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Content.Text() != "¡Sale una sangría!" {
		t.Errorf("Unexpected text: %q", resp.Content.Text())
	}
	if resp.ProviderName != "gemini" || resp.Usage.TotalTokens != 7 {
		t.Errorf("Unexpected metadata: %+v", resp)
	}
	if fake.got.SystemInstruction == nil || fake.got.SystemInstruction.Text() != "Eres un barman" {
		t.Error("System instruction not forwarded")
	}
	if len(fake.got.Messages) != 3 || fake.got.Messages[1].Role != "assistant" {
		t.Errorf("History not forwarded: %+v", fake.got.Messages)
	}
}

func TestOpenAIAdapter(t *testing.T) {
	fake := &fakeOpenAI{}
	resp, err := NewOpenAIAdapter(fake).GenerateContent(context.Background(), chatRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Content.Text() != "¡Marchando!" {
		t.Errorf("Unexpected text: %q", resp.Content.Text())
	}
	if resp.ProviderName != "groq" || resp.ModelName != "llama-3.3-70b-versatile" {
		t.Errorf("Unexpected metadata: %+v", resp)
	}

	msgs := fake.got.Messages
	if len(msgs) != 4 {
		t.Fatalf("Expected system + 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[0].Content != "Eres un barman" {
		t.Errorf("System message must lead: %+v", msgs[0])
	}
	if msgs[3].Content != "sangria" {
		t.Errorf("User message must trail: %+v", msgs[3])
	}
	if fake.got.MaxTokens != 500 {
		t.Errorf("Expected max tokens forwarded, got %d", fake.got.MaxTokens)
	}
}

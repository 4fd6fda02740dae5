package openai

import (
	"context"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

type client struct {
	vendor string
	model  string
	api    *goopenai.Client
}

func newClient(cfg Config) *client {
	conf := goopenai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = cfg.BaseURL
	conf.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &client{
		vendor: cfg.Vendor,
		model:  cfg.Model,
		api:    goopenai.NewClientWithConfig(conf),
	}
}

func (c *client) Vendor() string { return c.vendor }
func (c *client) Model() string  { return c.model }

// Chat sends one completion request and returns the first choice.
func (c *client) Chat(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: chatRole(m.Role), Content: m.Content})
	}

	res, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion: %w", c.vendor, err)
	}

	out := &Response{
		Model: res.Model,
		Usage: Usage{
			InputTokens:  res.Usage.PromptTokens,
			OutputTokens: res.Usage.CompletionTokens,
			TotalTokens:  res.Usage.TotalTokens,
		},
	}
	if len(res.Choices) > 0 {
		out.Content = res.Choices[0].Message.Content
		out.FinishReason = string(res.Choices[0].FinishReason)
	}
	return out, nil
}

func chatRole(role string) string {
	switch role {
	case goopenai.ChatMessageRoleSystem:
		return goopenai.ChatMessageRoleSystem
	case goopenai.ChatMessageRoleAssistant, "model":
		return goopenai.ChatMessageRoleAssistant
	default:
		return goopenai.ChatMessageRoleUser
	}
}

package openai

import (
	"errors"
	"fmt"
	"time"
)

// Config configures a client for one OpenAI-compatible vendor.
type Config struct {
	Vendor  string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Validate checks required fields and fills vendor defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai: API key is required")
	}
	if c.Vendor == "" {
		c.Vendor = VendorOpenAI
	}

	def, known := vendorDefaults[c.Vendor]
	if !known && c.BaseURL == "" {
		return fmt.Errorf("openai: unknown vendor %q without base_url", c.Vendor)
	}
	if c.BaseURL == "" {
		c.BaseURL = def.baseURL
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("openai: model is required for vendor %q", c.Vendor)
		}
		c.Model = def.model
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Message is a single chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Request is a chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Response is the first choice of a completion.
type Response struct {
	Content      string
	FinishReason string
	Model        string
	Usage        Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

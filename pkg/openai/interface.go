package openai

import "context"

// IOpenAI is a chat completion client for OpenAI-compatible APIs.
type IOpenAI interface {
	Chat(ctx context.Context, req *Request) (*Response, error)
	Vendor() string
	Model() string
}

// New creates a client for the configured vendor.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}

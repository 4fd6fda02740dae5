package llmprovider

import (
	"context"
	"errors"
	"strings"
	"time"

	"autonomous-barman/pkg/log"
)

// Manager invokes the primary provider once per request under a bounded timeout.
// It never retries and never falls back to another provider.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout     time.Duration
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Name returns the wrapped provider name.
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the wrapped provider model.
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// GenerateContent calls the provider exactly once.
// Request sampling fields left at zero are filled from the manager config.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	r := *req
	if r.Temperature == 0 {
		r.Temperature = m.config.Temperature
	}
	if r.TopP == 0 {
		r.TopP = m.config.TopP
	}
	if r.MaxTokens == 0 {
		r.MaxTokens = m.config.MaxTokens
	}

	resp, err := m.provider.GenerateContent(ctx, &r)
	if err == nil && strings.TrimSpace(resp.Content.Text()) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = errors.Join(ErrProviderTimeout, err)
		}
		m.logFailure(ctx, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	m.logSuccess(ctx, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"error", err.Error(),
	)
}

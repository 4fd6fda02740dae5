package dispenser

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"
)

type client struct {
	cfg  Config
	http *resty.Client
}

func newClient(cfg Config) *client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &client{cfg: cfg, http: rc}
}

func (c *client) Endpoint() string {
	return c.cfg.BaseURL() + c.cfg.Path
}

func (c *client) Dispense(ctx context.Context, plan any) (*Reply, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(plan).
		Post(c.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("dispenser: POST %s: %w", c.cfg.Path, err)
	}

	body := res.Bytes()
	if !res.IsSuccess() {
		return nil, &StatusError{StatusCode: res.StatusCode(), Body: truncate(string(body), 200)}
	}
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}

	return &Reply{StatusCode: res.StatusCode(), Body: body}, nil
}

func (c *client) Status(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.getJSON(ctx, c.cfg.StatusPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.getJSON(ctx, c.cfg.HealthPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("dispenser: GET %s: %w", path, err)
	}

	body := res.Bytes()
	if !res.IsSuccess() {
		return &StatusError{StatusCode: res.StatusCode(), Body: truncate(string(body), 200)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

func (c *client) Close() error {
	return c.http.Close()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

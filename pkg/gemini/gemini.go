package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"
)

type geminiImpl struct {
	apiKey string
	model  string
	http   *resty.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		http: resty.New().
			SetBaseURL(cfg.APIURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiResp, err := g.callAPI(ctx, g.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return g.transformResponse(geminiResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	res, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}

	if !res.IsSuccess() {
		var apiErr apiError
		if json.Unmarshal(res.Bytes(), &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("gemini: API error %d: %s", res.StatusCode(), apiErr.Error.Message)
		}
		return nil, fmt.Errorf("gemini: API error %d: %s", res.StatusCode(), res.String())
	}

	var result generateResponse
	if err := json.Unmarshal(res.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts request to Gemini API format
func (g *geminiImpl) transformRequest(req *Request) generateRequest {
	out := generateRequest{
		Contents: make([]Content, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &Content{Parts: req.SystemInstruction.Parts}
	}

	for i, msg := range req.Messages {
		out.Contents[i] = Content{Role: geminiRole(msg.Role), Parts: msg.Parts}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 || req.TopP > 0 {
		out.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			TopP:            req.TopP,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return out
}

// geminiRole maps chat roles onto the two Gemini accepts.
func geminiRole(role string) string {
	switch role {
	case "assistant", roleModel:
		return roleModel
	default:
		return roleUser
	}
}

// transformResponse converts Gemini API response to standard format
func (g *geminiImpl) transformResponse(resp *generateResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		return out
	}

	c := resp.Candidates[0]
	out.Content = Content{Role: c.Content.Role, Parts: c.Content.Parts}
	out.FinishReason = c.FinishReason
	return out
}

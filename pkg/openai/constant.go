package openai

import "time"

const (
	VendorGroq     = "groq"
	VendorDeepSeek = "deepseek"
	VendorQwen     = "qwen"
	VendorOpenAI   = "openai"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// vendorDefaults holds the OpenAI-compatible endpoint and model of each vendor.
var vendorDefaults = map[string]struct {
	baseURL string
	model   string
}{
	VendorGroq:     {baseURL: "https://api.groq.com/openai/v1", model: "llama-3.3-70b-versatile"},
	VendorDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	VendorQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	VendorOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
}

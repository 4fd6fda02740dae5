package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ResolverPattern = "pattern"
	ResolverCommand = "command"

	PortionTasting = "tasting"
	PortionFull    = "full"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Telemetry  TelemetryConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Barman specifics
	Dispenser DispenserConfig
	Bar       BarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type TelemetryConfig struct {
	Enabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	Timeout   time.Duration    `yaml:"timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	Enabled     bool    `yaml:"enabled"`
	Priority    int     `yaml:"priority"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Model       string  `yaml:"model"`
	Timeout     string  `yaml:"timeout"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// DispenserConfig points at the beverage controller.
type DispenserConfig struct {
	Host       string
	Port       int
	Path       string
	StatusPath string
	HealthPath string
	Timeout    time.Duration
}

// BarConfig selects the ordering behaviour.
type BarConfig struct {
	Resolver        string
	PortionMode     string
	CatalogPath     string
	MaxHistoryTurns int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Telemetry.Enabled = viper.GetBool("telemetry.enabled")

	// Dispenser
	cfg.Dispenser.Host = viper.GetString("dispenser.host")
	cfg.Dispenser.Port = viper.GetInt("dispenser.port")
	cfg.Dispenser.Path = viper.GetString("dispenser.path")
	cfg.Dispenser.StatusPath = viper.GetString("dispenser.status_path")
	cfg.Dispenser.HealthPath = viper.GetString("dispenser.health_path")
	cfg.Dispenser.Timeout = viper.GetDuration("dispenser.timeout")

	// Bar
	cfg.Bar.Resolver = strings.ToLower(viper.GetString("bar.resolver"))
	cfg.Bar.PortionMode = strings.ToLower(viper.GetString("bar.portion_mode"))
	cfg.Bar.CatalogPath = viper.GetString("bar.catalog_path")
	cfg.Bar.MaxHistoryTurns = viper.GetInt("bar.max_history_turns")

	// LLM Provider Abstraction
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:        getStringFromMap(providerMap, "name"),
						Enabled:     getBoolFromMap(providerMap, "enabled"),
						Priority:    getIntFromMap(providerMap, "priority"),
						APIKey:      expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:     getStringFromMap(providerMap, "base_url"),
						Model:       getStringFromMap(providerMap, "model"),
						Timeout:     getStringFromMap(providerMap, "timeout"),
						Temperature: getFloatFromMap(providerMap, "temperature"),
						MaxTokens:   getIntFromMap(providerMap, "max_tokens"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// No providers configured: default to Groq with the key from GROQ_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   expandEnvVar("${GROQ_API_KEY}"),
			Model:    "llama-3.3-70b-versatile",
		}}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("telemetry.enabled", false)

	// Dispenser defaults match the bar's controller on the local network
	viper.SetDefault("dispenser.host", "192.168.12.120")
	viper.SetDefault("dispenser.port", 5000)
	viper.SetDefault("dispenser.path", "/hacer_trago")
	viper.SetDefault("dispenser.status_path", "/estado")
	viper.SetDefault("dispenser.health_path", "/health")
	viper.SetDefault("dispenser.timeout", "10s")

	viper.SetDefault("bar.resolver", ResolverPattern)
	viper.SetDefault("bar.portion_mode", PortionTasting)
	viper.SetDefault("bar.max_history_turns", 20)

	// LLM defaults
	viper.SetDefault("llm.timeout", "30s")
}

func validate(cfg *Config) error {
	switch cfg.Bar.Resolver {
	case ResolverPattern, ResolverCommand:
	default:
		return fmt.Errorf("bar.resolver must be %q or %q, got %q", ResolverPattern, ResolverCommand, cfg.Bar.Resolver)
	}

	switch cfg.Bar.PortionMode {
	case PortionTasting, PortionFull:
	default:
		return fmt.Errorf("bar.portion_mode must be %q or %q, got %q", PortionTasting, PortionFull, cfg.Bar.PortionMode)
	}

	if cfg.Dispenser.Host == "" || cfg.Dispenser.Port <= 0 {
		return fmt.Errorf("dispenser.host and dispenser.port are required")
	}
	if cfg.Dispenser.Timeout <= 0 {
		return fmt.Errorf("dispenser.timeout must be positive")
	}
	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}

	return validateLLMConfig(&cfg.LLM)
}

// validateLLMConfig validates the LLM configuration.
// The highest priority enabled provider is the one that will be called, so it must carry a key.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	priorityMap := make(map[int]bool)
	var enabled []ProviderConfig

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
		enabled = append(enabled, provider)
	}

	if len(enabled) == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })
	if primary := enabled[0]; primary.APIKey == "" || strings.HasPrefix(primary.APIKey, "${") {
		return fmt.Errorf("provider %s: API key is missing", primary.Name)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}

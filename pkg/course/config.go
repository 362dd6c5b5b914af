package course

import (
	"errors"
	"fmt"
	"os"

	"github.com/germanamz/promptour/pkg/modeladapter"
	"github.com/germanamz/promptour/pkg/providers/anthropic"
	"github.com/germanamz/promptour/pkg/providers/openai"
	"gopkg.in/yaml.v3"
)

// Config is the top-level walkthrough configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
}

// ProviderConfig describes the LLM provider the lessons talk to.
type ProviderConfig struct {
	Kind        string  `yaml:"kind"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// providerDefaults maps a provider kind to its conventional endpoint, model,
// and API key environment variable.
var providerDefaults = map[string]ProviderConfig{
	"openai": {
		Kind:    "openai",
		BaseURL: "https://api.openai.com",
		Model:   "gpt-4o-mini",
		APIKey:  "${OPENAI_API_KEY}",
	},
	"anthropic": {
		Kind:    "anthropic",
		BaseURL: "https://api.anthropic.com",
		Model:   "claude-3-5-haiku-latest",
		APIKey:  "${ANTHROPIC_API_KEY}",
	},
}

// DefaultConfig returns the configuration used when no config file exists:
// the OpenAI provider with its conventional endpoint and the API key taken
// from the environment.
func DefaultConfig() Config {
	cfg := Config{Provider: providerDefaults["openai"]}
	cfg.Provider.APIKey = os.Getenv("OPENAI_API_KEY")

	return cfg
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// API keys can be kept in the environment (e.g. loaded from a .env file)
// rather than committed in the config. A missing file is not an error; the
// defaults are returned instead.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("course: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("course: parse config: %w", err)
	}

	cfg.Provider = cfg.Provider.withDefaults()

	return cfg, nil
}

// withDefaults fills empty fields from the defaults for the provider kind.
// The API key default is resolved against the environment, not left as a
// literal ${VAR} reference.
func (p ProviderConfig) withDefaults() ProviderConfig {
	if p.Kind == "" {
		p.Kind = "openai"
	}

	d, ok := providerDefaults[p.Kind]
	if !ok {
		return p
	}

	if p.BaseURL == "" {
		p.BaseURL = d.BaseURL
	}
	if p.Model == "" {
		p.Model = d.Model
	}
	if p.APIKey == "" {
		p.APIKey = os.ExpandEnv(d.APIKey)
	}

	return p
}

// NewCompleter builds the configured provider adapter. An empty API key is
// not an error here; the adapter reports it at call time, before any network
// I/O.
func (c Config) NewCompleter() (modeladapter.Completer, error) {
	p := c.Provider

	switch p.Kind {
	case "openai":
		a := openai.New(p.BaseURL, p.APIKey, p.Model)
		a.Temperature = p.Temperature
		a.MaxTokens = p.MaxTokens

		return a, nil
	case "anthropic":
		a := anthropic.New(p.BaseURL, p.APIKey, p.Model)
		a.Temperature = p.Temperature
		if p.MaxTokens > 0 {
			a.MaxTokens = p.MaxTokens
		}

		return a, nil
	default:
		return nil, fmt.Errorf("course: unknown provider kind %q", p.Kind)
	}
}

// Package config provides loading and parsing of AgentKeeper configuration:
// provider credentials and model choices, store backend selection, and the
// default provider, from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the SDK.
type Config struct {
	// DefaultProvider names the provider used when a query does not pick
	// one explicitly. Defaults to "anthropic".
	DefaultProvider string `yaml:"default_provider,omitempty"`

	// Providers holds per-provider credentials and model choices.
	Providers Providers `yaml:"providers,omitempty"`

	// Store selects and configures the persistence backend.
	Store StoreConfig `yaml:"store,omitempty"`
}

// Providers holds the configuration for each supported provider.
type Providers struct {
	OpenAI    ProviderConfig `yaml:"openai,omitempty"`
	Anthropic ProviderConfig `yaml:"anthropic,omitempty"`
	Gemini    ProviderConfig `yaml:"gemini,omitempty"`
	Ollama    OllamaConfig   `yaml:"ollama,omitempty"`
}

// ProviderConfig configures an API-key provider.
type ProviderConfig struct {
	// APIKey authenticates against the provider. Values in YAML may use
	// ${VAR} references, expanded at load time.
	APIKey string `yaml:"api_key,omitempty"`

	// Model overrides the provider's default model.
	Model string `yaml:"model,omitempty"`
}

// OllamaConfig configures a local Ollama server.
type OllamaConfig struct {
	// Host is the server base URL. Defaults to http://localhost:11434.
	Host string `yaml:"host,omitempty"`

	// Model overrides the default model (llama3).
	Model string `yaml:"model,omitempty"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "redis", "etcd", or "memory".
	// Defaults to "sqlite".
	Backend string `yaml:"backend,omitempty"`

	// Path is the database file path for the sqlite backend.
	Path string `yaml:"path,omitempty"`

	// URL is the connection string for the redis backend.
	URL string `yaml:"url,omitempty"`

	// Endpoints is the cluster endpoint list for the etcd backend.
	Endpoints []string `yaml:"endpoints,omitempty"`
}

// Load reads a YAML configuration file. ${VAR} references anywhere in the
// file are expanded from the environment before parsing, so API keys can
// stay out of the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadEnv loads a .env file from dir into the process environment. A
// missing file is not an error; malformed content is.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from the process environment, using the variable
// names the SDK has always honored (OPENAI_API_KEY, OPENAI_MODEL,
// ANTHROPIC_API_KEY, ANTHROPIC_MODEL, GEMINI_API_KEY, GEMINI_MODEL,
// OLLAMA_HOST, OLLAMA_MODEL, KEEPER_DB_PATH).
func FromEnv() *Config {
	cfg := &Config{
		Providers: Providers{
			OpenAI: ProviderConfig{
				APIKey: os.Getenv("OPENAI_API_KEY"),
				Model:  os.Getenv("OPENAI_MODEL"),
			},
			Anthropic: ProviderConfig{
				APIKey: os.Getenv("ANTHROPIC_API_KEY"),
				Model:  os.Getenv("ANTHROPIC_MODEL"),
			},
			Gemini: ProviderConfig{
				APIKey: os.Getenv("GEMINI_API_KEY"),
				Model:  os.Getenv("GEMINI_MODEL"),
			},
			Ollama: OllamaConfig{
				Host:  os.Getenv("OLLAMA_HOST"),
				Model: os.Getenv("OLLAMA_MODEL"),
			},
		},
		Store: StoreConfig{
			Path: os.Getenv("KEEPER_DB_PATH"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills the fields every Config must have.
func (c *Config) applyDefaults() {
	if c.DefaultProvider == "" {
		c.DefaultProvider = "anthropic"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "sqlite"
	}
	if c.Store.Path == "" {
		c.Store.Path = "agentkeeper.db"
	}
}

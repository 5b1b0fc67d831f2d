package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel      = "prithivida/parrot_paraphraser_on_T5"
	DefaultAPIBaseURL = "https://api-inference.huggingface.co"
)

// Config holds all application configuration.
type Config struct {
	Port           int           `yaml:"port"`
	Model          string        `yaml:"model"`
	APIBaseURL     string        `yaml:"api_base_url"`
	HFAPIToken     string        `yaml:"hf_api_token"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Port:       8000,
		Model:      DefaultModel,
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in that order. A .env file in the working
// directory is loaded into the environment first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("REPHRASE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid REPHRASE_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("REPHRASE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("REPHRASE_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("HF_API_TOKEN"); v != "" {
		cfg.HFAPIToken = v
	}
	if v := os.Getenv("REPHRASE_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid REPHRASE_REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("REPHRASE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("REPHRASE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

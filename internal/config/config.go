package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the shell's persisted settings, read from ~/.psh/config.yaml
// and overridden by environment variables. None of it is required for the
// core evaluator to run; cd/pwd/echo/ls/grep work with a zero Config.
type Config struct {
	Theme       string `yaml:"theme"`
	HistorySize int    `yaml:"history_size"`

	LLMAPIURL   string `yaml:"llm_api_url"`
	LLMAPIKey   string `yaml:"llm_api_key"`
	LLMModelName string `yaml:"llm_model_name"`
}

func Default() *Config {
	return &Config{
		Theme:        "auto",
		HistorySize:  1000,
		LLMAPIURL:    "https://api.openai.com/v1/chat/completions",
		LLMModelName: "gpt-4o-mini",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".psh"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// Load reads ~/.psh/config.yaml if present, applies defaults for anything
// missing, then layers environment-variable overrides on top. A missing
// config file is not an error — Load always returns a usable Config.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		f, ferr := os.Open(path)
		if ferr == nil {
			defer f.Close()
			if derr := yaml.NewDecoder(f).Decode(cfg); derr != nil {
				return nil, fmt.Errorf("failed to parse config: %w", derr)
			}
		} else if !os.IsNotExist(ferr) {
			return nil, ferr
		}
	}

	if v := os.Getenv("LLM_API_URL"); v != "" {
		cfg.LLMAPIURL = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("LLM_MODEL_NAME"); v != "" {
		cfg.LLMModelName = v
	}

	return cfg, nil
}

// Save writes cfg to ~/.psh/config.yaml, creating the directory if needed.
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

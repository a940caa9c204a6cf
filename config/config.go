// Package config loads the poet JSON configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	DefaultPath        = "config/config.json"
	DefaultServerAddr  = "127.0.0.1:5000"
	DefaultStyle       = "free verse"
	DefaultLines       = 8
	DefaultMaxLines    = 200
	DefaultLLMTimeoutS = 30
)

// Config holds server and generation settings.
type Config struct {
	ServerAddr   string     `json:"server_addr,omitempty"`
	SSL          bool       `json:"ssl,omitempty"`
	DefaultStyle string     `json:"default_style,omitempty"`
	DefaultLines int        `json:"default_lines,omitempty"`
	MaxLines     int        `json:"max_lines,omitempty"`
	Seed         *int64     `json:"seed,omitempty"` // fixed seed for reproducible poems
	LLM          *LLMConfig `json:"llm,omitempty"`
}

// LLMConfig 可选的模型配置；为空时只使用模板生成。
type LLMConfig struct {
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	BaseURL        string `json:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// Default returns a Config with every default applied.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load reads JSON config from disk. A missing file at DefaultPath yields
// Default(); any other missing path is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = DefaultServerAddr
	}
	c.DefaultStyle = strings.TrimSpace(c.DefaultStyle)
	if c.DefaultStyle == "" {
		c.DefaultStyle = DefaultStyle
	}
	if c.DefaultLines == 0 {
		c.DefaultLines = DefaultLines
	}
	if c.MaxLines == 0 {
		c.MaxLines = DefaultMaxLines
	}
	if c.LLM != nil {
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if c.LLM.TimeoutSeconds == 0 {
			c.LLM.TimeoutSeconds = DefaultLLMTimeoutS
		}
	}
}

// Validate checks value ranges after defaults are applied.
func (c Config) Validate() error {
	if c.MaxLines < 0 {
		return fmt.Errorf("max_lines must be positive, got %d", c.MaxLines)
	}
	if c.DefaultLines < 0 || c.DefaultLines > c.MaxLines {
		return fmt.Errorf("default_lines must be between 0 and max_lines (%d), got %d", c.MaxLines, c.DefaultLines)
	}
	if c.LLM != nil && c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	return nil
}

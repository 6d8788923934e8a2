// Package config loads careerwiz settings from defaults, an optional YAML
// file, a .env file and CAREERWIZ_* environment variables.
package config

import (
	"fmt"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/logging"
)

// Content sources.
const (
	SourceStatic = "static"
	SourceLLM    = "llm"
)

// Config is the full application configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Content  ContentConfig  `mapstructure:"content"`
	LLM      llm.Config     `mapstructure:"llm"`
}

// DatabaseConfig locates the LLM request audit log.
type DatabaseConfig struct {
	Path string `mapstructure:"path"` // empty means store.DefaultDBPath()
}

// ContentConfig selects where questions and reports come from.
type ContentConfig struct {
	// Source is "static" (built-in questions, placeholder report) or "llm".
	Source string `mapstructure:"source"`

	// Questions is how many questions the LLM source asks for.
	Questions int `mapstructure:"questions"`
}

// UseLLM reports whether questions and reports come from an LLM provider.
func (c *Config) UseLLM() bool {
	return c.Content.Source == SourceLLM
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json; got %q", cfg.Log.Format)
	}

	switch cfg.Content.Source {
	case SourceStatic:
	case SourceLLM:
		if cfg.LLM.Provider == "" {
			return fmt.Errorf("content.source is %q but no LLM provider is configured; set llm.provider or an API key", SourceLLM)
		}
		if cfg.Content.Questions < 1 || cfg.Content.Questions > assessment.MaxQuestions {
			return fmt.Errorf("content.questions must be between 1 and %d, got %d", assessment.MaxQuestions, cfg.Content.Questions)
		}
	default:
		return fmt.Errorf("content.source must be %q or %q; got %q", SourceStatic, SourceLLM, cfg.Content.Source)
	}

	return cfg.LLM.Validate()
}

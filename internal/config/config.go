package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "COPYFORGE_CONFIG"
	databaseDSNEnv   = "DATABASE_DSN"
	geminiAPIKeyEnv  = "GEMINI_API_KEY"
	geminiModelEnv   = "GEMINI_MODEL"
	openAIAPIKeyEnv  = "OPENAI_API_KEY"
	openAIModelEnv   = "OPENAI_MODEL"
	profilesDirEnv   = "COPYFORGE_PROFILES_DIR"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Database      DatabaseConfig     `yaml:"database"`
	Profiles      ProfilesConfig     `yaml:"profiles"`
	Gemini        GeminiConfig       `yaml:"gemini"`
	OpenAI        OpenAIConfig       `yaml:"openai"`
	Research      ResearchConfig     `yaml:"research"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig controls verbosity of the slog console handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig describes Postgres connection details for the record store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ProfilesConfig points at the directory of JSON profile documents.
type ProfilesConfig struct {
	Dir string `yaml:"dir"`
}

// GeminiConfig defines the primary generative provider.
type GeminiConfig struct {
	APIKey         string        `yaml:"apiKey"`
	Model          string        `yaml:"model"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// OpenAIConfig defines the fallback provider (OpenAI-compatible API).
type OpenAIConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	Model          string        `yaml:"model"`
	APIKey         string        `yaml:"apiKey"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// ResearchConfig wires the optional web-research fetcher.
type ResearchConfig struct {
	SearchURL  string `yaml:"searchUrl"`
	MaxSnippet int    `yaml:"maxSnippet"`
}

// NotificationConfig encapsulates outbound operator channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(profilesDirEnv); v != "" {
		c.Profiles.Dir = v
	}

	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}

	if v := os.Getenv(openAIAPIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}

	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Profiles.Dir != "" {
		base.Profiles = override.Profiles
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}
	if override.Gemini.RequestTimeout > 0 {
		base.Gemini.RequestTimeout = override.Gemini.RequestTimeout
	}

	if override.OpenAI.Endpoint != "" {
		base.OpenAI.Endpoint = override.OpenAI.Endpoint
	}
	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}
	if override.OpenAI.RequestTimeout > 0 {
		base.OpenAI.RequestTimeout = override.OpenAI.RequestTimeout
	}

	if override.Research.SearchURL != "" {
		base.Research.SearchURL = override.Research.SearchURL
	}
	if override.Research.MaxSnippet > 0 {
		base.Research.MaxSnippet = override.Research.MaxSnippet
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:  LoggingConfig{Level: "info"},
		Database: DatabaseConfig{DSN: ""},
		Profiles: ProfilesConfig{Dir: "profiles"},
		Gemini: GeminiConfig{
			Model:          "gemini-2.5-flash",
			RequestTimeout: 60 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Endpoint:       "https://api.openai.com/v1/chat/completions",
			Model:          "gpt-4o-mini",
			RequestTimeout: 60 * time.Second,
		},
		Research: ResearchConfig{
			SearchURL:  "",
			MaxSnippet: 400,
		},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
	}
}

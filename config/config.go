package config

import (
	"time"

	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/llm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Log        Log
	Database   Database
	Redis      Redis
	JWT        JWT
	LLM        LLM
	Generation Generation
}

type Server struct {
	Port    string
	GinMode string
}

type Log struct {
	Level  string
	Format string
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type JWT struct {
	Secret string
	TTL    time.Duration
}

type LLM struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	AnthropicModel  string
}

type Generation struct {
	MaxRetries     int
	InitialDelay   time.Duration
	AttemptTimeout time.Duration
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	config := load(v)
	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_PATH", "studyaid.db")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_TTL", 24*time.Hour)

	llmDefaults := llm.DefaultConfig()
	v.SetDefault("LLM_PROVIDER", llmDefaults.Provider)
	v.SetDefault("GEMINI_MODEL", llmDefaults.Gemini.Model)
	v.SetDefault("OPENAI_MODEL", llmDefaults.OpenAI.Model)
	v.SetDefault("ANTHROPIC_MODEL", llmDefaults.Anthropic.Model)

	policy := generation.DefaultPolicy()
	v.SetDefault("GENERATION_MAX_RETRIES", policy.MaxRetries)
	v.SetDefault("GENERATION_INITIAL_DELAY", policy.InitialDelay)
	v.SetDefault("GENERATION_ATTEMPT_TIMEOUT", policy.AttemptTimeout)
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = v.GetString("LOG_FORMAT")

	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	config.JWT.Secret = v.GetString("JWT_SECRET")
	config.JWT.TTL = v.GetDuration("JWT_TTL")

	config.LLM.Provider = v.GetString("LLM_PROVIDER")
	config.LLM.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = v.GetString("GEMINI_MODEL")
	config.LLM.OpenAIAPIKey = v.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIModel = v.GetString("OPENAI_MODEL")
	config.LLM.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")
	config.LLM.AnthropicAPIKey = v.GetString("ANTHROPIC_API_KEY")
	config.LLM.AnthropicModel = v.GetString("ANTHROPIC_MODEL")

	config.Generation.MaxRetries = v.GetInt("GENERATION_MAX_RETRIES")
	config.Generation.InitialDelay = v.GetDuration("GENERATION_INITIAL_DELAY")
	config.Generation.AttemptTimeout = v.GetDuration("GENERATION_ATTEMPT_TIMEOUT")

	return &config
}

const redacted = "[REDACTED]"

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	mask := func(s *string) {
		if *s != "" {
			*s = redacted
		}
	}
	mask(&c.Database.Password)
	mask(&c.Redis.Password)
	mask(&c.JWT.Secret)
	mask(&c.LLM.GeminiAPIKey)
	mask(&c.LLM.OpenAIAPIKey)
	mask(&c.LLM.AnthropicAPIKey)
	return c
}

// LLMConfig maps the flat env settings onto the provider factory's config.
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		Provider:  c.LLM.Provider,
		Gemini:    llm.GeminiConfig{APIKey: c.LLM.GeminiAPIKey, Model: c.LLM.GeminiModel},
		OpenAI:    llm.OpenAIConfig{APIKey: c.LLM.OpenAIAPIKey, Model: c.LLM.OpenAIModel, BaseURL: c.LLM.OpenAIBaseURL},
		Anthropic: llm.AnthropicConfig{APIKey: c.LLM.AnthropicAPIKey, Model: c.LLM.AnthropicModel},
	}
}

func (c *Config) RetryPolicy() generation.Policy {
	p := generation.DefaultPolicy()
	p.MaxRetries = c.Generation.MaxRetries
	p.InitialDelay = c.Generation.InitialDelay
	p.AttemptTimeout = c.Generation.AttemptTimeout
	return p
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"autopilot/pkg/utils"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Generation  GenerationConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

// GenerationConfig selects and configures the text-generation provider.
type GenerationConfig struct {
	Provider    string // openai|gemini
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string
	GeminiKey   string
	GeminiModel string
	Timeout     time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json|console
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("server_read_timeout", 30*time.Second)
	v.SetDefault("server_write_timeout", 90*time.Second)
	v.SetDefault("server_shutdown_timeout", 10*time.Second)
	v.SetDefault("allowed_origins", "*")

	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", 30*time.Minute)

	v.SetDefault("generation_provider", "openai")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("generation_timeout", 60*time.Second)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	dbURL := v.GetString("database_url")
	if dbURL == "" {
		dbURL = v.GetString("postgres_url")
	}

	cfg := &Config{
		Environment: strings.ToLower(v.GetString("environment")),
		Server: ServerConfig{
			Port:            v.GetString("port"),
			ReadTimeout:     v.GetDuration("server_read_timeout"),
			WriteTimeout:    v.GetDuration("server_write_timeout"),
			ShutdownTimeout: v.GetDuration("server_shutdown_timeout"),
			AllowedOrigins:  splitList(v.GetString("allowed_origins")),
		},
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("jwt_secret"),
		},
		Generation: GenerationConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("generation_provider"))),
			OpenAIKey:   v.GetString("openai_api_key"),
			OpenAIModel: v.GetString("openai_model"),
			OpenAIURL:   v.GetString("openai_base_url"),
			GeminiKey:   v.GetString("gemini_api_key"),
			GeminiModel: v.GetString("gemini_model"),
			Timeout:     v.GetDuration("generation_timeout"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL (or POSTGRES_URL) is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Generation.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported GENERATION_PROVIDER %q", c.Generation.Provider)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ClientConfig resolves the credentials of the selected provider.
func (g GenerationConfig) ClientConfig() utils.GenerationClientConfig {
	cfg := utils.GenerationClientConfig{Provider: g.Provider, Timeout: g.Timeout}
	switch g.Provider {
	case "gemini":
		cfg.APIKey = g.GeminiKey
		cfg.Model = g.GeminiModel
	default:
		cfg.APIKey = g.OpenAIKey
		cfg.Model = g.OpenAIModel
		cfg.BaseURL = g.OpenAIURL
	}
	return cfg
}

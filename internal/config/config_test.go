package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://localhost/autopilot",
				"JWT_SECRET":   "secret",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "development", cfg.Environment)
				assert.Equal(t, "8080", cfg.Server.Port)
				assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "openai", cfg.Generation.Provider)
				assert.Equal(t, "gpt-4o-mini", cfg.Generation.OpenAIModel)
				assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
				assert.Equal(t, 25, cfg.Database.MaxOpenConns)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.False(t, cfg.IsProduction())
			},
		},
		{
			name: "postgres url fallback and overrides",
			envVars: map[string]string{
				"POSTGRES_URL":        "postgres://db/legacy",
				"JWT_SECRET":          "secret",
				"ENVIRONMENT":         "Production",
				"PORT":                "9000",
				"GENERATION_PROVIDER": "Gemini",
				"GEMINI_API_KEY":      "g-key",
				"GENERATION_TIMEOUT":  "15s",
				"ALLOWED_ORIGINS":     "https://a.example, https://b.example",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres://db/legacy", cfg.Database.URL)
				assert.True(t, cfg.IsProduction())
				assert.Equal(t, "9000", cfg.Server.Port)
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)

				cc := cfg.Generation.ClientConfig()
				assert.Equal(t, "gemini", cc.Provider)
				assert.Equal(t, "g-key", cc.APIKey)
				assert.Equal(t, "gemini-1.5-flash", cc.Model)
				assert.Equal(t, 15*time.Second, cc.Timeout)
			},
		},
		{
			name:    "missing database url",
			envVars: map[string]string{"JWT_SECRET": "secret"},
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			envVars: map[string]string{"DATABASE_URL": "postgres://localhost/autopilot"},
			wantErr: true,
		},
		{
			name: "unknown provider",
			envVars: map[string]string{
				"DATABASE_URL":        "postgres://localhost/autopilot",
				"JWT_SECRET":          "secret",
				"GENERATION_PROVIDER": "llama",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DATABASE_URL", "POSTGRES_URL", "JWT_SECRET", "ENVIRONMENT", "PORT", "GENERATION_PROVIDER", "GEMINI_API_KEY", "GENERATION_TIMEOUT", "ALLOWED_ORIGINS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/recipes")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SPOONACULAR_API_KEY", "spoon-key")
	t.Setenv("PORT", "8080")
	t.Setenv("AUTH_BCRYPT_COST", "12")

	cfg, err := LoadWithEnv[Config]("no-such-config-file", defaultsYAML)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/recipes", cfg.Database.URL)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "spoon-key", cfg.Spoonacular.APIKey)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.BaseURL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Database.AutoMigrate)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	require.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_MissingFileWithoutDefaults(t *testing.T) {
	_, err := LoadWithEnv[Config]("no-such-config-file", nil)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Database.URL = "postgres://localhost/recipes"
		cfg.JWT.Secret = "secret"
		cfg.HTTP.Port = 3000

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.Database.URL = "  " }, wantErr: "DATABASE_URL"},
		{name: "missing jwt secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET"},
		{name: "invalid port", mutate: func(c *Config) { c.HTTP.Port = 0 }, wantErr: "invalid http port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: false,
		},
		{
			name: "staging environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "staging"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: true,
		},
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsProduction())
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "https://savdoai.uz", cfg.Server.BaseURL)
	assert.Equal(t, []string{"https://savdoai.uz", "https://www.savdoai.uz"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "auth-token", cfg.AuthCookie.Name)
	assert.True(t, cfg.AuthCookie.Secure)
	assert.Equal(t, 86400, cfg.AuthCookie.MaxAgeSec)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/app/logs", cfg.Logging.Dir)
	assert.Equal(t, "console-api", cfg.Observability.ServiceName)
	assert.Equal(t, 600, cfg.Cache.TariffsTTLSeconds)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()

	os.Setenv("PORT", "9000")
	os.Setenv("GIN_MODE", "debug")
	os.Setenv("APP_ENV", "development")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("BACKEND_BASE_URL", "http://backend:8000/")
	os.Setenv("BACKEND_TIMEOUT_SECONDS", "10")
	os.Setenv("AUTH_COOKIE_NAME", "session")
	os.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example, https://b.example ,")
	os.Setenv("TARIFFS_CACHE_TTL", "60")

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Trailing slash is stripped so path joins stay predictable
	assert.Equal(t, "http://backend:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 10, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "session", cfg.AuthCookie.Name)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 60, cfg.Cache.TariffsTTLSeconds)
}

func TestLoad_DevelopmentDisablesSecureCookieByDefault(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()
	os.Setenv("APP_ENV", "development")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.AuthCookie.Secure)
}

func TestLoad_ExplicitSecureCookieWinsInDevelopment(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()
	os.Setenv("APP_ENV", "development")
	os.Setenv("AUTH_COOKIE_SECURE", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.AuthCookie.Secure)
}

// chdirTemp moves into an empty directory so a developer's local .env file
// cannot leak into the assertions.
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

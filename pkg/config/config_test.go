package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

func setCanvasEnv(t *testing.T, domain, token, baseURL string) {
	t.Helper()
	t.Setenv("CANVAS_DOMAIN", domain)
	t.Setenv("CANVAS_TOKEN", token)
	t.Setenv("CANVAS_BASE_URL", baseURL)
	t.Setenv("CANVAS_PER_PAGE", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestLoadDerivesBaseURLFromDomain(t *testing.T) {
	setCanvasEnv(t, "school", "secret", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://school.instructure.com/api", cfg.Canvas.BaseURL)
	assert.Equal(t, "secret", cfg.Canvas.Token)
	assert.Equal(t, DefaultPerPage, cfg.Canvas.PerPage)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadPrefersExplicitBaseURL(t *testing.T) {
	setCanvasEnv(t, "school", "secret", "http://localhost:9000/api/")
	t.Setenv("CANVAS_PER_PAGE", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api", cfg.Canvas.BaseURL)
	assert.Equal(t, 25, cfg.Canvas.PerPage)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		token  string
		want   string
	}{
		{name: "missing token", domain: "school", token: "", want: "CANVAS_TOKEN"},
		{name: "missing domain", domain: "", token: "secret", want: "CANVAS_DOMAIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCanvasEnv(t, tt.domain, tt.token, "")

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, appErrors.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRejectsNonNumericPerPage(t *testing.T) {
	setCanvasEnv(t, "school", "secret", "")
	t.Setenv("CANVAS_PER_PAGE", "abc")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, appErrors.ErrConfiguration))
	assert.Contains(t, err.Error(), "CANVAS_PER_PAGE")
}

func TestValidateNilConfig(t *testing.T) {
	var cfg *Config
	assert.True(t, errors.Is(cfg.Validate(), appErrors.ErrConfiguration))
}

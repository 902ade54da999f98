package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultPerPage is the page size requested from Canvas when none is configured.
const DefaultPerPage = 100

type Config struct {
	Env string

	Canvas CanvasConfig
	Log    LogConfig
}

// CanvasConfig holds the credentials and request tuning for the Canvas API.
type CanvasConfig struct {
	Domain  string
	Token   string
	BaseURL string
	PerPage int
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads .env and the process environment. It fails with a configuration error when the
// Canvas credentials are missing.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.Wrap(err, appErrors.ErrConfiguration.Code, "failed to read .env")
		}
	}

	perPage, err := strconv.Atoi(strings.TrimSpace(v.GetString("CANVAS_PER_PAGE")))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConfiguration.Code, "CANVAS_PER_PAGE must be an integer")
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Canvas = CanvasConfig{
		Domain:  strings.TrimSpace(v.GetString("CANVAS_DOMAIN")),
		Token:   strings.TrimSpace(v.GetString("CANVAS_TOKEN")),
		BaseURL: strings.TrimSpace(v.GetString("CANVAS_BASE_URL")),
		PerPage: perPage,
	}
	if cfg.Canvas.BaseURL == "" && cfg.Canvas.Domain != "" {
		cfg.Canvas.BaseURL = BaseURLForDomain(cfg.Canvas.Domain)
	}
	cfg.Canvas.BaseURL = strings.TrimRight(cfg.Canvas.BaseURL, "/")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrConfiguration, "no configuration loaded")
	}
	return c.Canvas.Validate()
}

// Validate checks that both credentials needed to reach Canvas are present.
func (c CanvasConfig) Validate() error {
	if c.Token == "" {
		return appErrors.Clone(appErrors.ErrConfiguration, "no canvas token found in environment (CANVAS_TOKEN)")
	}
	if c.BaseURL == "" {
		return appErrors.Clone(appErrors.ErrConfiguration, "no canvas domain found in environment (CANVAS_DOMAIN)")
	}
	return nil
}

// BaseURLForDomain derives the hosted Canvas API root for an institution subdomain.
func BaseURLForDomain(domain string) string {
	return fmt.Sprintf("https://%s.instructure.com/api", domain)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("CANVAS_DOMAIN", "")
	v.SetDefault("CANVAS_TOKEN", "")
	v.SetDefault("CANVAS_BASE_URL", "")
	v.SetDefault("CANVAS_PER_PAGE", DefaultPerPage)

	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", "console")
}

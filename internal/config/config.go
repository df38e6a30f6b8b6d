package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Source selects where the contracts view reads its data from.
type Source string

const (
	SourceBackend  Source = "backend"
	SourceFixture  Source = "fixture"
	SourceFallback Source = "fallback"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"LeaseDesk"`
		// StartPath is the route the client opens on.
		StartPath string `envconfig:"START_PATH" default:"/dashboard"`
	}

	API struct {
		BaseURL string `envconfig:"API_BASE_URL" default:"http://127.0.0.1:5000"`
		// Zero disables the client timeout; requests then wait for the backend.
		Timeout time.Duration `envconfig:"API_TIMEOUT" default:"0s"`
	}

	Contracts struct {
		Source Source `envconfig:"CONTRACTS_SOURCE" default:"backend"`
	}

	Session struct {
		// Path overrides the session file location. Empty means the XDG config dir.
		Path string `envconfig:"SESSION_PATH"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		File   string `envconfig:"LOG_FILE"`
	}

	Server struct {
		Port    int           `envconfig:"PORT" default:"5000"`
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	CORS struct {
		Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"leasedesk"`
		// URL wins over the discrete fields when set (DATABASE_URL on most hosts).
		URL string `envconfig:"DATABASE_URL"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"336h"`
	}

	Extractor struct {
		URL     string        `envconfig:"EXTRACTOR_URL" default:"http://127.0.0.1:8001/extract"`
		Timeout time.Duration `envconfig:"EXTRACTOR_TIMEOUT" default:"90s"`
		Port    int           `envconfig:"EXTRACTOR_PORT" default:"8001"`
	}

	Notifier struct {
		APIToken   string `envconfig:"NOTIFIER_API_TOKEN"`
		DaysBefore int    `envconfig:"DAYS_BEFORE" default:"60"`
		Hour       int    `envconfig:"NOTIFY_HOUR" default:"9"`
		TZ         string `envconfig:"NOTIFY_TZ" default:"UTC"`
		To         string `envconfig:"NOTIFY_EMAIL"`
	}

	SMTP struct {
		Host     string `envconfig:"SMTP_HOST" default:"localhost"`
		Port     int    `envconfig:"SMTP_PORT" default:"587"`
		User     string `envconfig:"SMTP_USER"`
		Password string `envconfig:"SMTP_PASSWORD"`
		From     string `envconfig:"MAIL_FROM"`
	}
}

func (c *Config) ConnectionString() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Contracts.Source {
	case SourceBackend, SourceFixture, SourceFallback:
	default:
		return nil, fmt.Errorf("unknown contracts source %q", cfg.Contracts.Source)
	}

	return &cfg, nil
}

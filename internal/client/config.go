package client

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
)

// Config holds the CLI's settings. All fields come from the environment.
type Config struct {
	APIURL   string        `env:"DIARY_API_URL"  env-default:"http://localhost:8080"`
	Home     string        `env:"DIARY_HOME"     env-default:"~/.gamjeong"`
	Timezone string        `env:"DIARY_TIMEZONE" env-default:"Asia/Seoul"`
	Timeout  time.Duration `env:"DIARY_TIMEOUT"  env-default:"30s"`

	// Location is resolved from Timezone by Validate.
	Location *time.Location `env:"-"`
}

// LoadConfig reads the environment and validates the result.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings and resolves derived values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("DIARY_API_URL: %q is not an http(s) URL", c.APIURL)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	home, err := homedir.Expand(c.Home)
	if err != nil {
		return fmt.Errorf("DIARY_HOME: %w", err)
	}
	c.Home = home

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("DIARY_TIMEZONE: %w", err)
	}
	c.Location = loc

	if c.Timeout <= 0 {
		return fmt.Errorf("DIARY_TIMEOUT: must be positive")
	}
	return nil
}

// SessionDir is where the signed-in session is kept.
func (c *Config) SessionDir() string {
	return filepath.Join(c.Home, "session")
}

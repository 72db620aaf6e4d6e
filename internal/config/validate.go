package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.MinPasswordLength < 1 {
		return fmt.Errorf("auth.min_password_length must be >= 1 (got %d)", c.Auth.MinPasswordLength)
	}

	if err := c.Feedback.validate(); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}

	if err := c.Diary.validate(); err != nil {
		return fmt.Errorf("diary: %w", err)
	}

	return nil
}

func (f *FeedbackConfig) validate() error {
	f.Provider = strings.ToLower(strings.TrimSpace(f.Provider))
	switch f.Provider {
	case "canned":
	case "anthropic":
		if f.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider %q", f.Provider)
		}
		if f.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be > 0 (got %d)", f.MaxTokens)
		}
	default:
		return fmt.Errorf("unknown provider %q", f.Provider)
	}
	if f.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", f.Timeout)
	}
	if f.FunctionURL != "" {
		u, err := url.Parse(f.FunctionURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("function_url must be an absolute http(s) URL (got %q)", f.FunctionURL)
		}
	}
	return nil
}

func (d *DiaryConfig) validate() error {
	loc, err := ParseTimezone(d.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	d.Location = loc

	if d.MaxContentLen <= 0 {
		return fmt.Errorf("max_content_len must be > 0 (got %d)", d.MaxContentLen)
	}
	return nil
}

// ParseTimezone loads an IANA location. An empty name means UTC.
// "Local" is rejected: the name is passed to PostgreSQL's AT TIME ZONE,
// which does not know it.
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	if strings.EqualFold(name, "Local") {
		return nil, fmt.Errorf("invalid timezone %q: use an IANA name such as Asia/Seoul", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

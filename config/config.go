package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"interviewpass/internal/domain"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	minAuthSecretBytes = 32
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	LogLevel    string
	Port        string

	GoogleClientID       string
	GoogleClientSecret   string
	GoogleCalendarID     string
	GoogleCalendarAPIURL string

	APIBaseURL string
	WebBaseURL string

	AuthSecret      string
	SessionTTL      time.Duration
	CalendarTimeout time.Duration
	DefaultBrand    domain.BrandID

	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables.
// Outside production it first loads a .env file if one exists; system environment
// variables always win over .env values.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = EnvDevelopment
	}
	if env != EnvProduction {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn(".env file could not be loaded", "err", err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds and validates a Config from lookup (os.LookupEnv in production).
// Every problem found is reported in a single error wrapping domain.ErrInvalidConfiguration.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	var problems []string
	duration := func(key string, def time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be a positive duration, got %q", key, raw))
			return def
		}
		return d
	}

	cfg := &Config{
		Environment:          get("GO_ENV", EnvDevelopment),
		LogLevel:             strings.ToLower(get("LOG_LEVEL", "info")),
		Port:                 get("PORT", "3001"),
		GoogleClientID:       get("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   get("GOOGLE_CLIENT_SECRET", ""),
		GoogleCalendarID:     get("GOOGLE_CALENDAR_ID", "primary"),
		GoogleCalendarAPIURL: get("GOOGLE_CALENDAR_API_URL", ""),
		APIBaseURL:           strings.TrimSuffix(get("API_BASE_URL", "http://localhost:3001"), "/"),
		WebBaseURL:           strings.TrimSuffix(get("WEB_BASE_URL", "http://localhost:3000"), "/"),
		AuthSecret:           get("AUTH_SECRET", ""),
		SessionTTL:           duration("SESSION_TTL", 30*24*time.Hour),
		CalendarTimeout:      duration("CALENDAR_TIMEOUT", 10*time.Second),
		DefaultBrand:         domain.BrandID(strings.ToUpper(get("DEFAULT_BRAND", string(domain.BrandSeaChefs)))),
	}
	cfg.CORSAllowedOrigins = splitList(get("CORS_ALLOWED_ORIGINS", cfg.WebBaseURL))

	switch cfg.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		problems = append(problems, fmt.Sprintf("GO_ENV must be one of development, production, test, got %q", cfg.Environment))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}
	if p, err := strconv.Atoi(cfg.Port); err != nil || p < 1 || p > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be a TCP port number, got %q", cfg.Port))
	}
	if !isAbsoluteURL(cfg.APIBaseURL) {
		problems = append(problems, fmt.Sprintf("API_BASE_URL must be an absolute http(s) URL, got %q", cfg.APIBaseURL))
	}
	if !isAbsoluteURL(cfg.WebBaseURL) {
		problems = append(problems, fmt.Sprintf("WEB_BASE_URL must be an absolute http(s) URL, got %q", cfg.WebBaseURL))
	}
	if cfg.GoogleCalendarAPIURL != "" && !isAbsoluteURL(cfg.GoogleCalendarAPIURL) {
		problems = append(problems, fmt.Sprintf("GOOGLE_CALENDAR_API_URL must be an absolute http(s) URL, got %q", cfg.GoogleCalendarAPIURL))
	}
	if !cfg.DefaultBrand.Valid() {
		problems = append(problems, fmt.Sprintf("DEFAULT_BRAND must be one of SEACHEFS, COSTA, RCG, got %q", cfg.DefaultBrand))
	}
	if len(cfg.AuthSecret) < minAuthSecretBytes {
		problems = append(problems, fmt.Sprintf("AUTH_SECRET must be at least %d bytes", minAuthSecretBytes))
	}
	if cfg.Environment == EnvProduction {
		if cfg.GoogleClientID == "" {
			problems = append(problems, "GOOGLE_CLIENT_ID is required in production")
		}
		if cfg.GoogleClientSecret == "" {
			problems = append(problems, "GOOGLE_CLIENT_SECRET is required in production")
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, strings.Join(problems, "; "))
	}
	return cfg, nil
}

// GoogleSignInEnabled reports whether OAuth client credentials are configured.
func (c *Config) GoogleSignInEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// OAuthRedirectURL is the callback registered with Google.
func (c *Config) OAuthRedirectURL() string {
	return c.APIBaseURL + "/auth/callback/google"
}

// SecureCookies reports whether cookies should carry the Secure attribute.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.APIBaseURL, "https://")
}

// Redacted returns the effective configuration as key/value pairs with secrets masked.
func (c *Config) Redacted() [][2]string {
	return [][2]string{
		{"GO_ENV", c.Environment},
		{"LOG_LEVEL", c.LogLevel},
		{"PORT", c.Port},
		{"GOOGLE_CLIENT_ID", c.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", mask(c.GoogleClientSecret)},
		{"GOOGLE_CALENDAR_ID", c.GoogleCalendarID},
		{"GOOGLE_CALENDAR_API_URL", c.GoogleCalendarAPIURL},
		{"API_BASE_URL", c.APIBaseURL},
		{"WEB_BASE_URL", c.WebBaseURL},
		{"AUTH_SECRET", mask(c.AuthSecret)},
		{"SESSION_TTL", c.SessionTTL.String()},
		{"CALENDAR_TIMEOUT", c.CalendarTimeout.String()},
		{"DEFAULT_BRAND", string(c.DefaultBrand)},
		{"CORS_ALLOWED_ORIGINS", strings.Join(c.CORSAllowedOrigins, ",")},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
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

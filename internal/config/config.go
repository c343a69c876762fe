package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAccessTTL     = "15m"
	defaultRefreshTTL    = "168h"
	defaultIssuer        = "bookstore-auth"
	defaultAccessSecret  = "change-me-access-secret"
	defaultRefreshSecret = "change-me-refresh-secret"
	defaultClientTimeout = "10s"

	defaultAuthBaseURL     = "http://localhost:3011"
	defaultBookBaseURL     = "http://localhost:3006"
	defaultAuthorBaseURL   = "http://localhost:3005"
	defaultCategoryBaseURL = "http://localhost:3007"
	defaultFacadeBaseURL   = "http://localhost:3000"
)

// Config carries everything loaded once at process start. Secrets and base
// URLs are immutable after load; nothing re-reads the environment later.
type Config struct {
	AppEnv string

	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	CookieSecure bool

	ClientTimeout time.Duration

	AuthBaseURL     string
	BookBaseURL     string
	AuthorBaseURL   string
	CategoryBaseURL string
	FacadeBaseURL   string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.AccessSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultAccessSecret))
	cfg.RefreshSecret = strings.TrimSpace(getEnv("JWT_REFRESH_SECRET", defaultRefreshSecret))
	cfg.Issuer = strings.TrimSpace(getEnv("JWT_ISSUER", defaultIssuer))

	var err error
	cfg.AccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL, err = parseDurationEnv("REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}
	cfg.ClientTimeout, err = parseDurationEnv("CLIENT_TIMEOUT", defaultClientTimeout)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", isProdLike(cfg.AppEnv))

	cfg.AuthBaseURL = baseURLEnv("AUTH_SERVICE_URL", defaultAuthBaseURL)
	cfg.BookBaseURL = baseURLEnv("BOOK_SERVICE_URL", defaultBookBaseURL)
	cfg.AuthorBaseURL = baseURLEnv("AUTHOR_SERVICE_URL", defaultAuthorBaseURL)
	cfg.CategoryBaseURL = baseURLEnv("CATEGORY_SERVICE_URL", defaultCategoryBaseURL)
	cfg.FacadeBaseURL = baseURLEnv("FACADE_BASE_URL", defaultFacadeBaseURL)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.RefreshTTL <= 0 {
		return fmt.Errorf("REFRESH_TTL must be > 0")
	}
	if cfg.ClientTimeout <= 0 {
		return fmt.Errorf("CLIENT_TIMEOUT must be > 0")
	}
	if cfg.Issuer == "" {
		return fmt.Errorf("JWT_ISSUER must not be empty")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AccessSecret, defaultAccessSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshSecret, defaultRefreshSecret) {
			return fmt.Errorf("in prod/release JWT_REFRESH_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if value == "" {
		return fallback
	}
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func baseURLEnv(name, fallback string) string {
	return strings.TrimRight(strings.TrimSpace(getEnv(name, fallback)), "/")
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

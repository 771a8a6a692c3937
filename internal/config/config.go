package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Auth   AuthConfig
	Store  StoreConfig
	Feed   FeedConfig
	Mail   MailConfig
	Redis  RedisConfig
}

type AppConfig struct {
	Environment string
	HTTPPort    string
}

func (a AppConfig) Development() bool {
	return a.Environment == "development"
}

func (a AppConfig) Production() bool {
	return a.Environment == "production"
}

type AuthConfig struct {
	JWTSecret      string
	TokenExpiresIn time.Duration
	GoogleClientID string
}

type StoreConfig struct {
	ProjectID string
}

type FeedConfig struct {
	WebhookURL   string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m MailConfig) Configured() bool {
	return m.Host != "" && m.From != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// .env is a development convenience; a missing file is not an error.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:      req("JWT_SECRET"),
		TokenExpiresIn: optDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		GoogleClientID: opt("GOOGLE_CLIENT_ID"),
	}

	cfg.Store = StoreConfig{
		ProjectID: req("FIRESTORE_PROJECT_ID"),
	}

	cfg.Feed = FeedConfig{
		WebhookURL:   req("JOB_FEED_URL"),
		FetchTimeout: optDuration("FEED_FETCH_TIMEOUT", 15*time.Second),
		CacheTTL:     optDuration("FEED_CACHE_TTL", time.Minute),
	}

	cfg.Mail = MailConfig{
		Host:     opt("SMTP_HOST"),
		Port:     optInt("SMTP_PORT", 587),
		Username: opt("SMTP_USER"),
		Password: opt("SMTP_PASSWORD"),
		From:     opt("MAIL_FROM"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func optInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

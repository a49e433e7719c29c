package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Share     ShareConfig     `yaml:"share"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MigrateOnStart  bool          `yaml:"migrate_on_start" env:"SERVER_MIGRATE_ON_START" env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tasktracker"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// Email providers.
const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
	EmailProviderLog    = "log"
)

// EmailConfig selects and configures the outbound email transport.
type EmailConfig struct {
	Provider      string        `yaml:"provider"        env:"EMAIL_PROVIDER"        env-default:"log"`
	From          string        `yaml:"from"            env:"FROM_EMAIL"            env-default:"Task Tracker <reminders@yourdomain.com>"`
	Timeout       time.Duration `yaml:"timeout"         env:"EMAIL_TIMEOUT"         env-default:"10s"`
	ResendAPIKey  string        `yaml:"resend_api_key"  env:"RESEND_API_KEY"`
	ResendBaseURL string        `yaml:"resend_base_url" env:"RESEND_BASE_URL"       env-default:"https://api.resend.com"`
	SMTPHost      string        `yaml:"smtp_host"       env:"SMTP_HOST"`
	SMTPPort      int           `yaml:"smtp_port"       env:"SMTP_PORT"             env-default:"587"`
	SMTPUsername  string        `yaml:"smtp_username"   env:"SMTP_USERNAME"`
	SMTPPassword  string        `yaml:"smtp_password"   env:"SMTP_PASSWORD"`
}

// ReminderConfig holds reminder evaluation parameters.
type ReminderConfig struct {
	Window        time.Duration `yaml:"window"         env:"REMINDER_WINDOW"         env-default:"15m"`
	Dedupe        time.Duration `yaml:"dedupe"         env:"REMINDER_DEDUPE"         env-default:"14m"`
	AppURL        string        `yaml:"app_url"        env:"APP_URL"                 env-default:"http://localhost:3000"`
	Subject       string        `yaml:"subject"        env:"REMINDER_SUBJECT"        env-default:"What have you accomplished lately?"`
	TriggerSecret string        `yaml:"trigger_secret" env:"REMINDER_TRIGGER_SECRET"`
	Concurrency   int           `yaml:"concurrency"    env:"REMINDER_CONCURRENCY"    env-default:"4"`
}

// ShareConfig holds settings for user-initiated report sharing.
type ShareConfig struct {
	From           string `yaml:"from"            env:"SHARE_FROM"            env-default:"Task Tracker <onboarding@resend.dev>"`
	DefaultSubject string `yaml:"default_subject" env:"SHARE_DEFAULT_SUBJECT" env-default:"Task Tracker — Shared Report"`
	PerMinute      int    `yaml:"per_minute"      env:"SHARE_PER_MINUTE"      env-default:"5"`
	MaxRecipients  int    `yaml:"max_recipients"  env:"SHARE_MAX_RECIPIENTS"  env-default:"10"`
}

// RateLimitConfig holds per-client request limits for public endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Origins splits AllowedOrigins into trimmed values.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Session       SessionConfig       `yaml:"session"`
	Uploads       UploadsConfig       `yaml:"uploads"`
	LoginThrottle LoginThrottleConfig `yaml:"login_throttle"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	MaxBodyBytes    int64   `yaml:"max_body_bytes"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SessionConfig holds the session token signing configuration.
type SessionConfig struct {
	Secret       string        `yaml:"secret"`
	TTLHours     int           `yaml:"ttl_hours"`
	TTL          time.Duration `yaml:"-"` // Ignored by YAML parser
	CookieName   string        `yaml:"cookie_name"`
	CookieSecure bool          `yaml:"cookie_secure"`
}

// UploadsConfig holds the upload directory configuration.
type UploadsConfig struct {
	Dir string `yaml:"dir"`
}

// LoginThrottleConfig bounds repeated failed logins per client IP.
type LoginThrottleConfig struct {
	MaxFailures   int `yaml:"max_failures"`
	WindowMinutes int `yaml:"window_minutes"`
}

// ErrMissingSecret is returned when no session signing secret is configured.
var ErrMissingSecret = errors.New("config: session.secret must be set")

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Session.Secret == "" {
		return nil, ErrMissingSecret
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = 16 << 20 // 16MB
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "school.db"
	}

	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 24
	}
	cfg.Session.TTL = time.Duration(cfg.Session.TTLHours) * time.Hour
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "admin_session"
	}

	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "./static/uploads"
	}

	if cfg.LoginThrottle.MaxFailures <= 0 {
		cfg.LoginThrottle.MaxFailures = 10
	}
	if cfg.LoginThrottle.WindowMinutes <= 0 {
		cfg.LoginThrottle.WindowMinutes = 15
	}

	return &cfg, nil
}

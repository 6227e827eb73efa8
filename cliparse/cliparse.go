// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/danielhkuo/enstack-letters/db"
)

// ConfigPathEnvVar names a YAML config file when -c is not given.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are tried in order when neither -c nor CONFIG_PATH is set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Port         int    `koanf:"port"`
	Host         string `koanf:"host"`
	DatabaseURL  string `koanf:"database_url"`
	DatabaseType string `koanf:"database_type"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	CORSOrigins []string `koanf:"cors_origins"`

	// LoginRateLimit is requests per LoginRateWindow per client IP; 0 disables it.
	LoginRateLimit  int           `koanf:"login_rate_limit"`
	LoginRateWindow time.Duration `koanf:"login_rate_window"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultConfig() Config {
	return Config{
		Port:            3000,
		Host:            "0.0.0.0",
		LogLevel:        "info",
		LogFormat:       "json",
		CORSOrigins:     []string{"*"},
		LoginRateLimit:  0,
		LoginRateWindow: time.Minute,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// envKeys maps environment variables to config keys. Anything else in the
// environment is ignored.
var envKeys = map[string]string{
	"PORT":              "port",
	"HOST":              "host",
	"DATABASE_URL":      "database_url",
	"DATABASE_TYPE":     "database_type",
	"LOG_LEVEL":         "log_level",
	"LOG_FORMAT":        "log_format",
	"CORS_ORIGINS":      "cors_origins",
	"LOGIN_RATE_LIMIT":  "login_rate_limit",
	"LOGIN_RATE_WINDOW": "login_rate_window",
	"READ_TIMEOUT":      "read_timeout",
	"WRITE_TIMEOUT":     "write_timeout",
	"SHUTDOWN_TIMEOUT":  "shutdown_timeout",
}

// ParseFlags builds the config from defaults, then an optional YAML file,
// then the environment, then command-line flags. Later layers win.
func ParseFlags(args []string) (Config, error) {
	var (
		port       int
		dbURL      string
		dbType     string
		configPath string
	)

	fs := flag.NewFlagSet("enstack-letters", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&dbURL, "d", "", "Database URL")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&configPath, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitCommaList(k, "cors_origins"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	// Flags win, but only those actually given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "d":
			cfg.DatabaseURL = dbURL
		case "t":
			cfg.DatabaseType = dbType
		}
	})

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = db.DriverForURL(cfg.DatabaseURL)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseType != db.DriverSQLite && c.DatabaseType != db.DriverPostgres {
		return fmt.Errorf("unsupported database type %q (use sqlite or postgres)", c.DatabaseType)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q (use json or console)", c.LogFormat)
	}
	if c.LoginRateLimit < 0 {
		return fmt.Errorf("invalid login rate limit %d", c.LoginRateLimit)
	}
	if c.LoginRateLimit > 0 && c.LoginRateWindow <= 0 {
		return errors.New("login rate window must be positive when a limit is set")
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func envTransform(key string) string {
	return envKeys[key]
}

// splitCommaList turns a comma-separated string (from the environment) into
// a list. Lists from YAML are left alone.
func splitCommaList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

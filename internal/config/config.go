package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable koten reads.
const EnvPrefix = "KOTEN"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`       // application environment (local, production)
	DBPath      string `mapstructure:"db"`        // SQLite file; empty means the XDG data dir
	CatalogPath string `mapstructure:"catalog"`   // catalog JSON; empty means the embedded catalog
	LogFile     string `mapstructure:"log_file"`  // log destination; empty means next to the database
	LogLevel    string `mapstructure:"log_level"` // zap level name
}

// IsProduction reports whether the production logger should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from an optional config file, a .env file and
// KOTEN_* environment variables, in increasing order of precedence.
// path names an explicit config file; when empty, config.yaml is looked up
// in the user config directory and the working directory.
func Load(path string) (*Config, error) {
	// .env values never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetDefault("env", "local")
	v.SetDefault("db", "")
	v.SetDefault("catalog", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// Dir returns the per-user config directory for koten:
// $XDG_CONFIG_HOME/koten, falling back to ~/.config/koten.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "koten"), nil
}

package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendDatabase = "database"
	BackendAPI      = "api"
)

// Config holds application configuration.
type Config struct {
	AppName  string
	Listen   string
	Backend  string
	LogLevel string
	LogFile  string

	ConfigFile string

	DB  DBConfig
	API APIConfig
}

type DBConfig struct {
	PropertiesFile string `mapstructure:"properties_file"`
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
}

type APIConfig struct {
	URL            string `mapstructure:"url"`
	Key            string `mapstructure:"key"`
	CAFile         string `mapstructure:"ca_file"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from the YAML config file named by CSADMIN_CONFIG
// (default config.yaml). A missing file leaves the defaults in place; the
// service then runs fail-closed with no access-control section.
func Load() (Config, error) {
	_ = godotenv.Load()

	configFile := getenv("CSADMIN_CONFIG", "config.yaml")

	v := viper.New()
	v.SetConfigFile(configFile)

	v.SetDefault("listen", ":5443")
	v.SetDefault("backend", BackendDatabase)
	v.SetDefault("log_level", "info")
	v.SetDefault("db.properties_file", "/etc/xroad/db.properties")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("api.url", "https://localhost:4000/api/v1")
	v.SetDefault("api.ca_file", "ca.pem")
	v.SetDefault("api.timeout_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		AppName:    getenv("APP_SERVICE", "csadmin"),
		Listen:     v.GetString("listen"),
		Backend:    normalizeBackend(v.GetString("backend")),
		LogLevel:   v.GetString("log_level"),
		LogFile:    v.GetString("log_file"),
		ConfigFile: configFile,
	}

	if err := v.UnmarshalKey("db", &cfg.DB); err != nil {
		return Config{}, err
	}
	if err := v.UnmarshalKey("api", &cfg.API); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func normalizeBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case BackendAPI:
		return BackendAPI
	default:
		return BackendDatabase
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

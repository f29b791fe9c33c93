package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	configFileEnvKey = "CONFIG_FILE"
	dbConnEnvKey     = "URL_DB"
)

type App struct {
	Port            string        `koanf:"port"`
	DBConnectionURL string        `koanf:"url_db"`
	LogLevel        string        `koanf:"log_level"`
	CORSOrigin      string        `koanf:"cors_origin"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

func defaults() App {
	return App{
		Port:            "3000",
		LogLevel:        "info",
		CORSOrigin:      "*",
		ShutdownTimeout: 10 * time.Second,
	}
}

// NewApp layers defaults, the optional YAML file named by CONFIG_FILE and
// the process environment, in that order of precedence.
func NewApp() (App, error) {
	k := koanf.New(".")

	if path := os.Getenv(configFileEnvKey); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return App{}, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	// PORT -> port, URL_DB -> url_db
	envProvider := env.Provider("", ".", strings.ToLower)
	if err := k.Load(envProvider, nil); err != nil {
		return App{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return App{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBConnectionURL == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	if cfg.Port == "" {
		cfg.Port = defaults().Port
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (a App) Addr() string {
	return ":" + a.Port
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPAddr          string        `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadHeaderTimeout time.Duration `yaml:"read-header-timeout" env:"READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads the YAML file at path, then applies environment overrides. A
// missing file is not an error; defaults and env are used instead.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, conf); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return conf, conf.validate()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read env config: %w", err)
	}
	return conf, conf.validate()
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

// SlogLevel maps LogLevel onto a slog level.
func (that *Config) SlogLevel() slog.Level {
	var level slog.Level
	// validated on load
	_ = level.UnmarshalText([]byte(that.LogLevel))
	return level
}

func (that *Config) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
	return nil
}

// Package config loads service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lost-woods/mechanica/src/rng"
)

const (
	SourceSerial = "serial"
	SourceCrypto = "crypto"
	SourceSeeded = "seeded"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"777"`
	APIKey string `env:"API_KEY"`

	Source           string `env:"RNG_SOURCE" envDefault:"serial"`
	Seed             uint64 `env:"RNG_SEED"`
	HealthIntervalMs int    `env:"RNG_HEALTH_INTERVAL" envDefault:"10000"`

	Serial Serial
}

type Serial struct {
	Device        string `env:"SERIAL_DEVICE_NAME"`
	BaudRate      int    `env:"SERIAL_BAUD_RATE" envDefault:"115200"`
	ReadTimeoutMs int    `env:"SERIAL_READ_TIMEOUT" envDefault:"1000"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.HealthIntervalMs <= 0 {
		return fmt.Errorf("invalid RNG_HEALTH_INTERVAL: %d", c.HealthIntervalMs)
	}

	switch c.Source {
	case SourceCrypto, SourceSeeded:
		return nil
	case SourceSerial:
		if c.Serial.Device == "" {
			return errors.New("SERIAL_DEVICE_NAME is required")
		}
		if c.Serial.BaudRate <= 0 {
			return fmt.Errorf("invalid SERIAL_BAUD_RATE: %d", c.Serial.BaudRate)
		}
		if c.Serial.ReadTimeoutMs < 0 {
			return fmt.Errorf("invalid SERIAL_READ_TIMEOUT: %d", c.Serial.ReadTimeoutMs)
		}
		return nil
	default:
		return fmt.Errorf("unknown RNG_SOURCE %q (want %s, %s or %s)", c.Source, SourceSerial, SourceCrypto, SourceSeeded)
	}
}

func (c Config) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalMs) * time.Millisecond
}

func (s Serial) RNGConfig() rng.SerialConfig {
	return rng.SerialConfig{
		Device:      s.Device,
		Baud:        s.BaudRate,
		ReadTimeout: time.Duration(s.ReadTimeoutMs) * time.Millisecond,
	}
}

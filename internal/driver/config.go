package driver

import (
	"errors"
	"fmt"

	"github.com/yndnr/chainmap/internal/telemetry/logger"
)

// Default configuration values.
const (
	DefaultRepeat    = 10000
	DefaultCapacity  = 1024
	DefaultRateLimit = 0
	DefaultKey       = 1
	DefaultValue     = "TODO"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the root configuration for chainmap-driver.
type Config struct {
	Driver  DriverSection  `koanf:"driver" yaml:"driver"`
	Log     LogSection     `koanf:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics"`
}

// DriverSection configures the exercise loop.
type DriverSection struct {
	// Repeat is the number of iterations.
	Repeat int `koanf:"repeat" yaml:"repeat"`
	// Capacity is the bucket count of every constructed map.
	Capacity int `koanf:"capacity" yaml:"capacity"`
	// RateLimit caps iterations per second. Zero means unlimited.
	RateLimit int `koanf:"rate_limit" yaml:"rate_limit"`
	// Key and Value are assigned into every map.
	Key   int    `koanf:"key" yaml:"key"`
	Value string `koanf:"value" yaml:"value"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// MetricsSection configures metric output.
type MetricsSection struct {
	// File receives the registry in the Prometheus text format after a run.
	// Empty disables the output.
	File string `koanf:"file" yaml:"file"`
}

// Default returns the default driver configuration.
func Default() *Config {
	return &Config{
		Driver: DriverSection{
			Repeat:    DefaultRepeat,
			Capacity:  DefaultCapacity,
			RateLimit: DefaultRateLimit,
			Key:       DefaultKey,
			Value:     DefaultValue,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := verifyDriver(&cfg.Driver); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyDriver(cfg *DriverSection) error {
	if cfg.Repeat < 0 {
		return fmt.Errorf("driver.repeat must not be negative, got %d", cfg.Repeat)
	}
	if cfg.Capacity < 1 {
		return fmt.Errorf("driver.capacity must be at least 1, got %d", cfg.Capacity)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("driver.rate_limit must not be negative, got %d", cfg.RateLimit)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}
	return nil
}

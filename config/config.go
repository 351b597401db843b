package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/lowlandresearch/larc/logger"
	"github.com/lowlandresearch/larc/validation"
)

// Config is the full larc configuration.
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" json:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" json:"environment"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging" json:"logging"`
	Pipeline    PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline" json:"pipeline"`
	IP          IPConfig        `yaml:"ip" mapstructure:"ip" json:"ip"`
	CSV         CSVConfig       `yaml:"csv" mapstructure:"csv" json:"csv"`
	Telemetry   TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry" json:"telemetry"`
}

// PipelineConfig tunes how maybe pipelines report short-circuits.
type PipelineConfig struct {
	// Quiet suppresses the error log written when a stage fails.
	Quiet bool `yaml:"quiet" mapstructure:"quiet" json:"quiet"`
	// StackDepth is the number of frames kept when a stage panics.
	StackDepth int `yaml:"stack_depth" mapstructure:"stack_depth" json:"stack_depth" validate:"gte=1,lte=64"`
}

// IPConfig bounds IP range expansion.
type IPConfig struct {
	MaxExpand int `yaml:"max_expand" mapstructure:"max_expand" json:"max_expand" validate:"gte=1"`
}

// CSVConfig holds CSV dialect defaults.
type CSVConfig struct {
	Comma string `yaml:"comma" mapstructure:"comma" json:"comma" validate:"len=1"`
}

// TelemetryConfig controls OTLP export of pipeline traces and metrics.
type TelemetryConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" json:"interval" validate:"gte=0"`
}

// Default values.
const (
	DefaultStackDepth = 5
	DefaultMaxExpand  = 1 << 16
	DefaultComma      = ","
	DefaultEndpoint   = "localhost:4318"
	DefaultInterval   = 15 * time.Second
)

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "larc"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	if c.Environment == "development" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	if c.Pipeline.StackDepth == 0 {
		c.Pipeline.StackDepth = DefaultStackDepth
	}
	if c.IP.MaxExpand == 0 {
		c.IP.MaxExpand = DefaultMaxExpand
	}
	if c.CSV.Comma == "" {
		c.CSV.Comma = DefaultComma
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = DefaultEndpoint
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1
	}
	if c.Telemetry.Interval == 0 {
		c.Telemetry.Interval = DefaultInterval
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	validEnvs := []string{"development", "staging", "production"}
	if !slices.Contains(validEnvs, c.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// CommaRune returns the CSV delimiter as a rune.
func (c *CSVConfig) CommaRune() rune {
	for _, r := range c.Comma {
		return r
	}
	return ','
}

// Package config loads the bondangles settings from an optional YAML file
// and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Bond assignment: added to the sum of covalent radii, in A.
	BondTolerance float64

	// Bond vectors with a norm at or below this are degenerate.
	DegenerateTolerance float64

	// Output
	HistogramBins  int
	AnglePrecision int

	// Logging. An empty LogFile means stderr only.
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors Config in the YAML file. Pointers tell
// missing keys from zero values.
type fileConfig struct {
	BondTolerance       *float64 `yaml:"bond_tolerance"`
	DegenerateTolerance *float64 `yaml:"degenerate_tolerance"`
	HistogramBins       *int     `yaml:"histogram_bins"`
	AnglePrecision      *int     `yaml:"angle_precision"`
	LogFile             *string  `yaml:"log_file"`
	LogLevel            *string  `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BondTolerance:       0.45,
		DegenerateTolerance: 1e-8,
		HistogramBins:       36,
		AnglePrecision:      4,
		LogFile:             "",
		LogLevel:            slog.LevelInfo,
	}
}

// Load returns the default configuration, overridden by the YAML file at path
// (skipped if path is empty) and then by BONDANGLES_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("BONDANGLES_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.applyYAML(data); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyYAML(data []byte) error {
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.BondTolerance != nil {
		c.BondTolerance = *f.BondTolerance
	}
	if f.DegenerateTolerance != nil {
		c.DegenerateTolerance = *f.DegenerateTolerance
	}
	if f.HistogramBins != nil {
		c.HistogramBins = *f.HistogramBins
	}
	if f.AnglePrecision != nil {
		c.AnglePrecision = *f.AnglePrecision
	}
	if f.LogFile != nil {
		c.LogFile = *f.LogFile
	}
	if f.LogLevel != nil {
		c.LogLevel = parseLogLevel(*f.LogLevel)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.BondTolerance, err = getEnvFloat("BONDANGLES_BOND_TOLERANCE", c.BondTolerance); err != nil {
		return err
	}
	if c.DegenerateTolerance, err = getEnvFloat("BONDANGLES_DEGENERATE_TOLERANCE", c.DegenerateTolerance); err != nil {
		return err
	}
	if c.HistogramBins, err = getEnvInt("BONDANGLES_HISTOGRAM_BINS", c.HistogramBins); err != nil {
		return err
	}
	if c.AnglePrecision, err = getEnvInt("BONDANGLES_ANGLE_PRECISION", c.AnglePrecision); err != nil {
		return err
	}
	c.LogFile = getEnv("BONDANGLES_LOG_FILE", c.LogFile)
	if lvl := os.Getenv("BONDANGLES_LOG_LEVEL"); lvl != "" {
		c.LogLevel = parseLogLevel(lvl)
	}
	return nil
}

// Validate checks that the values make sense.
func (c Config) Validate() error {
	switch {
	case c.BondTolerance < 0:
		return fmt.Errorf("bond tolerance must not be negative, got %g", c.BondTolerance)
	case c.DegenerateTolerance <= 0:
		return fmt.Errorf("degenerate tolerance must be positive, got %g", c.DegenerateTolerance)
	case c.HistogramBins < 1:
		return fmt.Errorf("histogram bins must be at least 1, got %d", c.HistogramBins)
	case c.AnglePrecision < 0 || c.AnglePrecision > 12:
		return fmt.Errorf("angle precision must be between 0 and 12, got %d", c.AnglePrecision)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

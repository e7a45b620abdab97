package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hue-palette/internal/palette"
)

// Config holds all generator configuration values.
type Config struct {
	Format      string
	Size        int
	Saturation  float64
	Lightness   float64
	Verify      bool
	Preview     bool
	MetricsFile string
	LogLevel    string

	// Raw values that failed to parse, reported by Validate
	invalid []string
}

// Load reads configuration from environment variables with defaults that
// produce the standard 256-entry hex table.
func Load() *Config {
	cfg := &Config{
		Format:      strings.ToLower(getEnvOrDefault("PALETTE_FORMAT", string(palette.FormatHex))),
		MetricsFile: getEnvOrDefault("PALETTE_METRICS_FILE", ""),
		LogLevel:    strings.ToLower(getEnvOrDefault("LOG_LEVEL", "warn")),
	}

	cfg.Size = cfg.parseInt("PALETTE_SIZE", palette.DefaultSize)
	cfg.Saturation = cfg.parseFloat("PALETTE_SATURATION", palette.DefaultSaturation)
	cfg.Lightness = cfg.parseFloat("PALETTE_LIGHTNESS", palette.DefaultLightness)
	cfg.Verify = cfg.parseBool("PALETTE_VERIFY", false)
	cfg.Preview = cfg.parseBool("PALETTE_PREVIEW", false)

	return cfg
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	errs := append([]string(nil), c.invalid...)

	if _, err := palette.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Sprintf("format must be hex or png, got %q", c.Format))
	}
	if c.Size < 1 || c.Size > palette.MaxSize {
		errs = append(errs, fmt.Sprintf("size must be between 1 and %d, got %d", palette.MaxSize, c.Size))
	}
	if !(c.Saturation >= 0 && c.Saturation <= 1) {
		errs = append(errs, fmt.Sprintf("saturation must be in [0, 1], got %g", c.Saturation))
	}
	if !(c.Lightness >= 0 && c.Lightness <= 1) {
		errs = append(errs, fmt.Sprintf("lightness must be in [0, 1], got %g", c.Lightness))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error", "quiet":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// Generator builds the palette generator described by c.
func (c *Config) Generator() *palette.Generator {
	return &palette.Generator{
		Size:       c.Size,
		Saturation: c.Saturation,
		Lightness:  c.Lightness,
	}
}

// OutputFormat returns the parsed output format, falling back to hex.
func (c *Config) OutputFormat() palette.Format {
	f, err := palette.ParseFormat(c.Format)
	if err != nil {
		return palette.FormatHex
	}
	return f
}

func (c *Config) parseInt(key string, defaultValue int) int {
	s := getEnvOrDefault(key, "")
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s: %q is not an integer", key, s))
		return defaultValue
	}
	return v
}

func (c *Config) parseFloat(key string, defaultValue float64) float64 {
	s := getEnvOrDefault(key, "")
	if s == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s: %q is not a number", key, s))
		return defaultValue
	}
	return v
}

func (c *Config) parseBool(key string, defaultValue bool) bool {
	s := getEnvOrDefault(key, "")
	if s == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s: %q is not a boolean", key, s))
		return defaultValue
	}
	return v
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

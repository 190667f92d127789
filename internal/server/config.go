package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/leftover-labs/freedom-rate/internal/config"
	"github.com/leftover-labs/freedom-rate/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxBodySize   string               `yaml:"maxBodySize"`
	ForwardURL    string               `yaml:"forwardUrl"`
	RefDataFile   string               `yaml:"refDataFile"`
	Logging       config.LoggingConfig `yaml:"logging"`
	bodySizeBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:       constants.DefaultServerAddress,
		MaxBodySize:   fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	if strings.TrimSpace(c.MaxBodySize) == "" {
		c.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		return nil
	}

	size, err := parseByteSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid maxBodySize %q: %w", c.MaxBodySize, err)
	}
	c.bodySizeBytes = size
	return nil
}

// parseByteSize accepts a plain byte count or a count with a K/M suffix.
func parseByteSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(value))
	if trimmed == "" {
		return 0, errors.New("empty size")
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(trimmed, "KB") || strings.HasSuffix(trimmed, "K"):
		multiplier = 1024
		trimmed = strings.TrimRight(trimmed, "KB")
	case strings.HasSuffix(trimmed, "MB") || strings.HasSuffix(trimmed, "M"):
		multiplier = 1024 * 1024
		trimmed = strings.TrimRight(trimmed, "MB")
	}
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

	numeric, err := strconv.ParseInt(strings.TrimSpace(trimmed), 10, 64)
	if err != nil {
		return 0, err
	}
	if numeric <= 0 {
		return 0, errors.New("size must be positive")
	}
	return numeric * multiplier, nil
}

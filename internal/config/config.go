// Package config loads kelvin.yaml, overlays .env variables and derives the
// declaration order of configured channels.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"kelvin/internal/app/errors"
)

// configFile is the well-known config file name, looked up in the working
// directory
const configFile = "kelvin.yaml"

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Watch struct {
		Poll     time.Duration `yaml:"poll"`
		Debounce time.Duration `yaml:"debounce"`
	}
	Plot struct {
		Scale        string        `yaml:"scale"`
		RollInterval time.Duration `yaml:"rollInterval"`
	}
	Bus struct {
		Buffer int `yaml:"buffer"`
	}
	Channels map[string]*Channel `yaml:"channels"`

	// ChannelOrder preserves the order channels are declared in, which a
	// map cannot; it decides legend and plot ordering
	ChannelOrder []string
}

// Channel represents per-channel display configuration
type Channel struct {
	Color  string `yaml:"color"`
	Hidden bool   `yaml:"hidden"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Channels: make(map[string]*Channel),
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Watch.Poll = DefaultPollInterval
	cfg.Watch.Debounce = DefaultDebounce

	cfg.Plot.Scale = ScaleLinear
	cfg.Plot.RollInterval = DefaultRollInterval

	cfg.Bus.Buffer = DefaultBusBuffer

	return cfg
}

// Load loads the configuration from kelvin.yaml. A missing file yields the
// defaults; a present but broken file is an error.
func Load() (*Config, error) {
	// .env entries become process env before viper binds them
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	order, err := parseChannelOrder(data)
	if err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ChannelOrder = order

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// applyEnv lets KELVIN_LOG_LEVEL / KELVIN_LOG_FORMAT override the file,
// which is what the godotenv overlay exists for
func applyEnv(cfg *Config) {
	if level := os.Getenv("KELVIN_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	if format := os.Getenv("KELVIN_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
}

// parseChannelOrder walks the raw yaml document and records the order of
// the channels mapping keys
func parseChannelOrder(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	order := []string{}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return order, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return order, nil
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Value != "channels" || value.Kind != yaml.MappingNode {
			continue
		}

		for j := 0; j < len(value.Content); j += 2 {
			order = append(order, value.Content[j].Value)
		}
	}

	return order, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Watch.Poll <= 0 {
		return errors.ErrInvalidPollInterval
	}

	if c.Plot.RollInterval < 0 {
		return errors.ErrInvalidRollInterval
	}

	if c.Bus.Buffer <= 0 {
		return errors.ErrInvalidLogsBuffer
	}

	switch strings.ToLower(strings.TrimSpace(c.Plot.Scale)) {
	case ScaleLinear, ScaleNormalized, ScaleLog:
	default:
		return fmt.Errorf("%w: %q (must be %q, %q, or %q)",
			errors.ErrInvalidScaleMode, c.Plot.Scale, ScaleLinear, ScaleNormalized, ScaleLog)
	}

	return nil
}

// ChannelColor returns the configured color for a channel, or a palette
// color picked by position
func (c *Config) ChannelColor(name string, position int) string {
	if ch, ok := c.channel(name); ok && ch.Color != "" {
		return ch.Color
	}

	return DefaultPalette[position%len(DefaultPalette)]
}

// ChannelVisible reports whether a channel starts out visible
func (c *Config) ChannelVisible(name string) bool {
	ch, ok := c.channel(name)

	return !ok || !ch.Hidden
}

// channel looks a channel up by name. Viper lowercases mapping keys, so the
// lookup falls back to the lowercased form.
func (c *Config) channel(name string) (*Channel, bool) {
	if ch, ok := c.Channels[name]; ok {
		return ch, true
	}

	ch, ok := c.Channels[strings.ToLower(name)]

	return ch, ok
}

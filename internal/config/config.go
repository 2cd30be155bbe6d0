// File: config.go
// Title: Configuration Loading for nearestrlc
// Description: Typed configuration loaded from TOML or YAML files with
//              defaults and NEARESTRLC_* environment overrides. Provides the
//              default tolerance class, output unit and user-defined
//              inventory series.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	rlclog "github.com/msto63/nearestrlc/internal/core/log"
	"github.com/msto63/nearestrlc/pkg/eseries"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "NEARESTRLC"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig     `toml:"general" yaml:"general"`
	Quantize  QuantizeConfig    `toml:"quantize" yaml:"quantize"`
	Inventory []InventoryConfig `toml:"inventory" yaml:"inventory"`

	filePath string
	format   Format
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// QuantizeConfig holds the defaults for the quantize, series and batch commands
type QuantizeConfig struct {
	Tolerance string `toml:"tolerance" yaml:"tolerance"`
	Unit      string `toml:"unit" yaml:"unit"`
	Digits    int    `toml:"digits" yaml:"digits"`
}

// InventoryConfig describes a user-defined series, typically the values
// actually on the shelf. Values may be given in any decade (10, 22, 47 or
// 1.0, 2.2, 4.7); they are reduced to their mantissas when the series is built.
type InventoryConfig struct {
	Name             string    `toml:"name" yaml:"name"`
	TolerancePercent float64   `toml:"tolerance_percent" yaml:"tolerance_percent"`
	Values           []float64 `toml:"values" yaml:"values"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{format: FormatTOML}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, rlcerror.Newf("config file not found: %s", path).
			WithCode(rlcerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, rlcerror.Wrap(err, "failed to read config").
			WithCode(rlcerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := parse(content, detectFormat(path))
	if err != nil {
		return nil, rlcerror.Wrap(err, "failed to parse config").
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.filePath = path

	return cfg.finish()
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, err
	}
	return cfg.finish()
}

// LoadFromEnv loads the file named by NEARESTRLC_CONFIG, or the first
// config found in the default locations. Without any file it returns the
// defaults with environment overrides applied.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default().finish()
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order.
func DefaultPaths() []string {
	paths := []string{
		"./nearestrlc.toml",
		"./nearestrlc.yaml",
		"./nearestrlc.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "nearestrlc", "config.toml"),
			filepath.Join(home, ".config", "nearestrlc", "config.yaml"),
		)
	}
	return paths
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parse(content []byte, format Format) (*Config, error) {
	cfg := &Config{format: format}

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, rlcerror.Wrap(err, "TOML parse error").
				WithCode(rlcerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, rlcerror.Wrap(err, "YAML parse error").
				WithCode(rlcerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	default:
		return nil, rlcerror.Newf("unsupported format: %s", format).
			WithCode(rlcerror.CodeInvalidConfig).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	return cfg, nil
}

func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = rlclog.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = rlclog.FormatText.String()
	}
	if c.Quantize.Tolerance == "" {
		c.Quantize.Tolerance = eseries.Tol5.String()
	}
	if c.Quantize.Unit == "" {
		c.Quantize.Unit = "Ω"
	}
	if c.Quantize.Digits == 0 {
		c.Quantize.Digits = 3
	}
}

// applyEnv applies NEARESTRLC_* overrides on top of file values
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"LOG_LEVEL":  &c.General.LogLevel,
		"LOG_FORMAT": &c.General.LogFormat,
		"TOLERANCE":  &c.Quantize.Tolerance,
		"UNIT":       &c.Quantize.Unit,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(EnvPrefix + "_" + key); ok && v != "" {
			*field = v
		}
	}
}

// Validate checks every setting and every inventory series.
func (c *Config) Validate() error {
	if _, err := rlclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalidSetting("general.log_level", c.General.LogLevel, err)
	}
	if _, err := rlclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalidSetting("general.log_format", c.General.LogFormat, err)
	}
	if _, err := eseries.ParseTolerance(c.Quantize.Tolerance); err != nil {
		return invalidSetting("quantize.tolerance", c.Quantize.Tolerance, err)
	}
	if c.Quantize.Digits < 1 || c.Quantize.Digits > 15 {
		return invalidSetting("quantize.digits", c.Quantize.Digits, nil)
	}

	seen := make(map[string]bool, len(c.Inventory))
	for _, inv := range c.Inventory {
		key := strings.ToLower(inv.Name)
		if key == "" {
			return invalidSetting("inventory.name", inv.Name, nil)
		}
		if seen[key] {
			return rlcerror.Newf("duplicate inventory series %q", inv.Name).
				WithCode(rlcerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("name", inv.Name)
		}
		seen[key] = true

		if _, err := inv.Series(); err != nil {
			return err
		}
	}
	return nil
}

func invalidSetting(key string, value interface{}, cause error) error {
	var e *rlcerror.Error
	if cause != nil {
		e = rlcerror.Wrap(cause, "invalid setting "+key)
	} else {
		e = rlcerror.New("invalid setting " + key)
	}
	return e.WithCode(rlcerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// Tolerance returns the configured default tolerance class
func (c *Config) Tolerance() (eseries.Tolerance, error) {
	return eseries.ParseTolerance(c.Quantize.Tolerance)
}

// LogConfig returns the logger settings, falling back to the logger
// defaults for unparsable values.
func (c *Config) LogConfig() rlclog.Config {
	level, err := rlclog.ParseLevel(c.General.LogLevel)
	if err != nil {
		level = rlclog.DefaultLevel()
	}
	format, _ := rlclog.ParseFormat(c.General.LogFormat)

	return rlclog.Config{
		Level:  level,
		Format: format,
		Name:   "nearestrlc",
	}
}

// Series looks up an inventory series by name, case-insensitively.
func (c *Config) Series(name string) (*eseries.Series, error) {
	for _, inv := range c.Inventory {
		if strings.EqualFold(inv.Name, name) {
			return inv.Series()
		}
	}
	return nil, rlcerror.Newf("inventory series %q not configured", name).
		WithCode(rlcerror.CodeNotFound).
		WithOperation("config.Series").
		WithDetail("name", name)
}

// SeriesNames returns the configured inventory names in file order.
func (c *Config) SeriesNames() []string {
	names := make([]string, len(c.Inventory))
	for i, inv := range c.Inventory {
		names[i] = inv.Name
	}
	return names
}

// FilePath returns the path the configuration was loaded from, if any.
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was parsed from.
func (c *Config) Format() Format {
	return c.format
}

// Series builds the inventory as an eseries.Series. Values are reduced to
// mantissas in [1, 10), sorted and deduplicated.
func (inv InventoryConfig) Series() (*eseries.Series, error) {
	mantissas := make([]float64, 0, len(inv.Values))
	for i, v := range inv.Values {
		if !(v > 0) {
			return nil, rlcerror.Newf("inventory %q: value %v must be positive", inv.Name, v).
				WithCode(rlcerror.CodeInvalidSeries).
				WithOperation("config.InventoryConfig.Series").
				WithDetail("name", inv.Name).
				WithDetail("index", i)
		}
		m, _ := eseries.Normalize(v)
		mantissas = append(mantissas, m)
	}
	sort.Float64s(mantissas)

	unique := mantissas[:0]
	for _, m := range mantissas {
		if len(unique) > 0 && m-unique[len(unique)-1] < 1e-9 {
			continue
		}
		unique = append(unique, m)
	}

	return eseries.NewSeries(inv.Name, inv.TolerancePercent, unique)
}

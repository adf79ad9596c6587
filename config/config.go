// Package config loads the rendering settings of the command line tool,
// from a YAML file, CSSFLOW_ prefixed environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	doc "github.com/benoitkugler/cssflow/html/document"
	"github.com/benoitkugler/cssflow/html/tree"
	"github.com/benoitkugler/cssflow/text"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables overriding the settings.
const EnvPrefix = "CSSFLOW"

// Config holds the rendering settings.
type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Font     FontConfig     `mapstructure:"font" yaml:"font"`
	Style    StyleConfig    `mapstructure:"style" yaml:"style"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

// ViewportConfig is the initial size of the output, in pixels.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

type FontConfig struct {
	Size float64 `mapstructure:"size" yaml:"size"`
	// Face is one of "go-regular" or "basic".
	Face string `mapstructure:"face" yaml:"face"`
	// File is the path of a TrueType or OpenType font,
	// used instead of Face when not empty.
	File string `mapstructure:"file" yaml:"file"`
}

type StyleConfig struct {
	// Default enables the default HTML style sheet.
	Default bool `mapstructure:"default" yaml:"default"`
	// Stylesheets are paths of additional CSS files.
	Stylesheets []string `mapstructure:"stylesheets" yaml:"stylesheets"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers the default values of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)

	v.SetDefault("font.size", 16)
	v.SetDefault("font.face", "go-regular")
	v.SetDefault("font.file", "")

	v.SetDefault("style.default", true)
	v.SetDefault("style.stylesheets", []string{})

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
}

// NewViper returns a viper instance with the defaults and the
// environment bindings. If [file] is not empty, it is read as a YAML config.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", file, err)
	}
	return v, nil
}

// NewDefaultConfig returns the default settings.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("invalid default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper decodes and validates the settings of [v].
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.Viewport.Width <= 0 {
		err = multierr.Append(err, errors.New("viewport.width must be positive"))
	}
	if c.Viewport.Height <= 0 {
		err = multierr.Append(err, errors.New("viewport.height must be positive"))
	}
	if c.Font.Size <= 0 {
		err = multierr.Append(err, errors.New("font.size must be positive"))
	}
	switch c.Font.Face {
	case "go-regular", "basic":
	default:
		err = multierr.Append(err, fmt.Errorf("font.face: unknown face %q", c.Font.Face))
	}
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logger.level: unknown level %q", c.Logger.Level))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logger.format: unknown format %q", c.Logger.Format))
	}
	return err
}

// Fonts returns the font configuration selected by [Font.File] or [Font.Face].
func (c *Config) Fonts() (text.FontConfiguration, error) {
	if c.Font.File != "" {
		data, err := os.ReadFile(c.Font.File)
		if err != nil {
			return nil, fmt.Errorf("loading font: %w", err)
		}
		fonts, err := text.NewOpenTypeFonts(data)
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", c.Font.File, err)
		}
		return fonts, nil
	}
	switch c.Font.Face {
	case "basic":
		return text.BasicFonts{}, nil
	case "go-regular":
		fonts, err := text.NewGoRegular()
		if err != nil {
			return nil, err
		}
		return fonts, nil
	default:
		return nil, fmt.Errorf("unknown font face %q", c.Font.Face)
	}
}

// Options builds the rendering options, loading the fonts and
// the style sheet files.
func (c *Config) Options() (doc.Options, error) {
	fonts, err := c.Fonts()
	if err != nil {
		return doc.Options{}, err
	}
	opts := doc.Options{
		Width:          doc.Fl(c.Viewport.Width),
		Height:         doc.Fl(c.Viewport.Height),
		Fonts:          fonts,
		NoDefaultStyle: !c.Style.Default,
		Stylesheets:    []tree.CSS{tree.NewCSS([]byte(fmt.Sprintf("html { font-size: %gpx }", c.Font.Size)))},
	}
	for _, path := range c.Style.Stylesheets {
		data, err := os.ReadFile(path)
		if err != nil {
			return doc.Options{}, fmt.Errorf("loading style sheet: %w", err)
		}
		opts.Stylesheets = append(opts.Stylesheets, tree.NewCSS(data))
	}
	return opts, nil
}

// Write dumps [c] in YAML format.
func Write(w io.Writer, c *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

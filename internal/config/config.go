package config

import (
	"errors"
	"fmt"

	"codegen/internal/extract"
	"codegen/internal/file"
	"codegen/internal/log"

	"github.com/spf13/viper"
)

var (
	ErrInvalidLength    = errors.New("code length must be greater than 0")
	ErrInvalidCount     = errors.New("code count must not be negative")
	ErrInvalidOutput    = errors.New("output must be \"terminal\" or \"csv\"")
	ErrInvalidCSVPath   = errors.New("CSV path must be set when writing CSV")
	ErrInvalidColumn    = errors.New("check column must be set")
	ErrInvalidFormat    = errors.New("report format must be \"text\", \"json\" or \"yaml\"")
	ErrConflictingCase  = errors.New("ignore-case and upper-case cannot both be set")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidThreshold = errors.New("progress threshold must not be negative")
)

const (
	OutputTerminal = "terminal"
	OutputCSV      = "csv"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all application configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Check    CheckConfig    `mapstructure:"check"`
	Log      log.Config     `mapstructure:"log"`
}

// GenerateConfig holds code generation defaults
type GenerateConfig struct {
	Count     int    `mapstructure:"count"`
	Length    int    `mapstructure:"length"`
	Lower     bool   `mapstructure:"lower"`
	Upper     bool   `mapstructure:"upper"`
	Digits    bool   `mapstructure:"digits"`
	Hex       bool   `mapstructure:"hex"`
	HexUpper  bool   `mapstructure:"hex_upper"`
	Out       string `mapstructure:"out"`
	CSVPath   string `mapstructure:"csv_path"`
	WithIndex bool   `mapstructure:"with_index"`
	Header    bool   `mapstructure:"header"`
	Encoding  string `mapstructure:"encoding"`

	// ProgressThreshold is the smallest CSV export that shows a progress bar; 0 disables it
	ProgressThreshold int `mapstructure:"progress_threshold"`
}

// CheckConfig holds duplicate check defaults
type CheckConfig struct {
	Column     string `mapstructure:"column"`
	NoHeader   bool   `mapstructure:"no_header"`
	Encoding   string `mapstructure:"encoding"`
	Delimiter  string `mapstructure:"delimiter"`
	IgnoreCase bool   `mapstructure:"ignore_case"`
	UpperCase  bool   `mapstructure:"upper_case"`
	NoTrim     bool   `mapstructure:"no_trim"`
	Format     string `mapstructure:"format"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Count:             10,
			Length:            6,
			Lower:             true,
			Out:               OutputTerminal,
			CSVPath:           "codes.csv",
			Header:            true,
			Encoding:          "utf-8",
			ProgressThreshold: 10000,
		},
		Check: CheckConfig{
			Column:    "code",
			Encoding:  "utf-8",
			Delimiter: ",",
			Format:    FormatText,
		},
		Log: log.Config{
			Level: "info",
		},
	}
}

// Load overlays settings from v (config file, environment, bound flags) onto the defaults
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if err := c.Generate.Validate(); err != nil {
		return err
	}
	if err := c.Check.Validate(); err != nil {
		return err
	}
	if !log.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// Validate checks generation settings. The alphabet itself is validated by the generator.
func (g *GenerateConfig) Validate() error {
	if g.Length <= 0 {
		return ErrInvalidLength
	}
	if g.Count < 0 {
		return ErrInvalidCount
	}
	if g.Out != OutputTerminal && g.Out != OutputCSV {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, g.Out)
	}
	if g.Out == OutputCSV && g.CSVPath == "" {
		return ErrInvalidCSVPath
	}
	if g.ProgressThreshold < 0 {
		return ErrInvalidThreshold
	}
	if _, err := file.LookupEncoding(g.Encoding); err != nil {
		return err
	}
	return nil
}

// Validate checks duplicate check settings
func (c *CheckConfig) Validate() error {
	if c.Column == "" {
		return ErrInvalidColumn
	}
	if _, err := extract.ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	if c.IgnoreCase && c.UpperCase {
		return ErrConflictingCase
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if _, err := file.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	return nil
}

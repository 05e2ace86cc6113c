package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"datamedic/internal/clean"
)

// envPrefix namespaces all environment variables (DATAMEDIC_*).
const envPrefix = "DATAMEDIC"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Clean   clean.Config  `yaml:"clean" envconfig:"CLEAN"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// OutputConfig contains export and report target configuration
type OutputConfig struct {
	// Dir is the directory cleaned data and reports are written under.
	Dir string `yaml:"dir" envconfig:"DIR"`
	// Exports are the cleaned-data targets, formats chosen by extension.
	Exports []string `yaml:"exports" envconfig:"EXPORTS"`
	// ReportFile is the health summary target (.txt or .json).
	ReportFile string `yaml:"report_file" envconfig:"REPORT_FILE"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/datamedic.log",
		},
		Output: OutputConfig{
			Dir:        "out",
			Exports:    []string{"cleaned_data.csv", "cleaned_data.xlsx", "cleaned_data.json"},
			ReportFile: "report.txt",
		},
		Clean: clean.DefaultConfig(),
	}
}

// Load builds the configuration with precedence: environment variables over
// the YAML file at configFile (skipped when empty or absent) over defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Clean.Validate(); err != nil {
		return err
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging.file_path required when logging.output is %q", c.Logging.Output)
	}
	return nil
}

// EnsureOutputDir creates the output directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if c.Output.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

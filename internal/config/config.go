// Package config loads covall settings from an optional YAML file with
// COVALL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/covall/internal/apperrors"
	"github.com/mouse-blink/covall/pkg/logger/slogpretty"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = ".covall.yaml"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Config holds every path and name the build and view commands use.
type Config struct {
	SourceRoot   string   `yaml:"source_root" env:"COVALL_SOURCE_ROOT"`
	CoverageFile string   `yaml:"coverage_file" env:"COVALL_COVERAGE_FILE"`
	OutputDir    string   `yaml:"output_dir" env:"COVALL_OUTPUT_DIR"`
	OutputFile   string   `yaml:"output_file" env:"COVALL_OUTPUT_FILE"`
	TemplateDir  string   `yaml:"template_dir" env:"COVALL_TEMPLATE_DIR"`
	Identifier   string   `yaml:"identifier" env:"COVALL_IDENTIFIER"`
	Exclude      []string `yaml:"exclude" env:"COVALL_EXCLUDE" env-separator:","`
	LogLevel     string   `yaml:"log_level" env:"COVALL_LOG_LEVEL"`
	Env          string   `yaml:"env" env:"COVALL_ENV"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		SourceRoot:   "src",
		CoverageFile: "coverage/lcov.info",
		OutputDir:    "coverage",
		OutputFile:   "coverage/coverageFiles.js",
		TemplateDir:  "node_modules/coverage-all/report",
		Identifier:   "coverageFiles",
		Exclude:      []string{},
		LogLevel:     "info",
		Env:          slogpretty.EnvLocal,
	}
}

// Load starts from Default, overlays the YAML file at path if it exists and
// then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := overlayFile(&cfg, path); err != nil {
		return Config{}, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return &apperrors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	for _, field := range []struct {
		name  string
		value string
	}{
		{"source_root", c.SourceRoot},
		{"coverage_file", c.CoverageFile},
		{"output_dir", c.OutputDir},
		{"output_file", c.OutputFile},
		{"template_dir", c.TemplateDir},
		{"identifier", c.Identifier},
	} {
		if field.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field.name))
		}
	}

	if c.Identifier != "" && !identifierPattern.MatchString(c.Identifier) {
		errs = append(errs, fmt.Errorf("identifier %q is not a valid JavaScript identifier", c.Identifier))
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("exclude pattern %q is malformed", pattern))
		}
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	switch c.Env {
	case slogpretty.EnvLocal, slogpretty.EnvDev, slogpretty.EnvProd:
	default:
		errs = append(errs, fmt.Errorf("env %q must be one of local, dev, prod", c.Env))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, errors.Join(errs...))
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable Load reads the config path from.
const EnvVar = "SLACKWIRE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local work against recorded captures.
	Development Environment = "development"
	// Staging is for checks run against a test workspace.
	Staging Environment = "staging"
	// Production is for checks gating a release.
	Production Environment = "production"
)

// Values for CheckConfig.UnknownVariants.
const (
	UnknownVariantsWarn = "warn"
	UnknownVariantsFail = "fail"
)

// DefaultTimestampMaxLength is the longest wire timestamp accepted by
// default: ten digits of seconds, the dot, and six digits of
// microseconds.
const DefaultTimestampMaxLength = 17

// Config is the master configuration for slackwire.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Timestamp configures wire timestamp parsing.
	Timestamp TimestampConfig `yaml:"timestamp"`

	// Check configures capture decode checks.
	Check CheckConfig `yaml:"check"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Per-environment overrides, applied after the base config is
	// loaded when Environment matches.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains fields that can be overridden per environment.
// Unset fields leave the base value alone.
type Overrides struct {
	Timestamp *TimestampConfig `yaml:"timestamp,omitempty"`
	Check     *CheckOverrides  `yaml:"check,omitempty"`
	Paths     *PathsConfig     `yaml:"paths,omitempty"`
}

// CheckOverrides is CheckConfig with Dedupe made optional.
type CheckOverrides struct {
	UnknownVariants string `yaml:"unknown_variants,omitempty"`
	Dedupe          *bool  `yaml:"dedupe,omitempty"`
}

// TimestampConfig configures wire timestamp parsing.
type TimestampConfig struct {
	// MaxLength bounds the length of a timestamp string.
	// Default: 17
	MaxLength int `yaml:"max_length"`
}

// CheckConfig configures capture decode checks.
type CheckConfig struct {
	// UnknownVariants is "warn" or "fail". An unrecognized event type
	// or message subtype is a forward-compatibility signal rather than
	// a contract break, so development only warns.
	// Default: warn (development, staging), fail (production)
	UnknownVariants string `yaml:"unknown_variants"`

	// Dedupe drops records whose payload was already seen.
	// Default: true
	Dedupe bool `yaml:"dedupe"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Captures is the directory searched for capture files when the
	// check command is given none.
	Captures string `yaml:"captures"`

	// Reports is where check reports are written when --out names a
	// relative path.
	Reports string `yaml:"reports"`
}

// Default returns the configuration used when no file is named.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	root := filepath.Join(homeDir, ".cache", "slackwire")

	return &Config{
		Environment: Development,
		Timestamp: TimestampConfig{
			MaxLength: DefaultTimestampMaxLength,
		},
		Check: CheckConfig{
			UnknownVariants: UnknownVariantsWarn,
			Dedupe:          true,
		},
		Paths: PathsConfig{
			Captures: filepath.Join(root, "captures"),
			Reports:  filepath.Join(root, "reports"),
		},
	}
}

// Load loads configuration from the file named by SLACKWIRE_CONFIG.
// There is no discovery: if the variable is unset, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your slackwire.yaml config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// Resolve picks the configuration for a command: the file at path
// when non-empty, else the file named by SLACKWIRE_CONFIG, else
// Default(). The result is validated.
func Resolve(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case path != "":
		cfg, err = LoadFile(path)
	case os.Getenv(EnvVar) != "":
		cfg, err = Load()
	default:
		cfg = Default()
		cfg.expandVariables()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific file path.
//
// Unknown keys are errors. The only expansion performed is ${HOME},
// ${SLACKWIRE_ROOT}, and ${VAR:-default} patterns in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: unknown variants fail the check.
		if overrides == nil {
			overrides = &Overrides{
				Check: &CheckOverrides{UnknownVariants: UnknownVariantsFail},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Timestamp != nil && overrides.Timestamp.MaxLength != 0 {
		c.Timestamp.MaxLength = overrides.Timestamp.MaxLength
	}

	if overrides.Check != nil {
		if overrides.Check.UnknownVariants != "" {
			c.Check.UnknownVariants = overrides.Check.UnknownVariants
		}
		if overrides.Check.Dedupe != nil {
			c.Check.Dedupe = *overrides.Check.Dedupe
		}
	}

	if overrides.Paths != nil {
		if overrides.Paths.Captures != "" {
			c.Paths.Captures = overrides.Paths.Captures
		}
		if overrides.Paths.Reports != "" {
			c.Paths.Reports = overrides.Paths.Reports
		}
	}
}

func (c *Config) expandVariables() {
	homeDir, _ := os.UserHomeDir()
	vars := map[string]string{
		"SLACKWIRE_ROOT": filepath.Join(homeDir, ".cache", "slackwire"),
		"HOME":           os.Getenv("HOME"),
	}

	c.Paths.Captures = expandVars(c.Paths.Captures, vars)
	c.Paths.Reports = expandVars(c.Paths.Reports, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Timestamp.MaxLength < 3 {
		errs = append(errs, fmt.Errorf("timestamp.max_length must be at least 3, got %d", c.Timestamp.MaxLength))
	}

	policies := []string{UnknownVariantsWarn, UnknownVariantsFail}
	if !slices.Contains(policies, c.Check.UnknownVariants) {
		errs = append(errs, fmt.Errorf("check.unknown_variants must be one of: %v", policies))
	}

	return errors.Join(errs...)
}

// EnsurePaths creates the configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	for _, path := range []string{c.Paths.Captures, c.Paths.Reports} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}

// ReportPath resolves a report file name against Paths.Reports.
// Absolute names are returned unchanged.
func (c *Config) ReportPath(name string) string {
	if filepath.IsAbs(name) || c.Paths.Reports == "" {
		return name
	}
	return filepath.Join(c.Paths.Reports, name)
}

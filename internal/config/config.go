// Package config holds the driver settings: exit statuses per error kind,
// the step limit and logger options. Settings come from defaults, then an
// optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
)

// Log configures the charmbracelet logger
type Log struct {
	Prefix     string
	Timestamps bool
}

// Config is the resolved driver configuration
type Config struct {
	Path      string
	ExitCodes map[fault.Kind]int
	MaxSteps  int
	Log       Log
}

// configFile mirrors the YAML layout, absent keys stay nil
type configFile struct {
	ExitCodes map[string]int `yaml:"exit_codes"`
	MaxSteps  *int           `yaml:"max_steps"`
	Log       *struct {
		Prefix     *string `yaml:"prefix"`
		Timestamps *bool   `yaml:"timestamps"`
	} `yaml:"log"`
}

// ValidationError aggregates configuration problems
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	if e.Path != "" {
		b.WriteString(e.Path + ": ")
	}
	b.WriteString("validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var defaultExitCodes = map[fault.Kind]int{
	fault.Usage:           10,
	fault.InputFile:       11,
	fault.SourceFormat:    31,
	fault.Structural:      52,
	fault.OperandType:     53,
	fault.VariableAccess:  54,
	fault.FrameAccess:     55,
	fault.EmptyStack:      56,
	fault.OperandValue:    57,
	fault.StringOperation: 58,
	fault.Internal:        99,
}

// Default returns the built-in configuration
func Default() *Config {
	codes := make(map[fault.Kind]int, len(defaultExitCodes))
	for k, v := range defaultExitCodes {
		codes[k] = v
	}
	return &Config{
		ExitCodes: codes,
		Log:       Log{Prefix: "IPP"},
	}
}

// Load reads a YAML configuration file on top of the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fault.Errorf(fault.Usage, "config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fault.Errorf(fault.InputFile, "config: open %s: %v", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Decode parses YAML from r, an empty document yields the defaults
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fault.Errorf(fault.Usage, "config: parse: %v", err)
	}

	cfg := Default()
	if err := raw.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw *configFile) apply(cfg *Config) error {
	var issues []string

	names := make([]string, 0, len(raw.ExitCodes))
	for name := range raw.ExitCodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		code := raw.ExitCodes[name]
		kind, ok := fault.ParseKind(name)
		if !ok {
			issues = append(issues, fmt.Sprintf("exit_codes: unknown error kind %q", name))
			continue
		}
		if code < 0 || code > 255 {
			issues = append(issues, fmt.Sprintf("exit_codes.%s: %d is not a valid exit status", name, code))
			continue
		}
		cfg.ExitCodes[kind] = code
	}

	if raw.MaxSteps != nil {
		if *raw.MaxSteps < 0 {
			issues = append(issues, "max_steps must not be negative")
		} else {
			cfg.MaxSteps = *raw.MaxSteps
		}
	}

	if raw.Log != nil {
		if raw.Log.Prefix != nil {
			cfg.Log.Prefix = *raw.Log.Prefix
		}
		if raw.Log.Timestamps != nil {
			cfg.Log.Timestamps = *raw.Log.Timestamps
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ExitCode returns the process status for an error kind
func (c *Config) ExitCode(kind fault.Kind) int {
	if code, ok := c.ExitCodes[kind]; ok {
		return code
	}
	return defaultExitCodes[fault.Internal]
}

// ExitCodeOf returns the process status for err, 0 when err is nil
func (c *Config) ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return c.ExitCode(fault.Usage)
	}
	return c.ExitCode(fault.KindOf(err))
}

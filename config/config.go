// SPDX-License-Identifier: MIT
// Package config holds graphtrace run settings.
//
// Resolution order, later wins:
//
//  1. Default()
//  2. YAML file (optional; a missing file is not an error)
//  3. .env file loaded into the process environment (optional; existing
//     variables are never overwritten)
//  4. GRAPHTRACE_* environment variables
//
// Load validates the merged result and Resolve leaves validation to the
// caller. Every validation failure wraps ErrInvalidConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Traversal modes.
const (
	ModeBFS = "bfs"
	ModeDFS = "dfs"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatAuto    = "auto"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRAPHTRACE_"

// Config is the full set of run settings.
type Config struct {
	// Nodes is the path of the nodes CSV (label,id,...).
	Nodes string `json:"nodes" yaml:"nodes" validate:"required"`
	// Links is the path of the links CSV (tail,head,...).
	Links string `json:"links" yaml:"links" validate:"required"`
	// Root is the label of the traversal root.
	Root string `json:"root" yaml:"root" validate:"required"`
	// Mode is "bfs" or "dfs".
	Mode string `json:"mode" yaml:"mode" validate:"oneof=bfs dfs"`
	// OutDir receives nodes.csv, links.csv and graph.gv.
	OutDir string `json:"out_dir" yaml:"out_dir" validate:"required"`
	// Render writes graph.gv when true.
	Render bool `json:"render" yaml:"render"`
	// MarkedOnly draws only decorated edges.
	MarkedOnly bool `json:"marked_only" yaml:"marked_only"`
	// Classification is the DFS non-tree edge rule: "observed" or "classical".
	Classification string `json:"classification" yaml:"classification" validate:"omitempty,oneof=observed classical"`

	Log Log `json:"log" yaml:"log"`
}

// Log configures the logger.
type Log struct {
	Level string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	// Format is "console", "json" or "auto" (console on a terminal, else json).
	Format string `json:"format" yaml:"format" validate:"oneof=console json auto"`
}

// Default returns the built-in settings. Root has no default.
func Default() Config {
	return Config{
		Nodes:          "nodes.csv",
		Links:          "links.csv",
		Mode:           ModeBFS,
		OutDir:         "out",
		Render:         true,
		MarkedOnly:     false,
		Classification: "observed",
		Log: Log{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load resolves the configuration from path (may be empty) and the given
// .env files (".env" when none are given), then validates it.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg, err := Resolve(path, envFiles...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve merges defaults, the YAML file, .env files and the environment
// without validating. Callers that layer more overrides on top (CLI flags)
// validate afterwards.
func Resolve(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// loadEnvFiles loads every existing file; missing ones are skipped.
func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"NODES":          &cfg.Nodes,
		"LINKS":          &cfg.Links,
		"ROOT":           &cfg.Root,
		"MODE":           &cfg.Mode,
		"OUT_DIR":        &cfg.OutDir,
		"CLASSIFICATION": &cfg.Classification,
		"LOG_LEVEL":      &cfg.Log.Level,
		"LOG_FORMAT":     &cfg.Log.Format,
	}
	for name, dst := range strs {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"RENDER":      &cfg.Render,
		"MARKED_ONLY": &cfg.MarkedOnly,
	}
	for name, dst := range bools {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, name, v, err)
		}
		*dst = b
	}

	return nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fe := fieldErrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, field)
	}

	return fmt.Errorf("%w: %s %q (want one of: %s)", ErrInvalidConfig, field, fe.Value(), fe.Param())
}

// validate reports fields by their yaml names ("log.level", "out_dir").
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

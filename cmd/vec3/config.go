package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/vec3/vec3/random"
)

// maxSamples bounds -n so a typo cannot flood the terminal.
const maxSamples = 1_000_000

// Config holds every tunable of the calculator.
type Config struct {
	Type      string `yaml:"type"`
	Format    string `yaml:"format"`
	Seed      uint64 `yaml:"seed"`
	Samples   int    `yaml:"samples"`
	Shift     uint   `yaml:"shift"`
	Index     int    `yaml:"index"`
	LogLevel  string `yaml:"log_level"`
	WarnAfter int    `yaml:"warn_after"`
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

func defaultConfig() Config {
	return Config{
		Type:      "float64",
		Format:    "v",
		Seed:      1,
		Samples:   1,
		LogLevel:  "warn",
		WarnAfter: random.DefaultWarnAfter,
	}
}

// loadConfig layers defaults, the optional YAML file at path and the VEC3_*
// environment (read through lookup). Flags are applied by the caller.
func loadConfig(path string, lookup lookupFunc) (Config, error) {
	cfg := defaultConfig()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg, lookup)
	return cfg, nil
}

// decodeYAML overlays raw onto cfg, rejecting unknown keys.
func decodeYAML(raw []byte, cfg *Config) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// applyEnv overrides cfg from the environment. Numeric values that do not
// parse are ignored and the previous value is kept.
func applyEnv(cfg *Config, lookup lookupFunc) {
	cfg.Type = getenv(lookup, "VEC3_TYPE", cfg.Type)
	cfg.Format = getenv(lookup, "VEC3_FORMAT", cfg.Format)
	cfg.LogLevel = getenv(lookup, "VEC3_LOG_LEVEL", cfg.LogLevel)
	cfg.Samples = getenvInt(lookup, "VEC3_SAMPLES", cfg.Samples)
	cfg.Index = getenvInt(lookup, "VEC3_INDEX", cfg.Index)
	cfg.WarnAfter = getenvInt(lookup, "VEC3_WARN_AFTER", cfg.WarnAfter)
	cfg.Seed = getenvUint(lookup, "VEC3_SEED", cfg.Seed)
	cfg.Shift = uint(getenvUint(lookup, "VEC3_SHIFT", uint64(cfg.Shift)))
}

func getenv(lookup lookupFunc, k, def string) string {
	if v, ok := lookup(k); ok && v != "" {
		return v
	}
	return def
}

func getenvInt(lookup lookupFunc, k string, def int) int {
	v, ok := lookup(k)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvUint(lookup lookupFunc, k string, def uint64) uint64 {
	v, ok := lookup(k)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// verbs lists the fmt verbs that make sense for each component type.
var verbs = map[string]string{
	"int":     "vdboxX",
	"float32": "vbeEfgGxX",
	"float64": "vbeEfgGxX",
}

var errInvalidConfig = errors.New("invalid config")

// validate checks cfg after every layer has been applied.
func (c Config) validate() error {
	allowed, ok := verbs[c.Type]
	if !ok {
		return fmt.Errorf("%w: type %q must be int, float32 or float64", errInvalidConfig, c.Type)
	}
	if len(c.Format) != 1 || !strings.Contains(allowed, c.Format) {
		return fmt.Errorf("%w: format %q not supported for %s (want one of %q)", errInvalidConfig, c.Format, c.Type, allowed)
	}
	if c.Samples <= 0 || c.Samples > maxSamples {
		return fmt.Errorf("%w: samples must be in 1..%d, got %d", errInvalidConfig, maxSamples, c.Samples)
	}
	if c.WarnAfter < 0 {
		return fmt.Errorf("%w: warn_after must be >= 0, got %d", errInvalidConfig, c.WarnAfter)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return nil
}

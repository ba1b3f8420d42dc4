package matchas

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/coregx/matchas/internal/engine"
)

// EngineKind names the regex engine a pattern is compiled with.
type EngineKind = engine.Kind

// Engine kinds.
//
// EngineCoregex, EngineBinary and EngineAhoCorasick search byte patterns;
// EngineRegexp2 searches rune patterns. EngineAhoCorasick only accepts
// literal sets (see CompileLiterals).
const (
	EngineCoregex     = engine.Coregex
	EngineBinary      = engine.Binary
	EngineRegexp2     = engine.Regexp2
	EngineAhoCorasick = engine.AhoCorasick
)

// Config controls pattern compilation and matching.
//
// Example:
//
//	config := matchas.DefaultConfig()
//	config.Engine = matchas.EngineBinary // raw bytes, no UTF-8 decoding
//	config.MaxMatches = 100             // bound list and count conversions
//	p, err := matchas.CompileWithConfig[byte](`\xff+`, config)
type Config struct {
	// Engine selects the regex engine.
	// Default: "" (coregex for byte patterns, regexp2 for rune patterns)
	Engine EngineKind `yaml:"engine"`

	// IgnoreCase enables case-insensitive matching.
	// Default: false
	IgnoreCase bool `yaml:"ignore_case"`

	// MatchTimeout bounds a single search. Only honored by regexp2; a search
	// that times out ends the session and is reported by Session.Err.
	// Default: 0 (no limit)
	MatchTimeout time.Duration `yaml:"match_timeout"`

	// MaxMatches caps how many matches Session.All yields, and therefore
	// the count and list conversions.
	// Default: 0 (unlimited)
	MaxMatches int `yaml:"max_matches"`

	// Logger receives compile events at debug level and engine failures at
	// warn level.
	// Default: zerolog.Nop()
	Logger zerolog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Engine != "" && !c.Engine.Valid() {
		return &ConfigError{
			Field:   "Engine",
			Message: "unknown engine " + string(c.Engine),
		}
	}
	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}
	if c.MaxMatches < 0 {
		return &ConfigError{
			Field:   "MaxMatches",
			Message: "must not be negative",
		}
	}
	return nil
}

func (c Config) options() engine.Options {
	return engine.Options{
		IgnoreCase:   c.IgnoreCase,
		MatchTimeout: c.MatchTimeout,
	}
}

// ParseConfig decodes a YAML configuration on top of DefaultConfig.
// An empty document yields the defaults.
func ParseConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	err := yaml.NewDecoder(r).Decode(&config)
	if err != nil && err != io.EOF {
		return config, errors.Wrap(err, "can't decode config")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), errors.Wrap(err, "can't open config")
	}
	defer f.Close()

	config, err := ParseConfig(f)
	if err != nil {
		return config, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

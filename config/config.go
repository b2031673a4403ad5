// Package config loads graphfuzz run profiles.
//
// A profile fixes everything a run needs to be reproducible: the seed, the
// complexity budgets, the corpus wire format, operator weight overrides and
// the log level. Profiles are TOML or YAML, chosen by file extension:
//
//	seed = 7
//	max_complexity = 64.0
//	spare_complexity = 8.0
//	format = "msgpack"
//	log_level = "debug"
//	workers = 4
//
//	[weights]
//	mutate_node_data = 40
//	move_node = 0
//
// Keys that are absent keep their DefaultProfile values; unknown keys are
// rejected so that typos in operator names surface early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/generator"
)

var (
	// ErrUnsupportedExtension indicates a profile path that is neither TOML nor YAML.
	ErrUnsupportedExtension = errors.New("config: unsupported profile extension")

	// ErrInvalidProfile indicates a profile value outside its allowed range.
	ErrInvalidProfile = errors.New("config: invalid profile")
)

// Profile is the decoded form of a profile file.
type Profile struct {
	Seed            int64          `toml:"seed" yaml:"seed"`
	MaxComplexity   float64        `toml:"max_complexity" yaml:"max_complexity"`
	SpareComplexity float64        `toml:"spare_complexity" yaml:"spare_complexity"`
	Format          string         `toml:"format" yaml:"format"`
	LogLevel        string         `toml:"log_level" yaml:"log_level"`
	Workers         int            `toml:"workers" yaml:"workers"`
	Weights         map[string]int `toml:"weights,omitempty" yaml:"weights,omitempty"`
}

// DefaultProfile returns the profile used when no file is given.
func DefaultProfile() *Profile {
	return &Profile{
		Seed:            1,
		MaxComplexity:   64,
		SpareComplexity: 8,
		Format:          string(codec.FormatJSON),
		LogLevel:        "info",
		Workers:         4,
	}
}

// Load decodes the profile at path over DefaultProfile and validates it.
func Load(path string) (*Profile, error) {
	p := DefaultProfile()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, p)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidProfile)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedExtension)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Validate checks every field and the resulting weight table.
func (p *Profile) Validate() error {
	if !(p.MaxComplexity > 0) || math.IsInf(p.MaxComplexity, 0) {
		return fmt.Errorf("max_complexity %v must be positive and finite: %w", p.MaxComplexity, ErrInvalidProfile)
	}
	if !(p.SpareComplexity >= 0) || math.IsInf(p.SpareComplexity, 0) {
		return fmt.Errorf("spare_complexity %v must be non-negative and finite: %w", p.SpareComplexity, ErrInvalidProfile)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", p.Workers, ErrInvalidProfile)
	}
	if _, err := codec.ParseFormat(p.Format); err != nil {
		return err
	}
	if _, err := p.SlogLevel(); err != nil {
		return err
	}
	ws, err := p.ResolvedWeights()
	if err != nil {
		return err
	}

	return ws.Validate()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error", or offsets
// such as "info+2"). An empty level means info.
func (p *Profile) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(p.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", p.LogLevel, ErrInvalidProfile)
	}

	return lvl, nil
}

// ResolvedWeights applies the named overrides to generator.DefaultWeights.
func (p *Profile) ResolvedWeights() (generator.Weights, error) {
	ws := generator.DefaultWeights()
	for _, name := range sortedKeys(p.Weights) {
		op, err := generator.ParseOperator(name)
		if err != nil {
			return ws, fmt.Errorf("weights: %w", err)
		}
		ws = ws.Set(op, p.Weights[name])
	}

	return ws, nil
}

// GeneratorOptions translates the profile into generator options.
func (p *Profile) GeneratorOptions() ([]generator.Option, error) {
	format, err := codec.ParseFormat(p.Format)
	if err != nil {
		return nil, err
	}
	ws, err := p.ResolvedWeights()
	if err != nil {
		return nil, err
	}

	return []generator.Option{
		generator.WithSeed(p.Seed),
		generator.WithFormat(format),
		generator.WithWeights(ws),
	}, nil
}

// Write renders the profile as TOML ("toml") or YAML ("yaml", "yml").
func (p *Profile) Write(w io.Writer, syntax string) error {
	switch strings.ToLower(syntax) {
	case "toml":
		return toml.NewEncoder(w).Encode(p)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", syntax, ErrUnsupportedExtension)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// SPDX-License-Identifier: EPL-2.0

package recompress

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ik5/threepm/entropy"
)

// ModelKind selects the payload coder.
type ModelKind int

const (
	// ModelRegion is the binary coder with per frequency region statistics.
	ModelRegion ModelKind = iota
	// ModelNaive is the binary coder with byte context only.
	ModelNaive
	// ModelSymbol is the adaptive multi-symbol coder.
	ModelSymbol
)

var modelNames = map[ModelKind]string{
	ModelRegion: "region",
	ModelNaive:  "naive",
	ModelSymbol: "symbol",
}

func (k ModelKind) String() string {
	if name, ok := modelNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ModelKind(%d)", int(k))
}

// ParseModelKind parses a model name as printed by ModelKind.String.
func ParseModelKind(s string) (ModelKind, error) {
	for k, name := range modelNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown model %q", ErrInvalidConfig, s)
}

// Environment keys read by LoadConfig.
const (
	EnvModel    = "THREEPM_MODEL"
	EnvRegions  = "THREEPM_REGIONS"
	EnvSpan     = "THREEPM_SPAN"
	EnvLogLevel = "THREEPM_LOG_LEVEL"
)

// Config controls a Recompressor. Both sides of a 3PM stream must use
// the same Model, Regions and Span.
type Config struct {
	Model   ModelKind
	Regions int // frequency regions of ModelRegion
	Span    int // samples per region cycle of ModelRegion

	// Logger receives per frame warnings and progress. Nil discards.
	Logger logrus.FieldLogger
	// Metrics, when set, is updated as frames are processed.
	Metrics *Metrics

	// KeepSamples stores every frame's quantized samples in the Result.
	KeepSamples bool
	// CollectFrequencies fills Stats.Frequencies.
	CollectFrequencies bool
}

// DefaultConfig returns the region model with 20 regions per granule.
func DefaultConfig() Config {
	return Config{
		Model:   ModelRegion,
		Regions: entropy.DefaultRegions,
		Span:    entropy.DefaultSpan,
	}
}

// LoadConfig returns DefaultConfig updated from a dotenv file and then
// from the process environment, which takes precedence. A missing file
// is not an error; an empty path skips the file.
//
// The returned level is the parsed THREEPM_LOG_LEVEL, or logrus.InfoLevel.
func LoadConfig(path string) (Config, logrus.Level, error) {
	cfg := DefaultConfig()
	level := logrus.InfoLevel

	values := map[string]string{}
	if path != "" {
		file, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, level, fmt.Errorf("recompress: read config %s: %w", path, err)
		}
		for k, v := range file {
			values[k] = v
		}
	}
	for _, k := range []string{EnvModel, EnvRegions, EnvSpan, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}

	if v, ok := values[EnvModel]; ok {
		kind, err := ParseModelKind(v)
		if err != nil {
			return cfg, level, err
		}
		cfg.Model = kind
	}

	for key, dst := range map[string]*int{EnvRegions: &cfg.Regions, EnvSpan: &cfg.Span} {
		v, ok := values[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, level, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
		}
		*dst = n
	}

	if v, ok := values[EnvLogLevel]; ok {
		l, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, level, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLogLevel, err)
		}
		level = l
	}

	return cfg, level, cfg.Validate()
}

// Validate reports whether the configuration can build a codec.
func (c Config) Validate() error {
	_, err := c.Codec()
	return err
}

// Codec returns the payload coder selected by c.
func (c Config) Codec() (entropy.Codec, error) {
	switch c.Model {
	case ModelNaive:
		return entropy.NaiveCodec(), nil
	case ModelSymbol:
		return entropy.SymbolCodec{}, nil
	case ModelRegion:
		codec, err := entropy.RegionCodec(c.Regions, c.Span)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return codec, nil
	}
	return nil, fmt.Errorf("%w: unknown model %v", ErrInvalidConfig, c.Model)
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

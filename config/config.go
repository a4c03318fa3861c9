package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spektr-org/studentviz/engine"
)

// EnvLogLevel overrides the log level of any loaded config.
const EnvLogLevel = "STUDENTVIZ_LOG_LEVEL"

// ErrInvalidConfig is returned by Load and Validate for unusable settings.
var ErrInvalidConfig = ewrap.New("invalid config")

// Config is the file form of the dashboard settings.
// Zero values are replaced by the defaults on Load.
type Config struct {
	BinField      engine.Field `json:"binField"`
	DomainLow     *float64     `json:"domainLow,omitempty"`
	DomainHigh    *float64     `json:"domainHigh,omitempty"`
	BinCount      int          `json:"binCount"`
	DropEmptyBins bool         `json:"dropEmptyBins"`

	ScatterX engine.Field `json:"scatterX"`
	ScatterY engine.Field `json:"scatterY"`

	CategoryField engine.Field `json:"categoryField"`
	// Categories fixes the stacking order. Empty means derive from the data.
	Categories []float64 `json:"categories,omitempty"`

	InfluenceField1 engine.Field `json:"influenceField1"`
	InfluenceField2 engine.Field `json:"influenceField2"`

	LogLevel string `json:"logLevel"`
}

// Default returns the settings of the stock dashboard: GPA in four bins over
// [0, 4], study time against GPA, ages stacked, parental education and support.
func Default() Config {
	low, high := 0.0, 4.0
	return Config{
		BinField:        engine.FieldGPA,
		DomainLow:       &low,
		DomainHigh:      &high,
		BinCount:        4,
		ScatterX:        engine.FieldStudyTimeWeekly,
		ScatterY:        engine.FieldGPA,
		CategoryField:   engine.FieldAge,
		InfluenceField1: engine.FieldParentalEducation,
		InfluenceField2: engine.FieldParentalSupport,
		LogLevel:        zerolog.InfoLevel.String(),
	}
}

// Load reads a JSON config file, fills unset fields from Default and validates
// the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ewrap.Wrapf(err, "could not load config %s", path)
	}
	return Parse(b)
}

// Parse decodes a JSON config.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, ewrap.Wrap(err, "could not unmarshal config")
	}
	cfg.applyDefaults()
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config %s: %s", path, err.Error()))
	}
	log.Info().Str("path", path).Msg("loaded config")
	return cfg
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.BinField == "" {
		c.BinField = def.BinField
	}
	if c.DomainLow == nil {
		c.DomainLow = def.DomainLow
	}
	if c.DomainHigh == nil {
		c.DomainHigh = def.DomainHigh
	}
	if c.BinCount == 0 {
		c.BinCount = def.BinCount
	}
	if c.ScatterX == "" {
		c.ScatterX = def.ScatterX
	}
	if c.ScatterY == "" {
		c.ScatterY = def.ScatterY
	}
	if c.CategoryField == "" {
		c.CategoryField = def.CategoryField
	}
	if c.InfluenceField1 == "" {
		c.InfluenceField1 = def.InfluenceField1
	}
	if c.InfluenceField2 == "" {
		c.InfluenceField2 = def.InfluenceField2
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks field names, the bin domain and the log level.
func (c Config) Validate() error {
	for _, f := range []engine.Field{c.BinField, c.ScatterX, c.ScatterY, c.CategoryField, c.InfluenceField1, c.InfluenceField2} {
		if !f.Valid() {
			return ewrap.Wrapf(ErrInvalidConfig, "unknown field %q", f)
		}
	}
	if c.BinCount <= 0 {
		return ewrap.Wrapf(ErrInvalidConfig, "binCount %d", c.BinCount)
	}
	if c.DomainLow == nil || c.DomainHigh == nil || *c.DomainLow >= *c.DomainHigh {
		return ewrap.Wrap(ErrInvalidConfig, "domainLow must be below domainHigh")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return ewrap.Wrapf(ErrInvalidConfig, "logLevel %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level, info when it cannot be parsed.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Options converts the config into engine options. Extra options are
// appended, so they win over the file.
func (c Config) Options(extra ...engine.Option) []engine.Option {
	low, high := 0.0, 4.0
	if c.DomainLow != nil {
		low = *c.DomainLow
	}
	if c.DomainHigh != nil {
		high = *c.DomainHigh
	}

	var categories []float64
	if len(c.Categories) > 0 {
		categories = c.Categories
	}

	opts := []engine.Option{
		engine.WithBins(c.BinField, low, high, c.BinCount),
		engine.WithDropEmptyBins(c.DropEmptyBins),
		engine.WithScatter(c.ScatterX, c.ScatterY),
		engine.WithCategories(c.CategoryField, categories),
		engine.WithInfluence(c.InfluenceField1, c.InfluenceField2),
	}
	return append(opts, extra...)
}

package solver

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/match"
	"github.com/patrikhermansson/quadsolve/quad"
	"github.com/patrikhermansson/quadsolve/verify"
)

// NoLimit disables QuadBudget.
const NoLimit = -1

// Duration is a time.Duration that reads and writes strings like "30s".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	*d = Duration(v)
	return nil
}

// Config holds the parameters of one solve attempt.
type Config struct {
	DimQuad int `json:"dimquad"`

	// Scale window of the field in arcseconds per pixel.
	FUnitsLower float64 `json:"funits_lower"`
	FUnitsUpper float64 `json:"funits_upper"`

	CodeTolerance   float64     `json:"code_tolerance"`
	CircleTolerance float64     `json:"circle_tolerance"`
	Parity          quad.Parity `json:"parity"`

	// AcceptLogOdds stops the search; KeepLogOdds is the least score worth
	// reporting as best-so-far.
	AcceptLogOdds float64 `json:"accept_log_odds"`
	KeepLogOdds   float64 `json:"keep_log_odds"`

	// QuadBudget caps the number of field quads tried. NoLimit disables it
	// and zero searches nothing.
	QuadBudget int `json:"quad_budget"`
	// TimeLimit bounds the whole attempt. Zero disables it.
	TimeLimit Duration `json:"time_limit"`
	// Workers is the number of goroutines running match and verify.
	Workers int `json:"workers"`

	MatchRadius        float64 `json:"match_radius"` // pixels
	MissRadius         float64 `json:"miss_radius"`  // pixels
	DistractorFraction float64 `json:"distractor_fraction"`

	// MaxFieldStars keeps the brightest stars only. Zero keeps all.
	MaxFieldStars int `json:"max_field_stars"`

	SIPOrder         int `json:"sip_order"`
	RefineIterations int `json:"refine_iterations"`
}

// DefaultConfig returns a configuration for four-star quads and a wide
// scale window.
func DefaultConfig() Config {
	return Config{
		DimQuad:            4,
		FUnitsLower:        0.1,
		FUnitsUpper:        180,
		CodeTolerance:      match.DefaultCodeTolerance,
		CircleTolerance:    quad.DefaultCircleTolerance,
		Parity:             quad.ParityBoth,
		AcceptLogOdds:      math.Log(1e9),
		KeepLogOdds:        math.Log(1e6),
		QuadBudget:         NoLimit,
		TimeLimit:          Duration(5 * time.Minute),
		Workers:            runtime.NumCPU(),
		MatchRadius:        verify.DefaultMatchRadius,
		MissRadius:         verify.DefaultMissRadius,
		DistractorFraction: verify.DefaultDistractorFraction,
		SIPOrder:           0,
		RefineIterations:   2,
	}
}

// Validate checks the configuration. Every failure wraps core.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.DimQuad < quad.MinDimQuad || c.DimQuad > quad.MaxDimQuad:
		return fmt.Errorf("dimquad %d outside [%d, %d]: %w", c.DimQuad, quad.MinDimQuad, quad.MaxDimQuad, core.ErrInvalidConfig)
	case !(c.FUnitsLower > 0) || c.FUnitsUpper < c.FUnitsLower:
		return fmt.Errorf("scale bounds [%g, %g]: %w", c.FUnitsLower, c.FUnitsUpper, core.ErrInvalidConfig)
	case !(c.CodeTolerance > 0):
		return fmt.Errorf("code tolerance %g: %w", c.CodeTolerance, core.ErrInvalidConfig)
	case c.CircleTolerance < 0:
		return fmt.Errorf("circle tolerance %g: %w", c.CircleTolerance, core.ErrInvalidConfig)
	case c.Parity < quad.ParityNormal || c.Parity > quad.ParityBoth:
		return fmt.Errorf("%v: %w", c.Parity, core.ErrInvalidConfig)
	case c.KeepLogOdds > c.AcceptLogOdds:
		return fmt.Errorf("keep threshold %g above accept threshold %g: %w", c.KeepLogOdds, c.AcceptLogOdds, core.ErrInvalidConfig)
	case c.QuadBudget < NoLimit:
		return fmt.Errorf("quad budget %d: %w", c.QuadBudget, core.ErrInvalidConfig)
	case c.TimeLimit < 0:
		return fmt.Errorf("time limit %v: %w", time.Duration(c.TimeLimit), core.ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%d workers: %w", c.Workers, core.ErrInvalidConfig)
	case c.MaxFieldStars < 0:
		return fmt.Errorf("max field stars %d: %w", c.MaxFieldStars, core.ErrInvalidConfig)
	case c.SIPOrder < 0 || c.RefineIterations < 0:
		return fmt.Errorf("sip order %d, refine iterations %d: %w", c.SIPOrder, c.RefineIterations, core.ErrInvalidConfig)
	case !(c.MatchRadius > 0) || c.MissRadius < c.MatchRadius:
		return fmt.Errorf("match radius %g, miss radius %g: %w", c.MatchRadius, c.MissRadius, core.ErrInvalidConfig)
	}
	return verify.ScoreModel{Distractor: c.DistractorFraction}.Validate()
}

func (c Config) verifyOptions() verify.Options {
	return verify.Options{
		MatchRadius: c.MatchRadius,
		MissRadius:  c.MissRadius,
		Distractor:  c.DistractorFraction,
	}
}

// LoadConfig reads a JSON configuration file over DefaultConfig, so fields
// missing from the file keep their defaults. The file must have a .json
// extension and be at most 1MB.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

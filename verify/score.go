// Package verify checks candidate quad matches against the whole field.
package verify

import (
	"fmt"
	"math"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/internal/helpers"
)

const (
	// DefaultDistractorFraction is the assumed share of field stars with no
	// catalog counterpart.
	DefaultDistractorFraction = 0.25

	// maxFalsePositive caps the chance that a random position lands near a
	// reference star; beyond it a hit carries no evidence worth counting.
	maxFalsePositive = 0.5
	minFalsePositive = 1e-12
)

// ScoreModel converts hits and misses into log-odds evidence that a match
// is the true solution rather than a coincidence.
type ScoreModel struct {
	// Distractor is the probability that a field star has no counterpart
	// even under the true solution. Must lie in (0, 0.5).
	Distractor float64
	// FalsePositive is the probability that a random sky position has a
	// reference star within the match radius.
	FalsePositive float64
}

// Validate checks the model's probabilities.
func (m ScoreModel) Validate() error {
	if !(m.Distractor > 0 && m.Distractor < 0.5) {
		return fmt.Errorf("distractor fraction %g outside (0, 0.5): %w", m.Distractor, core.ErrInvalidConfig)
	}
	return nil
}

// FalsePositiveRate returns the chance of a coincidental reference star
// within radius (radians) of a point, given a density in stars per steradian.
// The result is clamped to (0, 0.5].
func FalsePositiveRate(density, radius float64) float64 {
	p := 1 - math.Exp(-density*math.Pi*radius*radius)
	return helpers.Clamp(p, minFalsePositive, maxFalsePositive)
}

// HitLogOdds is the evidence from one confirmed star. It is positive
// whenever Distractor < 0.5.
func (m ScoreModel) HitLogOdds() float64 {
	fp := helpers.Clamp(m.FalsePositive, minFalsePositive, maxFalsePositive)
	return math.Log((1 - m.Distractor) / fp)
}

// MissLogOdds is the evidence from one contradicted star. It is negative.
func (m ScoreModel) MissLogOdds() float64 {
	return math.Log(m.Distractor)
}

// Score returns the log-odds of hits confirmations and misses contradictions.
// It increases with every hit and decreases with every miss.
func (m ScoreModel) Score(hits, misses int) float64 {
	return float64(hits)*m.HitLogOdds() + float64(misses)*m.MissLogOdds()
}

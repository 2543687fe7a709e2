// Package match looks up field quad codes in reference indexes.
package match

import (
	"fmt"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/quad"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultCodeTolerance is the code-space search radius.
const DefaultCodeTolerance = 0.01

// Candidate pairs a field quad with a reference quad whose code lies within
// tolerance. Field.Stars[i] corresponds to Ref.Stars[i].
type Candidate struct {
	Index core.Index
	Field quad.Quad
	Ref   core.CodeMatch
}

// Matcher queries every attached index whose scale band admits a field quad.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	Indexes       []core.Index
	CodeTolerance float64
	FUnitsLower   float64 // arcseconds per pixel
	FUnitsUpper   float64 // arcseconds per pixel
	Logger        zerolog.Logger
}

// NewMatcher validates the index set and scale window. All indexes must
// share one quad size.
func NewMatcher(indexes []core.Index, codeTolerance, funitsLower, funitsUpper float64) (*Matcher, error) {
	if len(indexes) == 0 {
		return nil, fmt.Errorf("no indexes attached: %w", core.ErrInvalidConfig)
	}
	if codeTolerance <= 0 {
		return nil, fmt.Errorf("code tolerance %g: %w", codeTolerance, core.ErrInvalidConfig)
	}
	if funitsLower <= 0 || funitsUpper < funitsLower {
		return nil, fmt.Errorf("scale bounds [%g, %g]: %w", funitsLower, funitsUpper, core.ErrInvalidConfig)
	}
	dq := indexes[0].DimQuad()
	for _, idx := range indexes[1:] {
		if idx.DimQuad() != dq {
			return nil, fmt.Errorf("index %q has dimquad %d, index %q has %d: %w",
				idx.Name(), idx.DimQuad(), indexes[0].Name(), dq, core.ErrInvalidConfig)
		}
	}
	return &Matcher{
		Indexes:       indexes,
		CodeTolerance: codeTolerance,
		FUnitsLower:   funitsLower,
		FUnitsUpper:   funitsUpper,
		Logger:        log.Logger,
	}, nil
}

// DimQuad returns the shared quad size of the attached indexes.
func (m *Matcher) DimQuad() int { return m.Indexes[0].DimQuad() }

// PixelBand converts an index's angular scale band to anchor separations
// in pixels under the matcher's scale window.
func (m *Matcher) PixelBand(idx core.Index) quad.Band {
	lo, hi := idx.ScaleRange()
	return quad.Band{Lower: lo / m.FUnitsUpper, Upper: hi / m.FUnitsLower}
}

// Bands returns the pixel band of every attached index.
func (m *Matcher) Bands() []quad.Band {
	out := make([]quad.Band, len(m.Indexes))
	for i, idx := range m.Indexes {
		out[i] = m.PixelBand(idx)
	}
	return out
}

// Match returns every reference quad within tolerance of q's code, across
// the indexes whose pixel band holds the anchor separation sep.
// A code of the wrong length is a caller bug and yields core.ErrInvalidCode.
func (m *Matcher) Match(q quad.Quad, sep float64) ([]Candidate, error) {
	if want := quad.CodeDim(m.DimQuad()); len(q.Code) != want {
		return nil, fmt.Errorf("code has %d components, want %d: %w", len(q.Code), want, core.ErrInvalidCode)
	}
	var out []Candidate
	for _, idx := range m.Indexes {
		band := m.PixelBand(idx)
		if sep < band.Lower || sep > band.Upper {
			continue
		}
		if !q.Code.Satisfies(idx.Constraints(), m.CodeTolerance) {
			continue
		}
		matches, err := idx.CodeMatches(q.Code, m.CodeTolerance)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", idx.Name(), err)
		}
		for _, cm := range matches {
			out = append(out, Candidate{Index: idx, Field: q, Ref: cm})
		}
	}
	if len(out) > 0 {
		m.Logger.Debug().Msgf("quad %v matched %d reference quads", q.Stars, len(out))
	}
	return out, nil
}

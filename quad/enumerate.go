package quad

import (
	"fmt"
	"iter"
	"sort"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/field"
)

const (
	// MinDimQuad and MaxDimQuad bound the supported quad sizes.
	MinDimQuad = 3
	MaxDimQuad = 5

	// DefaultCircleTolerance admits stars lying on the anchor circle itself.
	DefaultCircleTolerance = 1e-9
)

// Band is an inclusive range of anchor separations in pixels.
type Band struct {
	Lower float64
	Upper float64
}

// Options configures an Enumerator.
type Options struct {
	DimQuad int
	// Bands lists the eligible anchor separations. Empty admits any
	// non-degenerate pair.
	Bands []Band
	// CircleTolerance is the slack on the anchor circle test.
	CircleTolerance float64
	Parity          Parity
}

// Enumerator produces field quads lazily, smallest fields first: stars are
// admitted one at a time in enumeration order and every subset completed
// by the newest star is emitted before the next star is considered.
type Enumerator struct {
	pts  [][2]float64
	ids  []int
	opts Options
}

// NewEnumerator checks opts against f. A field smaller than the quad size
// yields core.ErrInsufficientStars.
func NewEnumerator(f *field.Field, opts Options) (*Enumerator, error) {
	if opts.DimQuad < MinDimQuad || opts.DimQuad > MaxDimQuad {
		return nil, fmt.Errorf("dimquad %d outside [%d, %d]: %w",
			opts.DimQuad, MinDimQuad, MaxDimQuad, core.ErrInvalidConfig)
	}
	if opts.CircleTolerance < 0 {
		return nil, fmt.Errorf("negative circle tolerance: %w", core.ErrInvalidConfig)
	}
	if opts.Parity < ParityNormal || opts.Parity > ParityBoth {
		return nil, fmt.Errorf("%v: %w", opts.Parity, core.ErrInvalidConfig)
	}
	for _, b := range opts.Bands {
		if b.Lower < 0 || b.Upper < b.Lower {
			return nil, fmt.Errorf("invalid separation band [%g, %g]: %w",
				b.Lower, b.Upper, core.ErrInvalidConfig)
		}
	}
	if f == nil || f.Len() < opts.DimQuad {
		n := 0
		if f != nil {
			n = f.Len()
		}
		return nil, fmt.Errorf("field has %d stars, need %d: %w", n, opts.DimQuad, core.ErrInsufficientStars)
	}
	e := &Enumerator{
		pts:  make([][2]float64, f.Len()),
		ids:  make([]int, f.Len()),
		opts: opts,
	}
	for i := range e.pts {
		x, y := f.XY(i)
		e.pts[i] = [2]float64{x, y}
		e.ids[i] = f.ID(i)
	}
	return e, nil
}

// Options returns the enumerator's configuration.
func (e *Enumerator) Options() Options { return e.opts }

func (e *Enumerator) eligible(sep2 float64) bool {
	if len(e.opts.Bands) == 0 {
		return true
	}
	for _, b := range e.opts.Bands {
		if sep2 >= b.Lower*b.Lower && sep2 <= b.Upper*b.Upper {
			return true
		}
	}
	return false
}

// circle returns the ascending positions of stars inside the anchor circle
// of (a, b). ok is false when the pair cannot serve as anchors.
func (e *Enumerator) circle(a, b int) (in []int, ok bool) {
	f, ok := NewFrame(e.pts[a], e.pts[b])
	if !ok || !e.eligible(f.sep2) {
		return nil, false
	}
	for i, p := range e.pts {
		if i == a || i == b {
			continue
		}
		x, y := f.Project(p)
		if InCircle(x, y, e.opts.CircleTolerance) {
			in = append(in, i)
		}
	}
	return in, true
}

// below returns the prefix of the ascending list in holding values < n.
func below(in []int, n int) []int {
	return in[:sort.SearchInts(in, n)]
}

// Subsets yields every subset of DimQuad stars whose anchor pair is
// eligible and whose other stars lie inside the anchor circle. A group of
// stars is yielded once per eligible anchor pair.
func (e *Enumerator) Subsets() iter.Seq[*Subset] {
	return func(yield func(*Subset) bool) {
		n := len(e.pts)
		dq := e.opts.DimQuad
		circles := make([][]int, n*n)
		eligible := make([]bool, n*n)
		seq := 0

		emit := func(pos []int) bool {
			s := &Subset{
				Seq:       seq,
				Positions: append([]int(nil), pos...),
				IDs:       make([]int, len(pos)),
				Points:    make([][2]float64, len(pos)),
			}
			for i, p := range pos {
				s.IDs[i] = e.ids[p]
				s.Points[i] = e.pts[p]
			}
			seq++
			return yield(s)
		}

		buf := make([]int, 0, dq)
		for newest := 0; newest < n; newest++ {
			// Pairs (a, newest) as the anchor diagonal.
			for a := 0; a < newest; a++ {
				in, ok := e.circle(a, newest)
				circles[a*n+newest], eligible[a*n+newest] = in, ok
				if !ok {
					continue
				}
				done := combinations(below(in, newest), dq-2, func(c []int) bool {
					buf = append(buf[:0], a, newest)
					return emit(append(buf, c...))
				})
				if !done {
					return
				}
			}
			// Earlier pairs whose circle holds the newest star.
			for a := 0; a < newest; a++ {
				for b := a + 1; b < newest; b++ {
					if !eligible[a*n+b] {
						continue
					}
					in := circles[a*n+b]
					k := sort.SearchInts(in, newest)
					if k == len(in) || in[k] != newest {
						continue
					}
					done := combinations(in[:k], dq-3, func(c []int) bool {
						buf = append(buf[:0], a, b, newest)
						return emit(append(buf, c...))
					})
					if !done {
						return
					}
				}
			}
		}
	}
}

// All yields the quads of every subset under the configured parity.
func (e *Enumerator) All() iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		for s := range e.Subsets() {
			for q := range s.Quads(e.opts.Parity) {
				if !yield(q) {
					return
				}
			}
		}
	}
}

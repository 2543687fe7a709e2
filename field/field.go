// Package field prepares a detected star list for quad enumeration.
package field

import (
	"fmt"
	"math"
	"sort"

	"github.com/patrikhermansson/quadsolve/core"
)

// Star is a detected source in pixel coordinates.
// Flux and Background are optional; zero means unknown.
type Star struct {
	X, Y       float64
	Flux       float64
	Background float64
}

// Bounds is the axis-aligned extent of a field.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Options controls preprocessing.
type Options struct {
	// MinStars is the smallest usable field, usually the quad size.
	MinStars int
	// MaxStars keeps only the first MaxStars stars of the enumeration order.
	// Zero keeps all of them.
	MaxStars int
	// ByFlux orders stars by decreasing flux when any flux is known.
	// Ties and unknown fluxes keep their input order.
	ByFlux bool
}

// Field is an immutable, ordered star list with derived summaries.
// Positions 0..Len()-1 are the enumeration order.
type Field struct {
	stars    []Star
	order    []int
	bounds   Bounds
	cx, cy   float64
	diagonal float64
}

// FromXY builds a star list from bare pixel positions.
func FromXY(xy [][2]float64) []Star {
	stars := make([]Star, len(xy))
	for i, p := range xy {
		stars[i] = Star{X: p[0], Y: p[1]}
	}
	return stars
}

// NewField keeps every star in input order.
func NewField(stars []Star) (*Field, error) {
	return Preprocess(stars, Options{})
}

// Preprocess copies stars, fixes the enumeration order and computes the
// field's bounds and centroid. An empty list, or one shorter than
// opts.MinStars after the cut, yields core.ErrInsufficientStars.
func Preprocess(stars []Star, opts Options) (*Field, error) {
	if len(stars) == 0 {
		return nil, fmt.Errorf("empty field: %w", core.ErrInsufficientStars)
	}
	for i, s := range stars {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
			return nil, fmt.Errorf("star %d has non-finite position: %w", i, core.ErrInvalidConfig)
		}
	}

	order := make([]int, len(stars))
	for i := range order {
		order[i] = i
	}
	if opts.ByFlux && hasFlux(stars) {
		sort.SliceStable(order, func(i, j int) bool {
			return stars[order[i]].Flux > stars[order[j]].Flux
		})
	}
	if opts.MaxStars > 0 && len(order) > opts.MaxStars {
		order = order[:opts.MaxStars]
	}
	if len(order) < opts.MinStars {
		return nil, fmt.Errorf("field has %d stars, need %d: %w",
			len(order), opts.MinStars, core.ErrInsufficientStars)
	}

	f := &Field{
		stars: make([]Star, len(order)),
		order: order,
	}
	for pos, id := range order {
		f.stars[pos] = stars[id]
	}
	f.summarize()
	return f, nil
}

func hasFlux(stars []Star) bool {
	for _, s := range stars {
		if s.Flux != 0 {
			return true
		}
	}
	return false
}

func (f *Field) summarize() {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	var sx, sy float64
	for _, s := range f.stars {
		b.MinX = math.Min(b.MinX, s.X)
		b.MaxX = math.Max(b.MaxX, s.X)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxY = math.Max(b.MaxY, s.Y)
		sx += s.X
		sy += s.Y
	}
	n := float64(len(f.stars))
	f.bounds = b
	f.cx, f.cy = sx/n, sy/n
	f.diagonal = math.Hypot(b.Width(), b.Height())
}

// Len returns the number of stars available for enumeration.
func (f *Field) Len() int { return len(f.stars) }

// Star returns the star at enumeration position pos.
func (f *Field) Star(pos int) Star { return f.stars[pos] }

// XY returns the pixel position at enumeration position pos.
func (f *Field) XY(pos int) (float64, float64) {
	s := f.stars[pos]
	return s.X, s.Y
}

// ID maps an enumeration position back to the caller's input index.
func (f *Field) ID(pos int) int { return f.order[pos] }

// Order returns the input indexes in enumeration order.
func (f *Field) Order() []int {
	out := make([]int, len(f.order))
	copy(out, f.order)
	return out
}

// Bounds returns the extent of the kept stars.
func (f *Field) Bounds() Bounds { return f.bounds }

// Centroid returns the mean position of the kept stars.
func (f *Field) Centroid() (x, y float64) { return f.cx, f.cy }

// Diagonal returns the length of the bounding box diagonal in pixels.
func (f *Field) Diagonal() float64 { return f.diagonal }

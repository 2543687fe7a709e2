// Package index is an in-memory reference index of sky quads.
//
// Codes live in a random projection tree so that tolerance queries are
// exact radius searches; star positions live in a second tree over unit
// vectors for footprint and verification lookups.
package index

import (
	"fmt"
	"math"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/quad"
	"github.com/patrikhermansson/quadsolve/rpt"
	"github.com/patrikhermansson/quadsolve/wcs"
)

// Index implements core.Index. It is immutable once built.
type Index struct {
	name        string
	dimquad     int
	scaleLower  float64
	scaleUpper  float64
	constraints core.CodeConstraints

	stars    []core.RefStar
	quads    [][]int
	codes    *rpt.RPTIndex
	starTree *rpt.RPTIndex

	center  [3]float64 // footprint cap center
	capR2   float64    // squared chord radius of the footprint cap
	density float64    // stars per steradian
}

var _ core.Index = (*Index)(nil)

// Name identifies the index.
func (x *Index) Name() string { return x.name }

// DimQuad returns the number of stars per quad.
func (x *Index) DimQuad() int { return x.dimquad }

// ScaleRange returns the anchor separation band in arcseconds.
func (x *Index) ScaleRange() (lower, upper float64) { return x.scaleLower, x.scaleUpper }

// Constraints returns the labeling conventions of the stored codes.
func (x *Index) Constraints() core.CodeConstraints { return x.constraints }

// CodeMatches returns stored quads whose code lies within radius of code,
// closest first.
func (x *Index) CodeMatches(code []float64, radius float64) ([]core.CodeMatch, error) {
	if len(code) != quad.CodeDim(x.dimquad) {
		return nil, fmt.Errorf("code has %d components, index %q expects %d: %w",
			len(code), x.name, quad.CodeDim(x.dimquad), core.ErrInvalidCode)
	}
	if len(x.quads) == 0 {
		return nil, nil
	}
	neighbors, err := x.codes.RangeSearch(code, radius)
	if err != nil {
		return nil, err
	}
	out := make([]core.CodeMatch, 0, len(neighbors))
	for _, n := range neighbors {
		stored, _ := x.codes.Point(n.ID)
		out = append(out, core.CodeMatch{
			QuadID:   n.ID,
			Stars:    append([]int(nil), x.quads[n.ID]...),
			Code:     stored,
			Distance: n.Distance,
		})
	}
	return out, nil
}

// Star returns the reference star with index-local id.
func (x *Index) Star(id int) (core.RefStar, error) {
	if id < 0 || id >= len(x.stars) {
		return core.RefStar{}, fmt.Errorf("star %d in index %q: %w", id, x.name, core.ErrStarNotFound)
	}
	return x.stars[id], nil
}

// StarsWithin returns ids of stars within chord distance radius of xyz,
// closest first.
func (x *Index) StarsWithin(xyz [3]float64, radius float64) []int {
	if len(x.stars) == 0 {
		return nil
	}
	neighbors, err := x.starTree.RangeSearch(xyz[:], radius)
	if err != nil {
		return nil
	}
	ids := make([]int, len(neighbors))
	for i, n := range neighbors {
		ids[i] = n.ID
	}
	return ids
}

// Covers reports whether xyz lies in the cap spanned by the index's stars.
func (x *Index) Covers(xyz [3]float64) bool {
	return len(x.stars) > 0 && wcs.DistSq(x.center, xyz) <= x.capR2
}

// Density returns stars per steradian over the footprint.
func (x *Index) Density() float64 { return x.density }

// Stats returns star and quad counts.
func (x *Index) Stats() core.IndexStats {
	return core.IndexStats{
		Stars:      len(x.stars),
		Quads:      len(x.quads),
		Dimension:  quad.CodeDim(x.dimquad),
		ScaleLower: x.scaleLower,
		ScaleUpper: x.scaleUpper,
		Distance:   x.codes.DistanceName,
	}
}

// Quad returns the star ids of a stored quad in code order.
func (x *Index) Quad(id int) ([]int, bool) {
	if id < 0 || id >= len(x.quads) {
		return nil, false
	}
	return append([]int(nil), x.quads[id]...), true
}

// Footprint returns the center and angular radius, in arcseconds, of the
// cap the index covers.
func (x *Index) Footprint() (center wcs.RADec, radiusArcsec float64) {
	ra, dec := wcs.XYZToRADec(x.center)
	return wcs.RADec{RA: ra, Dec: dec}, wcs.ChordToArcsec(math.Sqrt(x.capR2))
}

// summarize derives the footprint cap and density from the stars.
func (x *Index) summarize() {
	if len(x.stars) == 0 {
		return
	}
	vs := make([][3]float64, len(x.stars))
	for i, s := range x.stars {
		vs[i] = s.XYZ
	}
	x.center = wcs.Mean(vs...)
	for _, v := range vs {
		if d := wcs.DistSq(x.center, v); d > x.capR2 {
			x.capR2 = d
		}
	}
	// A cap of chord radius c has area pi*c^2 steradians.
	area := math.Pi * x.capR2
	if area > 0 {
		x.density = float64(len(x.stars)) / area
	}
}

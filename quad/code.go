package quad

import (
	"math"
	"sort"

	"github.com/patrikhermansson/quadsolve/core"
)

// Code is a quad fingerprint: the (x, y) position of each interior star in
// the anchor frame, in slot order. Its length is 2*(dimquad-2).
type Code []float64

// CodeDim returns the code length for quads of dimquad stars.
func CodeDim(dimquad int) int { return 2 * (dimquad - 2) }

// ComputeCode projects the interior points into f.
func ComputeCode(f Frame, interior ...[2]float64) Code {
	c := make(Code, 0, 2*len(interior))
	for _, p := range interior {
		x, y := f.Project(p)
		c = append(c, x, y)
	}
	return c
}

// Flip returns the mirror-image code, with x and y swapped for every star.
func (c Code) Flip() Code {
	out := make(Code, len(c))
	for i := 0; i+1 < len(c); i += 2 {
		out[i], out[i+1] = c[i+1], c[i]
	}
	return out
}

// SwapAnchors returns the code of the same stars with A and B exchanged.
// Exchanging the anchors is a point reflection through (0.5, 0.5).
func (c Code) SwapAnchors() Code {
	out := make(Code, len(c))
	for i, v := range c {
		out[i] = 1 - v
	}
	return out
}

// Valid reports whether every component is finite.
func (c Code) Valid() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return len(c) > 0 && len(c)%2 == 0
}

// Satisfies reports whether c obeys the labeling conventions in cc, allowing
// tol of slack. Codes that violate them cannot match a stored code by more
// than tol.
func (c Code) Satisfies(cc core.CodeConstraints, tol float64) bool {
	if cc.CxLessThanDx {
		for i := 2; i+1 < len(c); i += 2 {
			if c[i-2] > c[i]+tol {
				return false
			}
		}
	}
	if cc.MeanXLessThanHalf {
		var sum float64
		n := len(c) / 2
		for i := 0; i < len(c); i += 2 {
			sum += c[i]
		}
		if n > 0 && sum/float64(n) > 0.5+tol {
			return false
		}
	}
	return true
}

// Canonicalize relabels a quad so its code obeys cc. stars are in code
// order (A, B, interior...). The anchors are exchanged when the mean
// interior x exceeds one half, then interior stars are sorted by x.
func Canonicalize(stars []int, c Code, cc core.CodeConstraints) ([]int, Code) {
	s := append([]int(nil), stars...)
	out := append(Code(nil), c...)
	if cc.MeanXLessThanHalf {
		var sum float64
		for i := 0; i < len(out); i += 2 {
			sum += out[i]
		}
		if n := len(out) / 2; n > 0 && sum/float64(n) > 0.5 {
			out = out.SwapAnchors()
			s[0], s[1] = s[1], s[0]
		}
	}
	if cc.CxLessThanDx {
		n := len(out) / 2
		slots := make([]int, n)
		for i := range slots {
			slots[i] = i
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return out[2*slots[i]] < out[2*slots[j]]
		})
		sorted := make(Code, len(out))
		interior := make([]int, n)
		for i, k := range slots {
			sorted[2*i], sorted[2*i+1] = out[2*k], out[2*k+1]
			interior[i] = s[2+k]
		}
		copy(s[2:], interior)
		out = sorted
	}
	return s, out
}

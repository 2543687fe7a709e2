package quad

import (
	"fmt"
	"iter"
	"strings"

	"github.com/patrikhermansson/quadsolve/internal/helpers"
)

// Parity selects which mirror images of the field are searched.
type Parity int

const (
	// ParityNormal tries codes as computed.
	ParityNormal Parity = iota
	// ParityFlip tries only mirrored codes.
	ParityFlip
	// ParityBoth tries codes as computed, then mirrored.
	ParityBoth
)

func (p Parity) String() string {
	switch p {
	case ParityNormal:
		return "normal"
	case ParityFlip:
		return "flip"
	case ParityBoth:
		return "both"
	}
	return fmt.Sprintf("parity(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Parity) MarshalText() ([]byte, error) {
	if p < ParityNormal || p > ParityBoth {
		return nil, fmt.Errorf("invalid parity %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Parity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "normal":
		*p = ParityNormal
	case "flip", "flipped":
		*p = ParityFlip
	case "both":
		*p = ParityBoth
	default:
		return fmt.Errorf("unknown parity %q", string(b))
	}
	return nil
}

func (p Parity) flips() []bool {
	switch p {
	case ParityNormal:
		return []bool{false}
	case ParityFlip:
		return []bool{true}
	}
	return []bool{false, true}
}

// Quad is one labeling of a subset: field star ids in code order (anchor A,
// anchor B, interior stars) and the code they produce.
type Quad struct {
	Stars   []int
	Code    Code
	Flipped bool
	Subset  int // ordinal of the subset this labeling came from
}

// Anchors returns the anchor star ids.
func (q Quad) Anchors() (a, b int) { return q.Stars[0], q.Stars[1] }

// Interior returns the non-anchor star ids in slot order.
func (q Quad) Interior() []int { return q.Stars[2:] }

// Subset is a group of dimquad field stars with a designated anchor pair.
// Positions are enumeration positions in the field; IDs are the caller's
// input indexes.
type Subset struct {
	Seq       int
	Positions []int
	IDs       []int
	Points    [][2]float64
}

// Len returns the number of stars.
func (s *Subset) Len() int { return len(s.Positions) }

// Separation returns the anchor distance in pixels.
func (s *Subset) Separation() float64 {
	f, ok := NewFrame(s.Points[0], s.Points[1])
	if !ok {
		return 0
	}
	return f.Separation()
}

// NumQuads returns how many labelings Quads yields under parity, assuming
// no degenerate codes.
func (s *Subset) NumQuads(parity Parity) int {
	if len(s.Points) < 3 {
		return 0
	}
	return len(parity.flips()) * 2 * helpers.Factorial(len(s.Points)-2)
}

// Quads yields every labeling of the subset: for each parity, both anchor
// orders, and for each anchor order every interior permutation in
// lexicographic slot order. With a single parity that is 2*(n-2)! quads.
// The sequence is finite and may be ranged over repeatedly.
func (s *Subset) Quads(parity Parity) iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		if len(s.Points) < 3 {
			return
		}
		nInterior := len(s.Points) - 2
		for _, flip := range parity.flips() {
			for _, ab := range [2][2]int{{0, 1}, {1, 0}} {
				f, ok := NewFrame(s.Points[ab[0]], s.Points[ab[1]])
				if !ok {
					continue
				}
				interior := make([][2]float64, nInterior)
				for perm := range Permutations(nInterior) {
					stars := make([]int, 0, len(s.IDs))
					stars = append(stars, s.IDs[ab[0]], s.IDs[ab[1]])
					for i, k := range perm {
						interior[i] = s.Points[2+k]
						stars = append(stars, s.IDs[2+k])
					}
					code := ComputeCode(f, interior...)
					if flip {
						code = code.Flip()
					}
					if !code.Valid() {
						continue
					}
					if !yield(Quad{Stars: stars, Code: code, Flipped: flip, Subset: s.Seq}) {
						return
					}
				}
			}
		}
	}
}

// Package quad turns small groups of field stars into invariant codes.
//
// A quad's first two stars are its anchors, A and B. Every other star is
// expressed in the frame where A sits at (0, 0) and B at (1, 1); those
// coordinates, concatenated in slot order, form the quad's code.
package quad

import "math"

// Frame is the similarity transform taking anchor A to (0, 0) and anchor B to (1, 1).
type Frame struct {
	ax, ay   float64
	cos, sin float64 // rotation scaled by 1/|AB|^2
	sep2     float64
}

// NewFrame returns the frame for anchors a and b. ok is false when the
// anchors coincide or the frame is not finite.
func NewFrame(a, b [2]float64) (Frame, bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	s := dx*dx + dy*dy
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Frame{}, false
	}
	f := Frame{
		ax:   a[0],
		ay:   a[1],
		cos:  (dx + dy) / s,
		sin:  (dy - dx) / s,
		sep2: s,
	}
	if math.IsInf(f.cos, 0) || math.IsInf(f.sin, 0) {
		return Frame{}, false
	}
	return f, true
}

// Project maps a pixel position into the frame.
func (f Frame) Project(p [2]float64) (x, y float64) {
	cx, cy := p[0]-f.ax, p[1]-f.ay
	return cx*f.cos + cy*f.sin, -cx*f.sin + cy*f.cos
}

// Separation returns the anchor distance in pixels.
func (f Frame) Separation() float64 { return math.Sqrt(f.sep2) }

// InCircle reports whether a projected point lies inside the circle whose
// diameter is the anchor segment, allowing tol of slack.
func InCircle(x, y, tol float64) bool {
	return (x*x-x)+(y*y-y) <= tol
}

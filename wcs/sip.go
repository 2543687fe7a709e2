package wcs

import "math"

// SIP holds forward polynomial distortion terms in the Simple Imaging
// Polynomial convention: pixel offsets (u, v) from CRPIX become
// (u + f(u, v), v + g(u, v)) before the CD matrix is applied.
// A[p][q] and B[p][q] are the coefficients of u^p v^q in f and g.
type SIP struct {
	Order int
	A     [][]float64
	B     [][]float64
}

// NewSIP returns zeroed distortion terms of the given order.
func NewSIP(order int) *SIP {
	s := &SIP{Order: order}
	s.A = make([][]float64, order+1)
	s.B = make([][]float64, order+1)
	for p := 0; p <= order; p++ {
		s.A[p] = make([]float64, order+1)
		s.B[p] = make([]float64, order+1)
	}
	return s
}

func (s *SIP) clone() *SIP {
	c := NewSIP(s.Order)
	for p := 0; p <= s.Order; p++ {
		copy(c.A[p], s.A[p])
		copy(c.B[p], s.B[p])
	}
	return c
}

func evalPoly(c [][]float64, order int, u, v float64) float64 {
	var sum float64
	up := 1.0
	for p := 0; p <= order; p++ {
		vq := 1.0
		for q := 0; q <= order-p; q++ {
			sum += c[p][q] * up * vq
			vq *= v
		}
		up *= u
	}
	return sum
}

// Distort applies the forward terms to a pixel offset.
func (s *SIP) Distort(u, v float64) (float64, float64) {
	if s == nil {
		return u, v
	}
	return u + evalPoly(s.A, s.Order, u, v), v + evalPoly(s.B, s.Order, u, v)
}

// Undistort inverts Distort by fixed-point iteration. Distortions are small
// compared to the offsets themselves, so a few rounds converge.
func (s *SIP) Undistort(up, vp float64) (float64, float64) {
	if s == nil {
		return up, vp
	}
	u, v := up, vp
	for i := 0; i < 50; i++ {
		nu := up - evalPoly(s.A, s.Order, u, v)
		nv := vp - evalPoly(s.B, s.Order, u, v)
		if math.Abs(nu-u) < 1e-10 && math.Abs(nv-v) < 1e-10 {
			return nu, nv
		}
		u, v = nu, nv
	}
	return u, v
}

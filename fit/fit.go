// Package fit computes least-squares TAN and SIP solutions from star
// correspondences.
package fit

import (
	"fmt"
	"math"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/wcs"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Pair is a field pixel matched to a reference star.
type Pair struct {
	X, Y float64
	XYZ  [3]float64
}

// tanIterations moves the tangent point onto the fitted CRPIX; each round
// shrinks the offset quadratically.
const tanIterations = 4

// FitTan returns the TAN projection with reference pixel crpix that
// minimizes squared residuals in the tangent plane.
func FitTan(pairs []Pair, crpix [2]float64) (*wcs.TanWCS, error) {
	if len(pairs) < 3 {
		return nil, fmt.Errorf("need at least 3 correspondences, got %d: %w", len(pairs), core.ErrDegenerate)
	}
	if colinear(pairs) {
		return nil, fmt.Errorf("correspondences are colinear: %w", core.ErrDegenerate)
	}
	vs := make([][3]float64, len(pairs))
	for i, p := range pairs {
		vs[i] = p.XYZ
	}
	ra, dec := wcs.XYZToRADec(wcs.Mean(vs...))

	var w *wcs.TanWCS
	for iter := 0; iter < tanIterations; iter++ {
		xi, eta, err := tangentCoords(pairs, ra, dec)
		if err != nil {
			return nil, err
		}
		coef, err := solve(linearDesign(pairs, crpix), xi, eta)
		if err != nil {
			return nil, err
		}
		// Columns: 1, u, v.
		w = &wcs.TanWCS{
			CRPIX: crpix,
			CD: [2][2]float64{
				{coef[0][1], coef[0][2]},
				{coef[1][1], coef[1][2]},
			},
		}
		// The constant term is the tangent plane position of crpix; move the
		// tangent point there.
		ra, dec = wcs.XYZToRADec(wcs.DeprojectTan(ra, dec, coef[0][0], coef[1][0]))
		w.CRVAL = [2]float64{ra, dec}
	}
	if w.Determinant() == 0 {
		return nil, fmt.Errorf("singular CD: %w", core.ErrDegenerate)
	}
	return w, nil
}

// FitSIP fits a TAN projection with SIP distortion of the given order.
// The polynomial basis contains the linear one, so the result is returned
// only when it does not raise the summed squared residual of the linear
// fit; otherwise the linear fit comes back. Orders below 2, or too few
// correspondences for the basis, also yield the linear fit.
func FitSIP(pairs []Pair, crpix [2]float64, order int) (*wcs.TanWCS, error) {
	linear, err := FitTan(pairs, crpix)
	if err != nil {
		return nil, err
	}
	nTerms := (order + 1) * (order + 2) / 2
	if order < 2 || len(pairs) <= nTerms {
		return linear, nil
	}
	ra, dec := linear.CRVAL[0], linear.CRVAL[1]
	xi, eta, err := tangentCoords(pairs, ra, dec)
	if err != nil {
		return nil, err
	}

	// Normalize offsets so high powers stay well conditioned.
	scale := 1.0
	for _, p := range pairs {
		scale = math.Max(scale, math.Max(math.Abs(p.X-crpix[0]), math.Abs(p.Y-crpix[1])))
	}
	type term struct{ p, q int }
	var terms []term
	for p := 0; p <= order; p++ {
		for q := 0; q <= order-p; q++ {
			terms = append(terms, term{p, q})
		}
	}
	design := mat.NewDense(len(pairs), len(terms), nil)
	for i, pr := range pairs {
		u := (pr.X - crpix[0]) / scale
		v := (pr.Y - crpix[1]) / scale
		for j, tm := range terms {
			design.Set(i, j, math.Pow(u, float64(tm.p))*math.Pow(v, float64(tm.q)))
		}
	}
	coef, err := solve(design, xi, eta)
	if err != nil {
		return linear, nil
	}

	poly := func(row, p, q int) float64 {
		for j, tm := range terms {
			if tm.p == p && tm.q == q {
				return coef[row][j] / math.Pow(scale, float64(p+q))
			}
		}
		return 0
	}
	w := &wcs.TanWCS{
		CRVAL: linear.CRVAL,
		CRPIX: crpix,
		CD: [2][2]float64{
			{poly(0, 1, 0), poly(0, 0, 1)},
			{poly(1, 1, 0), poly(1, 0, 1)},
		},
	}
	inv := mat.NewDense(2, 2, nil)
	if err := inv.Inverse(mat.NewDense(2, 2, []float64{w.CD[0][0], w.CD[0][1], w.CD[1][0], w.CD[1][1]})); err != nil {
		return linear, nil
	}
	// Non-linear and constant terms, pulled back through CD into pixel units.
	w.SIP = wcs.NewSIP(order)
	for _, tm := range terms {
		if tm.p+tm.q == 1 {
			continue
		}
		a, b := poly(0, tm.p, tm.q), poly(1, tm.p, tm.q)
		w.SIP.A[tm.p][tm.q] = inv.At(0, 0)*a + inv.At(0, 1)*b
		w.SIP.B[tm.p][tm.q] = inv.At(1, 0)*a + inv.At(1, 1)*b
	}

	if sumSquares(Residuals(w, pairs)) > sumSquares(Residuals(linear, pairs)) {
		return linear, nil
	}
	return w, nil
}

// colinear reports whether the pixel positions span no area.
func colinear(pairs []Pair) bool {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i], ys[i] = p.X, p.Y
	}
	cxx := stat.Variance(xs, nil)
	cyy := stat.Variance(ys, nil)
	cxy := stat.Covariance(xs, ys, nil)
	tr := cxx + cyy
	return tr == 0 || cxx*cyy-cxy*cxy <= 1e-12*tr*tr
}

func tangentCoords(pairs []Pair, ra, dec float64) (xi, eta []float64, err error) {
	xi = make([]float64, len(pairs))
	eta = make([]float64, len(pairs))
	for i, p := range pairs {
		var ok bool
		xi[i], eta[i], ok = wcs.ProjectTan(ra, dec, p.XYZ)
		if !ok {
			return nil, nil, fmt.Errorf("star %d not projectable about (%.4f, %.4f): %w", i, ra, dec, core.ErrDegenerate)
		}
	}
	return xi, eta, nil
}

func linearDesign(pairs []Pair, crpix [2]float64) *mat.Dense {
	design := mat.NewDense(len(pairs), 3, nil)
	for i, p := range pairs {
		design.Set(i, 0, 1)
		design.Set(i, 1, p.X-crpix[0])
		design.Set(i, 2, p.Y-crpix[1])
	}
	return design
}

// solve returns least-squares coefficients of the design for both targets
// using a QR decomposition.
func solve(design *mat.Dense, xi, eta []float64) ([2][]float64, error) {
	rows, cols := design.Dims()
	if rows < cols {
		return [2][]float64{}, fmt.Errorf("%d equations for %d unknowns: %w", rows, cols, core.ErrDegenerate)
	}
	var qr mat.QR
	qr.Factorize(design)

	targets := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		targets.Set(i, 0, xi[i])
		targets.Set(i, 1, eta[i])
	}
	var params mat.Dense
	if err := qr.SolveTo(&params, false, targets); err != nil {
		return [2][]float64{}, fmt.Errorf("least squares: %w", core.ErrDegenerate)
	}
	var out [2][]float64
	for k := 0; k < 2; k++ {
		out[k] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[k][j] = params.At(j, k)
		}
	}
	return out, nil
}

// Residuals returns the angular distance, in arcseconds, between each
// pair's projected pixel and its reference star.
func Residuals(w *wcs.TanWCS, pairs []Pair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = wcs.ArcsecBetween(w.PixelToXYZ(p.X, p.Y), p.XYZ)
	}
	return out
}

func sumSquares(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x * x
	}
	return s
}

// Stats summarizes fit residuals in arcseconds.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	RMS    float64
	Max    float64
}

// Summarize computes residual statistics.
func Summarize(residuals []float64) Stats {
	st := Stats{N: len(residuals)}
	if st.N == 0 {
		return st
	}
	st.Mean = stat.Mean(residuals, nil)
	if st.N > 1 {
		st.StdDev = stat.StdDev(residuals, nil)
	}
	st.RMS = math.Sqrt(sumSquares(residuals) / float64(st.N))
	for _, r := range residuals {
		st.Max = math.Max(st.Max, r)
	}
	return st
}

package wcs

import (
	"fmt"
	"math"

	"github.com/patrikhermansson/quadsolve/core"
	"gonum.org/v1/gonum/mat"
)

// TanWCS is a gnomonic projection from pixel coordinates to the sky.
//
// A pixel (x, y) is offset by CRPIX, optionally distorted by SIP, and mapped
// through CD to intermediate world coordinates in degrees. Those are
// deprojected about the tangent point CRVAL.
type TanWCS struct {
	CRVAL  [2]float64    // tangent point RA, Dec in degrees
	CRPIX  [2]float64    // reference pixel
	CD     [2][2]float64 // degrees per pixel
	Width  float64       // image width in pixels, informational
	Height float64       // image height in pixels, informational
	SIP    *SIP          // optional forward distortion
}

// Clone returns a deep copy.
func (w *TanWCS) Clone() *TanWCS {
	c := *w
	if w.SIP != nil {
		c.SIP = w.SIP.clone()
	}
	return &c
}

// Determinant returns det(CD) in square degrees per square pixel.
func (w *TanWCS) Determinant() float64 {
	return w.CD[0][0]*w.CD[1][1] - w.CD[0][1]*w.CD[1][0]
}

// Flipped reports whether the pixel grid is mirrored relative to the
// east/north frame of the tangent plane (negative determinant). A field
// imaged this way matches reference codes only after an x/y swap.
func (w *TanWCS) Flipped() bool {
	return w.Determinant() < 0
}

// PixelScale returns the mean pixel size in arcseconds.
func (w *TanWCS) PixelScale() float64 {
	return math.Sqrt(math.Abs(w.Determinant())) * ArcsecPerDeg
}

// Rotation returns the angle, in degrees, of the pixel x axis in the
// east/north tangent plane.
func (w *TanWCS) Rotation() float64 {
	return math.Atan2(w.CD[1][0], w.CD[0][0]) * radToDeg
}

// PixelToIWC maps a pixel to intermediate world coordinates in degrees.
func (w *TanWCS) PixelToIWC(x, y float64) (xi, eta float64) {
	u, v := w.SIP.Distort(x-w.CRPIX[0], y-w.CRPIX[1])
	return w.CD[0][0]*u + w.CD[0][1]*v, w.CD[1][0]*u + w.CD[1][1]*v
}

// IWCToPixel is the inverse of PixelToIWC.
func (w *TanWCS) IWCToPixel(xi, eta float64) (x, y float64, err error) {
	inv, err := w.inverseCD()
	if err != nil {
		return 0, 0, err
	}
	up := inv.At(0, 0)*xi + inv.At(0, 1)*eta
	vp := inv.At(1, 0)*xi + inv.At(1, 1)*eta
	u, v := w.SIP.Undistort(up, vp)
	return u + w.CRPIX[0], v + w.CRPIX[1], nil
}

func (w *TanWCS) inverseCD() (*mat.Dense, error) {
	cd := mat.NewDense(2, 2, []float64{w.CD[0][0], w.CD[0][1], w.CD[1][0], w.CD[1][1]})
	var inv mat.Dense
	if err := inv.Inverse(cd); err != nil {
		return nil, fmt.Errorf("invert CD: %w", core.ErrDegenerate)
	}
	return &inv, nil
}

// PixelToXYZ maps a pixel to a unit vector on the sky.
func (w *TanWCS) PixelToXYZ(x, y float64) [3]float64 {
	xi, eta := w.PixelToIWC(x, y)
	return DeprojectTan(w.CRVAL[0], w.CRVAL[1], xi, eta)
}

// PixelToRADec maps a pixel to RA, Dec in degrees.
func (w *TanWCS) PixelToRADec(x, y float64) (ra, dec float64) {
	return XYZToRADec(w.PixelToXYZ(x, y))
}

// XYZToPixel maps a unit vector to a pixel. ok is false when the point lies
// on the far side of the tangent plane or CD is singular.
func (w *TanWCS) XYZToPixel(xyz [3]float64) (x, y float64, ok bool) {
	xi, eta, ok := ProjectTan(w.CRVAL[0], w.CRVAL[1], xyz)
	if !ok {
		return 0, 0, false
	}
	x, y, err := w.IWCToPixel(xi, eta)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// RADecToPixel maps RA, Dec in degrees to a pixel.
func (w *TanWCS) RADecToPixel(ra, dec float64) (x, y float64, ok bool) {
	return w.XYZToPixel(RADecToXYZ(ra, dec))
}

// Center returns the sky position of the image center. With no image size
// recorded it returns CRVAL.
func (w *TanWCS) Center() RADec {
	if w.Width <= 0 || w.Height <= 0 {
		return RADec{RA: w.CRVAL[0], Dec: w.CRVAL[1]}
	}
	ra, dec := w.PixelToRADec(w.Width/2, w.Height/2)
	return RADec{RA: ra, Dec: dec}
}

// String summarizes the solution.
func (w *TanWCS) String() string {
	parity := "normal"
	if w.Flipped() {
		parity = "flipped"
	}
	sip := 0
	if w.SIP != nil {
		sip = w.SIP.Order
	}
	return fmt.Sprintf("TAN crval=(%.6f, %.6f) crpix=(%.2f, %.2f) scale=%.4f\"/px rot=%.2f° parity=%s sip=%d",
		w.CRVAL[0], w.CRVAL[1], w.CRPIX[0], w.CRPIX[1], w.PixelScale(), w.Rotation(), parity, sip)
}

// ConvertPixels maps a list of pixel positions to RA, Dec.
func ConvertPixels(w *TanWCS, pixels [][2]float64) []RADec {
	out := make([]RADec, len(pixels))
	for i, p := range pixels {
		ra, dec := w.PixelToRADec(p[0], p[1])
		out[i] = RADec{RA: ra, Dec: dec}
	}
	return out
}

// Package wcs holds celestial sphere geometry and the gnomonic (TAN) world
// coordinate system used to express plate solutions.
package wcs

import "math"

const (
	// ArcsecPerDeg is the number of arcseconds in one degree.
	ArcsecPerDeg = 3600.0
	degToRad     = math.Pi / 180
	radToDeg     = 180 / math.Pi
)

// RADec is a sky position in degrees.
type RADec struct {
	RA  float64
	Dec float64
}

// RADecToXYZ converts right ascension and declination in degrees to a unit vector.
func RADecToXYZ(ra, dec float64) [3]float64 {
	sr, cr := math.Sincos(ra * degToRad)
	sd, cd := math.Sincos(dec * degToRad)
	return [3]float64{cd * cr, cd * sr, sd}
}

// XYZToRADec converts a vector to right ascension in [0, 360) and declination, in degrees.
// The vector need not be normalized.
func XYZToRADec(xyz [3]float64) (ra, dec float64) {
	ra = math.Atan2(xyz[1], xyz[0]) * radToDeg
	if ra < 0 {
		ra += 360
	}
	dec = math.Atan2(xyz[2], math.Hypot(xyz[0], xyz[1])) * radToDeg
	return ra, dec
}

// ArcsecToChord converts an angle to the length of the chord it subtends on the unit sphere.
func ArcsecToChord(arcsec float64) float64 {
	return 2 * math.Sin(arcsec/ArcsecPerDeg*degToRad/2)
}

// ChordToArcsec is the inverse of ArcsecToChord.
func ChordToArcsec(chord float64) float64 {
	return 2 * math.Asin(math.Min(chord/2, 1)) * radToDeg * ArcsecPerDeg
}

// DistSq returns the squared chord distance between two unit vectors.
func DistSq(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

// ArcsecBetween returns the angle between two unit vectors in arcseconds.
func ArcsecBetween(a, b [3]float64) float64 {
	return ChordToArcsec(math.Sqrt(DistSq(a, b)))
}

// Normalize scales v to unit length. The zero vector is returned unchanged.
func Normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// Mean returns the normalized mean direction of the given unit vectors.
func Mean(vs ...[3]float64) [3]float64 {
	var m [3]float64
	for _, v := range vs {
		m[0] += v[0]
		m[1] += v[1]
		m[2] += v[2]
	}
	return Normalize(m)
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// tangentBasis returns the tangent point r and the local east and north unit vectors there.
func tangentBasis(ra, dec float64) (r, e, n [3]float64) {
	sr, cr := math.Sincos(ra * degToRad)
	sd, cd := math.Sincos(dec * degToRad)
	r = [3]float64{cd * cr, cd * sr, sd}
	e = [3]float64{-sr, cr, 0}
	n = [3]float64{-sd * cr, -sd * sr, cd}
	return r, e, n
}

// ProjectTan maps a unit vector to gnomonic intermediate world coordinates,
// in degrees, about the tangent point (ra, dec). ok is false for points on
// the far hemisphere.
func ProjectTan(ra, dec float64, xyz [3]float64) (xi, eta float64, ok bool) {
	r, e, n := tangentBasis(ra, dec)
	pr := dot(xyz, r)
	if pr <= 0 {
		return 0, 0, false
	}
	return dot(xyz, e) / pr * radToDeg, dot(xyz, n) / pr * radToDeg, true
}

// DeprojectTan is the inverse of ProjectTan.
func DeprojectTan(ra, dec, xi, eta float64) [3]float64 {
	r, e, n := tangentBasis(ra, dec)
	xr, er := xi*degToRad, eta*degToRad
	return Normalize([3]float64{
		r[0] + xr*e[0] + er*n[0],
		r[1] + xr*e[1] + er*n[1],
		r[2] + xr*e[2] + er*n[2],
	})
}

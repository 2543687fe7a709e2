package verify

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/field"
	"github.com/patrikhermansson/quadsolve/match"
	"github.com/patrikhermansson/quadsolve/wcs"
)

const (
	// DefaultMatchRadius is the radius, in pixels at the quad center, within
	// which a reference star counts as a hit.
	DefaultMatchRadius = 2.0
	// DefaultMissRadius is the radius, in pixels at the quad center, inside
	// which a field star must find an unused reference star to avoid a miss.
	DefaultMissRadius = 6.0
)

// Options sets the verification radii and the distractor model.
type Options struct {
	MatchRadius float64 // pixels, at the quad center
	MissRadius  float64 // pixels, at the quad center
	Distractor  float64
}

// DefaultOptions returns the default radii and distractor fraction.
func DefaultOptions() Options {
	return Options{
		MatchRadius: DefaultMatchRadius,
		MissRadius:  DefaultMissRadius,
		Distractor:  DefaultDistractorFraction,
	}
}

// Correspondence is a field star paired with a reference star.
type Correspondence struct {
	FieldID int // caller's input index
	RefID   int // index-local star id
	X, Y    float64
	XYZ     [3]float64
}

// Match is a scored candidate.
type Match struct {
	Candidate       match.Candidate
	WCS             *wcs.TanWCS // provisional transform from the anchors
	Correspondences []Correspondence
	Hits            int
	Misses          int
	Excluded        int // field stars outside the index footprint
	LogOdds         float64
}

// Verifier scores candidates against one field. It is read-only after
// construction and safe for concurrent use.
type Verifier struct {
	field *field.Field
	opts  Options
	posOf map[int]int
}

// NewVerifier checks opts.
func NewVerifier(f *field.Field, opts Options) (*Verifier, error) {
	if f == nil {
		return nil, fmt.Errorf("no field: %w", core.ErrInsufficientStars)
	}
	if opts.MatchRadius <= 0 || opts.MissRadius < opts.MatchRadius {
		return nil, fmt.Errorf("match radius %g, miss radius %g: %w",
			opts.MatchRadius, opts.MissRadius, core.ErrInvalidConfig)
	}
	if err := (ScoreModel{Distractor: opts.Distractor}).Validate(); err != nil {
		return nil, err
	}
	v := &Verifier{field: f, opts: opts, posOf: make(map[int]int, f.Len())}
	for pos := 0; pos < f.Len(); pos++ {
		v.posOf[f.ID(pos)] = pos
	}
	return v, nil
}

func (v *Verifier) pixel(id int) (complex128, error) {
	pos, ok := v.posOf[id]
	if !ok {
		return 0, fmt.Errorf("field star %d: %w", id, core.ErrStarNotFound)
	}
	x, y := v.field.XY(pos)
	return complex(x, y), nil
}

// Provisional derives the similarity transform that carries the field
// anchors onto the reference anchors. A flipped quad yields a mirrored
// transform.
func (v *Verifier) Provisional(c match.Candidate) (*wcs.TanWCS, error) {
	za, err := v.pixel(c.Field.Stars[0])
	if err != nil {
		return nil, err
	}
	zb, err := v.pixel(c.Field.Stars[1])
	if err != nil {
		return nil, err
	}
	ra, err := c.Index.Star(c.Ref.Stars[0])
	if err != nil {
		return nil, err
	}
	rb, err := c.Index.Star(c.Ref.Stars[1])
	if err != nil {
		return nil, err
	}

	tRA, tDec := wcs.XYZToRADec(wcs.Mean(ra.XYZ, rb.XYZ))
	xa, ya, okA := wcs.ProjectTan(tRA, tDec, ra.XYZ)
	xb, yb, okB := wcs.ProjectTan(tRA, tDec, rb.XYZ)
	if !okA || !okB {
		return nil, fmt.Errorf("reference anchors not projectable: %w", core.ErrDegenerate)
	}
	wa, wb := complex(xa, ya), complex(xb, yb)

	flipped := c.Field.Flipped
	if flipped {
		za, zb = cmplx.Conj(za), cmplx.Conj(zb)
	}
	if zb == za {
		return nil, fmt.Errorf("coincident field anchors: %w", core.ErrDegenerate)
	}
	// w = s*z + t in the (possibly conjugated) pixel plane.
	s := (wb - wa) / (zb - za)
	t := wa - s*za
	z0 := -t / s

	w := &wcs.TanWCS{CRVAL: [2]float64{tRA, tDec}}
	if flipped {
		w.CRPIX = [2]float64{real(z0), -imag(z0)}
		w.CD = [2][2]float64{{real(s), imag(s)}, {imag(s), -real(s)}}
	} else {
		w.CRPIX = [2]float64{real(z0), imag(z0)}
		w.CD = [2][2]float64{{real(s), -imag(s)}, {imag(s), real(s)}}
	}
	return w, nil
}

// Verify projects every field star through the provisional transform and
// counts reference stars confirming or contradicting it. The quad's own
// stars seed the correspondences but are not counted as evidence. Match
// radii grow with distance from the quad center, where the anchor-only
// transform is least certain.
func (v *Verifier) Verify(c match.Candidate) (*Match, error) {
	w, err := v.Provisional(c)
	if err != nil {
		return nil, err
	}
	idx := c.Index
	m := &Match{Candidate: c, WCS: w}

	used := make(map[int]bool, len(c.Ref.Stars))
	inQuad := make(map[int]bool, len(c.Field.Stars))
	for i, fid := range c.Field.Stars {
		rs, err := idx.Star(c.Ref.Stars[i])
		if err != nil {
			return nil, err
		}
		z, err := v.pixel(fid)
		if err != nil {
			return nil, err
		}
		inQuad[fid] = true
		used[rs.ID] = true
		m.Correspondences = append(m.Correspondences, Correspondence{
			FieldID: fid, RefID: rs.ID, X: real(z), Y: imag(z), XYZ: rs.XYZ,
		})
	}

	za, _ := v.pixel(c.Field.Stars[0])
	zb, _ := v.pixel(c.Field.Stars[1])
	center := (za + zb) / 2
	q2 := math.Pow(cmplx.Abs(zb-za)/2, 2)
	scale := w.PixelScale() // arcseconds per pixel
	density := idx.Density()
	model := ScoreModel{Distractor: v.opts.Distractor}

	for pos := 0; pos < v.field.Len(); pos++ {
		fid := v.field.ID(pos)
		if inQuad[fid] {
			continue
		}
		x, y := v.field.XY(pos)
		xyz := w.PixelToXYZ(x, y)
		if !idx.Covers(xyz) {
			m.Excluded++
			continue
		}
		d := complex(x, y) - center
		grow := math.Sqrt(1 + (real(d)*real(d)+imag(d)*imag(d))/q2)
		rMatch := v.opts.MatchRadius * grow * scale
		rMiss := math.Max(v.opts.MissRadius*grow*scale, rMatch)

		ref, dist, found := nearestUnused(idx, xyz, wcs.ArcsecToChord(rMiss), used)
		switch {
		case !found:
			m.Misses++
			m.LogOdds += model.MissLogOdds()
		case dist <= wcs.ArcsecToChord(rMatch):
			used[ref.ID] = true
			m.Hits++
			model.FalsePositive = FalsePositiveRate(density, rMatch/wcs.ArcsecPerDeg*math.Pi/180)
			m.LogOdds += model.HitLogOdds()
			m.Correspondences = append(m.Correspondences, Correspondence{
				FieldID: fid, RefID: ref.ID, X: x, Y: y, XYZ: ref.XYZ,
			})
		}
		// Between the match and miss radii the star is neutral.
	}
	return m, nil
}

// nearestUnused returns the closest reference star within chord radius r of
// xyz that is not yet paired.
func nearestUnused(idx core.Index, xyz [3]float64, r float64, used map[int]bool) (core.RefStar, float64, bool) {
	var best core.RefStar
	bestD := math.Inf(1)
	for _, id := range idx.StarsWithin(xyz, r) {
		if used[id] {
			continue
		}
		rs, err := idx.Star(id)
		if err != nil {
			continue
		}
		if d := math.Sqrt(wcs.DistSq(rs.XYZ, xyz)); d < bestD {
			best, bestD = rs, d
		}
	}
	return best, bestD, !math.IsInf(bestD, 1)
}

// Correspondences pairs every field star in idx's footprint with the
// closest unpaired reference star within radius pixels under w. Field
// stars are taken in enumeration order.
func (v *Verifier) Correspondences(w *wcs.TanWCS, idx core.Index, radius float64) []Correspondence {
	chord := wcs.ArcsecToChord(radius * w.PixelScale())
	used := make(map[int]bool)
	var out []Correspondence
	for pos := 0; pos < v.field.Len(); pos++ {
		x, y := v.field.XY(pos)
		xyz := w.PixelToXYZ(x, y)
		if !idx.Covers(xyz) {
			continue
		}
		ref, _, ok := nearestUnused(idx, xyz, chord, used)
		if !ok {
			continue
		}
		used[ref.ID] = true
		out = append(out, Correspondence{FieldID: v.field.ID(pos), RefID: ref.ID, X: x, Y: y, XYZ: ref.XYZ})
	}
	return out
}

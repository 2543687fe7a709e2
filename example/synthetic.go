// Package example generates synthetic skies and fields and runs solves
// against them.
package example

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/field"
	"github.com/patrikhermansson/quadsolve/index"
	"github.com/patrikhermansson/quadsolve/wcs"
	"github.com/rs/zerolog/log"
)

// CatalogStar is a synthetic catalog entry.
type CatalogStar struct {
	ID      int64
	RA, Dec float64 // degrees
	Mag     float64
}

// SkyOptions describes a circular catalog patch.
type SkyOptions struct {
	Center wcs.RADec
	Radius float64 // degrees
	Stars  int
	// Seed drives the generator. Zero draws one from core.GetSeed.
	Seed int64
}

// DefaultSkyOptions returns a 1.5 degree patch of 1500 stars.
func DefaultSkyOptions() SkyOptions {
	return SkyOptions{Center: wcs.RADec{RA: 150, Dec: 20}, Radius: 1.5, Stars: 1500}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = core.GetSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// SyntheticSky scatters stars uniformly over a spherical cap. Magnitudes
// follow a rising count law and the catalog is sorted brightest first, so
// catalog ids rank brightness.
func SyntheticSky(opts SkyOptions) []CatalogStar {
	rnd := newRand(opts.Seed)
	center := wcs.RADecToXYZ(opts.Center.RA, opts.Center.Dec)

	// Orthonormal frame around the cap center.
	up := [3]float64{0, 0, 1}
	if math.Abs(center[2]) > 0.9 {
		up = [3]float64{1, 0, 0}
	}
	e1 := wcs.Normalize(cross(up, center))
	e2 := cross(center, e1)

	cosR := math.Cos(opts.Radius * math.Pi / 180)
	stars := make([]CatalogStar, opts.Stars)
	for i := range stars {
		cosT := 1 - rnd.Float64()*(1-cosR)
		sinT := math.Sqrt(1 - cosT*cosT)
		phi := 2 * math.Pi * rnd.Float64()
		var v [3]float64
		for k := 0; k < 3; k++ {
			v[k] = cosT*center[k] + sinT*(math.Cos(phi)*e1[k]+math.Sin(phi)*e2[k])
		}
		ra, dec := wcs.XYZToRADec(v)
		// log10 N(<m) grows by 0.4 per magnitude.
		mag := 16 + math.Log10(rnd.Float64()+1e-12)/0.4
		stars[i] = CatalogStar{RA: ra, Dec: dec, Mag: mag}
	}
	sort.SliceStable(stars, func(i, j int) bool { return stars[i].Mag < stars[j].Mag })
	for i := range stars {
		stars[i].ID = int64(i)
	}
	log.Debug().Msgf("Generated %d catalog stars within %.2f deg of (%.3f, %.3f)",
		len(stars), opts.Radius, opts.Center.RA, opts.Center.Dec)
	return stars
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// FieldOptions describes how a catalog is imaged.
type FieldOptions struct {
	WCS         *wcs.TanWCS // must carry Width and Height
	Noise       float64     // pixel position noise, standard deviation
	Distractors int         // spurious detections with no catalog counterpart
	Dropout     float64     // fraction of catalog stars not detected
	Seed        int64
}

// DefaultFieldWCS returns a flipped 1024x1024 image at 2 arcsec per pixel,
// rotated by 30 degrees and centered on center.
func DefaultFieldWCS(center wcs.RADec) *wcs.TanWCS {
	s := 2.0 / wcs.ArcsecPerDeg
	th := 30 * math.Pi / 180
	return &wcs.TanWCS{
		CRVAL:  [2]float64{center.RA, center.Dec},
		CRPIX:  [2]float64{512, 512},
		CD:     [2][2]float64{{-s * math.Cos(th), s * math.Sin(th)}, {s * math.Sin(th), s * math.Cos(th)}},
		Width:  1024,
		Height: 1024,
	}
}

// SyntheticField projects the catalog through opts.WCS and keeps the stars
// landing on the image. truth[i] is the catalog id of stars[i], or -1 for a
// distractor. Flux falls with magnitude.
func SyntheticField(catalog []CatalogStar, opts FieldOptions) (stars []field.Star, truth []int64, err error) {
	w := opts.WCS
	if w == nil || w.Width <= 0 || w.Height <= 0 {
		return nil, nil, fmt.Errorf("field needs a WCS with an image size: %w", core.ErrInvalidConfig)
	}
	rnd := newRand(opts.Seed)
	faintest := math.Inf(-1)
	for _, cs := range catalog {
		x, y, ok := w.RADecToPixel(cs.RA, cs.Dec)
		if !ok || x < 0 || y < 0 || x >= w.Width || y >= w.Height {
			continue
		}
		if rnd.Float64() < opts.Dropout {
			continue
		}
		stars = append(stars, field.Star{
			X:    x + rnd.NormFloat64()*opts.Noise,
			Y:    y + rnd.NormFloat64()*opts.Noise,
			Flux: flux(cs.Mag),
		})
		truth = append(truth, cs.ID)
		faintest = math.Max(faintest, cs.Mag)
	}
	for i := 0; i < opts.Distractors; i++ {
		stars = append(stars, field.Star{
			X:    rnd.Float64() * w.Width,
			Y:    rnd.Float64() * w.Height,
			Flux: flux(faintest - 2*rnd.Float64()),
		})
		truth = append(truth, -1)
	}
	log.Debug().Msgf("Imaged %d catalog stars and %d distractors", len(stars)-opts.Distractors, opts.Distractors)
	return stars, truth, nil
}

func flux(mag float64) float64 { return math.Pow(10, -0.4*(mag-20)) }

// BuildIndex adds the catalog to an index builder, generates up to
// quadsPerStar quads per star and builds the index.
func BuildIndex(catalog []CatalogStar, opts index.Options, quadsPerStar int) (*index.Index, error) {
	b, err := index.NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	for _, cs := range catalog {
		b.AddStar(cs.ID, cs.RA, cs.Dec)
	}
	if _, err := b.GenerateQuads(quadsPerStar); err != nil {
		return nil, err
	}
	return b.Build()
}
